// Package progress records each completed unit as a progrock vertex and draws
// the analysis progress bar from the recorded vertices.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pacaudit/internal/core/ports"
)

var _ ports.Progress = (*Bar)(nil)

const (
	barWidth = 40
	label    = "Analyzing"
)

// Bar implements ports.Progress.
//
// Inc records a completed vertex on a progrock pipe. A single render loop
// reads the pipe and redraws the bar for every completed vertex. The bar is
// drawn only on a terminal.
type Bar struct {
	out         io.Writer
	interactive bool

	total int64

	reader   progrock.Reader
	rec      *progrock.Recorder
	rendered chan struct{}
}

// New creates a Bar drawing to stderr when it is a terminal.
func New() *Bar {
	fd := os.Stderr.Fd()
	return NewBar(os.Stderr, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// NewBar creates a Bar drawing to out when interactive is set.
func NewBar(out io.Writer, interactive bool) *Bar {
	reader, writer := progrock.Pipe()
	return &Bar{
		out:         out,
		interactive: interactive,
		reader:      reader,
		rec:         progrock.NewRecorder(writer),
	}
}

// Start announces the total number of units and starts the render loop.
func (b *Bar) Start(total int) {
	b.total = int64(total)
	b.rendered = make(chan struct{})
	go b.render()
}

// Inc records the unit called name as a completed vertex.
func (b *Bar) Inc(name string) {
	b.rec.Vertex(digest.FromString(name), name).Done(nil)
}

// Finish closes the recording, waits for the render loop to drain it and
// clears the bar.
func (b *Bar) Finish() {
	_ = b.rec.Close()
	if b.rendered == nil {
		return
	}
	<-b.rendered

	if b.interactive {
		_, _ = fmt.Fprint(b.out, "\r\033[2K")
	}
}

func (b *Bar) render() {
	defer close(b.rendered)

	var done int64
	b.draw(done)
	for {
		update, ok := b.reader.ReadStatus()
		if !ok {
			return
		}
		for _, v := range update.GetVertexes() {
			if v.GetCompleted() != nil {
				done++
				b.draw(done)
			}
		}
	}
}

func (b *Bar) draw(done int64) {
	if !b.interactive {
		return
	}
	_, _ = fmt.Fprint(b.out, Render(done, b.total))
}

// Render formats one frame of the bar.
func Render(done, total int64) string {
	filled := barWidth
	if total > 0 {
		filled = int(min(done, total) * barWidth / total)
	}
	return fmt.Sprintf("\r%s [%s%s] %d/%d", label,
		strings.Repeat("#", filled), strings.Repeat("-", barWidth-filled), done, total)
}
