package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for report output.
// NO_COLOR forces plain text; otherwise the terminal is queried.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

type styles struct {
	soname   lipgloss.Style
	pkg      lipgloss.Style
	provider lipgloss.Style
	notice   lipgloss.Style
}

func newStyles(w io.Writer, profile termenv.Profile) styles {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return styles{
		soname:   r.NewStyle().Foreground(lipgloss.Color("3")),
		pkg:      r.NewStyle().Foreground(lipgloss.Color("1")),
		provider: r.NewStyle().Foreground(lipgloss.Color("6")),
		notice:   r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}
