// Package report renders audit findings as text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/muesli/termenv"
	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
)

var _ ports.Reporter = (*Reporter)(nil)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Reporter implements ports.Reporter.
type Reporter struct {
	mu     sync.Mutex
	out    io.Writer
	styles styles
}

// New creates a Reporter writing to stdout.
func New() *Reporter {
	return NewReporter(os.Stdout, ColorProfile())
}

// NewReporter creates a Reporter writing to w with the given color profile.
func NewReporter(w io.Writer, profile termenv.Profile) *Reporter {
	return &Reporter{
		out:    w,
		styles: newStyles(w, profile),
	}
}

// MissingDependency prints "<providers> <soname> <package> <path>".
func (r *Reporter) MissingDependency(dep domain.MissingDep) {
	r.mu.Lock()
	defer r.mu.Unlock()

	providers := domain.ProvidersOrUnknown(dep.Providers)
	r.println(strings.Join(providers, " "), dep.Soname, dep.Package.String(), dep.Path.String())
}

// Summary prints the per-soname, per-package and transitive sections,
// each in ascending key order, then the raw maps when verbose is set.
func (r *Reporter) Summary(report *domain.Report, verbose bool) {
	if report.IsClean() && !verbose {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, soname := range report.SortedLibraries() {
		pkgs := report.PackagesMissing(soname)
		plural := ""
		if len(pkgs) > 1 {
			plural = "s"
		}

		var b strings.Builder
		fmt.Fprintf(&b, "package%s need rebuild because of missing %s:", plural, r.styles.soname.Render(soname))
		for _, pkg := range pkgs {
			b.WriteString(" " + r.styles.pkg.Render(pkg))
		}
		r.println(b.String())
	}

	for _, pkg := range report.SortedPackages() {
		entries := make([]string, 0, len(report.Packages[pkg]))
		for _, soname := range report.Packages[pkg].Sorted() {
			entry := r.styles.soname.Render(soname)
			if provider, ok := report.Providers[soname]; ok {
				entry += " from " + r.styles.provider.Render(provider)
			}
			entries = append(entries, entry)
		}
		r.println(fmt.Sprintf("package %s misses %s", r.styles.pkg.Render(pkg), strings.Join(entries, "; ")))
	}

	if len(report.Transitive) > 0 {
		members := report.Transitive.Sorted()
		for i, pkg := range members {
			members[i] = r.styles.soname.Render(pkg)
		}
		r.println("transitively broken packages: " + strings.Join(members, ", "))
	}

	if verbose {
		dumper.Fdump(r.out, report.Libraries)
		dumper.Fdump(r.out, report.Packages)
	}
}

// Interpreter prints one notice per package left in a stale interpreter directory.
func (r *Reporter) Interpreter(orphans []domain.InterpreterOrphan) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range orphans {
		r.println(r.styles.notice.Render(fmt.Sprintf(
			"Package %q has files in directory %q that are ignored by the current Python interpreter",
			o.Package, o.Dir)))
	}
}

// ServiceLinks prints one notice per broken enabled-unit link.
func (r *Reporter) ServiceLinks(links []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, link := range links {
		r.println(r.styles.notice.Render(fmt.Sprintf("Systemd enabled service has broken link in %q", link)))
	}
}

func (r *Reporter) println(parts ...string) {
	_, _ = fmt.Fprintln(r.out, strings.Join(parts, " "))
}
