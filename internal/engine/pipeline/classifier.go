package pipeline

import (
	"context"
	"slices"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
)

// Classifier sorts missing dependencies into direct and transitive misses.
type Classifier struct {
	inspector ports.LinkInspector
	reporter  ports.Reporter
}

// NewClassifier creates a new Classifier.
func NewClassifier(inspector ports.LinkInspector, reporter ports.Reporter) *Classifier {
	return &Classifier{
		inspector: inspector,
		reporter:  reporter,
	}
}

type neededEntry struct {
	libs []string
	ok   bool
}

// Classify prints one line per tuple, in order, and aggregates the tuples.
//
// A miss is direct when the soname is a NEEDED entry of the artifact itself.
// When the needed list cannot be read the miss counts as direct.
func (c *Classifier) Classify(ctx context.Context, deps []domain.MissingDep) *domain.Report {
	agg := domain.NewAggregation()
	needed := make(map[domain.InternedString]neededEntry)

	for _, dep := range deps {
		c.reporter.MissingDependency(dep)

		entry, seen := needed[dep.Path]
		if !seen {
			libs, err := c.inspector.NeededLibraries(ctx, dep.Path.String())
			entry = neededEntry{libs: libs, ok: err == nil}
			needed[dep.Path] = entry
		}

		direct := !entry.ok || slices.Contains(entry.libs, dep.Soname)
		agg.Record(dep, direct)
	}

	return agg.Report()
}
