package domain

import (
	"maps"
	"slices"
)

// LibMap maps a missing soname to the packages whose artifacts directly need it,
// each with the multiset of offending artifact paths.
type LibMap map[string]map[string][]string

// PacMap maps a broken package to the sonames its artifacts directly need.
type PacMap map[string]Set

// Report is the aggregated outcome of the broken-dependency analysis.
// It is built once per run and never mutated after Aggregation.Report.
type Report struct {
	Libraries  LibMap            `json:"libraries"`
	Packages   PacMap            `json:"packages"`
	Providers  map[string]string `json:"providers"`
	Transitive Set               `json:"transitive"`
}

// SortedLibraries returns the LibMap keys in ascending order.
func (r *Report) SortedLibraries() []string {
	return slices.Sorted(maps.Keys(r.Libraries))
}

// SortedPackages returns the PacMap keys in ascending order.
func (r *Report) SortedPackages() []string {
	return slices.Sorted(maps.Keys(r.Packages))
}

// PackagesMissing returns, in ascending order, the packages referencing soname.
func (r *Report) PackagesMissing(soname string) []string {
	return slices.Sorted(maps.Keys(r.Libraries[soname]))
}

// IsClean reports whether no missing dependency was found.
func (r *Report) IsClean() bool {
	return len(r.Libraries) == 0 && len(r.Packages) == 0 && len(r.Transitive) == 0
}

// Aggregation accumulates classified missing dependencies.
// It is owned by a single goroutine and needs no synchronization.
type Aggregation struct {
	libraries  LibMap
	packages   PacMap
	providers  map[string]string
	candidates Set
}

// NewAggregation creates an empty Aggregation.
func NewAggregation() *Aggregation {
	return &Aggregation{
		libraries:  make(LibMap),
		packages:   make(PacMap),
		providers:  make(map[string]string),
		candidates: make(Set),
	}
}

// Record files dep under the direct or the transitive bucket.
func (a *Aggregation) Record(dep MissingDep, direct bool) {
	pkg := dep.Package.String()

	if direct {
		byPackage, ok := a.libraries[dep.Soname]
		if !ok {
			byPackage = make(map[string][]string)
			a.libraries[dep.Soname] = byPackage
		}
		byPackage[pkg] = append(byPackage[pkg], dep.Path.String())

		sonames, ok := a.packages[pkg]
		if !ok {
			sonames = make(Set)
			a.packages[pkg] = sonames
		}
		sonames.Add(dep.Soname)
	} else {
		a.candidates.Add(pkg)
	}

	// Later providers overwrite earlier ones; the unknown sentinel is never stored.
	if len(dep.Providers) > 0 && dep.Providers[0] != UnknownProvider {
		a.providers[dep.Soname] = dep.Providers[0]
	}
}

// Report finalizes the aggregation. Packages with at least one direct miss are
// removed from the transitive set.
func (a *Aggregation) Report() *Report {
	transitive := make(Set)
	for pkg := range a.candidates {
		if _, direct := a.packages[pkg]; !direct {
			transitive.Add(pkg)
		}
	}

	return &Report{
		Libraries:  a.libraries,
		Packages:   a.packages,
		Providers:  a.providers,
		Transitive: transitive,
	}
}
