package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacaudit/internal/core/domain"
)

func missing(pkg, path, soname string, providers ...string) domain.MissingDep {
	return domain.MissingDep{
		Package:   domain.NewInternedString(pkg),
		Path:      domain.NewInternedString(path),
		Soname:    soname,
		Providers: providers,
	}
}

func TestAggregation_DirectMiss(t *testing.T) {
	agg := domain.NewAggregation()
	agg.Record(missing("demo", "/usr/bin/demo", "libavcodec.so.57", "ffmpeg"), true)

	report := agg.Report()

	assert.Equal(t, domain.LibMap{"libavcodec.so.57": {"demo": {"/usr/bin/demo"}}}, report.Libraries)
	assert.Equal(t, domain.PacMap{"demo": domain.NewSet("libavcodec.so.57")}, report.Packages)
	assert.Equal(t, map[string]string{"libavcodec.so.57": "ffmpeg"}, report.Providers)
	assert.Empty(t, report.Transitive)
	assert.False(t, report.IsClean())
}

func TestAggregation_TransitiveOnly(t *testing.T) {
	agg := domain.NewAggregation()
	agg.Record(missing("demo", "/usr/bin/demo", "libavcodec.so.57", "ffmpeg"), false)

	report := agg.Report()

	assert.Empty(t, report.Libraries)
	assert.Empty(t, report.Packages)
	assert.Equal(t, domain.NewSet("demo"), report.Transitive)
	assert.Equal(t, "ffmpeg", report.Providers["libavcodec.so.57"])
}

func TestAggregation_DirectWinsOverTransitive(t *testing.T) {
	agg := domain.NewAggregation()
	agg.Record(missing("demo", "/usr/bin/demo", "libx264.so.148", "x264"), false)
	agg.Record(missing("demo", "/usr/bin/demo", "libavcodec.so.57", "ffmpeg"), true)
	agg.Record(missing("other", "/usr/bin/other", "libx264.so.148", "x264"), false)

	report := agg.Report()

	assert.Contains(t, report.Packages, "demo")
	assert.NotContains(t, report.Transitive, "demo")
	assert.Contains(t, report.Transitive, "other")
}

func TestAggregation_DisjointAndCovering(t *testing.T) {
	deps := []struct {
		dep    domain.MissingDep
		direct bool
	}{
		{missing("a", "/usr/bin/a", "libone.so.1"), true},
		{missing("a", "/usr/bin/a2", "libtwo.so.2"), false},
		{missing("b", "/usr/bin/b", "libone.so.1"), false},
		{missing("c", "/usr/lib/libc3.so", "libthree.so.3"), true},
		{missing("c", "/usr/bin/c", "libthree.so.3"), true},
		{missing("d", "/usr/bin/d", "libfour.so.4"), false},
	}

	agg := domain.NewAggregation()
	for _, d := range deps {
		agg.Record(d.dep, d.direct)
	}
	report := agg.Report()

	for pkg := range report.Packages {
		assert.NotContains(t, report.Transitive, pkg, "package %s in both views", pkg)
	}
	for _, d := range deps {
		pkg := d.dep.Package.String()
		_, inDirect := report.Packages[pkg]
		_, inTransitive := report.Transitive[pkg]
		assert.True(t, inDirect || inTransitive, "tuple for %s not covered", pkg)
	}
	assert.Equal(t, []string{"/usr/lib/libc3.so", "/usr/bin/c"}, report.Libraries["libthree.so.3"]["c"])
	assert.Equal(t, domain.NewSet("b", "d"), report.Transitive)
}

func TestAggregation_MultisetKeepsDuplicates(t *testing.T) {
	agg := domain.NewAggregation()
	agg.Record(missing("demo", "/usr/bin/demo", "libfoo.so.1"), true)
	agg.Record(missing("demo", "/usr/bin/demo", "libfoo.so.1"), true)

	report := agg.Report()

	assert.Len(t, report.Libraries["libfoo.so.1"]["demo"], 2)
	assert.Len(t, report.Packages["demo"], 1)
}

func TestAggregation_Providers(t *testing.T) {
	agg := domain.NewAggregation()
	agg.Record(missing("a", "/usr/bin/a", "libfoo.so.1", "foo", "foo-git"), true)
	agg.Record(missing("b", "/usr/bin/b", "libfoo.so.1", "foo-legacy"), true)
	agg.Record(missing("c", "/usr/bin/c", "libbar.so.2", domain.UnknownProvider), true)
	agg.Record(missing("d", "/usr/bin/d", "libbaz.so.3"), true)

	report := agg.Report()

	assert.Equal(t, "foo-legacy", report.Providers["libfoo.so.1"])
	assert.NotContains(t, report.Providers, "libbar.so.2")
	assert.NotContains(t, report.Providers, "libbaz.so.3")
}

func TestReport_SortedViews(t *testing.T) {
	agg := domain.NewAggregation()
	agg.Record(missing("zeta", "/usr/bin/z", "libb.so.1"), true)
	agg.Record(missing("alpha", "/usr/bin/a", "libb.so.1"), true)
	agg.Record(missing("alpha", "/usr/bin/a", "liba.so.1"), true)

	report := agg.Report()

	assert.Equal(t, []string{"liba.so.1", "libb.so.1"}, report.SortedLibraries())
	assert.Equal(t, []string{"alpha", "zeta"}, report.SortedPackages())
	assert.Equal(t, []string{"alpha", "zeta"}, report.PackagesMissing("libb.so.1"))
}

func TestReport_Clean(t *testing.T) {
	assert.True(t, domain.NewAggregation().Report().IsClean())
}

func TestReport_JSON(t *testing.T) {
	agg := domain.NewAggregation()
	agg.Record(missing("demo", "/usr/bin/demo", "libfoo.so.1", "foo"), true)
	agg.Record(missing("other", "/usr/bin/other", "libbar.so.1"), false)

	data, err := json.Marshal(agg.Report())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"libraries": {"libfoo.so.1": {"demo": ["/usr/bin/demo"]}},
		"packages": {"demo": ["libfoo.so.1"]},
		"providers": {"libfoo.so.1": "foo"},
		"transitive": ["other"]
	}`, string(data))
}
