package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/muesli/termenv"
	"go.trai.ch/pacaudit/internal/adapters/report"
	"go.trai.ch/pacaudit/internal/app"
	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/pacaudit/internal/core/ports/mocks"
	"go.trai.ch/pacaudit/internal/engine/orphan"
	"go.trai.ch/pacaudit/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader    *mocks.MockConfigLoader
	packages  *mocks.MockPackageManager
	services  *mocks.MockServiceLinkScanner
	progress  *mocks.MockProgress
	reporter  *mocks.MockReporter
	logger    *mocks.MockLogger
	inspector *mocks.MockLinkInspector
	artifacts *mocks.MockArtifactFilter
}

func newProvider(t *testing.T) (ComponentProvider, testMocks) {
	t.Helper()
	return newProviderWithReporter(t, nil)
}

// newProviderWithReporter uses reporter instead of the mock when it is non-nil.
func newProviderWithReporter(t *testing.T, reporter ports.Reporter) (ComponentProvider, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		packages:  mocks.NewMockPackageManager(ctrl),
		services:  mocks.NewMockServiceLinkScanner(ctrl),
		progress:  mocks.NewMockProgress(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		inspector: mocks.NewMockLinkInspector(ctrl),
		artifacts: mocks.NewMockArtifactFilter(ctrl),
	}
	resolver := mocks.NewMockPathResolver(ctrl)
	resolver.EXPECT().Glob(gomock.Any()).Return(nil, nil).AnyTimes()
	if reporter == nil {
		reporter = m.reporter
	}

	application := app.New(
		m.loader,
		m.packages,
		m.services,
		pipeline.NewScanner(m.packages, m.artifacts, m.inspector, m.progress, m.logger),
		pipeline.NewClassifier(m.inspector, reporter),
		orphan.NewInterpreterCheck(m.packages, resolver, m.logger),
		m.progress,
		reporter,
		mocks.NewMockReportStore(ctrl),
		m.logger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(application, m.logger), func() {}, nil
	}
	return provider, m
}

// TestRun_Success verifies that a clean audit exits with 0.
func TestRun_Success(t *testing.T) {
	provider, m := newProvider(t)

	m.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	m.packages.EXPECT().ForeignPackages(gomock.Any()).Return(nil, nil)
	m.packages.EXPECT().Version(gomock.Any(), "python").Return("3.12.1-1", nil)
	m.services.EXPECT().EnabledLinks(gomock.Any()).Return(nil, nil)
	m.progress.EXPECT().Start(0)
	m.progress.EXPECT().Finish()
	m.reporter.EXPECT().Summary(gomock.Any(), false)
	m.reporter.EXPECT().Interpreter(gomock.Any())
	m.reporter.EXPECT().ServiceLinks(gomock.Any())

	exitCode := run(context.Background(), nil, io.Discard, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_Version verifies that the version command never starts an audit.
func TestRun_Version(t *testing.T) {
	provider, _ := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "pacaudit version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), nil, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_EnumerationError verifies that a failed package enumeration exits with 1.
func TestRun_EnumerationError(t *testing.T) {
	provider, m := newProvider(t)

	m.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	m.packages.EXPECT().ForeignPackages(gomock.Any()).Return(nil, errors.New("pacman not found"))
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), nil, io.Discard, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ConfigError verifies that an invalid configuration exits with 1.
func TestRun_ConfigError(t *testing.T) {
	provider, m := newProvider(t)

	m.loader.EXPECT().Load("broken.yaml").Return(nil, domain.ErrConfigInvalid)
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"-c", "broken.yaml"}, io.Discard, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Verbose verifies that -v runs the audit and prints the map dump.
func TestRun_Verbose(t *testing.T) {
	out := new(bytes.Buffer)
	provider, m := newProviderWithReporter(t, report.NewReporter(out, termenv.Ascii))

	cfg := domain.DefaultConfig()
	cfg.UnitDirs = nil
	cfg.Workers = 1

	m.loader.EXPECT().Load("").Return(cfg, nil)
	m.packages.EXPECT().ForeignPackages(gomock.Any()).Return([]string{"demo"}, nil)
	m.packages.EXPECT().Version(gomock.Any(), "python").Return("3.12.1-1", nil)
	m.packages.EXPECT().Files(gomock.Any(), "demo").Return([]string{"/usr/bin/demo"}, nil)
	m.packages.EXPECT().Owners(gomock.Any(), "libavcodec.so").Return([]string{"ffmpeg"}, nil)
	m.services.EXPECT().EnabledLinks(gomock.Any()).Return(nil, nil)
	m.artifacts.EXPECT().Filter(gomock.Any()).DoAndReturn(func(paths []string) []string {
		return paths
	})
	m.inspector.EXPECT().MissingLibraries(gomock.Any(), "/usr/bin/demo").Return([]string{"libavcodec.so.57"}, nil)
	m.inspector.EXPECT().NeededLibraries(gomock.Any(), "/usr/bin/demo").Return([]string{"libavcodec.so.57"}, nil)
	m.progress.EXPECT().Start(1)
	m.progress.EXPECT().Inc("demo")
	m.progress.EXPECT().Finish()

	exitCode := run(context.Background(), []string{"-v"}, io.Discard, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)

	text := out.String()
	assert.Contains(t, text, "package demo misses libavcodec.so.57 from ffmpeg")
	assert.Contains(t, text, "(domain.LibMap)")
	assert.Contains(t, text, "(domain.PacMap)")
}
