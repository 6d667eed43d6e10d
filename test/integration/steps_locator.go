package integration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/locator"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/logging"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps/mumpstest"
)

const fallbackName = "gtm"

// StepsContext holds state shared between step definitions
type StepsContext struct {
	dir      string
	registry *mumps.Registry

	release  *mumpstest.Module
	fallback *mumpstest.Module

	releaseLoad  locator.Loader
	fallbackLoad locator.Loader
	releaseRuns  int
	fallbackRuns int

	errOut  bytes.Buffer
	infoOut bytes.Buffer

	module mumps.Module
	err    error
}

// NewStepsContext creates a new steps context
func NewStepsContext() *StepsContext {
	return &StepsContext{
		registry: mumps.NewRegistry(),
		release:  mumpstest.NewModule("release"),
		fallback: mumpstest.NewModule("fallback"),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(s.setUp)
	sc.After(s.tearDown)

	// Given
	sc.Step(`^the release artifact is present$`, s.theReleaseArtifactIsPresent)
	sc.Step(`^the release artifact is missing$`, s.theReleaseArtifactIsMissing)
	sc.Step(`^the release artifact is broken$`, s.theReleaseArtifactIsBroken)
	sc.Step(`^the fallback driver is registered$`, s.theFallbackDriverIsRegistered)
	sc.Step(`^the fallback driver is not registered$`, s.theFallbackDriverIsNotRegistered)
	sc.Step(`^the fallback driver fails with "([^"]*)"$`, s.theFallbackDriverFailsWith)

	// When
	sc.Step(`^I resolve the driver$`, s.iResolveTheDriver)

	// Then
	sc.Step(`^the (release|fallback) driver is returned$`, s.theDriverIsReturned)
	sc.Step(`^no driver is returned$`, s.noDriverIsReturned)
	sc.Step(`^the (release|fallback) loader ran (\d+) times?$`, s.theLoaderRan)
	sc.Step(`^nothing is written to the (error|info) stream$`, s.nothingIsWrittenTo)
	sc.Step(`^the error stream contains "([^"]*)"$`, s.theErrorStreamContains)
	sc.Step(`^the error stream contains a stack trace$`, s.theErrorStreamContainsAStackTrace)
	sc.Step(`^the info stream contains the rebuild hint once$`, s.theInfoStreamContainsTheHintOnce)
}

func (s *StepsContext) setUp(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
	dir, err := os.MkdirTemp("", "nodem-locator-")
	if err != nil {
		return ctx, err
	}
	s.dir = dir
	return ctx, nil
}

func (s *StepsContext) tearDown(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
	return ctx, err
}

func (s *StepsContext) theReleaseArtifactIsPresent() error {
	s.releaseLoad = func() (mumps.Module, error) { return s.release, nil }
	return nil
}

func (s *StepsContext) theReleaseArtifactIsMissing() error {
	s.releaseLoad = locator.PluginLoader(filepath.Join(s.dir, "build", "Release", "mumps.so"), "Module")
	return nil
}

func (s *StepsContext) theReleaseArtifactIsBroken() error {
	path := filepath.Join(s.dir, "mumps.so")
	if err := os.WriteFile(path, []byte("not a shared object"), 0o644); err != nil {
		return err
	}
	s.releaseLoad = locator.PluginLoader(path, "Module")
	return nil
}

func (s *StepsContext) theFallbackDriverIsRegistered() error {
	s.registry.Register(fallbackName, s.fallback)
	s.fallbackLoad = locator.RegistryLoader(s.registry, fallbackName)
	return nil
}

func (s *StepsContext) theFallbackDriverIsNotRegistered() error {
	s.fallbackLoad = locator.RegistryLoader(s.registry, fallbackName)
	return nil
}

func (s *StepsContext) theFallbackDriverFailsWith(msg string) error {
	s.fallbackLoad = func() (mumps.Module, error) { return nil, errors.New(msg) }
	return nil
}

func (s *StepsContext) iResolveTheDriver() error {
	if s.releaseLoad == nil || s.fallbackLoad == nil {
		return fmt.Errorf("both loaders must be set up before resolving")
	}

	release, fallback := s.releaseLoad, s.fallbackLoad
	l := locator.New([]locator.Candidate{
		{Name: "release", Load: func() (mumps.Module, error) { s.releaseRuns++; return release() }},
		{Name: "fallback", Load: func() (mumps.Module, error) { s.fallbackRuns++; return fallback() }},
	}, locator.WithStreams(logging.New("nodem", &s.errOut, &s.infoOut, "info")))

	s.module, s.err = l.Resolve()
	return nil
}

func (s *StepsContext) theDriverIsReturned(which string) error {
	if s.err != nil {
		return fmt.Errorf("expected a driver, got error: %v", s.err)
	}
	want := s.release
	if which == "fallback" {
		want = s.fallback
	}
	if s.module != mumps.Module(want) {
		return fmt.Errorf("expected the %s driver, got %v", which, s.module)
	}
	return nil
}

func (s *StepsContext) noDriverIsReturned() error {
	if s.module != nil {
		return fmt.Errorf("expected no driver, got %v", s.module)
	}
	var rerr *locator.ResolveError
	if !errors.As(s.err, &rerr) {
		return fmt.Errorf("expected *locator.ResolveError, got %T: %v", s.err, s.err)
	}
	return nil
}

func (s *StepsContext) theLoaderRan(which string, times int) error {
	runs := s.releaseRuns
	if which == "fallback" {
		runs = s.fallbackRuns
	}
	if runs != times {
		return fmt.Errorf("expected the %s loader to run %d times, ran %d", which, times, runs)
	}
	return nil
}

func (s *StepsContext) nothingIsWrittenTo(stream string) error {
	out := s.errOut.String()
	if stream == "info" {
		out = s.infoOut.String()
	}
	if out != "" {
		return fmt.Errorf("expected empty %s stream, got %q", stream, out)
	}
	return nil
}

func (s *StepsContext) theErrorStreamContains(text string) error {
	if !strings.Contains(s.errOut.String(), text) {
		return fmt.Errorf("expected error stream to contain %q, got %q", text, s.errOut.String())
	}
	return nil
}

func (s *StepsContext) theErrorStreamContainsAStackTrace() error {
	if !strings.Contains(s.errOut.String(), ".go:") {
		return fmt.Errorf("expected a stack trace in %q", s.errOut.String())
	}
	return nil
}

func (s *StepsContext) theInfoStreamContainsTheHintOnce() error {
	if n := strings.Count(s.infoOut.String(), locator.DefaultHint); n != 1 {
		return fmt.Errorf("expected the hint once on the info stream, found %d times in %q", n, s.infoOut.String())
	}
	return nil
}
