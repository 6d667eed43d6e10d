package locator

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/config"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/logging"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

// DefaultHint is printed when the primary artifact is not installed and
// nothing else could be loaded either.
const DefaultHint = "Try rebuilding nodem with 'make plugin'."

// Loader makes one attempt at producing a driver module.
type Loader func() (mumps.Module, error)

// Candidate is a named Loader.
type Candidate struct {
	Name string
	Load Loader
}

// Locator tries its candidates in order and hands out the first module
// that loads.
type Locator struct {
	candidates []Candidate
	streams    logging.Streams
	hint       string
}

// Option configures a Locator.
type Option func(*Locator)

// WithStreams sets where failures and hints are written.
func WithStreams(s logging.Streams) Option {
	return func(l *Locator) {
		l.streams = s
	}
}

// WithHint replaces DefaultHint.
func WithHint(hint string) Option {
	return func(l *Locator) {
		l.hint = hint
	}
}

// New creates a locator over candidates. Diagnostics are discarded unless
// WithStreams is given.
func New(candidates []Candidate, opts ...Option) *Locator {
	l := &Locator{
		candidates: candidates,
		streams:    logging.Discard(),
		hint:       DefaultHint,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Default creates the standard two-candidate locator: the release plugin,
// then the module registered in-process under the fallback name.
func Default(cfg *config.NodemConfig, streams logging.Streams) *Locator {
	return New([]Candidate{
		{Name: "release", Load: PluginLoader(cfg.ReleasePath, cfg.ReleaseSymbol)},
		{Name: "fallback", Load: RegistryLoader(mumps.DefaultRegistry, cfg.Fallback)},
	}, WithStreams(streams))
}

// Candidates returns the candidate names in the order they are tried.
func (l *Locator) Candidates() []string {
	names := make([]string, 0, len(l.candidates))
	for _, c := range l.candidates {
		names = append(names, c.Name)
	}
	return names
}

// Resolve returns the module of the first candidate that loads, exactly as
// the loader returned it. Each candidate is tried once.
//
// When every candidate fails, the last failure is written to the error
// stream with its stack trace and, if the first candidate's artifact was
// missing, the hint is written to the info stream. The returned error is a
// *ResolveError.
func (l *Locator) Resolve() (mumps.Module, error) {
	_, m, err := l.ResolveNamed()
	return m, err
}

// ResolveNamed is Resolve, also reporting which candidate won.
func (l *Locator) ResolveNamed() (string, mumps.Module, error) {
	if len(l.candidates) == 0 {
		return "", nil, ErrNoCandidates
	}

	rerr := &ResolveError{Attempts: make([]Attempt, 0, len(l.candidates))}
	for _, c := range l.candidates {
		m, err := c.Load()
		if err == nil {
			return c.Name, m, nil
		}
		rerr.Attempts = append(rerr.Attempts, Attempt{Candidate: c.Name, Err: withStack(err)})
	}

	l.report(rerr)
	return "", nil, rerr
}

func (l *Locator) report(rerr *ResolveError) {
	l.streams.Err.Error(fmt.Sprintf("%+v", rerr.Fallback()))
	// Classified on the first failure, reported only after the last one
	if rerr.NotInstalled() {
		l.streams.Info.Info(l.hint)
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// withStack makes sure a failure can be printed with a trace even when the
// loader returned a plain error.
func withStack(err error) error {
	var st stackTracer
	if errors.As(err, &st) {
		return err
	}
	return errors.WithStack(err)
}
