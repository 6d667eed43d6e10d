package locator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrArtifactNotFound classifies a load that failed because the
	// artifact is not installed, as opposed to one that is present but
	// broken.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrSymbolType is returned when a plugin exports the module symbol
	// with a type that is not a mumps.Module.
	ErrSymbolType = errors.New("symbol is not a driver module")

	// ErrNoCandidates is returned by a locator with nothing to try.
	ErrNoCandidates = errors.New("no candidates to load")
)

// Attempt is one failed candidate load.
type Attempt struct {
	Candidate string
	Err       error
}

// ResolveError is returned when every candidate failed. It unwraps to the
// error of each attempt.
type ResolveError struct {
	Attempts []Attempt
}

func (e *ResolveError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Candidate, a.Err))
	}
	return "no driver could be loaded (" + strings.Join(parts, "; ") + ")"
}

func (e *ResolveError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Primary returns the error of the first candidate.
func (e *ResolveError) Primary() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[0].Err
}

// Fallback returns the error of the last candidate.
func (e *ResolveError) Fallback() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1].Err
}

// NotInstalled reports whether the first candidate failed because its
// artifact is missing.
func (e *ResolveError) NotInstalled() bool {
	return errors.Is(e.Primary(), ErrArtifactNotFound)
}
