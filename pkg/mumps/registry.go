package mumps

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotRegistered is returned by Lookup when no module carries the name.
var ErrNotRegistered = errors.New("module not registered")

// Registry holds the driver modules linked into the process.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module under name, replacing any previous one
func (r *Registry) Register(name string, m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[name] = m
}

// Lookup returns the module registered under name
func (r *Registry) Lookup(name string) (Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotRegistered)
	}
	return m, nil
}

// Installed returns the registered names in sorted order
func (r *Registry) Installed() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is where drivers register themselves from init.
var DefaultRegistry = NewRegistry()

// Register adds a module to DefaultRegistry.
func Register(name string, m Module) {
	DefaultRegistry.Register(name, m)
}
