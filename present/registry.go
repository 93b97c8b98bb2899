// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	// ErrNoBackend is returned when no registered backend is available.
	ErrNoBackend = errors.New("present: no presentation backend available")

	// ErrUnknownBackend is returned for a name that was never registered.
	ErrUnknownBackend = errors.New("present: unknown backend")

	// ErrSurfaceClosed is returned by operations on a closed surface.
	ErrSurfaceClosed = errors.New("present: surface closed")
)

// Factory creates a new Surface with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Surface, error)

// RegistryEntry represents a registered presentation backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: windowed GPU backends
	//   - 20: terminal backends
	//   - 10: raw framebuffer backends
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend is usable on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered presentation backends.
//
// The registry lets backends live in their own packages, pulled in by
// blank imports, without the core library depending on any of them.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Open.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority
// (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// Open creates a surface using the best available backend.
func Open(opts Options) (Surface, error) {
	return globalRegistry.Open(opts)
}

// OpenByName creates a surface using a specific named backend.
func OpenByName(name string, opts Options) (Surface, error) {
	return globalRegistry.OpenByName(name, opts)
}

// Register adds a backend to the registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// List returns all registered backend names sorted by priority
// (highest first).
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.sorted()))
	for _, e := range r.sorted() {
		names = append(names, e.Name)
	}
	return names
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	var names []string
	for _, e := range r.sorted() {
		if e.Available() {
			names = append(names, e.Name)
		}
	}
	return names
}

// Open creates a surface using the best available backend, trying
// backends in priority order until one opens successfully.
func (r *Registry) Open(opts Options) (Surface, error) {
	var firstErr error
	for _, e := range r.sorted() {
		if !e.Available() {
			continue
		}
		s, err := e.Factory(opts)
		if err == nil {
			return s, nil
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("present: backend %q: %w", e.Name, err)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, ErrNoBackend
}

// OpenByName creates a surface using a specific named backend.
func (r *Registry) OpenByName(name string, opts Options) (Surface, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if !e.Available() {
		return nil, fmt.Errorf("present: backend %q not available on this system", name)
	}
	return e.Factory(opts)
}

// sorted returns the entries ordered by priority, highest first, name
// as tiebreaker for deterministic selection.
func (r *Registry) sorted() []*RegistryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
