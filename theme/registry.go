// SPDX-License-Identifier: EPL-2.0

package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Ref identifies a theme for resolution: a concrete Theme value, a
// registered Name, or nil for the registry's current default.
type Ref interface {
	themeRef()
}

// Name refers to a registered theme by its registry key.
type Name string

func (Name) themeRef() {}

// Registry is a named theme collection with a switchable default.
type Registry struct {
	themes      map[string]Theme
	defaultName string

	mtx *sync.Mutex
}

// NewRegistry returns an empty registry whose default name is "dark".
func NewRegistry() *Registry {
	return &Registry{
		themes:      make(map[string]Theme),
		defaultName: "dark",
		mtx:         &sync.Mutex{},
	}
}

// Register stores a theme under name, replacing any previous entry.
func (r *Registry) Register(name string, t Theme) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.themes[name] = t
}

// Get looks up a registered theme by name.  The error lists the
// registered names when the lookup fails.
func (r *Registry) Get(name string) (Theme, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.get(name)
}

func (r *Registry) get(name string) (Theme, error) {
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q (available: %s)",
			ErrUnknownTheme, name, strings.Join(r.names(), ", "))
	}
	return t, nil
}

// Contains reports whether name is registered.
func (r *Registry) Contains(name string) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	_, ok := r.themes[name]
	return ok
}

// Names returns the registered theme names, sorted.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.names()
}

func (r *Registry) names() []string {
	out := make([]string, 0, len(r.themes))
	for name := range r.themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DefaultName returns the name of the current default theme.
func (r *Registry) DefaultName() string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.defaultName
}

// Enable sets the default theme by name.  Enabling an unregistered name
// is an error.
func (r *Registry) Enable(name string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.themes[name]; !ok {
		return fmt.Errorf("cannot enable %w %q (available: %s)",
			ErrUnknownTheme, name, strings.Join(r.names(), ", "))
	}
	r.defaultName = name
	return nil
}

// Resolve turns a Ref into a concrete Theme:
//
//   - nil  → the current default theme, read at call time
//   - Name → looked up in the registry
//   - Theme → returned as-is
func (r *Registry) Resolve(ref Ref) (Theme, error) {
	switch v := ref.(type) {
	case nil:
		r.mtx.Lock()
		defer r.mtx.Unlock()
		return r.get(r.defaultName)
	case Name:
		return r.Get(string(v))
	case Theme:
		return v, nil
	default:
		// Ref is a sealed interface; only the cases above exist.
		return Theme{}, fmt.Errorf("%w: unsupported theme reference %T", ErrUnknownTheme, ref)
	}
}

// shared is the process-wide registry, populated with the built-ins at
// package load with "dark" enabled.
var shared = func() *Registry {
	r := NewRegistry()
	r.Register("dark", Dark)
	r.Register("light", Light)
	return r
}()

// DefaultRegistry returns the process-wide registry used when no
// registry is injected explicitly.
func DefaultRegistry() *Registry { return shared }

// Register stores a theme on the process-wide registry.
func Register(name string, t Theme) { shared.Register(name, t) }

// Enable sets the process-wide default theme by name.
func Enable(name string) error { return shared.Enable(name) }

// Resolve resolves a Ref against the process-wide registry.
func Resolve(ref Ref) (Theme, error) { return shared.Resolve(ref) }
