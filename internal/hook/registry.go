// internal/hook/registry.go
//
// Named extension points for the render pipeline.
//
// Plugins call AddFilter/AddAction once at startup; the page renderer calls
// ApplyFilters/DoAction on every render.  Callbacks run in registration
// order.
//
// Filter signature:
//
//	func(pc page.Context, push []string, slot int) ([]string, error)
//
// Action signature:
//
//	func(pc page.Context, w io.Writer) error
//
// A Registry is an explicit value owned by main; there is no package-level
// instance.
package hook

import (
	"io"
	"sync"

	"github.com/yanizio/adept-analytics/internal/page"
)

// Extension points exposed by the renderer.
const (
	// CustomVars filters the tracker push list before _trackPageview.
	CustomVars = "ga-custom-vars"
	// TrackerBeforeJS runs inside the tracker snippet, before the
	// pageview is tracked.
	TrackerBeforeJS = "ga-extra-js-before"
	// Head runs while the <head> element is rendered.
	Head = "head"
)

// Filter receives the push list and the first free slot.
type Filter func(pc page.Context, push []string, slot int) ([]string, error)

// Action writes directly into the page.
type Action func(pc page.Context, w io.Writer) error

// Registry holds every registered callback.
type Registry struct {
	mu      sync.RWMutex
	filters map[string][]Filter
	actions map[string][]Action
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		filters: map[string][]Filter{},
		actions: map[string][]Action{},
	}
}

// AddFilter appends f to the named filter chain.
func (r *Registry) AddFilter(name string, f Filter) {
	r.mu.Lock()
	r.filters[name] = append(r.filters[name], f)
	r.mu.Unlock()
}

// AddAction appends a to the named action list.
func (r *Registry) AddAction(name string, a Action) {
	r.mu.Lock()
	r.actions[name] = append(r.actions[name], a)
	r.mu.Unlock()
}

// HasFilter reports whether anything is registered under name.
func (r *Registry) HasFilter(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.filters[name]) > 0
}

// HasAction reports whether anything is registered under name.
func (r *Registry) HasAction(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions[name]) > 0
}

// ApplyFilters threads push through every filter registered under name.
// Each filter receives the same base slot; the first error stops the chain.
func (r *Registry) ApplyFilters(name string, pc page.Context, push []string, slot int) ([]string, error) {
	r.mu.RLock()
	chain := r.filters[name]
	r.mu.RUnlock()

	for _, f := range chain {
		var err error
		if push, err = f(pc, push, slot); err != nil {
			return nil, err
		}
	}
	return push, nil
}

// DoAction runs every action registered under name against w.  The first
// error stops the run.
func (r *Registry) DoAction(name string, pc page.Context, w io.Writer) error {
	r.mu.RLock()
	list := r.actions[name]
	r.mu.RUnlock()

	for _, a := range list {
		if err := a(pc, w); err != nil {
			return err
		}
	}
	return nil
}
