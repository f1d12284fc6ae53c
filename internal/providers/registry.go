package providers

import "sort"

// Registry is an immutable name→adapter mapping built once at startup
// from the enabled providers and injected wherever lookups are needed.
// No registration happens after construction.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry indexes the given providers by Name. Later entries with a
// duplicate name replace earlier ones.
func NewRegistry(list ...Provider) *Registry {
	m := make(map[string]Provider, len(list))
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the provider for name. Callers must treat ok=false as an
// invalid-provider condition, never dereference blindly.
func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
