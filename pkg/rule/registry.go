package rule

import (
	"fmt"
	"maps"
	"slices"
)

// Registry maps resource names to their rules.
// It is populated once at startup and only read afterwards.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register validates r and stores it under name.
func (g *Registry) Register(name string, r Rule) error {
	if name == "" {
		return fmt.Errorf("%w: empty resource name", ErrInvalidRule)
	}
	if _, exists := g.rules[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateResource, name)
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("resource %s: %w", name, err)
	}
	g.rules[name] = r
	return nil
}

// MustRegister is like Register but panics on error.
func (g *Registry) MustRegister(name string, r Rule) {
	if err := g.Register(name, r); err != nil {
		panic(err)
	}
}

// Get returns the rule registered under name.
func (g *Registry) Get(name string) (Rule, error) {
	r, ok := g.rules[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	return r, nil
}

// Names returns the registered resource names, sorted.
func (g *Registry) Names() []string {
	return slices.Sorted(maps.Keys(g.rules))
}

// Len returns the number of registered resources.
func (g *Registry) Len() int {
	return len(g.rules)
}
