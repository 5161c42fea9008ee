package macro

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"concatident/internal/concat"
	"concatident/internal/diag"
	"concatident/internal/tree"
)

// Expander expands one invocation. It reports its own diagnostics and returns
// false when nothing should be spliced in.
type Expander interface {
	Expand(inv *tree.Invocation, r diag.Reporter) ([]tree.Node, bool)
}

// ExpanderFunc adapts a function to Expander.
type ExpanderFunc func(inv *tree.Invocation, r diag.Reporter) ([]tree.Node, bool)

func (f ExpanderFunc) Expand(inv *tree.Invocation, r diag.Reporter) ([]tree.Node, bool) {
	return f(inv, r)
}

// Registry maps macro names to expanders. Safe for concurrent lookups.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Expander
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Expander)}
}

// Default returns a registry with concat_idents and every alias registered.
func Default(aliases ...string) (*Registry, error) {
	r := NewRegistry()
	if err := r.Register(concat.Name, concat.Expander{}); err != nil {
		return nil, err
	}
	for _, alias := range aliases {
		if err := r.Register(alias, concat.Expander{}); err != nil {
			return nil, fmt.Errorf("macro alias: %w", err)
		}
	}
	return r, nil
}

// Register binds name to e. Names must be unique.
func (r *Registry) Register(name string, e Expander) error {
	if name == "" {
		return errors.New("empty macro name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("macro %q is already registered", name)
	}
	r.byName[name] = e
	return nil
}

// Lookup returns the expander registered for name.
func (r *Registry) Lookup(name string) (Expander, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	return e, ok
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
