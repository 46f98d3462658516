package feature

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Registry is an immutable lookup of feature definitions. All structural
// validation happens in NewRegistry; once built, lookups never fail in
// surprising ways and the dependency graph is guaranteed acyclic.
type Registry struct {
	defs map[string]Definition
	ids  []string // sorted, for deterministic iteration
}

// NewRegistry validates and indexes the given feature definitions.
// It rejects empty or duplicate ids, unknown required tiers, dependencies
// on undeclared features, and dependency cycles. A cyclic graph would make
// recursive access checks loop forever, so it is a construction error, not
// a runtime concern.
func NewRegistry(defs ...Definition) (*Registry, error) {
	byID := make(map[string]Definition, len(defs))

	for _, def := range defs {
		if def.ID == "" {
			return nil, errors.Join(ErrInvalidDefinition, errors.New("feature id cannot be empty"))
		}
		if _, exists := byID[def.ID]; exists {
			return nil, errors.Join(ErrDuplicateFeature, fmt.Errorf("feature %q declared twice", def.ID))
		}
		if !def.RequiredTier.Known() {
			return nil, errors.Join(ErrInvalidDefinition,
				fmt.Errorf("feature %q requires unknown tier %q", def.ID, def.RequiredTier))
		}
		def.Dependencies = slices.Clone(def.Dependencies)
		byID[def.ID] = def
	}

	for id, def := range byID {
		for _, dep := range def.Dependencies {
			if _, exists := byID[dep]; !exists {
				return nil, errors.Join(ErrUnknownDependency,
					fmt.Errorf("feature %q depends on undeclared feature %q", id, dep))
			}
		}
	}

	if cycle := findCycle(byID); cycle != nil {
		return nil, errors.Join(ErrDependencyCycle,
			fmt.Errorf("dependency cycle: %s", strings.Join(cycle, " -> ")))
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return &Registry{defs: byID, ids: ids}, nil
}

// Get returns the definition for a feature id.
func (r *Registry) Get(id string) (Definition, bool) {
	def, ok := r.defs[id]
	if !ok {
		return Definition{}, false
	}
	def.Dependencies = slices.Clone(def.Dependencies)
	return def, true
}

// IDs returns all feature ids in lexical order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.ids)
}

// List returns all definitions, optionally filtered by category.
func (r *Registry) List(categories ...Category) []Definition {
	out := make([]Definition, 0, len(r.ids))
	for _, id := range r.ids {
		def := r.defs[id]
		if len(categories) > 0 && !slices.Contains(categories, def.Category) {
			continue
		}
		def.Dependencies = slices.Clone(def.Dependencies)
		out = append(out, def)
	}
	return out
}

// findCycle runs a depth-first walk with three-state marking and returns
// the first cycle found as an id path, or nil for an acyclic graph.
func findCycle(defs map[string]Definition) []string {
	const (
		unvisited = iota
		inStack
		done
	)

	state := make(map[string]int, len(defs))
	var stack []string

	var visit func(id string) []string
	visit = func(id string) []string {
		state[id] = inStack
		stack = append(stack, id)

		for _, dep := range defs[id].Dependencies {
			switch state[dep] {
			case inStack:
				// close the loop for a readable cycle path
				start := slices.Index(stack, dep)
				cycle := slices.Clone(stack[start:])
				return append(cycle, dep)
			case unvisited:
				if cycle := visit(dep); cycle != nil {
					return cycle
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = done
		return nil
	}

	// iterate sorted for deterministic error messages
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if state[id] == unvisited {
			if cycle := visit(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
