package biome

import (
	"errors"
	"fmt"
)

// MaxID is the exclusive upper bound of identifiers a Registry can hold.
const MaxID = 256

// ErrInvalidID is matched by every error returned for an identifier that is not registered.
var ErrInvalidID = errors.New("invalid biome id")

// UnknownIDError is returned by Registry.Lookup for identifiers without a descriptor.
type UnknownIDError struct {
	ID ID
}

// Error ...
func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("invalid biome id %d", e.ID)
}

// Is makes errors.Is(err, ErrInvalidID) hold.
func (e *UnknownIDError) Is(target error) bool {
	return target == ErrInvalidID
}

// Registry maps identifiers to descriptors. It is a flat table and is immutable once created, so it may be
// shared freely between goroutines and resolvers.
type Registry struct {
	table  [MaxID]Descriptor
	ok     [MaxID]bool
	byName map[string]ID
}

// NewRegistry creates a Registry holding the descriptors passed. Identifiers must be unique and lie in
// [0, MaxID).
func NewRegistry(ds ...Descriptor) (*Registry, error) {
	r := &Registry{byName: make(map[string]ID, len(ds))}
	for _, d := range ds {
		if d.ID < 0 || d.ID >= MaxID {
			return nil, fmt.Errorf("register %v: id %d out of range [0, %d)", d.Name, d.ID, MaxID)
		}
		if r.ok[d.ID] {
			return nil, fmt.Errorf("register %v: id %d already taken by %v", d.Name, d.ID, r.table[d.ID].Name)
		}
		r.table[d.ID], r.ok[d.ID] = d, true
		if d.Name != "" {
			r.byName[d.Name] = d.ID
		}
	}
	return r, nil
}

// Lookup returns the descriptor registered for id. An error matching ErrInvalidID is returned if no such
// descriptor exists.
func (r *Registry) Lookup(id ID) (Descriptor, error) {
	if d, ok := r.ByID(id); ok {
		return d, nil
	}
	return Descriptor{}, &UnknownIDError{ID: id}
}

// ByID returns the descriptor registered for id.
func (r *Registry) ByID(id ID) (Descriptor, bool) {
	if id < 0 || id >= MaxID || !r.ok[id] {
		return Descriptor{}, false
	}
	return r.table[id], true
}

// ByName returns the descriptor registered under the snake case name passed.
func (r *Registry) ByName(name string) (Descriptor, bool) {
	id, ok := r.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.table[id], true
}

// All returns every registered descriptor ordered by identifier.
func (r *Registry) All() []Descriptor {
	all := make([]Descriptor, 0, len(r.byName))
	for id, ok := range r.ok {
		if ok {
			all = append(all, r.table[id])
		}
	}
	return all
}
