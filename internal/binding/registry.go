package binding

import (
	"errors"
	"sort"
)

// ErrReadOnlySlot is returned by slots that refuse assignment.
var ErrReadOnlySlot = errors.New("slot is read-only")

// Setter assigns a stored string value to one runtime slot.
type Setter func(value string) error

// ReadOnly returns a Setter that rejects every assignment with ErrReadOnlySlot.
func ReadOnly() Setter {
	return func(string) error {
		return ErrReadOnlySlot
	}
}

// Registry maps setting names to the slots they bind to.
// Names are matched exactly, including case.
type Registry struct {
	slots map[string]Setter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]Setter)}
}

// Register adds or replaces the slot for name and returns r for chaining.
func (r *Registry) Register(name string, set Setter) *Registry {
	r.slots[name] = set
	return r
}

// Lookup returns the slot registered under name.
func (r *Registry) Lookup(name string) (Setter, bool) {
	set, ok := r.slots[name]
	return set, ok
}

// Names returns the registered slot names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.slots))
	for name := range r.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
