package binding

import "fmt"

// Source is the set of stored settings a Binder reads from.
type Source interface {
	Keys() []string
	Get(key string) (string, bool)
}

// Recorder receives failures that are handled instead of returned.
type Recorder interface {
	Record(event, context string, cause error)
}

// BindingError reports a slot that rejected its stored value.
type BindingError struct {
	Key string
	Err error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("binding %q: %v", e.Key, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// Binder copies stored values into the slots of a Registry.
type Binder struct {
	registry *Registry
	recorder Recorder
}

// NewBinder creates a Binder over registry. Slot failures go to recorder.
func NewBinder(registry *Registry, recorder Recorder) *Binder {
	return &Binder{
		registry: registry,
		recorder: recorder,
	}
}

// Apply binds every key of src that has a same-named slot and returns how
// many slots accepted their value.
//
// Keys without a slot are skipped silently. A failing slot is recorded with
// its key name and does not stop the pass.
func (b *Binder) Apply(src Source) int {
	bound := 0
	for _, key := range src.Keys() {
		set, ok := b.registry.Lookup(key)
		if !ok {
			continue
		}

		value, _ := src.Get(key)
		if err := set(value); err != nil {
			b.recorder.Record("failed to apply setting: "+key, key, &BindingError{Key: key, Err: err})
			continue
		}
		bound++
	}
	return bound
}
