// Package binding copies stored settings into named runtime slots.
//
// A Registry is an explicit table from setting name to a Setter. The Binder
// walks every key of a Source and, when the registry has a slot with exactly
// the same name, hands it the stored string:
//
//	reg := binding.NewRegistry()
//	reg.Register("DEBUG", func(v string) error {
//	    debug = strings.EqualFold(v, "true")
//	    return nil
//	})
//
//	binder := binding.NewBinder(reg, recorder)
//	binder.Apply(store)
//
// Keys without a slot are skipped. A slot that rejects its value is recorded
// as a *BindingError and the pass continues with the remaining keys.
package binding
