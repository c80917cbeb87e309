package dicts

import (
	"fmt"
	"sync"
)

// MacroFunc is the function signature for a registered macro.
//
// The dict is passed as an any (interface{}) so that macros can be
// registered once and used across any Dict[K, V] instantiation.
// Type-assert inside the macro to the concrete *Dict[YourKey, YourValue].
type MacroFunc func(dict any, args ...any) any

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry.
// If a macro with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
// Example – register a macro that keeps only even values:
//
//	dicts.RegisterMacro("evens", func(dict any, _ ...any) any {
//	    d := dict.(*dicts.Dict[string, int])
//	    return d.ValFilter(func(v int) bool { return v%2 == 0 })
//	})
//
//	d := dicts.FromMap(map[string]int{"a": 1, "b": 2})
//	res, _ := d.Macro("evens") // *Dict[string, int]{"b": 2}
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with the supplied dict and args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func CallMacro(name string, dict any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(dict, args...), nil
}

// Macro calls the named registered macro on d, forwarding args.
// This is a convenience wrapper around the package-level [CallMacro].
func (d *Dict[K, V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, d, args...)
}
