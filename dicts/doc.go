// Package dicts provides standalone, framework-agnostic pure functions over
// Go maps, inspired by the dictionary toolz of PyToolz/cytoolz and Clojure's
// assoc/dissoc family.
//
// # Immutability
//
// No function in this package ever mutates its input. Every transformation
// builds and returns a new container, which makes the functions safe to use
// on maps shared across goroutines (as long as nothing else writes to them)
// and avoids aliasing bugs in pipelines.
//
// # Generic map helpers
//
// The flat helpers are generic over any named or unnamed map type
// (M ~map[K]V), and by default the output mirrors the concrete type of the
// input:
//
//	m := dicts.Assoc(map[string]int{"a": 1}, "b", 2)  // → {"a": 1, "b": 2}
//	m  = dicts.Dissoc(m, "a")                         // → {"b": 2}
//	u := dicts.Merge(m, map[string]int{"c": 3})       // → {"b": 2, "c": 3}
//
// Each helper accepts an optional trailing factory argument that constructs
// the output container instead, for callers that want a particular named map
// type or a pre-sized container:
//
//	type Env map[string]string
//	e := dicts.Assoc(Env{}, "HOME", "/root", func() Env { return make(Env, 8) })
//
// # Nested access
//
// Functions in this package also read and update values inside heterogeneous
// nested structures (map[any]any, map[string]any and []any levels) addressed
// by a key path — an ordered []any of keys and integer indices:
//
//	tree := map[any]any{"a": map[any]any{"b": []any{10, 20}}}
//	dicts.GetIn([]any{"a", "b", 1}, tree)        // → 20
//	dicts.AssocIn(tree, []any{"a", "c"}, "new")  // tree itself is unchanged
//
// # Fluent wrapper
//
// [Dict] wraps a map in an immutable, chainable API mirroring the flat
// helpers:
//
//	d := dicts.FromMap(map[string]int{"a": 1, "b": 2}).
//	    Assoc("c", 3).
//	    ValFilter(func(v int) bool { return v > 1 })
//
// # Portability
//
// All helpers follow the map/filter/merge pattern of PyToolz's dicttoolz and
// translate directly to other languages without Go-specific idioms.
package dicts
