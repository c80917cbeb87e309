package dicts

// ─────────────────────────────────────────────────────────────────────────────
// Key / value / item transformation
// ─────────────────────────────────────────────────────────────────────────────

// KeyMap returns a copy of d with every key replaced by fn(key).
// When two keys map to the same output key, the one processed later wins;
// map iteration order decides which that is, so a colliding fn makes the
// surviving value unspecified (but never an error).
//
//	dicts.KeyMap(strings.ToUpper, map[string]int{"a": 1}) // → {"A": 1}
func KeyMap[M ~map[K]V, K comparable, V any](fn func(K) K, d M, factory ...func() M) M {
	out := emptyLike(len(d), factory)
	for k, v := range d {
		out[fn(k)] = v
	}
	return out
}

// ValMap returns a map with the same key set as d and every value replaced
// by fn(value). The value type may change, so the output is a plain
// map[K]W; supply a factory to choose a different concrete type.
//
//	dicts.ValMap(strconv.Itoa, map[string]int{"a": 1}) // → {"a": "1"}
func ValMap[M ~map[K]V, K comparable, V, W any](fn func(V) W, d M, factory ...func() map[K]W) map[K]W {
	out := emptyLike(len(d), factory)
	for k, v := range d {
		out[k] = fn(v)
	}
	return out
}

// ItemMap returns a map built by applying fn to each entry of d, producing a
// new entry. Output-key collisions follow the [KeyMap] rule: last processed
// wins, no error.
//
//	swap := func(e dicts.Entry[string, string]) dicts.Entry[string, string] {
//	    return dicts.Entry[string, string]{Key: e.Value, Value: e.Key}
//	}
//	dicts.ItemMap(swap, map[string]string{"a": "x"}) // → {"x": "a"}
func ItemMap[M ~map[K]V, K comparable, V any](fn func(Entry[K, V]) Entry[K, V], d M, factory ...func() M) M {
	out := emptyLike(len(d), factory)
	for k, v := range d {
		e := fn(Entry[K, V]{Key: k, Value: v})
		out[e.Key] = e.Value
	}
	return out
}

// KeyFilter returns a copy of d keeping only the pairs whose key satisfies
// pred.
//
//	dicts.KeyFilter(func(k int) bool { return k%2 == 0 },
//	    map[int]string{1: "a", 2: "b"}) // → {2: "b"}
func KeyFilter[M ~map[K]V, K comparable, V any](pred func(K) bool, d M, factory ...func() M) M {
	out := emptyLike(len(d), factory)
	for k, v := range d {
		if pred(k) {
			out[k] = v
		}
	}
	return out
}

// ValFilter returns a copy of d keeping only the pairs whose value satisfies
// pred.
func ValFilter[M ~map[K]V, K comparable, V any](pred func(V) bool, d M, factory ...func() M) M {
	out := emptyLike(len(d), factory)
	for k, v := range d {
		if pred(v) {
			out[k] = v
		}
	}
	return out
}

// ItemFilter returns a copy of d keeping only the pairs whose entry satisfies
// pred.
//
//	dicts.ItemFilter(func(e dicts.Entry[int, int]) bool {
//	    return e.Key < e.Value
//	}, map[int]int{1: 2, 3: 0}) // → {1: 2}
func ItemFilter[M ~map[K]V, K comparable, V any](pred func(Entry[K, V]) bool, d M, factory ...func() M) M {
	out := emptyLike(len(d), factory)
	for k, v := range d {
		if pred(Entry[K, V]{Key: k, Value: v}) {
			out[k] = v
		}
	}
	return out
}

// Invert swaps the keys and values of d. When values repeat, the pair
// processed later wins (same rule as [KeyMap] collisions).
//
//	dicts.Invert(map[string]int{"a": 1, "b": 2}) // → {1: "a", 2: "b"}
func Invert[M ~map[K]V, K, V comparable](d M, factory ...func() map[V]K) map[V]K {
	out := emptyLike(len(d), factory)
	for k, v := range d {
		out[v] = k
	}
	return out
}
