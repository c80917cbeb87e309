package dicts

// ─────────────────────────────────────────────────────────────────────────────
// Assoc / Dissoc / Merge
// ─────────────────────────────────────────────────────────────────────────────

// emptyLike returns the output container for an operation expecting about
// size entries: factory[0]() when a factory was supplied, else a fresh map
// of the input's concrete type.
func emptyLike[M ~map[K]V, K comparable, V any](size int, factory []func() M) M {
	if len(factory) > 0 {
		return factory[0]()
	}
	return make(M, size)
}

// Assoc returns a copy of d with key set to value — inserted when absent,
// overwritten when present. d is never mutated.
//
//	dicts.Assoc(map[string]int{"x": 1}, "x", 2) // → {"x": 2}
//	dicts.Assoc(map[string]int{"x": 1}, "y", 3) // → {"x": 1, "y": 3}
func Assoc[M ~map[K]V, K comparable, V any](d M, key K, value V, factory ...func() M) M {
	out := emptyLike(len(d)+1, factory)
	for k, v := range d {
		out[k] = v
	}
	out[key] = value
	return out
}

// Dissoc returns a copy of d with every listed key removed.
// Absent keys are silently ignored; duplicate key arguments are harmless.
//
//	dicts.Dissoc(map[string]int{"x": 1, "y": 2}, "y", "z") // → {"x": 1}
func Dissoc[M ~map[K]V, K comparable, V any](d M, keys ...K) M {
	return DissocInto(nil, d, keys...)
}

// DissocInto is [Dissoc] with an explicit output factory.
// A nil factory behaves like Dissoc.
func DissocInto[M ~map[K]V, K comparable, V any](factory func() M, d M, keys ...K) M {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	var out M
	if factory != nil {
		out = factory()
	} else {
		out = make(M, len(d))
	}
	for k, v := range d {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Merge returns the union of all input maps. For keys present in more than
// one input, the value from the later argument wins. With no arguments it
// returns an empty, non-nil map (instantiate explicitly: Merge[map[K]V]()).
// No input is mutated.
//
//	dicts.Merge(map[int]string{1: "one"}, map[int]string{2: "two"})
//	// → {1: "one", 2: "two"}
func Merge[M ~map[K]V, K comparable, V any](ms ...M) M {
	return MergeInto[M](nil, ms...)
}

// MergeInto is [Merge] with an explicit output factory.
// A nil factory behaves like Merge.
func MergeInto[M ~map[K]V, K comparable, V any](factory func() M, ms ...M) M {
	size := 0
	for _, m := range ms {
		size += len(m)
	}
	var out M
	if factory != nil {
		out = factory()
	} else {
		out = make(M, size)
	}
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// MergeWith merges the input maps, resolving key collisions through combine:
// for every key appearing in any input, the values mapped to it are collected
// across the inputs in argument order and the result key is set to
// combine(values). Keys present in a single input still route through
// combine with a one-element slice.
//
//	sum := func(vs []int) int { t := 0; for _, v := range vs { t += v }; return t }
//	dicts.MergeWith(sum, map[int]int{1: 1, 2: 2}, map[int]int{1: 10, 2: 20})
//	// → {1: 11, 2: 22}
func MergeWith[M ~map[K]V, K comparable, V any](combine func([]V) V, ms ...M) M {
	return MergeWithInto[M](nil, combine, ms...)
}

// MergeWithInto is [MergeWith] with an explicit output factory.
// A nil factory behaves like MergeWith.
func MergeWithInto[M ~map[K]V, K comparable, V any](factory func() M, combine func([]V) V, ms ...M) M {
	size := 0
	for _, m := range ms {
		size += len(m)
	}
	collected := make(map[K][]V, size)
	for _, m := range ms {
		for k, v := range m {
			collected[k] = append(collected[k], v)
		}
	}
	var out M
	if factory != nil {
		out = factory()
	} else {
		out = make(M, len(collected))
	}
	for k, vs := range collected {
		out[k] = combine(vs)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversions
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of d in unspecified order.
func Keys[M ~map[K]V, K comparable, V any](d M) []K {
	out := make([]K, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	return out
}

// Values returns the values of d in unspecified order.
func Values[M ~map[K]V, K comparable, V any](d M) []V {
	out := make([]V, 0, len(d))
	for _, v := range d {
		out = append(out, v)
	}
	return out
}
