package dicts

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Key-path access for heterogeneous nested structures
//
// These functions read and update values inside nested structures whose
// levels are map[any]any, map[string]any or []any, addressed by a key path:
// an ordered []any of map keys and integer sequence indices. Negative
// indices count from the end of a sequence.
//
// Example tree:
//
//	tree := map[any]any{
//	    "users": []any{
//	        map[string]any{"name": "Alice", "age": 30},
//	        map[string]any{"name": "Bob"},
//	    },
//	}
//
//	GetIn([]any{"users", 0, "name"}, tree)        // → "Alice"
//	GetIn([]any{"users", 1, "age"}, tree, -1)     // → -1
//	AssocIn(tree, []any{"users", 1, "age"}, 25)   // tree is unchanged
// ─────────────────────────────────────────────────────────────────────────────

// GetIn resolves path through nested mappings and sequences and returns the
// addressed value. Every resolution failure — missing key, index out of
// range, non-container level, segment of the wrong type — is absorbed and
// replaced by def[0] (or nil when no default is given). No error escapes.
//
//	GetIn([]any{"a", "b"}, map[any]any{"a": map[any]any{"b": 5}}) // → 5
//	GetIn([]any{"a", "z"}, map[any]any{"a": map[any]any{}})       // → nil
func GetIn(path []any, coll any, def ...any) any {
	v, err := GetInStrict(path, coll)
	if err != nil {
		if len(def) > 0 {
			return def[0]
		}
		return nil
	}
	return v
}

// GetInStrict resolves path like [GetIn] but reports resolution failures
// instead of absorbing them. The error wraps [ErrKeyNotFound] for a mapping
// miss, [ErrIndexOutOfRange] for a sequence miss and [ErrNotIndexable] for a
// level that the segment cannot index, and names the segment that failed.
func GetInStrict(path []any, coll any) (any, error) {
	cur := coll
	for _, seg := range path {
		next, err := indexInto(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// indexInto resolves a single path segment against a single level.
func indexInto(level, seg any) (any, error) {
	switch c := level.(type) {
	case map[any]any:
		v, ok := c[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, seg)
		}
		return v, nil
	case map[string]any:
		key, ok := seg.(string)
		if !ok {
			return nil, fmt.Errorf("%w: segment %v on string-keyed mapping", ErrNotIndexable, seg)
		}
		v, ok := c[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		return v, nil
	case []any:
		i, ok := asIndex(seg)
		if !ok {
			return nil, fmt.Errorf("%w: segment %v on sequence", ErrNotIndexable, seg)
		}
		if i < 0 {
			i += len(c)
		}
		if i < 0 || i >= len(c) {
			return nil, fmt.Errorf("%w: %v", ErrIndexOutOfRange, seg)
		}
		return c[i], nil
	default:
		return nil, fmt.Errorf("%w: segment %v on %T", ErrNotIndexable, seg, level)
	}
}

// asIndex converts a path segment to a sequence index.
func asIndex(seg any) (int, bool) {
	switch i := seg.(type) {
	case int:
		return i, true
	case int8:
		return int(i), true
	case int16:
		return int(i), true
	case int32:
		return int(i), true
	case int64:
		return int(i), true
	}
	return 0, false
}

// AssocIn returns a copy of d with the nested location addressed by path set
// to value. Containers along the path are copied; missing levels are created
// through the factory (default map[any]any); branches not on the path are
// shared with the input. d is never mutated.
//
//	AssocIn(map[any]any{}, []any{"a", "b"}, 1)
//	// → {"a": {"b": 1}}
func AssocIn(d map[any]any, path []any, value any, factory ...func() map[any]any) map[any]any {
	return UpdateIn(d, path, func(any) any { return value }, nil, factory...)
}

// UpdateIn returns a copy of d with the nested location addressed by path
// set to fn(old) when the full path already resolves to old, or to fn(def)
// at a freshly created innermost location when it does not. Missing levels
// are created through the factory; existing mapping and sequence levels are
// copied mirroring their own concrete type. d is never mutated.
//
// Two repairs are applied to levels the path cannot address, mirroring the
// create-on-write rule for missing levels: a non-container value (or a
// sequence whose index is out of range or not an integer) is replaced by a
// fresh factory container, and a string-keyed mapping addressed by a
// non-string key is copied into a map[any]any so the pair can be set.
//
// An empty path returns a plain copy of d.
//
//	UpdateIn(map[any]any{}, []any{1, 2, 3}, toStr, "bar")
//	// → {1: {2: {3: "bar"}}}
func UpdateIn(d map[any]any, path []any, fn func(any) any, def any, factory ...func() map[any]any) map[any]any {
	fac := func() map[any]any { return map[any]any{} }
	if len(factory) > 0 {
		fac = factory[0]
	}
	if len(path) == 0 {
		out := fac()
		for k, v := range d {
			out[k] = v
		}
		return out
	}
	return updateNode(d, path, fn, def, fac).(map[any]any)
}

// updateNode rebuilds one level of the tree along path and returns the
// replacement level.
func updateNode(node any, path []any, fn func(any) any, def any, fac func() map[any]any) any {
	seg := path[0]

	if s, ok := node.([]any); ok {
		if i, isInt := asIndex(seg); isInt {
			if i < 0 {
				i += len(s)
			}
			if i >= 0 && i < len(s) {
				out := make([]any, len(s))
				copy(out, s)
				out[i] = stepInto(s[i], true, path, fn, def, fac)
				return out
			}
		}
		node = nil // the sequence cannot hold the segment; rebuild as a mapping
	}

	if m, ok := node.(map[string]any); ok {
		if key, isStr := seg.(string); isStr {
			out := make(map[string]any, len(m)+1)
			for k, v := range m {
				out[k] = v
			}
			old, found := m[key]
			out[key] = stepInto(old, found, path, fn, def, fac)
			return out
		}
		promoted := make(map[any]any, len(m)+1)
		for k, v := range m {
			promoted[k] = v
		}
		node = promoted
	}

	var m map[any]any
	if mm, ok := node.(map[any]any); ok {
		m = mm
	}
	out := fac()
	for k, v := range m {
		out[k] = v
	}
	old, found := m[seg]
	out[seg] = stepInto(old, found, path, fn, def, fac)
	return out
}

// stepInto computes the replacement value for the location addressed by
// path[0], recursing when more segments remain.
func stepInto(old any, found bool, path []any, fn func(any) any, def any, fac func() map[any]any) any {
	if len(path) == 1 {
		if found {
			return fn(old)
		}
		return fn(def)
	}
	if !found {
		old = nil
	}
	return updateNode(old, path[1:], fn, def, fac)
}
