package dicts

import "fmt"

// Entry holds one key/value pair of an associative container.
// It is the element type consumed and produced by [ItemMap], [ItemFilter],
// [Entries] and [FromEntries].
//
// Portability note: in Python this maps to a (key, value) 2-tuple; in
// TypeScript to [K, V]; in Rust to (K, V).
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// Entries returns the pairs of d as a slice of entries, in unspecified order.
func Entries[M ~map[K]V, K comparable, V any](d M) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(d))
	for k, v := range d {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// FromEntries builds a map from a slice of entries.
// When entries share a key, the later entry wins.
func FromEntries[M ~map[K]V, K comparable, V any](entries []Entry[K, V], factory ...func() M) M {
	out := emptyLike(len(entries), factory)
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}
