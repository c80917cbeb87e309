package dicts

import (
	"encoding/json"
	"fmt"
)

// Dict is a generic, immutable-by-default wrapper around a map[K]V.
//
// Every method that transforms the dict returns a *new* Dict, leaving the
// original unchanged. This design is goroutine-safe for reads (multiple
// goroutines may read the same dict concurrently) and avoids accidental
// aliasing bugs in pipelines.
//
// # Creating a dict
//
//	d := dicts.New(dicts.Entry[string, int]{Key: "a", Value: 1})
//	d := dicts.FromMap(map[string]int{"a": 1, "b": 2})
//	d := dicts.Empty[string, int]()
//
// # Method chaining
//
//	result := dicts.FromMap(map[string]int{"a": 1, "b": 2, "c": 3}).
//	    Assoc("d", 4).
//	    ValFilter(func(v int) bool { return v%2 == 0 }).
//	    Dissoc("b")
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the key or value type are the package-level
// functions ([ValMap], [Invert], …) applied to [Dict.ToMap]:
//
//	labels := dicts.ValMap(strconv.Itoa, d.ToMap())
type Dict[K comparable, V any] struct {
	items map[K]V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Dict from a variadic list of entries.
// When entries share a key, the later entry wins.
func New[K comparable, V any](entries ...Entry[K, V]) *Dict[K, V] {
	items := make(map[K]V, len(entries))
	for _, e := range entries {
		items[e.Key] = e.Value
	}
	return &Dict[K, V]{items: items}
}

// FromMap creates a Dict from a map (the map is copied).
func FromMap[M ~map[K]V, K comparable, V any](m M) *Dict[K, V] {
	items := make(map[K]V, len(m))
	for k, v := range m {
		items[k] = v
	}
	return &Dict[K, V]{items: items}
}

// Empty creates an empty Dict with keys K and values V.
func Empty[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{items: map[K]V{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToMap returns a copy of the underlying map.
func (d *Dict[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(d.items))
	for k, v := range d.items {
		out[k] = v
	}
	return out
}

// ToJSON serialises the dict to a JSON object.
// K must be a type encoding/json accepts as an object key.
func (d *Dict[K, V]) ToJSON() ([]byte, error) {
	return json.Marshal(d.items)
}

// Len returns the number of pairs in the dict.
func (d *Dict[K, V]) Len() int { return len(d.items) }

// IsEmpty reports whether the dict contains no pairs.
func (d *Dict[K, V]) IsEmpty() bool { return len(d.items) == 0 }

// IsNotEmpty reports whether the dict has at least one pair.
func (d *Dict[K, V]) IsNotEmpty() bool { return len(d.items) > 0 }

// Get returns the value mapped to key together with a presence flag.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	v, ok := d.items[key]
	return v, ok
}

// Has reports whether key is present in the dict.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.items[key]
	return ok
}

// Keys returns the keys of the dict in unspecified order.
func (d *Dict[K, V]) Keys() []K { return Keys(d.items) }

// Values returns the values of the dict in unspecified order.
func (d *Dict[K, V]) Values() []V { return Values(d.items) }

// Entries returns the pairs of the dict in unspecified order.
func (d *Dict[K, V]) Entries() []Entry[K, V] { return Entries(d.items) }

// String returns a JSON representation of the dict.
// It implements [fmt.Stringer].
func (d *Dict[K, V]) String() string {
	b, err := d.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", d.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(key, value) for every pair, in unspecified order.
func (d *Dict[K, V]) Each(fn func(K, V)) {
	for k, v := range d.items {
		fn(k, v)
	}
}

// Tap calls fn(d) for side-effects (e.g. logging or debugging) and returns
// d unchanged for further chaining.
func (d *Dict[K, V]) Tap(fn func(*Dict[K, V])) *Dict[K, V] {
	fn(d)
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Assoc returns a new dict with key set to value.
func (d *Dict[K, V]) Assoc(key K, value V) *Dict[K, V] {
	return &Dict[K, V]{items: Assoc(d.items, key, value)}
}

// Dissoc returns a new dict with the listed keys removed.
// Absent keys are silently ignored.
func (d *Dict[K, V]) Dissoc(keys ...K) *Dict[K, V] {
	return &Dict[K, V]{items: Dissoc(d.items, keys...)}
}

// Merge returns a new dict containing the pairs of d and other.
// Pairs from other win on duplicate keys.
func (d *Dict[K, V]) Merge(other *Dict[K, V]) *Dict[K, V] {
	return &Dict[K, V]{items: Merge(d.items, other.items)}
}

// KeyMap returns a new dict with every key replaced by fn(key).
// Collisions follow the package-level [KeyMap] rule.
func (d *Dict[K, V]) KeyMap(fn func(K) K) *Dict[K, V] {
	return &Dict[K, V]{items: KeyMap(fn, d.items)}
}

// KeyFilter returns a new dict keeping only the pairs whose key satisfies
// pred.
func (d *Dict[K, V]) KeyFilter(pred func(K) bool) *Dict[K, V] {
	return &Dict[K, V]{items: KeyFilter(pred, d.items)}
}

// ValFilter returns a new dict keeping only the pairs whose value satisfies
// pred.
func (d *Dict[K, V]) ValFilter(pred func(V) bool) *Dict[K, V] {
	return &Dict[K, V]{items: ValFilter(pred, d.items)}
}

// ItemFilter returns a new dict keeping only the pairs whose entry satisfies
// pred.
func (d *Dict[K, V]) ItemFilter(pred func(Entry[K, V]) bool) *Dict[K, V] {
	return &Dict[K, V]{items: ItemFilter(pred, d.items)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(d) if condition is true and returns the result.
// Otherwise returns d unchanged.
func (d *Dict[K, V]) When(condition bool, fn func(*Dict[K, V]) *Dict[K, V]) *Dict[K, V] {
	if condition {
		return fn(d)
	}
	return d
}

// Unless calls fn(d) if condition is false; otherwise returns d.
func (d *Dict[K, V]) Unless(condition bool, fn func(*Dict[K, V]) *Dict[K, V]) *Dict[K, V] {
	return d.When(!condition, fn)
}
