package curried

import (
	"iter"

	"github.com/hasbyte1/go-toolz-utils/dicts"
	"github.com/hasbyte1/go-toolz-utils/seqs"
)

// This file contains the curried forms of the fixed-arity dicts and seqs
// operations. Each takes the operation's configuration (key, value, path,
// callable) and returns a closure over the container, so it can sit inside
// a pipeline or be passed around partially applied.
//
// The container type parameter M usually cannot be inferred from the
// configuration arguments alone, so call sites instantiate it explicitly:
//
//	addC := curried.Assoc[map[string]int]("c", 3)
//	addC(map[string]int{"a": 1}) // → {"a": 1, "c": 3}

// ─────────────────────────────────────────────────────────────────────────────
// Curried dict operations
// ─────────────────────────────────────────────────────────────────────────────

// Assoc returns a function that sets key to value in its argument.
func Assoc[M ~map[K]V, K comparable, V any](key K, value V) func(M) M {
	return func(d M) M { return dicts.Assoc(d, key, value) }
}

// Dissoc1 returns a function that removes a single key from its argument.
// The variadic [Dissoc] is excluded from currying; see the package doc.
func Dissoc1[M ~map[K]V, K comparable, V any](key K) func(M) M {
	return func(d M) M { return dicts.Dissoc(d, key) }
}

// KeyMap returns a function that replaces every key of its argument with
// fn(key).
func KeyMap[M ~map[K]V, K comparable, V any](fn func(K) K) func(M) M {
	return func(d M) M { return dicts.KeyMap(fn, d) }
}

// ValMap returns a function that replaces every value of its argument with
// fn(value).
func ValMap[M ~map[K]V, K comparable, V, W any](fn func(V) W) func(M) map[K]W {
	return func(d M) map[K]W { return dicts.ValMap(fn, d) }
}

// ItemMap returns a function that rebuilds its argument by applying fn to
// each entry.
func ItemMap[M ~map[K]V, K comparable, V any](fn func(dicts.Entry[K, V]) dicts.Entry[K, V]) func(M) M {
	return func(d M) M { return dicts.ItemMap(fn, d) }
}

// KeyFilter returns a function that keeps only the pairs of its argument
// whose key satisfies pred.
func KeyFilter[M ~map[K]V, K comparable, V any](pred func(K) bool) func(M) M {
	return func(d M) M { return dicts.KeyFilter(pred, d) }
}

// ValFilter returns a function that keeps only the pairs of its argument
// whose value satisfies pred.
func ValFilter[M ~map[K]V, K comparable, V any](pred func(V) bool) func(M) M {
	return func(d M) M { return dicts.ValFilter(pred, d) }
}

// ItemFilter returns a function that keeps only the pairs of its argument
// whose entry satisfies pred.
func ItemFilter[M ~map[K]V, K comparable, V any](pred func(dicts.Entry[K, V]) bool) func(M) M {
	return func(d M) M { return dicts.ItemFilter(pred, d) }
}

// GetIn1 returns a function resolving path in its argument, with nil as the
// miss default. The optional-default [GetIn] is excluded from currying; see
// the package doc.
func GetIn1(path []any) func(any) any {
	return func(coll any) any { return dicts.GetIn(path, coll) }
}

// AssocIn returns a function that sets the nested location addressed by
// path to value in its argument.
func AssocIn(path []any, value any) func(map[any]any) map[any]any {
	return func(d map[any]any) map[any]any { return dicts.AssocIn(d, path, value) }
}

// UpdateIn returns a function that updates the nested location addressed by
// path in its argument with fn, creating it from def when missing.
func UpdateIn(path []any, fn func(any) any, def any) func(map[any]any) map[any]any {
	return func(d map[any]any) map[any]any { return dicts.UpdateIn(d, path, fn, def) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Curried sequence recipes
// ─────────────────────────────────────────────────────────────────────────────

// CountBy returns a function counting the elements of its argument by
// fn(element).
func CountBy[T any, K comparable](fn func(T) K) func(iter.Seq[T]) map[K]int {
	return func(seq iter.Seq[T]) map[K]int { return seqs.CountBy(fn, seq) }
}

// GroupBy returns a function grouping the elements of its argument by
// fn(element).
func GroupBy[T any, K comparable](fn func(T) K) func(iter.Seq[T]) map[K][]T {
	return func(seq iter.Seq[T]) map[K][]T { return seqs.GroupBy(fn, seq) }
}

// PartitionBy returns a function lazily partitioning its argument into runs
// of consecutive elements sharing fn(element).
func PartitionBy[T any, K comparable](fn func(T) K) func(iter.Seq[T]) iter.Seq[[]T] {
	return func(seq iter.Seq[T]) iter.Seq[[]T] { return seqs.PartitionBy(fn, seq) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Direct re-exports (excluded from currying)
//
// These operations take variadic or optional arguments, which makes their
// arity ambiguous for partial application. They are re-exported unchanged.
// ─────────────────────────────────────────────────────────────────────────────

// Merge is [dicts.Merge], uncurried.
func Merge[M ~map[K]V, K comparable, V any](ms ...M) M {
	return dicts.Merge(ms...)
}

// MergeWith is [dicts.MergeWith], uncurried.
func MergeWith[M ~map[K]V, K comparable, V any](combine func([]V) V, ms ...M) M {
	return dicts.MergeWith(combine, ms...)
}

// Dissoc is [dicts.Dissoc], uncurried.
func Dissoc[M ~map[K]V, K comparable, V any](d M, keys ...K) M {
	return dicts.Dissoc(d, keys...)
}

// GetIn is [dicts.GetIn], uncurried.
func GetIn(path []any, coll any, def ...any) any {
	return dicts.GetIn(path, coll, def...)
}

// Invert is [dicts.Invert], uncurried.
func Invert[M ~map[K]V, K, V comparable](d M) map[V]K {
	return dicts.Invert(d)
}
