package seqs

import (
	"iter"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Counting & grouping (eager, single pass)
// ─────────────────────────────────────────────────────────────────────────────

// CountBy consumes seq and returns a map from fn(element) to the number of
// elements producing that key. Single pass; the order elements arrive in
// does not affect the result.
//
//	seqs.CountBy(utf8.RuneCountInString,
//	    slices.Values([]string{"cat", "mouse", "dog"})) // → {3: 2, 5: 1}
func CountBy[T any, K comparable](fn func(T) K, seq iter.Seq[T]) map[K]int {
	counts := make(map[K]int)
	for v := range seq {
		counts[fn(v)]++
	}
	return counts
}

// CountBySlice is [CountBy] over a plain slice.
func CountBySlice[T any, K comparable](fn func(T) K, items []T) map[K]int {
	return CountBy(fn, slices.Values(items))
}

// Frequencies counts how often each distinct element occurs in seq.
// It is [CountBy] with the identity classifier.
//
//	seqs.Frequencies(slices.Values([]string{"a", "b", "a"})) // → {"a": 2, "b": 1}
func Frequencies[T comparable](seq iter.Seq[T]) map[T]int {
	return CountBy(func(v T) T { return v }, seq)
}

// GroupBy consumes seq and groups its elements by fn(element), preserving
// encounter order within each group.
//
//	seqs.GroupBy(func(n int) bool { return n%2 == 0 },
//	    slices.Values([]int{1, 2, 3, 4})) // → {false: [1 3], true: [2 4]}
func GroupBy[T any, K comparable](fn func(T) K, seq iter.Seq[T]) map[K][]T {
	groups := make(map[K][]T)
	for v := range seq {
		k := fn(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning (lazy, single pass)
// ─────────────────────────────────────────────────────────────────────────────

// PartitionBy returns a lazy sequence of runs: maximal groups of consecutive
// elements of seq sharing the same fn(element). A new run starts whenever
// the classifier value changes from the previous element.
//
// The source is traversed once, only as far as the consumer iterates; if the
// consumer stops early, no further elements are read. The result is finite
// iff seq is finite and cannot be restarted once consumed.
//
//	seqs.PartitionBy(func(r rune) bool { return r == ' ' },
//	    slices.Values([]rune("ab cd")))
//	// → ('a','b'), (' '), ('c','d')
func PartitionBy[T any, K comparable](fn func(T) K, seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var run []T
		var current K
		for v := range seq {
			k := fn(v)
			if len(run) > 0 && k != current {
				if !yield(run) {
					return
				}
				run = nil
			}
			current = k
			run = append(run, v)
		}
		if len(run) > 0 {
			yield(run)
		}
	}
}

// PartitionBySlice is [PartitionBy] over a plain slice, collecting every run
// eagerly.
func PartitionBySlice[T any, K comparable](fn func(T) K, items []T) [][]T {
	return slices.Collect(PartitionBy(fn, slices.Values(items)))
}

// PartitionAll returns a lazy sequence of consecutive chunks of n elements.
// The last chunk may contain fewer than n elements. A size <= 0 yields
// nothing.
//
//	seqs.PartitionAll(2, slices.Values([]int{1, 2, 3, 4, 5}))
//	// → (1,2), (3,4), (5)
func PartitionAll[T any](n int, seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if n <= 0 {
			return
		}
		chunk := make([]T, 0, n)
		for v := range seq {
			chunk = append(chunk, v)
			if len(chunk) == n {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, n)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}
