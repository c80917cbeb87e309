// Package seqs provides sequence recipes — counting, grouping and
// partitioning — over Go iterators, inspired by the sequence toolz of
// PyToolz/cytoolz.
//
// # Iterators and laziness
//
// Functions take an [iter.Seq] so they work over any finite source: a
// slice (via [slices.Values]), a map, a generator function. Counting and
// grouping must see every element, so they consume the sequence fully in a
// single pass. Partitioning is lazy: runs and chunks are produced only as
// the consumer requests them, and early termination stops the traversal of
// the source — but a sequence already consumed cannot be restarted.
//
//	runs := seqs.PartitionBy(func(r rune) bool { return r == ' ' },
//	    slices.Values([]rune("I have space")))
//	for run := range runs {
//	    // ('I'), (' '), ('h','a','v','e'), (' '), ('s','p','a','c','e')
//	}
//
// # Slice conveniences
//
// For callers working with plain slices, [CountBySlice] and
// [PartitionBySlice] wrap the iterator forms and return eager results.
//
// # Portability
//
// The recipes follow standard single-pass stream patterns and translate
// directly to Python's itertools/toolz, Rust iterator adapters and
// JavaScript generators.
package seqs
