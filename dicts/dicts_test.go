package dicts_test

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-toolz-utils/dicts"
)

type registry map[string]int

// ─── Assoc ────────────────────────────────────────────────────────────────────

func TestAssocInsert(t *testing.T) {
	in := map[string]int{"a": 1}
	got := dicts.Assoc(in, "b", 2)

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
	assert.Equal(t, map[string]int{"a": 1}, in, "input must not be mutated")
}

func TestAssocOverwrite(t *testing.T) {
	got := dicts.Assoc(map[string]int{"a": 1}, "a", 9)
	assert.Equal(t, map[string]int{"a": 9}, got)
}

func TestAssocIdempotent(t *testing.T) {
	in := map[string]int{"x": 1, "y": 2}
	once := dicts.Assoc(in, "z", 3)
	twice := dicts.Assoc(once, "z", 3)
	assert.Equal(t, once, twice)
}

func TestAssocFactory(t *testing.T) {
	got := dicts.Assoc(registry{"a": 1}, "b", 2, func() registry { return make(registry, 4) })
	require.IsType(t, registry{}, got)
	assert.Equal(t, registry{"a": 1, "b": 2}, got)
}

func TestAssocMirrorsNamedType(t *testing.T) {
	got := dicts.Assoc(registry{"a": 1}, "b", 2)
	assert.IsType(t, registry{}, got)
}

// ─── Dissoc ───────────────────────────────────────────────────────────────────

func TestDissoc(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2, "c": 3}
	got := dicts.Dissoc(in, "b", "c")

	assert.Equal(t, map[string]int{"a": 1}, got)
	assert.Len(t, in, 3, "input must not be mutated")
}

func TestDissocAbsentKeyIsIdentity(t *testing.T) {
	in := map[string]int{"a": 1}
	got := dicts.Dissoc(in, "zzz")
	assert.True(t, maps.Equal(in, got))
}

func TestDissocDuplicateKeys(t *testing.T) {
	got := dicts.Dissoc(map[string]int{"a": 1, "b": 2}, "a", "a", "a")
	assert.Equal(t, map[string]int{"b": 2}, got)
}

func TestDissocInto(t *testing.T) {
	got := dicts.DissocInto(func() registry { return registry{} }, registry{"a": 1, "b": 2}, "a")
	assert.Equal(t, registry{"b": 2}, got)
}

// ─── Merge ────────────────────────────────────────────────────────────────────

func TestMergeDisjoint(t *testing.T) {
	got := dicts.Merge(map[int]string{1: "one"}, map[int]string{2: "two"})
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, got)
}

func TestMergeLaterWins(t *testing.T) {
	got := dicts.Merge(map[int]int{1: 2, 3: 4}, map[int]int{3: 3, 4: 4})
	assert.Equal(t, map[int]int{1: 2, 3: 3, 4: 4}, got)
}

func TestMergeZeroArgs(t *testing.T) {
	got := dicts.Merge[map[int]string]()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	a := map[string]int{"x": 1}
	b := map[string]int{"x": 2}
	_ = dicts.Merge(a, b)
	assert.Equal(t, 1, a["x"])
	assert.Equal(t, 2, b["x"])
}

func TestMergeInto(t *testing.T) {
	got := dicts.MergeInto(func() registry { return registry{} },
		registry{"a": 1}, registry{"b": 2})
	assert.Equal(t, registry{"a": 1, "b": 2}, got)
}

// ─── MergeWith ────────────────────────────────────────────────────────────────

func sum(vs []int) int {
	total := 0
	for _, v := range vs {
		total += v
	}
	return total
}

func TestMergeWithSum(t *testing.T) {
	got := dicts.MergeWith(sum, map[int]int{1: 1, 2: 2}, map[int]int{1: 10, 2: 20})
	assert.Equal(t, map[int]int{1: 11, 2: 22}, got)
}

func TestMergeWithSingleOccurrence(t *testing.T) {
	// keys present in only one input still route through combine,
	// called with a one-element slice
	var widths []int
	first := func(vs []int) int {
		widths = append(widths, len(vs))
		return vs[0]
	}
	got := dicts.MergeWith(first, map[string]int{"a": 1}, map[string]int{"b": 2})

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
	assert.Equal(t, []int{1, 1}, widths)
}

func TestMergeWithArgumentOrder(t *testing.T) {
	keep := func(vs []int) int { return vs[len(vs)-1] }
	got := dicts.MergeWith(keep, map[string]int{"k": 1}, map[string]int{"k": 2}, map[string]int{"k": 3})
	assert.Equal(t, map[string]int{"k": 3}, got)
}

// ─── Conversions ──────────────────────────────────────────────────────────────

func TestKeysValues(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}
	assert.ElementsMatch(t, []string{"a", "b"}, dicts.Keys(in))
	assert.ElementsMatch(t, []int{1, 2}, dicts.Values(in))
}

func TestEntriesRoundTrip(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}
	got := dicts.FromEntries[map[string]int](dicts.Entries(in))
	assert.Equal(t, in, got)
}

func TestFromEntriesLaterWins(t *testing.T) {
	got := dicts.FromEntries[map[string]int]([]dicts.Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "a", Value: 2},
	})
	assert.Equal(t, map[string]int{"a": 2}, got)
}

func TestEntryString(t *testing.T) {
	e := dicts.Entry[string, int]{Key: "a", Value: 1}
	assert.Equal(t, "(a, 1)", e.String())
}
