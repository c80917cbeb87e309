package dicts_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-toolz-utils/dicts"
)

// ─── KeyMap / ValMap / ItemMap ────────────────────────────────────────────────

func TestKeyMap(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}
	got := dicts.KeyMap(strings.ToUpper, in)

	assert.Equal(t, map[string]int{"A": 1, "B": 2}, got)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, in, "input must not be mutated")
}

func TestKeyMapCollisionLastWins(t *testing.T) {
	// every key maps to the same output key: exactly one pair survives,
	// no error; which value wins follows map iteration order
	in := map[string]int{"a": 1, "b": 2, "c": 3}
	got := dicts.KeyMap(func(string) string { return "k" }, in)

	assert.Len(t, got, 1)
	assert.Contains(t, []int{1, 2, 3}, got["k"])
}

func TestKeyMapBijectionRoundTrip(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}
	suffix := func(k string) string { return k + "!" }
	unsuffix := func(k string) string { return strings.TrimSuffix(k, "!") }

	assert.Equal(t, in, dicts.KeyMap(unsuffix, dicts.KeyMap(suffix, in)))
}

func TestValMap(t *testing.T) {
	got := dicts.ValMap(strconv.Itoa, map[string]int{"a": 1, "b": 2})
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
}

func TestValMapKeySetUnchanged(t *testing.T) {
	in := map[string]int{"a": 1, "b": 1}
	got := dicts.ValMap(func(v int) int { return v * 10 }, in)
	assert.Equal(t, map[string]int{"a": 10, "b": 10}, got)
}

func TestValMapFactory(t *testing.T) {
	got := dicts.ValMap(strconv.Itoa, map[string]int{"a": 1},
		func() map[string]string { return make(map[string]string, 1) })
	assert.Equal(t, map[string]string{"a": "1"}, got)
}

func TestItemMap(t *testing.T) {
	swap := func(e dicts.Entry[string, string]) dicts.Entry[string, string] {
		return dicts.Entry[string, string]{Key: e.Value, Value: e.Key}
	}
	got := dicts.ItemMap(swap, map[string]string{"a": "x", "b": "y"})
	assert.Equal(t, map[string]string{"x": "a", "y": "b"}, got)
}

func TestItemMapCollisionLastWins(t *testing.T) {
	constant := func(e dicts.Entry[string, int]) dicts.Entry[string, int] {
		return dicts.Entry[string, int]{Key: "k", Value: e.Value}
	}
	got := dicts.ItemMap(constant, map[string]int{"a": 1, "b": 2})
	assert.Len(t, got, 1)
}

// ─── Filters ──────────────────────────────────────────────────────────────────

func TestKeyFilter(t *testing.T) {
	even := func(k int) bool { return k%2 == 0 }
	got := dicts.KeyFilter(even, map[int]string{1: "a", 2: "b", 4: "d"})
	assert.Equal(t, map[int]string{2: "b", 4: "d"}, got)
}

func TestValFilter(t *testing.T) {
	got := dicts.ValFilter(func(v int) bool { return v > 1 }, map[string]int{"a": 1, "b": 2})
	assert.Equal(t, map[string]int{"b": 2}, got)
}

func TestItemFilter(t *testing.T) {
	below := func(e dicts.Entry[int, int]) bool { return e.Key < e.Value }
	got := dicts.ItemFilter(below, map[int]int{1: 2, 3: 0, 5: 6})
	assert.Equal(t, map[int]int{1: 2, 5: 6}, got)
}

func TestFilterEmptyResult(t *testing.T) {
	got := dicts.ValFilter(func(int) bool { return false }, map[string]int{"a": 1})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ─── Invert ───────────────────────────────────────────────────────────────────

func TestInvert(t *testing.T) {
	got := dicts.Invert(map[string]int{"a": 1, "b": 2})
	assert.Equal(t, map[int]string{1: "a", 2: "b"}, got)
}

func TestInvertDuplicateValues(t *testing.T) {
	got := dicts.Invert(map[string]int{"a": 1, "b": 1})
	assert.Len(t, got, 1)
	assert.Contains(t, []string{"a", "b"}, got[1])
}

func TestInvertInvolution(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}
	assert.Equal(t, in, dicts.Invert(dicts.Invert(in)))
}
