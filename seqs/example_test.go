package seqs_test

import (
	"fmt"
	"slices"

	"github.com/hasbyte1/go-toolz-utils/seqs"
)

func ExampleCountBy() {
	counts := seqs.CountBy(func(s string) int { return len(s) },
		slices.Values([]string{"cat", "mouse", "dog"}))
	fmt.Println(counts)
	// Output: map[3:2 5:1]
}

func ExampleFrequencies() {
	counts := seqs.Frequencies(slices.Values([]string{"a", "b", "a"}))
	fmt.Println(counts)
	// Output: map[a:2 b:1]
}

func ExampleGroupBy() {
	groups := seqs.GroupBy(func(n int) bool { return n%2 == 0 },
		slices.Values([]int{1, 2, 3, 4}))
	fmt.Println(groups[true], groups[false])
	// Output: [2 4] [1 3]
}

func ExamplePartitionBy() {
	runs := seqs.PartitionBy(func(r rune) bool { return r == ' ' },
		slices.Values([]rune("I have space")))
	for run := range runs {
		fmt.Printf("%q\n", string(run))
	}
	// Output:
	// "I"
	// " "
	// "have"
	// " "
	// "space"
}

func ExamplePartitionAll() {
	chunks := seqs.PartitionAll(2, slices.Values([]int{1, 2, 3, 4, 5}))
	for chunk := range chunks {
		fmt.Println(chunk)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}
