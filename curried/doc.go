// Package curried provides partial application for the toolz-utils
// operations: curried forms that take the operation's configuration first
// and return a closure over the container, typed currying combinators, and
// an explicit-arity argument accumulator for dynamically typed callables.
//
// # Curried operations
//
//	incr := curried.ValMap[map[string]int](func(v int) int { return v + 1 })
//	addC := curried.Assoc[map[string]int]("c", 3)
//
//	out := incr(addC(map[string]int{"a": 1, "b": 2}))
//	// → {"a": 2, "b": 3, "c": 4}
//
// Operations with variadic or optional arguments ([Merge], [MergeWith],
// [Dissoc], [GetIn], [Invert]) are deliberately not curried — their arity is
// ambiguous for partial application — and are re-exported here unchanged so
// pipelines can import a single package.
//
// # Typed combinators
//
// [Two] and [Three] turn fixed-arity functions into chains of one-argument
// functions; [Partial2] and [Partial3] bind only the first argument:
//
//	add := func(a, b int) int { return a + b }
//	addFive := curried.Two(add)(5)
//	addFive(3) // → 8
//
// # Explicit-arity accumulator
//
// Go cannot inspect a function's arity at runtime, so [Func] takes it
// explicitly and accumulates arguments until it is satisfied:
//
//	join := curried.NewFunc(3, func(args ...any) any {
//	    return fmt.Sprint(args...)
//	})
//	partial, _ := join.Call(1, 2) // arity not reached: a new Func
//	v, _ := partial.(*curried.Func).Call(3)
//
// Each partial application returns a new Func; accumulators are never
// mutated, so partials can be shared and completed independently.
package curried
