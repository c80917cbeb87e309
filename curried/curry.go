package curried

import (
	"errors"
	"fmt"
)

// ErrArityOverflow is returned by [Func.Call] when the accumulated argument
// count would exceed the declared arity.
var ErrArityOverflow = errors.New("curried: more arguments than the declared arity")

// Func is an explicit-arity partial-application wrapper around a
// dynamically typed callable. Calling it with fewer arguments than the
// remaining arity returns a new Func capturing them; reaching the arity
// invokes the target with every argument collected so far.
//
// A Func is immutable: Call never modifies the receiver, so a partial can
// be completed several times with different remaining arguments.
type Func struct {
	arity int
	fn    func(args ...any) any
	bound []any
}

// NewFunc wraps fn, declaring that it expects exactly arity arguments.
// Arity must be declared explicitly because Go cannot inspect it at
// runtime. Panics if arity is negative or fn is nil.
func NewFunc(arity int, fn func(args ...any) any) *Func {
	if arity < 0 {
		panic("curried: negative arity")
	}
	if fn == nil {
		panic("curried: nil function")
	}
	return &Func{arity: arity, fn: fn}
}

// Arity returns the number of arguments still missing.
func (f *Func) Arity() int { return f.arity - len(f.bound) }

// Call supplies further arguments.
//
// When the total argument count is still below the arity, Call returns a
// new *Func (as any) capturing the supplied arguments. When the arity is
// reached exactly, the wrapped function is invoked and its result returned.
// Supplying more arguments than the arity allows returns
// [ErrArityOverflow].
func (f *Func) Call(args ...any) (any, error) {
	total := len(f.bound) + len(args)
	switch {
	case total > f.arity:
		return nil, fmt.Errorf("%w: got %d, arity %d", ErrArityOverflow, total, f.arity)
	case total < f.arity:
		bound := make([]any, 0, total)
		bound = append(bound, f.bound...)
		bound = append(bound, args...)
		return &Func{arity: f.arity, fn: f.fn, bound: bound}, nil
	default:
		all := make([]any, 0, total)
		all = append(all, f.bound...)
		all = append(all, args...)
		return f.fn(all...), nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed combinators
// ─────────────────────────────────────────────────────────────────────────────

// Two converts a two-argument function into its curried form.
//
//	add := func(a, b int) int { return a + b }
//	curried.Two(add)(5)(3) // → 8
func Two[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Three converts a three-argument function into its curried form.
func Three[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return fn(a, b, c)
			}
		}
	}
}

// Partial2 binds the first argument of a two-argument function.
func Partial2[A, B, C any](fn func(A, B) C, a A) func(B) C {
	return func(b B) C { return fn(a, b) }
}

// Partial3 binds the first argument of a three-argument function.
func Partial3[A, B, C, D any](fn func(A, B, C) D, a A) func(B, C) D {
	return func(b B, c C) D { return fn(a, b, c) }
}
