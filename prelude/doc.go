// Package prelude provides a small set of pure, generic functions for
// working with ordered sequences (plain Go slices), in the spirit of a
// functional-language "prelude": Map, Filter, Reject, Find, Head, Tail,
// Take, Reverse, Sort, Unique, Sum, Product, Mean, Minimum and Maximum.
//
// # Immutability
//
// No function mutates its input. Every operation that produces a sequence
// returns a freshly allocated slice, so results are safe to share across
// goroutines and never alias the caller's data:
//
//	squares, _ := prelude.Map([]int{1, 2, 3}, func(n int) int { return n * n })
//	// → [1 4 9]
//
// # Absence vs. misuse
//
// Operations distinguish two outcomes that a dynamically typed prelude
// would fold into a single "error" value:
//
//   - Absence (empty input, no match) is reported through [github.com/samber/mo.Option]:
//     [Head], [Tail], [Find] and [Mean] return None rather than failing.
//   - Misuse is reported through an error wrapping [ErrInvalidArgument],
//     for example a nil predicate passed to [Filter].
//
//	first, err := prelude.Find(xs, isEven)
//	if err != nil { ... }              // nil predicate
//	if v, ok := first.Get(); ok { ... } // found
//
// # Fluent use
//
// [Sequence] wraps a slice and exposes the type-preserving operations as
// chainable methods:
//
//	top, _ := prelude.New(5, 3, 8, 1).
//	    SortFunc(func(a, b int) bool { return a > b })
//	fmt.Println(top.Take(2)) // → [8,5]
package prelude
