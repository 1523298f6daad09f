// Package dynamic classifies arbitrary Go values into coarse runtime
// categories, for the rare places where a sequence genuinely holds
// heterogeneous values ([]any) and callers want a lightweight tag rather
// than a type switch.
//
// Typed code should not need this package: a []int is known to hold
// numbers at compile time. Reach for [GetType] and [IsType] at the edges,
// where values arrive as any (decoded documents, plugin payloads, test
// fixtures):
//
//	dynamic.GetType(5)              // → "number"
//	dynamic.GetType(dynamic.Atom("ok")) // → "atom"
//	ok, err := dynamic.IsType("list", []int{1, 2})
//
// [Value] pairs a value with its [Kind] so the tag travels with the data,
// and gives every value a comparable [Key] so heterogeneous sequences can be
// de-duplicated with [UniqueValues].
package dynamic
