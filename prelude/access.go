package prelude

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Find returns the first element for which fn returns true, or None when
// nothing matches. fn is not called past the first match.
func Find[T any](seq []T, fn func(T) bool) (mo.Option[T], error) {
	if fn == nil {
		return mo.None[T](), errNilFunc("Find")
	}
	if item, ok := lo.Find(seq, fn); ok {
		return mo.Some(item), nil
	}
	return mo.None[T](), nil
}

// Head returns the first element, or None for an empty sequence.
func Head[T any](seq []T) mo.Option[T] {
	if len(seq) == 0 {
		return mo.None[T]()
	}
	return mo.Some(seq[0])
}

// Tail returns a copy of every element but the first, or None for an
// empty sequence. A single-element sequence yields Some of an empty slice.
func Tail[T any](seq []T) mo.Option[[]T] {
	if len(seq) == 0 {
		return mo.None[[]T]()
	}
	return mo.Some(lo.Drop(seq, 1))
}

// Take returns a copy of the first min(n, Len(seq)) elements.
// A non-positive n yields an empty slice.
func Take[T any](seq []T, n int) []T {
	if n <= 0 || len(seq) == 0 {
		return []T{}
	}
	if n > len(seq) {
		n = len(seq)
	}
	return slices.Clone(seq[:n])
}

// Len returns the number of elements in seq.
func Len[T any](seq []T) int { return len(seq) }

// ID returns x unchanged. It is handy as a default transform or key.
func ID[T any](x T) T { return x }
