package prelude

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & filtering
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn once per element, in order, for its side effects.
// It returns seq itself; fn's effects are the caller's business.
func Each[T any](seq []T, fn func(T)) ([]T, error) {
	if fn == nil {
		return nil, errNilFunc("Each")
	}
	lo.ForEach(seq, func(item T, _ int) { fn(item) })
	return seq, nil
}

// Filter returns the elements for which fn returns true, in their
// original order.
func Filter[T any](seq []T, fn func(T) bool) ([]T, error) {
	if fn == nil {
		return nil, errNilFunc("Filter")
	}
	return lo.Filter(seq, func(item T, _ int) bool { return fn(item) }), nil
}

// Reject returns the elements for which fn returns false, in their
// original order. It is the complement of [Filter].
func Reject[T any](seq []T, fn func(T) bool) ([]T, error) {
	if fn == nil {
		return nil, errNilFunc("Reject")
	}
	return lo.Reject(seq, func(item T, _ int) bool { return fn(item) }), nil
}

// Partition splits seq into the elements [Filter] would keep and the
// elements [Reject] would keep, in a single pass.
func Partition[T any](seq []T, fn func(T) bool) (kept, rejected []T, err error) {
	if fn == nil {
		return nil, nil, errNilFunc("Partition")
	}
	kept = make([]T, 0, len(seq))
	rejected = make([]T, 0)
	for _, item := range seq {
		if fn(item) {
			kept = append(kept, item)
		} else {
			rejected = append(rejected, item)
		}
	}
	return kept, rejected, nil
}

// Map applies fn to every element and returns the results in order.
// The output always has the same length as seq.
func Map[T, U any](seq []T, fn func(T) U) ([]U, error) {
	if fn == nil {
		return nil, errNilFunc("Map")
	}
	return lo.Map(seq, func(item T, _ int) U { return fn(item) }), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a copy of seq with the elements in opposite order.
func Reverse[T any](seq []T) []T {
	// lo.Reverse works in place.
	return lo.Reverse(slices.Clone(seq))
}

// Sort returns an ascending copy of seq.
//
// It is a partitioning quicksort: the first element is the pivot, the rest
// is split into strictly-smaller and greater-or-equal parts, each part is
// sorted recursively and the results are concatenated around the pivot.
// Equal elements keep their relative order as a side effect of that scheme.
func Sort[T constraints.Ordered](seq []T) []T {
	return quicksort(seq, func(a, b T) bool { return a < b })
}

// SortFunc is [Sort] for element types without a natural order.
// less must report whether a sorts strictly before b.
func SortFunc[T any](seq []T, less func(a, b T) bool) ([]T, error) {
	if less == nil {
		return nil, errNilFunc("SortFunc")
	}
	return quicksort(seq, less), nil
}

func quicksort[T any](seq []T, less func(a, b T) bool) []T {
	if len(seq) == 0 {
		return []T{}
	}
	pivot := seq[0]
	var lower, upper []T
	for _, item := range seq[1:] {
		if less(item, pivot) {
			lower = append(lower, item)
		} else {
			upper = append(upper, item)
		}
	}
	out := make([]T, 0, len(seq))
	out = append(out, quicksort(lower, less)...)
	out = append(out, pivot)
	return append(out, quicksort(upper, less)...)
}

// ─────────────────────────────────────────────────────────────────────────────
// De-duplication
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns seq without duplicate elements.
//
// When a value recurs, its earlier occurrence is dropped from the result
// and the value is appended again, so each value ends up at the position
// of its last occurrence relative to the others:
//
//	prelude.Unique([]int{1, 2, 1, 3, 2}) // → [1 3 2]
func Unique[T comparable](seq []T) []T {
	out, _ := UniqueBy(seq, ID[T])
	return out
}

// UniqueBy is [Unique] with element identity given by key. It lets
// sequences of non-comparable elements be de-duplicated.
func UniqueBy[T any, K comparable](seq []T, key func(T) K) ([]T, error) {
	if key == nil {
		return nil, errNilFunc("UniqueBy")
	}
	out := make([]T, 0, len(seq))
	keys := make([]K, 0, len(seq))
	for _, item := range seq {
		k := key(item)
		if i := lo.IndexOf(keys, k); i >= 0 {
			out = append(out[:i], out[i+1:]...)
			keys = append(keys[:i], keys[i+1:]...)
		}
		out = append(out, item)
		keys = append(keys, k)
	}
	return out, nil
}
