package prelude

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by the arithmetic
// aggregates.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the total of seq; 0 for an empty sequence.
func Sum[T Number](seq []T) T {
	return lo.Sum(seq)
}

// Product returns the product of seq.
//
// An empty sequence yields 0, not the multiplicative identity. Callers
// folding products across several sequences must special-case empty input.
func Product[T Number](seq []T) T {
	if len(seq) == 0 {
		return 0
	}
	return lo.Reduce(seq, func(acc T, item T, _ int) T { return acc * item }, T(1))
}

// Mean returns the arithmetic mean of seq as a float64, or None for an
// empty sequence. Elements are summed in float64, so narrow integer types
// do not wrap.
func Mean[T Number](seq []T) mo.Option[float64] {
	if len(seq) == 0 {
		return mo.None[float64]()
	}
	total := lo.SumBy(seq, func(item T) float64 { return float64(item) })
	return mo.Some(total / float64(len(seq)))
}

// Minimum returns the smallest element of seq, scanning from the first.
// Returns [ErrEmptySequence] for an empty sequence.
func Minimum[T constraints.Ordered](seq []T) (T, error) {
	if len(seq) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return lo.Min(seq), nil
}

// Maximum returns the largest element of seq, scanning from the first.
// Returns [ErrEmptySequence] for an empty sequence.
func Maximum[T constraints.Ordered](seq []T) (T, error) {
	if len(seq) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return lo.Max(seq), nil
}

// Reduce folds seq from the left, starting from initial.
func Reduce[T, U any](seq []T, fn func(acc U, item T) U, initial U) (U, error) {
	if fn == nil {
		return initial, errNilFunc("Reduce")
	}
	return lo.Reduce(seq, func(acc U, item T, _ int) U { return fn(acc, item) }, initial), nil
}
