package prelude

import (
	"encoding/json"
	"fmt"

	"github.com/samber/mo"
)

// Sequence is an immutable fluent wrapper around a slice of T.
//
// Constructors copy their input and every transforming method returns a new
// Sequence, so a Sequence can be handed to other goroutines freely.
//
//	evens, _ := prelude.New(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 })
//	evens.All() // → [2 4]
//
// Operations that change the element type or need ordered/numeric elements
// ([Map], [Sort], [Sum], …) are package-level functions; use [Sequence.All]
// to feed them.
type Sequence[T any] struct {
	items []T
}

// New creates a Sequence from a variadic list of items (copied).
func New[T any](items ...T) *Sequence[T] {
	return From(items)
}

// From creates a Sequence from a copy of items. A nil slice gives an
// empty Sequence.
func From[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: Take(items, len(items))}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] { return From[T](nil) }

// All returns a copy of the items.
func (s *Sequence[T]) All() []T { return Take(s.items, len(s.items)) }

// Len returns the number of items.
func (s *Sequence[T]) Len() int { return Len(s.items) }

// IsEmpty reports whether the sequence has no items.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// Each calls fn for every item and returns s for chaining.
func (s *Sequence[T]) Each(fn func(T)) (*Sequence[T], error) {
	if _, err := Each(s.items, fn); err != nil {
		return nil, err
	}
	return s, nil
}

// Filter returns a new Sequence with only the items for which fn returns
// true.
func (s *Sequence[T]) Filter(fn func(T) bool) (*Sequence[T], error) {
	out, err := Filter(s.items, fn)
	if err != nil {
		return nil, err
	}
	return &Sequence[T]{items: out}, nil
}

// Reject returns a new Sequence without the items for which fn returns
// true.
func (s *Sequence[T]) Reject(fn func(T) bool) (*Sequence[T], error) {
	out, err := Reject(s.items, fn)
	if err != nil {
		return nil, err
	}
	return &Sequence[T]{items: out}, nil
}

// Find returns the first item matching fn. See [Find].
func (s *Sequence[T]) Find(fn func(T) bool) (mo.Option[T], error) {
	return Find(s.items, fn)
}

// Head returns the first item. See [Head].
func (s *Sequence[T]) Head() mo.Option[T] { return Head(s.items) }

// Tail returns every item but the first, or None when s is empty.
func (s *Sequence[T]) Tail() mo.Option[*Sequence[T]] {
	rest, ok := Tail(s.items).Get()
	if !ok {
		return mo.None[*Sequence[T]]()
	}
	return mo.Some(&Sequence[T]{items: rest})
}

// Take returns a new Sequence of at most n leading items. See [Take].
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	return &Sequence[T]{items: Take(s.items, n)}
}

// Reverse returns a new Sequence in opposite order.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	return &Sequence[T]{items: Reverse(s.items)}
}

// SortFunc returns a new Sequence ordered by less. See [SortFunc].
func (s *Sequence[T]) SortFunc(less func(a, b T) bool) (*Sequence[T], error) {
	out, err := SortFunc(s.items, less)
	if err != nil {
		return nil, err
	}
	return &Sequence[T]{items: out}, nil
}

// MarshalJSON encodes the items as a JSON array.
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}
