package dynamic

import (
	"encoding/hex"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-prelude/prelude"
)

// Value is a value tagged with its [Kind].
//
// The zero Value holds nil and has kind unknown.
type Value struct {
	kind Kind
	v    any
}

// Key identifies a Value by content. Two values have the same Key when
// they have the same kind and the same Go-syntax representation (%#v).
//
// A Key is 32 bytes whatever the size of the value, and its hex form
// round-trips through [ParseKey], so keys can be persisted and compared
// with keys computed in a later run.
type Key [blake2b.Size256]byte

// String returns the key as 64 lowercase hex digits.
func (k Key) String() string { return hex.EncodeToString(k[:]) }

// ParseKey decodes the output of [Key.String].
func ParseKey(s string) (Key, error) {
	var k Key
	b, err := hex.DecodeString(s)
	if err != nil {
		return k, fmt.Errorf("%w: key %q: %v", prelude.ErrInvalidArgument, s, err)
	}
	if len(b) != len(k) {
		return k, fmt.Errorf("%w: key %q is %d bytes, want %d", prelude.ErrInvalidArgument, s, len(b), len(k))
	}
	copy(k[:], b)
	return k, nil
}

// Fingerprint digests a whole sequence into one Key. Sequences with equal
// element keys in the same order share a fingerprint; reordering changes it.
func Fingerprint(vs []Value) Key {
	buf := make([]byte, 0, len(vs)*blake2b.Size256)
	for _, v := range vs {
		k := v.Key()
		buf = append(buf, k[:]...)
	}
	return Key(blake2b.Sum256(buf))
}

// ValueOf wraps x with its kind. Wrapping a Value returns it unchanged.
func ValueOf(x any) Value {
	if v, ok := x.(Value); ok {
		return v
	}
	return Value{kind: GetType(x), v: x}
}

// Values wraps every argument with [ValueOf].
func Values(xs ...any) []Value {
	return lo.Map(xs, func(x any, _ int) Value { return ValueOf(x) })
}

// ValuesOf wraps every element of a typed sequence with [ValueOf].
func ValuesOf[T any](seq []T) []Value {
	return Values(lo.ToAnySlice(seq)...)
}

// Kind returns the kind v was built with.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindUnknown
	}
	return v.kind
}

// Interface returns the wrapped value.
func (v Value) Interface() any { return v.v }

// Is reports whether v has kind k.
func (v Value) Is(k Kind) bool { return v.Kind() == k }

// Key returns the content digest of v.
// Funcs, channels and pointers are keyed by address, not by what they
// point to.
func (v Value) Key() Key {
	return Key(blake2b.Sum256([]byte(fmt.Sprintf("%s:%#v", v.Kind(), v.v))))
}

// Equal reports whether v and o have the same [Key].
func (v Value) Equal(o Value) bool { return v.Key() == o.Key() }

// String formats the wrapped value with %v.
func (v Value) String() string { return fmt.Sprintf("%v", v.v) }

// UniqueValues removes duplicate values by [Key], with the same ordering
// rule as [prelude.Unique]: a repeated value moves to the position of its
// latest occurrence.
func UniqueValues(vs []Value) []Value {
	out, _ := prelude.UniqueBy(vs, Value.Key)
	return out
}
