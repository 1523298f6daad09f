package dynamic

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-prelude/prelude"
)

// Kind is the runtime category of a value as reported by [GetType].
type Kind string

const (
	// KindAtom tags [Atom] symbols.
	KindAtom Kind = "atom"
	// KindBitstring tags text: strings and byte slices.
	KindBitstring Kind = "bitstring"
	// KindFloat tags float32 and float64.
	KindFloat Kind = "float"
	// KindNumber tags integers and complex numbers.
	KindNumber Kind = "number"
	// KindBoolean tags bool.
	KindBoolean Kind = "boolean"
	// KindFunction tags func values of any signature.
	KindFunction Kind = "function"
	// KindList tags slices and arrays other than byte slices.
	KindList Kind = "list"
	// KindTuple tags [Tuple] values and structs.
	KindTuple Kind = "tuple"
	// KindProcess tags *os.Process handles.
	KindProcess Kind = "pid"
	// KindPort tags channels.
	KindPort Kind = "port"
	// KindReference tags pointers other than *os.Process.
	KindReference Kind = "reference"
	// KindUnknown tags nil, maps and anything not covered above.
	KindUnknown Kind = "unknown"
)

// Kinds returns every Kind that [GetType] can produce.
func Kinds() []Kind {
	return []Kind{
		KindAtom, KindBitstring, KindFloat, KindNumber, KindBoolean,
		KindFunction, KindList, KindTuple, KindProcess, KindPort,
		KindReference, KindUnknown,
	}
}

func (k Kind) String() string { return string(k) }

// Atom is a symbolic constant, distinct from ordinary text.
type Atom string

// Tuple is a fixed group of values of possibly different types.
type Tuple []any

// String returns "{a, b, ...}".
func (t Tuple) String() string {
	parts := lo.Map(t, func(v any, _ int) string { return fmt.Sprintf("%v", v) })
	return "{" + strings.Join(parts, ", ") + "}"
}

// GetType classifies x.
//
//   - [Atom] → atom
//   - strings and byte slices → bitstring
//   - float32, float64 → float
//   - integers and complex numbers → number
//   - bool → boolean
//   - funcs → function
//   - [Tuple] and structs → tuple
//   - other slices and arrays → list
//   - *os.Process → pid
//   - channels → port
//   - other pointers → reference
//   - nil, maps and anything else → unknown
//
// A [Value] reports the kind it was built with.
func GetType(x any) Kind {
	switch v := x.(type) {
	case nil:
		return KindUnknown
	case Value:
		return v.Kind()
	case Atom:
		return KindAtom
	case Tuple:
		return KindTuple
	case *os.Process:
		return KindProcess
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.String:
		return KindBitstring
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.Bool:
		return KindBoolean
	case reflect.Func:
		return KindFunction
	case reflect.Struct:
		return KindTuple
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindBitstring
		}
		return KindList
	case reflect.Array:
		return KindList
	case reflect.Chan:
		return KindPort
	case reflect.Pointer, reflect.UnsafePointer:
		return KindReference
	default:
		return KindUnknown
	}
}

// IsType reports whether GetType(x) is the kind named by name.
// Names that match no Kind are simply never equal; an empty name fails with
// [prelude.ErrInvalidArgument].
func IsType(name string, x any) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("%w: IsType requires a type name", prelude.ErrInvalidArgument)
	}
	return GetType(x) == Kind(name), nil
}
