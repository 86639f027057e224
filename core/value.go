// Package core: the Value sum type for property scalars.
//
// Property bags are loosely keyed but strictly typed: every stored value is
// one of a small closed set of kinds (string, int64, float64), and reads
// must name the kind they expect. A wrong-kind read is a caller error
// surfaced as ErrPropertyType, never a silent zero value.

package core

import (
	"fmt"
	"strconv"
)

// Kind discriminates the scalar kinds a Value can hold.
type Kind uint8

const (
	// KindInvalid is the zero Kind; it marks the zero Value.
	KindInvalid Kind = iota

	// KindString marks a string scalar.
	KindString

	// KindInt marks an int64 scalar.
	KindInt

	// KindFloat marks a float64 scalar.
	KindFloat
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Value is an immutable tagged scalar stored in a property bag.
// The zero Value has KindInvalid and fails every typed accessor.
type Value struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
}

// String wraps s as a string-kinded Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int wraps i as an int-kinded Value.
func Int(i int64) Value { return Value{kind: KindInt, i64: i} }

// Float wraps f as a float-kinded Value.
func Float(f float64) Value { return Value{kind: KindFloat, f64: f} }

// Kind reports the kind tag of v.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string scalar, or ErrPropertyType for any other kind.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("%w: have %s, want string", ErrPropertyType, v.kind)
	}
	return v.str, nil
}

// AsInt returns the int64 scalar, or ErrPropertyType for any other kind.
// Floats are not truncated implicitly; use Numeric for widening reads.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: have %s, want int", ErrPropertyType, v.kind)
	}
	return v.i64, nil
}

// AsFloat returns the float64 scalar, or ErrPropertyType for any other kind.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("%w: have %s, want float", ErrPropertyType, v.kind)
	}
	return v.f64, nil
}

// Numeric widens either numeric kind to float64.
// Strings and invalid values fail with ErrPropertyType.
func (v Value) Numeric() (float64, error) {
	switch v.kind {
	case KindInt:
		return float64(v.i64), nil
	case KindFloat:
		return v.f64, nil
	default:
		return 0, fmt.Errorf("%w: have %s, want numeric", ErrPropertyType, v.kind)
	}
}

// Equal reports whether two values have the same kind and scalar.
func (v Value) Equal(o Value) bool { return v == o }

// GoString renders the value for debugging and test failure messages.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}
