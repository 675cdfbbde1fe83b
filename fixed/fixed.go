// Package fixed provides decimal fixed-point values whose scale is fixed at
// compile time by a unit type.
//
// A unit is a named integer type implementing [Spec]. The integer is the
// representation of the number in memory and on the wire, while [Value]
// wraps it and implements the arithmetic:
//
//	type Volt int32
//
//	func (Volt) Precision() uint8 { return 1 }
//	func (Volt) Symbol() string   { return "V" }
//
//	v, err := fixed.Parse[Volt]("230.4") // v.Repr() == 2304
//
// Values of different units can't be mixed. Only the operations of a linear
// space are defined: addition and subtraction of two values of the same unit
// and scaling by a float. All operations which could leave the range of the
// representation report [ErrRange] instead of wrapping or saturating.
package fixed

import (
	"errors"
	"unsafe"
)

// Bits is the width of the widest representation. All representations are
// at most Bits wide if signed and less than Bits wide if unsigned, so every
// raw value fits a Fixed and a microcontroller register.
const Bits = 32

// Fixed is the common integer type of all representations.
type Fixed = int32

// Float is the floating point type used for scaling and conversion. It's
// single precision for the sake of FPU-less or single precision targets.
type Float = float32

// MaxPrecision is the largest number of decimal digits a unit may have.
// 10^MaxPrecision is the largest scale that fits a Fixed.
const MaxPrecision = 9

var pow10 = [MaxPrecision + 1]Fixed{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
}

var (
	ErrRange      = errors.New("value out of range")
	ErrSyntax     = errors.New("invalid syntax")
	ErrDataLength = errors.New("invalid data length")
)

// Repr is the set of integer types usable as representation.
type Repr interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16
}

// Spec is implemented by unit types. The methods are called on the zero
// value and must return constants.
type Spec interface {
	Repr

	// Precision returns the number of decimal digits of the fractional
	// part, the raw value is the real value multiplied by 10^Precision.
	Precision() uint8

	// Symbol returns the unit symbol used in diagnostic output.
	Symbol() string
}

// Value is a fixed-point number with unit R. The zero value is zero.
type Value[R Spec] struct {
	r R
}

// Precision returns the number of fractional decimal digits of R.
func Precision[R Spec]() int {
	var r R
	p := int(r.Precision())
	if p > MaxPrecision {
		panic("fixed: precision exceeds MaxPrecision")
	}
	return p
}

// Scale returns the factor between real and raw values of R.
func Scale[R Spec]() Fixed { return pow10[Precision[R]()] }

// Symbol returns the unit symbol of R.
func Symbol[R Spec]() string {
	var r R
	return r.Symbol()
}

// Size returns the size of R's representation in bytes.
func Size[R Spec]() int {
	var r R
	return int(unsafe.Sizeof(r))
}

// Range returns the smallest and the largest value representable by R.
func Range[R Spec]() (min, max Value[R]) {
	lo, hi := bounds[R]()
	return Value[R]{R(lo)}, Value[R]{R(hi)}
}

func bounds[R Spec]() (lo, hi int64) {
	var zero R
	bits := Size[R]() * 8
	if ^zero < 0 {
		return -1 << (bits - 1), 1<<(bits-1) - 1
	}
	if bits >= Bits {
		panic("fixed: unsigned representation too wide")
	}
	return 0, 1<<bits - 1
}

// fit returns x as a Value if it's within R's range.
func fit[R Spec](x int64) (Value[R], bool) {
	lo, hi := bounds[R]()
	if x < lo || x > hi {
		return Value[R]{}, false
	}
	return Value[R]{R(x)}, true
}

// Repr returns the raw representation of v.
func (v Value[R]) Repr() R { return v.r }

// Fixed returns the raw representation of v as a Fixed.
func (v Value[R]) Fixed() Fixed { return Fixed(v.r) }

// IsZero reports whether v is zero.
func (v Value[R]) IsZero() bool { return v.r == 0 }

// Equal reports whether v and w are the same number.
func (v Value[R]) Equal(w Value[R]) bool { return v.r == w.r }

// Less reports whether v is smaller than w.
func (v Value[R]) Less(w Value[R]) bool { return v.r < w.r }

// Cmp returns -1, 0 or +1 depending on whether v is smaller, equal or larger
// than w.
func (v Value[R]) Cmp(w Value[R]) int {
	switch {
	case v.r < w.r:
		return -1
	case v.r > w.r:
		return 1
	}
	return 0
}

// Compare is [Value.Cmp] as a function, e.g. for slices.SortFunc.
func Compare[R Spec](v, w Value[R]) int { return v.Cmp(w) }
