package fixed

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// New returns the value nearest to f, rounding half away from zero. It
// returns ErrRange if f is NaN, infinite or outside R's range.
//
// The multiplication by the scale is done in single precision. Near the
// bounds of a 32-bit representation the product may round past the bound, so
// New can report ErrRange for the Float of a valid value, e.g. the largest
// value with precision 2.
func New[R Spec](f Float) (Value[R], error) {
	x := math.Round(float64(f * Float(Scale[R]())))
	lo, hi := bounds[R]()
	if !(x >= float64(lo) && x <= float64(hi)) {
		return Value[R]{}, fmt.Errorf("%w: %v %s", ErrRange, f, Symbol[R]())
	}
	return Value[R]{R(int64(x))}, nil
}

// MustNew is like New but panics if f is out of range.
func MustNew[R Spec](f Float) Value[R] {
	v, err := New[R](f)
	if err != nil {
		panic(err)
	}
	return v
}

// FromRepr returns the value with raw representation r.
func FromRepr[R Spec](r R) Value[R] { return Value[R]{r} }

// FromFixed returns the value with raw representation raw. It returns
// ErrRange if raw doesn't fit R.
func FromFixed[R Spec](raw Fixed) (Value[R], error) {
	v, ok := fit[R](int64(raw))
	if !ok {
		return v, fmt.Errorf("%w: raw %d %s", ErrRange, raw, Symbol[R]())
	}
	return v, nil
}

// FromInt returns the value of whole units. It returns ErrRange if the scaled
// value doesn't fit R.
func FromInt[R Spec, I constraints.Integer](whole I) (Value[R], error) {
	lo, hi := bounds[R]()
	s := int64(Scale[R]())
	if whole < 0 {
		if int64(whole) < lo/s {
			return Value[R]{}, fmt.Errorf("%w: %d %s", ErrRange, whole, Symbol[R]())
		}
	} else if uint64(whole) > uint64(hi/s) {
		return Value[R]{}, fmt.Errorf("%w: %d %s", ErrRange, whole, Symbol[R]())
	}
	return Value[R]{R(int64(whole) * s)}, nil
}

// Float returns v as a float. Raw values with more than 24 significant bits
// are rounded to the float's mantissa, so New(v.Float()) only restores v
// exactly for raw values within ±2^22 and may fail close to the bounds of
// R, see [New].
func (v Value[R]) Float() Float {
	return Float(v.r) / Float(Scale[R]())
}
