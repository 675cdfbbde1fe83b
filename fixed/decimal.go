package fixed

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal returns v as an exact decimal.
func (v Value[R]) Decimal() decimal.Decimal {
	return decimal.New(int64(v.r), -int32(Precision[R]()))
}

// FromDecimal returns d as a value of R. Digits beyond the precision of R
// are truncated like in [Parse]. It returns ErrRange if d doesn't fit R.
func FromDecimal[R Spec](d decimal.Decimal) (Value[R], error) {
	p := int32(Precision[R]())
	x := d.Truncate(p).Mul(decimal.New(1, p)).BigInt()
	if x.IsInt64() {
		if v, ok := fit[R](x.Int64()); ok {
			return v, nil
		}
	}
	return Value[R]{}, fmt.Errorf("%w: %s %s", ErrRange, d, Symbol[R]())
}
