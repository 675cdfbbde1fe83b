package fixed

import "fmt"

// Add returns v+w. The sum is exact, but ErrRange is returned if it doesn't
// fit R.
func (v Value[R]) Add(w Value[R]) (Value[R], error) {
	s, ok := fit[R](int64(v.r) + int64(w.r))
	if !ok {
		return s, fmt.Errorf("%w: %s + %s %s", ErrRange, v, w, Symbol[R]())
	}
	return s, nil
}

// Sub returns v-w. The difference is exact, but ErrRange is returned if it
// doesn't fit R.
func (v Value[R]) Sub(w Value[R]) (Value[R], error) {
	d, ok := fit[R](int64(v.r) - int64(w.r))
	if !ok {
		return d, fmt.Errorf("%w: %s - %s %s", ErrRange, v, w, Symbol[R]())
	}
	return d, nil
}

// Mul returns v scaled by k, rounded like [New].
func (v Value[R]) Mul(k Float) (Value[R], error) {
	return New[R](v.Float() * k)
}

// Div returns v scaled by 1/k, rounded like [New]. Division by zero returns
// ErrRange.
func (v Value[R]) Div(k Float) (Value[R], error) {
	if k == 0 {
		return Value[R]{}, fmt.Errorf("%w: %s / 0", ErrRange, v)
	}
	return New[R](v.Float() / k)
}
