package fixed

import "strconv"

// ParseError is returned by [Parse]. Err is either ErrSyntax or ErrRange.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return "fixed: parsing " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse parses a decimal number with an optional sign and an optional
// fractional part, e.g. "-12.5", "+3", ".5" or "7.". Fractional digits beyond
// the precision of R are truncated, so "32.54" parses as 32.5 with
// precision 1. No exponents, spaces or digit separators are accepted.
func Parse[R Spec](s string) (Value[R], error) {
	lo, hi := bounds[R]()
	x, err := parseDecimal(s, Precision[R](), lo, hi)
	if err != nil {
		return Value[R]{}, &ParseError{s, err}
	}
	return Value[R]{R(x)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse[R Spec](s string) Value[R] {
	v, err := Parse[R](s)
	if err != nil {
		panic(err)
	}
	return v
}

// parseDecimal returns s multiplied by 10^prec, truncated toward zero.
func parseDecimal(s string, prec int, lo, hi int64) (int64, error) {
	i, neg := 0, false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i++
	}
	limit := hi
	if neg {
		limit = -lo
	}

	var x int64
	var ndigits, nfrac int
	var point, overflow bool
	for ; i < len(s); i++ {
		c := s[i]
		if c == '.' && !point {
			point = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, ErrSyntax
		}
		ndigits++
		if point {
			if nfrac == prec {
				continue
			}
			nfrac++
		}
		if overflow {
			continue
		}
		x = x*10 + int64(c-'0')
		overflow = x > limit
	}
	if ndigits == 0 {
		return 0, ErrSyntax
	}
	for ; nfrac < prec && !overflow; nfrac++ {
		x *= 10
		overflow = x > limit
	}
	if overflow {
		return 0, ErrRange
	}
	if neg {
		x = -x
	}
	return x, nil
}
