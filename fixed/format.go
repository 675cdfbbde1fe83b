package fixed

import (
	"fmt"
	"log/slog"
	"strconv"
)

// String returns v in decimal notation with exactly Precision fractional
// digits, e.g. "-0.05" for raw -5 and precision 2.
func (v Value[R]) String() string {
	var buf [24]byte
	return string(v.appendDecimal(buf[:0]))
}

// AppendText implements [encoding.TextAppender].
func (v Value[R]) AppendText(b []byte) ([]byte, error) {
	return v.appendDecimal(b), nil
}

func (v Value[R]) appendDecimal(b []byte) []byte {
	x := int64(v.r)
	if x < 0 {
		b = append(b, '-')
		x = -x
	}
	var buf [20]byte
	digits := strconv.AppendInt(buf[:0], x, 10)

	p := Precision[R]()
	if p == 0 {
		return append(b, digits...)
	}
	i := len(digits) - p // integer digits
	if i <= 0 {
		b = append(b, '0', '.')
		for ; i < 0; i++ {
			b = append(b, '0')
		}
		return append(b, digits...)
	}
	b = append(b, digits[:i]...)
	b = append(b, '.')
	return append(b, digits[i:]...)
}

// GoString returns v as raw value, scale and unit, e.g. "501/100 kWh".
func (v Value[R]) GoString() string {
	return fmt.Sprintf("%d/%d %s", int64(v.r), Scale[R](), Symbol[R]())
}

// Format implements [fmt.Formatter]. The verbs %v and %s print the decimal
// notation, %+v and %#v print the GoString form, %d prints the raw value and
// %e, %f and %g print the float value.
func (v Value[R]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			fmt.Fprint(f, v.GoString())
			return
		}
		fallthrough
	case 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), v.String())
	case 'd':
		fmt.Fprintf(f, fmt.FormatString(f, 'd'), int64(v.r))
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.Float())
	default:
		fmt.Fprintf(f, "%%!%c(fixed.Value=%s)", verb, v.String())
	}
}

// LogValue implements [slog.LogValuer]. It logs the raw value together with
// the scale and unit, so no precision is lost in log records.
func (v Value[R]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("raw", int64(v.r)),
		slog.Int64("scale", int64(Scale[R]())),
		slog.String("unit", Symbol[R]()),
	)
}
