package fixed

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON encodes v as its bare raw integer.
func (v Value[R]) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(v.r), 10), nil
}

// UnmarshalJSON decodes a raw integer. Integers outside of R's range are
// rejected by encoding/json. A JSON string is parsed like
// [Value.UnmarshalText], which is how encoding/json passes map keys.
func (v *Value[R]) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return v.UnmarshalText([]byte(s))
	}
	return json.Unmarshal(b, &v.r)
}

// MarshalText encodes v in decimal notation like [Value.String].
func (v Value[R]) MarshalText() ([]byte, error) {
	return v.appendDecimal(nil), nil
}

// UnmarshalText parses the decimal notation like [Parse].
func (v *Value[R]) UnmarshalText(b []byte) error {
	w, err := Parse[R](string(b))
	if err != nil {
		return err
	}
	*v = w
	return nil
}

// AppendBinary appends the raw value in big-endian byte order, using exactly
// [Size] bytes.
func (v Value[R]) AppendBinary(b []byte) ([]byte, error) {
	u := uint32(v.r)
	for i := Size[R]() - 1; i >= 0; i-- {
		b = append(b, byte(u>>(8*i)))
	}
	return b, nil
}

// MarshalBinary encodes v like [Value.AppendBinary].
func (v Value[R]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, Size[R]()))
}

// UnmarshalBinary decodes a raw value written by MarshalBinary.
func (v *Value[R]) UnmarshalBinary(b []byte) error {
	if len(b) != Size[R]() {
		return fmt.Errorf("%w: %d bytes for %d byte %s", ErrDataLength, len(b), Size[R](), Symbol[R]())
	}
	var u uint32
	for _, c := range b {
		u = u<<8 | uint32(c)
	}
	v.r = R(u)
	return nil
}
