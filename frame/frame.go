// Package frame encodes three-phase readings into short checksummed frames,
// e.g. for sending meter telemetry over a UART.
//
// A frame consists of a presence mask with one bit per phase, the raw values
// of L1, L2 and L3 in big-endian byte order and a CRC-8 over all preceding
// bytes. Phases out of service are encoded as zero.
package frame

import (
	"errors"

	"github.com/sigurn/crc8"

	"github.com/clktmr/fixedpoint/debug"
	"github.com/clktmr/fixedpoint/fixed"
	"github.com/clktmr/fixedpoint/phases"
)

var (
	ErrHeader     = errors.New("invalid presence mask")
	ErrChecksum   = errors.New("checksum mismatch")
	ErrDataLength = errors.New("invalid data length")
)

var smbusCRC8 = crc8.MakeTable(crc8.Params{
	Poly:   0x07,
	Init:   0x00,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x00,
	Check:  0xF4,
	Name:   "CRC-8/SMBUS",
})

const maskAll = 1<<3 - 1

// Len returns the size of a frame carrying values of R.
func Len[R fixed.Spec]() int {
	return 2 + 3*fixed.Size[R]()
}

// Append appends the frame encoding p to dst and returns the extended
// buffer.
func Append[R fixed.Spec](dst []byte, p phases.Opt[fixed.Value[R]]) []byte {
	start := len(dst)
	var mask byte
	for i, ph := range p {
		if ph.Valid {
			mask |= 1 << i
		}
	}
	dst = append(dst, mask)
	for _, ph := range p {
		v := ph.Value
		if !ph.Valid {
			v = fixed.Value[R]{}
		}
		var err error
		dst, err = v.AppendBinary(dst)
		debug.AssertErrNil(err)
	}
	debug.Assert(len(dst)-start == Len[R]()-1, "frame: payload size mismatch")
	return append(dst, crc8.Checksum(dst[start:], smbusCRC8))
}

// Decode decodes a single frame, which must span all of b.
func Decode[R fixed.Spec](b []byte) (p phases.Opt[fixed.Value[R]], err error) {
	if len(b) != Len[R]() {
		return p, ErrDataLength
	}
	n := len(b) - 1
	if crc8.Checksum(b[:n], smbusCRC8) != b[n] {
		return p, ErrChecksum
	}
	mask := b[0]
	if mask&^maskAll != 0 {
		return p, ErrHeader
	}

	size := fixed.Size[R]()
	for i := range p {
		off := 1 + i*size
		if mask&(1<<i) == 0 {
			continue
		}
		var v fixed.Value[R]
		if err = v.UnmarshalBinary(b[off : off+size]); err != nil {
			return phases.Opt[fixed.Value[R]]{}, err
		}
		p = p.With(i, v)
	}
	return p, nil
}
