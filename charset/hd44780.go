// Package charset implements the character ROM of HD44780 compatible
// character LCDs as an x/text encoding, so fixed-point readings and their
// unit symbols can be written to such displays.
package charset

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/clktmr/fixedpoint/fixed"
)

const rcd = '�' // decoding replacement character

const rce = '?' // encoding replacement character

// ROM code A00 beyond ASCII. 0x5c and 0x7e-0x7f differ from ASCII.
var a00 = map[byte]rune{
	0x5c: '¥', 0x7e: '→', 0x7f: '←',
	0xdf: '°', 0xe0: 'α', 0xe2: 'β', 0xe3: 'ε', 0xe4: 'µ', 0xe5: 'σ', 0xe6: 'ρ',
	0xf2: 'θ', 0xf3: '∞', 0xf4: 'Ω', 0xf6: 'Σ', 0xf7: 'π', 0xfd: '÷', 0xff: '█',
}

var decode [256]rune

var encode = map[rune]byte{
	'\u03bc': 0xe4, // GREEK SMALL LETTER MU
	'\u2126': 0xf4, // OHM SIGN
}

func init() {
	for i := range decode {
		decode[i] = rcd
	}
	for c := byte(0x20); c < 0x7e; c++ {
		decode[c] = rune(c)
	}
	for c, r := range a00 {
		decode[c] = r
	}
	for c, r := range decode {
		if r != rcd {
			encode[r] = byte(c)
		}
	}
}

type charmap struct{}

// HD44780 is the encoding of the A00 (Japanese) character ROM. Characters
// missing from the ROM are encoded as '?'. The CGRAM codes 0x00 to 0x0f and
// the unassigned codes decode to U+FFFD.
var HD44780 encoding.Encoding = &charmap{}

func (m *charmap) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{}}
}

func (m *charmap) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{}}
}

type decoder struct{ transform.NopResetter }

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, c := range src {
		r := decode[c]
		if utf8.RuneLen(r) > len(dst)-nDst {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return
}

type encoder struct{ transform.NopResetter }

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				break
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		c, ok := encode[r]
		if !ok {
			c = rce
		}
		dst[nDst] = c
		nDst++
		nSrc += size
	}
	return
}

// Label returns v followed by its unit symbol in ROM codes, e.g. "230.4V".
func Label[R fixed.Spec](v fixed.Value[R]) ([]byte, error) {
	return HD44780.NewEncoder().Bytes([]byte(v.String() + fixed.Symbol[R]()))
}

// Pad right-aligns b in a field of width characters. b is returned unchanged
// if it's already wider.
func Pad(b []byte, width int) []byte {
	if len(b) >= width {
		return b
	}
	return append(bytes.Repeat([]byte{' '}, width-len(b)), b...)
}
