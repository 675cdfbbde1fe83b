package unit

import "github.com/clktmr/fixedpoint/fixed"

// Resistance is a quantity in Ω with precision 3.
type Resistance = fixed.Value[MilliOhm]

func (MilliOhm) Precision() uint8 { return 3 }
func (MilliOhm) Symbol() string   { return "Ω" }

func MilliOhmR(raw MilliOhm) Resistance       { return fixed.FromRepr(raw) }
func MilliOhmF(f float32) (Resistance, error) { return fixed.New[MilliOhm](f) }
