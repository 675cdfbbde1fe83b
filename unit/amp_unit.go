package unit

import "github.com/clktmr/fixedpoint/fixed"

// Current is a quantity in A with precision 1.
type Current = fixed.Value[Amp]

func (Amp) Precision() uint8 { return 1 }
func (Amp) Symbol() string   { return "A" }

func AmpR(raw Amp) Current            { return fixed.FromRepr(raw) }
func AmpF(f float32) (Current, error) { return fixed.New[Amp](f) }
