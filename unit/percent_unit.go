package unit

import "github.com/clktmr/fixedpoint/fixed"

// Ratio is a quantity in % with precision 1.
type Ratio = fixed.Value[Percent]

func (Percent) Precision() uint8 { return 1 }
func (Percent) Symbol() string   { return "%" }

func PercentR(raw Percent) Ratio        { return fixed.FromRepr(raw) }
func PercentF(f float32) (Ratio, error) { return fixed.New[Percent](f) }
