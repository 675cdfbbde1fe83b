package unit

import "github.com/clktmr/fixedpoint/fixed"

// LowVoltage is a quantity in V with precision 3.
type LowVoltage = fixed.Value[PreciseVolt]

func (PreciseVolt) Precision() uint8 { return 3 }
func (PreciseVolt) Symbol() string   { return "V" }

func PreciseVoltR(raw PreciseVolt) LowVoltage    { return fixed.FromRepr(raw) }
func PreciseVoltF(f float32) (LowVoltage, error) { return fixed.New[PreciseVolt](f) }
