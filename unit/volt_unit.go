package unit

import "github.com/clktmr/fixedpoint/fixed"

// Voltage is a quantity in V with precision 1.
type Voltage = fixed.Value[Volt]

func (Volt) Precision() uint8 { return 1 }
func (Volt) Symbol() string   { return "V" }

func VoltR(raw Volt) Voltage           { return fixed.FromRepr(raw) }
func VoltF(f float32) (Voltage, error) { return fixed.New[Volt](f) }
