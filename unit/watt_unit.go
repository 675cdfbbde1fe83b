package unit

import "github.com/clktmr/fixedpoint/fixed"

// Power is a quantity in W with precision 0.
type Power = fixed.Value[Watt]

func (Watt) Precision() uint8 { return 0 }
func (Watt) Symbol() string   { return "W" }

func WattR(raw Watt) Power           { return fixed.FromRepr(raw) }
func WattF(f float32) (Power, error) { return fixed.New[Watt](f) }
