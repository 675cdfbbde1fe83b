package unit

import "github.com/clktmr/fixedpoint/fixed"

// KiloPower is a quantity in kW with precision 1.
type KiloPower = fixed.Value[KiloWatt]

func (KiloWatt) Precision() uint8 { return 1 }
func (KiloWatt) Symbol() string   { return "kW" }

func KiloWattR(raw KiloWatt) KiloPower       { return fixed.FromRepr(raw) }
func KiloWattF(f float32) (KiloPower, error) { return fixed.New[KiloWatt](f) }
