package unit

import "github.com/clktmr/fixedpoint/fixed"

// Energy is a quantity in kWh with precision 2.
type Energy = fixed.Value[KiloWattHour]

func (KiloWattHour) Precision() uint8 { return 2 }
func (KiloWattHour) Symbol() string   { return "kWh" }

func KiloWattHourR(raw KiloWattHour) Energy   { return fixed.FromRepr(raw) }
func KiloWattHourF(f float32) (Energy, error) { return fixed.New[KiloWattHour](f) }
