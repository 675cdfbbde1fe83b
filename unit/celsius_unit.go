package unit

import "github.com/clktmr/fixedpoint/fixed"

// Temperature is a quantity in °C with precision 2.
type Temperature = fixed.Value[Celsius]

func (Celsius) Precision() uint8 { return 2 }
func (Celsius) Symbol() string   { return "°C" }

func CelsiusR(raw Celsius) Temperature        { return fixed.FromRepr(raw) }
func CelsiusF(f float32) (Temperature, error) { return fixed.New[Celsius](f) }
