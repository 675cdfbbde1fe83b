// Package unit provides fixed-point specifications for common electrical and
// environmental quantities.
//
// Each unit is the representation of its quantity on the wire, e.g. a Volt
// holds tenths of a volt. The methods implementing [fixed.Spec], an alias for
// the fixed-point value and raw (R) and float (F) constructors are generated
// by mkunit.go.
package unit

//go:generate go run mkunit.go Volt int32 1 V Voltage
type Volt int32

//go:generate go run mkunit.go PreciseVolt int32 3 V LowVoltage
type PreciseVolt int32

//go:generate go run mkunit.go Amp int32 1 A Current
type Amp int32

//go:generate go run mkunit.go Watt int32 0 W Power
type Watt int32

//go:generate go run mkunit.go KiloWatt int32 1 kW KiloPower
type KiloWatt int32

//go:generate go run mkunit.go KiloWattHour int32 2 kWh Energy
type KiloWattHour int32

//go:generate go run mkunit.go MilliOhm int32 3 Ω Resistance
type MilliOhm int32

//go:generate go run mkunit.go Celsius int16 2 °C Temperature
type Celsius int16

//go:generate go run mkunit.go Percent uint16 1 % Ratio
type Percent uint16
