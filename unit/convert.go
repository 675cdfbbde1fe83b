package unit

import "github.com/clktmr/fixedpoint/fixed"

// KiloWatts converts p to kilowatts, rounded to the precision of KiloWatt.
// It's meant for displaying large power readings.
func KiloWatts(p Power) (KiloPower, error) {
	return fixed.New[KiloWatt](p.Float() * 0.001)
}
