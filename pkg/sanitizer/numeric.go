package sanitizer

import "math"

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// RoundToDecimalPlaces rounds a floating-point number to the specified number of decimal places.
// Values too large to scale are returned unchanged.
func RoundToDecimalPlaces[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}

	multiplier := math.Pow(10, float64(places))
	scaled := float64(value) * multiplier
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return value
	}
	return T(math.Round(scaled) / multiplier)
}

// Money rounds an amount to cents. Negative zero becomes zero.
func Money(value float64) float64 {
	rounded := RoundToDecimalPlaces(value, 2)
	if rounded == 0 {
		return 0
	}
	return rounded
}
