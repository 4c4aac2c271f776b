package validator

import "math"

// Ratio divides num by den. A zero denominator is reported as a
// KindDivisionByZero failure on field instead of producing Inf or NaN.
func Ratio(field string, num, den float64) (float64, error) {
	if den == 0 {
		return 0, ValidationError{
			Field:   field,
			Kind:    KindDivisionByZero,
			Message: "denominator cannot be zero",
			Params: map[string]any{
				"field": field,
			},
		}
	}

	r := num / den
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, ValidationError{
			Field:   field,
			Kind:    KindOutOfRange,
			Message: "is not a finite number",
			Params: map[string]any{
				"field": field,
			},
		}
	}
	return r, nil
}
