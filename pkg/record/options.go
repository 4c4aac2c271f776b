package record

// Option configures a Validator.
type Option func(*Validator)

// WithAgeRange sets the inclusive age bounds. Defaults to [0, 110].
func WithAgeRange(min, max int) Option {
	return func(v *Validator) {
		v.ageMin, v.ageMax = min, max
	}
}

// WithMinPasswordLength sets the minimum password length in characters.
// Defaults to 8. Values below 1 are ignored.
func WithMinPasswordLength(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.minPassword = n
		}
	}
}

// WithGPARange sets the inclusive bounds for the derived GPA. Defaults to [0, 4].
func WithGPARange(min, max float64) Option {
	return func(v *Validator) {
		v.gpaMin, v.gpaMax = min, max
	}
}

// WithMaxBalance sets the largest accepted balance. Defaults to 1e13.
// Values that are not positive are ignored.
func WithMaxBalance(max float64) Option {
	return func(v *Validator) {
		if max > 0 {
			v.maxBalance = max
		}
	}
}
