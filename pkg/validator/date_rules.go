package validator

import (
	"fmt"
	"time"
)

// DateOrder validates that start is not after end. The failure is reported
// against endField.
func DateOrder(startField, endField string, start, end time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !end.Before(start)
		},
		Error: ValidationError{
			Field:   endField,
			Kind:    KindInconsistentOrdering,
			Message: fmt.Sprintf("must be on or after %s", startField),
			Params: map[string]any{
				"field": endField,
				"start": startField,
			},
		},
	}
}

// DateRange coerces a start/end pair with Date and checks their order. Both
// failures are KindInconsistentOrdering: a value that is not a date fails the
// pair as a whole.
func DateRange(startField, endField string, start, end any) (time.Time, time.Time, error) {
	s, startErr := Date(startField, start)
	e, endErr := Date(endField, end)
	if startErr != nil || endErr != nil {
		return time.Time{}, time.Time{}, ValidationError{
			Field:   startField + " and " + endField,
			Kind:    KindInconsistentOrdering,
			Message: "must be dates",
			Params: map[string]any{
				"start": startField,
				"end":   endField,
			},
		}
	}
	if err := First(DateOrder(startField, endField, s, e)); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}
