package source

import (
	"time"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Demo returns the six-record sample batch: one valid record followed by a
// short password, a malformed email, an out-of-range age, a region outside
// the allowed set, and a negative balance with inverted dates.
func Demo() []record.Raw {
	return []record.Raw{
		{
			"name":       "Amtoj Singh",
			"email":      "sa48190@mail.harpercollege.edu",
			"age":        24,
			"balance":    125.75,
			"password":   "StrongPass1",
			"country":    "US",
			"state":      "IL",
			"start_date": day(2025, 9, 1),
			"end_date":   day(2025, 12, 15),
		},
		{
			"name":       "Short Password",
			"email":      "ok@example.com",
			"age":        20,
			"balance":    10,
			"password":   "short",
			"country":    "US",
			"state":      "IL",
			"start_date": day(2025, 9, 1),
			"end_date":   day(2025, 12, 15),
		},
		{
			"name":       "Bad Email",
			"email":      "not-an-email",
			"age":        19,
			"balance":    0,
			"password":   "abcdefgh",
			"country":    "US",
			"state":      "WI",
			"start_date": day(2025, 9, 1),
			"end_date":   day(2025, 12, 15),
		},
		{
			"name":       "Too Old",
			"email":      "too.old@example.com",
			"age":        200,
			"balance":    10,
			"password":   "abcdefgh",
			"country":    "US",
			"state":      "IL",
			"start_date": day(2025, 9, 1),
			"end_date":   day(2025, 12, 15),
		},
		{
			"name":       "Wrong State",
			"email":      "ws@example.com",
			"age":        22,
			"balance":    5.5,
			"password":   "abcdefgh",
			"country":    "US",
			"state":      "CA",
			"start_date": day(2025, 9, 1),
			"end_date":   day(2025, 12, 15),
		},
		{
			"name":       "Negative Balance / Bad Dates",
			"email":      "nb@example.com",
			"age":        30,
			"balance":    -3.14,
			"password":   "abcdefgh",
			"country":    "CA",
			"state":      "",
			"start_date": day(2025, 9, 10),
			"end_date":   day(2025, 9, 9),
		},
	}
}
