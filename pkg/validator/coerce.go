package validator

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the textual date form accepted by Date.
const DateLayout = "2006-01-02"

// int64er and float64er match number literals kept verbatim by decoders
// (json.Number from both encoding/json and goccy/go-json).
type int64er interface {
	Int64() (int64, error)
}

type float64er interface {
	Float64() (float64, error)
}

// Int coerces value to an int. Only integer kinds and integral number
// literals are accepted: strings, floats and booleans are type mismatches
// even when they look like whole numbers.
func Int(field string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			break
		}
		return int(v), nil
	case uint:
		if v > math.MaxInt {
			break
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			break
		}
		return int(v), nil
	case int64er:
		if n, err := v.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
	}
	return 0, typeMismatch(field, "integer", "must be an integer")
}

// Float coerces value to a finite float64. Integers, floats, number literals
// and numeric strings are accepted.
func Float(field string, value any) (float64, error) {
	var (
		f  float64
		ok bool
	)

	switch v := value.(type) {
	case float64:
		f, ok = v, true
	case float32:
		f, ok = float64(v), true
	case int:
		f, ok = float64(v), true
	case int8:
		f, ok = float64(v), true
	case int16:
		f, ok = float64(v), true
	case int32:
		f, ok = float64(v), true
	case int64:
		f, ok = float64(v), true
	case uint:
		f, ok = float64(v), true
	case uint8:
		f, ok = float64(v), true
	case uint16:
		f, ok = float64(v), true
	case uint32:
		f, ok = float64(v), true
	case uint64:
		f, ok = float64(v), true
	case float64er:
		if n, err := v.Float64(); err == nil {
			f, ok = n, true
		}
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			f, ok = n, true
		}
	}

	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, typeMismatch(field, "number", "must be a number")
	}
	return f, nil
}

// Date coerces value to a calendar date at midnight UTC. time.Time values and
// strings in DateLayout form are accepted; the time-of-day part is dropped.
func Date(field string, value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		if !v.IsZero() {
			return truncateDate(v), nil
		}
	case *time.Time:
		if v != nil && !v.IsZero() {
			return truncateDate(*v), nil
		}
	case string:
		if t, err := time.Parse(DateLayout, strings.TrimSpace(v)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, typeMismatch(field, "date", "must be a date")
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func typeMismatch(field, typ, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Kind:    KindTypeMismatch,
		Message: message,
		Params: map[string]any{
			"field": field,
			"type":  typ,
		},
	}
}
