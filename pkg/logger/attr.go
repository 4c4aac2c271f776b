package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// BatchID records the batch identifier under the key "batch_id".
func BatchID(id string) slog.Attr {
	return slog.String("batch_id", id)
}

// RecordID records the record identifier under the key "record_id".
func RecordID(id string) slog.Attr {
	return slog.String("record_id", id)
}

// RecordIndex records the 0-based batch position under the key "record_index".
func RecordIndex(i int) slog.Attr {
	return slog.Int("record_index", i)
}

// Kind records a failure category under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Reason records a failure reason under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Counts groups batch totals under the key "counts".
func Counts(total, accepted, failed int) slog.Attr {
	return Group("counts",
		slog.Int("total", total),
		slog.Int("accepted", accepted),
		slog.Int("failed", failed),
	)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
