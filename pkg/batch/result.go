package batch

import (
	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/validator"
)

// Failure describes one rejected record.
type Failure struct {
	// Index is the 0-based position of the record in the batch.
	Index  int
	ID     string
	Kind   validator.Kind
	Reason string
	// Record is the rejected input, unchanged.
	Record record.Raw
}

// Unexpected reports whether the failure came from an unanticipated fault
// rather than a validation rule.
func (f Failure) Unexpected() bool {
	return f.Kind == validator.KindUnexpected
}

// Result is the partitioned outcome of a batch. Both slices are in input order.
type Result struct {
	BatchID  string
	Accepted []record.Normalized
	Failures []Failure
}

func (r Result) Total() int {
	return len(r.Accepted) + len(r.Failures)
}

func (r Result) AcceptedCount() int {
	return len(r.Accepted)
}

func (r Result) FailedCount() int {
	return len(r.Failures)
}
