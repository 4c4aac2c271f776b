package validator

// Kind classifies a validation failure.
type Kind string

const (
	KindMissingField         Kind = "missing_field"
	KindTypeMismatch         Kind = "type_mismatch"
	KindOutOfRange           Kind = "out_of_range"
	KindFormatMismatch       Kind = "format_mismatch"
	KindUnknownReferenceCode Kind = "unknown_reference_code"
	KindInconsistentOrdering Kind = "inconsistent_ordering"
	KindDivisionByZero       Kind = "division_by_zero"
	// KindUnexpected marks faults no check anticipated. Checks in this
	// package never produce it.
	KindUnexpected Kind = "unexpected_error"
)

func (k Kind) String() string {
	return string(k)
}

// Recognized reports whether k belongs to the anticipated failure taxonomy.
func (k Kind) Recognized() bool {
	switch k {
	case KindMissingField, KindTypeMismatch, KindOutOfRange, KindFormatMismatch,
		KindUnknownReferenceCode, KindInconsistentOrdering, KindDivisionByZero:
		return true
	default:
		return false
	}
}
