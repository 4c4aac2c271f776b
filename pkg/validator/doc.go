// Package validator provides the field-level checks used by the record
// pipeline: one small, pure function per validation concern.
//
// Every check either returns a Rule (a boolean Check function paired with a
// ValidationError describing the failure) or, for type coercions, returns the
// coerced value together with a ValidationError. There is no global state and
// no registration step, so the package is stateless and goroutine-safe.
//
// # Categories
//
// Each ValidationError carries a Kind naming the category that failed:
//
//   - KindMissingField         – Required
//   - KindTypeMismatch         – Int, Float, Date
//   - KindOutOfRange           – MinNum, MaxNum, Between, NonNegative, MinLen
//   - KindFormatMismatch       – ValidEmail
//   - KindUnknownReferenceCode – InSet, InCatalog
//   - KindInconsistentOrdering – DateOrder, DateRange
//   - KindDivisionByZero       – Ratio
//   - KindUnexpected           – reserved for callers wrapping unanticipated faults
//
// # Usage
//
// Records are validated fail-fast with First, which evaluates rules lazily in
// order and stops at the first violation:
//
//	err := validator.First(
//	    validator.Required("name", name),
//	    validator.ValidEmail("email", email),
//	)
//	if err != nil {
//	    fmt.Println(validator.KindOf(err), err) // format_mismatch email must be a valid email address
//	}
//
// Apply evaluates every rule and aggregates the failures into
// ValidationErrors. It suits configuration checks where reporting every
// problem at once is more useful than stopping early.
//
// # Error Handling
//
// ValidationError and ValidationErrors both implement error. Use
// ExtractValidationError, ExtractValidationErrors and KindOf instead of type
// switches so wrapped errors are handled through errors.As.
package validator
