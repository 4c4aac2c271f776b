// Package record validates a single loosely-typed input record and turns it
// into a canonical Normalized value.
//
// Validation runs a fixed sequence of checks and stops at the first one that
// fails, so every rejected record carries exactly one reason:
//
//  1. name is present
//  2. email has a valid shape
//  3. age is an integer within the configured range
//  4. balance is a number, not negative and within the maximum
//  5. password is long enough
//  6. course_code, when given, exists in the catalog
//  7. for domestic records, state is an allowed region
//  8. start_date and end_date are dates and correctly ordered
//  9. the optional GPA ratio has a non-zero denominator and is in range
//
// The failure is a validator.ValidationError whose Kind identifies the
// category. On success the normalized record has a title-cased name,
// upper-cased codes, money rounded to cents and derived fields filled in
// (course title, GPA). Non-domestic records always get an empty state.
//
// A Validator holds only immutable configuration and reference tables and is
// safe for concurrent use.
package record
