// Package sanitizer provides the normalization helpers applied to record
// fields once they have passed validation.
//
// The helpers are grouped in two areas:
//
//   - Strings – trimming, whitespace collapsing and case conversion (upper
//     case for codes, title case for personal names).
//
//   - Numeric – rounding floating-point values to a fixed number of decimal
//     places, used for monetary amounts and derived ratios.
//
// All helpers are pure functions. Apply and Compose chain them into
// pipelines:
//
//	name := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveExtraWhitespace,
//	    sanitizer.TitleCase,
//	)
//
//	name("  amtoj   SINGH ") // "Amtoj Singh"
//
// Every helper is idempotent: feeding a sanitized value back produces the
// same value.
package sanitizer
