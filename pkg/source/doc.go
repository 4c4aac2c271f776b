// Package source decodes batches of raw records from JSON or YAML documents
// and provides the built-in demonstration batch.
//
// A document is a top-level array of objects, one object per record:
//
//	[
//	  {"name": "Amtoj Singh", "email": "amtoj.singh@example.com", "age": 24, ...},
//	  {"name": "Bad Email", "email": "not-an-email", ...}
//	]
//
// JSON numbers are decoded as json.Number so that integer and fractional
// literals stay distinguishable for the age type check ("age": 20 passes,
// "age": 20.5 does not). Dates are plain "YYYY-MM-DD" strings in both
// formats. Empty input decodes to an empty batch.
package source
