// Package report renders batch results for people and machines.
//
// Text prints the accepted records, the rejected records with their reasons
// and a one-line summary:
//
//	=== GOOD RECORDS ===
//	- Amtoj Singh | amtoj@example.com | age=24 | US IL | balance=$125.75 | 2025-09-01 -> 2025-12-15
//
//	=== BAD RECORDS (reason) ===
//	- Bad Email: email must be a valid email address
//
//	Summary: 1 good, 1 bad, total 2
//
// JSON writes the Document returned by Build. Passwords and raw inputs are
// never part of either output.
package report
