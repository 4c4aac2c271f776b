// Package reference holds the read-only lookup tables consulted by record
// validation: the region codes accepted for domestic records, the course
// catalog used for code-to-title lookups, and the country code that marks a
// record as domestic.
//
// Tables are built once, either from Go values with New, from the built-in
// Default, or from a YAML/JSON document with ParseYAML, ParseJSON or
// LoadFile, and are never modified afterwards. Accessors hand out copies, so
// a single Tables value can be shared by concurrent validators.
//
// # Document format
//
//	domestic: US
//	regions: [IL, WI, IN, MI, IA, MN, MO, OH]
//	catalog:
//	  CIS216: Applied Object-Oriented Programming
//	  CIS143: Introduction to Databases
//
// All codes are trimmed and upper-cased on load.
package reference
