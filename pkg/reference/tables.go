package reference

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/recordkit/pkg/sanitizer"
)

// DefaultDomestic is the country code that enables the region check.
const DefaultDomestic = "US"

// Tables is an immutable set of lookup tables. The zero value has no regions,
// no catalog entries and no domestic country.
type Tables struct {
	domestic string
	regions  []string
	catalog  map[string]string
}

// New builds Tables from the given values. Codes are trimmed and upper-cased,
// duplicate regions are dropped and blank codes are ignored. The inputs are
// copied, so later changes by the caller are not observed.
func New(domestic string, regions []string, catalog map[string]string) Tables {
	t := Tables{
		domestic: sanitizer.Code(domestic),
		regions:  make([]string, 0, len(regions)),
		catalog:  make(map[string]string, len(catalog)),
	}

	for _, r := range regions {
		if code := sanitizer.Code(r); code != "" {
			t.regions = append(t.regions, code)
		}
	}
	slices.Sort(t.regions)
	t.regions = slices.Compact(t.regions)

	for code, title := range catalog {
		if c := sanitizer.Code(code); c != "" {
			t.catalog[c] = sanitizer.Trim(title)
		}
	}

	return t
}

// Default returns the built-in tables: a small Midwest region sample, the CIS
// course catalog and "US" as the domestic country.
func Default() Tables {
	return New(
		DefaultDomestic,
		[]string{"IL", "WI", "IN", "MI", "IA", "MN", "MO", "OH"},
		map[string]string{
			"CIS216": "Applied Object-Oriented Programming",
			"CIS143": "Introduction to Databases",
			"CIS101": "Intro to Computer Information Systems",
		},
	)
}

// Domestic returns the country code that marks a record as domestic.
func (t Tables) Domestic() string {
	return t.domestic
}

// IsDomestic reports whether country equals the domestic sentinel.
func (t Tables) IsDomestic(country string) bool {
	return t.domestic != "" && country == t.domestic
}

// Regions returns a sorted copy of the allowed region codes.
func (t Tables) Regions() []string {
	return slices.Clone(t.regions)
}

// CourseTitle returns the catalog title for code.
func (t Tables) CourseTitle(code string) (string, bool) {
	title, ok := t.catalog[code]
	return title, ok
}

// Catalog returns a copy of the course catalog.
func (t Tables) Catalog() map[string]string {
	return maps.Clone(t.catalog)
}
