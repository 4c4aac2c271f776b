package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InSet validates that value is one of allowed.
func InSet(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindUnknownReferenceCode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
			Params: map[string]any{
				"field":          field,
				"value":          value,
				"allowed_values": allowed,
			},
		},
	}
}

// InCatalog validates that lookup knows code.
func InCatalog(field, code string, lookup func(string) (string, bool)) Rule {
	return Rule{
		Check: func() bool {
			_, ok := lookup(code)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindUnknownReferenceCode,
			Message: fmt.Sprintf("has unknown code %q", code),
			Params: map[string]any{
				"field": field,
				"value": code,
			},
		},
	}
}

// When returns rule if cond holds, otherwise a rule that always passes.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{
		Check: func() bool { return true },
		Error: rule.Error,
	}
}
