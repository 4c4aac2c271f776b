package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies transforms in sequence",
			input: "  mn  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToUpper,
			},
			expected: "MN",
		},
		{
			name:       "no transforms returns input",
			input:      "as is",
			transforms: nil,
			expected:   "as is",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.RemoveExtraWhitespace, sanitizer.TitleCase)
	assert.Equal(t, "Short Password", clean("  short    password "))

	round := sanitizer.Compose(func(f float64) float64 { return f * 2 }, sanitizer.Money)
	assert.InDelta(t, 6.67, round(3.333), 1e-9)
}
