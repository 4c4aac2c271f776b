package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "removes surrounding spaces", input: "  hello  ", expected: "hello"},
		{name: "removes tabs and newlines", input: "\t\nhello\n\t", expected: "hello"},
		{name: "keeps inner spaces", input: " a b ", expected: "a b"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "IL", sanitizer.Code(" il "))
	assert.Equal(t, "CIS216", sanitizer.Code("cis216"))
	assert.Equal(t, "", sanitizer.Code("   "))
	assert.Equal(t, "US", sanitizer.ToUpper("us"))
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lower case words", input: "amtoj singh", expected: "Amtoj Singh"},
		{name: "upper case words", input: "WRONG STATE", expected: "Wrong State"},
		{name: "mixed case", input: "iNTL sTUDENT", expected: "Intl Student"},
		{name: "already titled", input: "Too Old", expected: "Too Old"},
		{name: "punctuation", input: "negative balance / bad dates", expected: "Negative Balance / Bad Dates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := sanitizer.TitleCase(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, sanitizer.TitleCase(got), "title case must be idempotent")
		})
	}
}

func TestRemoveExtraWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.RemoveExtraWhitespace("  a   b\t\nc "))
	assert.Equal(t, "", sanitizer.RemoveExtraWhitespace(" \t "))
}

func TestPersonName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Amtoj Singh", sanitizer.PersonName("  amtoj    SINGH "))
	assert.Equal(t, "Amtoj Singh", sanitizer.PersonName("Amtoj Singh"))
}
