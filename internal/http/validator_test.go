package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateISBN(t *testing.T) {
	type isbnOnly struct {
		ISBN string `validate:"isbn"`
	}

	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"isbn-13", "9780451524935", true},
		{"isbn-13 with dashes", "978-0-451-52493-5", true},
		{"isbn-10", "0451524934", true},
		{"isbn-10 with X check digit", "043942089X", true},
		{"too short", "12345", false},
		{"letters", "97804515249ab", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateStruct(isbnOnly{ISBN: tt.isbn})
			if tt.valid {
				assert.Empty(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

func TestValidateStruct_FieldDetails(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
		Title string `validate:"required,max=50"`
	}

	details := ValidateStruct(req{Email: "nope"})
	assert.Len(t, details, 2)

	fields := map[string]string{}
	for _, d := range details {
		fields[d.Field] = d.Message
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields["email"], "valid email")
	assert.Contains(t, fields["title"], "required")
}
