package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("P@ssword1")
	require.NoError(t, err)
	assert.NotEqual(t, "P@ssword1", hash)

	assert.True(t, VerifyPassword(hash, "P@ssword1"))
	assert.False(t, VerifyPassword(hash, "p@ssword1"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "P@ssword1", nil},
		{"too short", "P@s1", ErrPasswordTooShort},
		{"no uppercase", "p@ssword1", ErrPasswordNoUpper},
		{"no lowercase", "P@SSWORD1", ErrPasswordNoLower},
		{"no number", "P@ssword!", ErrPasswordNoNumber},
		{"no special char", "Password1", ErrPasswordNoSpecialChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
