package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "classdesk/internal/errors"
)

func TestPasswordValidator_Validate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"meets policy", "Abcdefgh", nil},
		{"meets policy with digits", "Passw0rd1", nil},
		{"too short", "short", apperrors.ErrWeakPassword},
		{"seven chars mixed case", "Abcdefg", apperrors.ErrWeakPassword},
		{"no uppercase", "alllowercase1", apperrors.ErrWeakPassword},
		{"no lowercase", "ALLUPPERCASE1", apperrors.ErrWeakPassword},
		{"digits only", "12345678", apperrors.ErrWeakPassword},
		{"empty", "", apperrors.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPasswordValidator().Validate(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
