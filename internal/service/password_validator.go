package service

import (
	"unicode"

	"classdesk/internal/errors"
)

// minPasswordLength is the shortest password the policy accepts.
const minPasswordLength = 8

// PasswordValidator enforces the registration password policy.
type PasswordValidator struct{}

// NewPasswordValidator creates a new password validator.
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{}
}

// Validate checks the policy: at least 8 characters, at least one
// uppercase letter and at least one lowercase letter.
func (v *PasswordValidator) Validate(password string) error {
	if len(password) < minPasswordLength {
		return errors.ErrWeakPassword
	}

	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}

	if !hasUpper || !hasLower {
		return errors.ErrWeakPassword
	}
	return nil
}
