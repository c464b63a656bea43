package shortid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := NewCode()
		assert.NoError(t, err)
		assert.Len(t, code, CodeLength)
		for _, r := range code {
			assert.Contains(t, Charset, string(r))
		}
		assert.True(t, ValidCode(code))
		seen[code] = true
	}
	// Uniform sampling over 36^6 should essentially never collide in a
	// thousand draws.
	assert.Greater(t, len(seen), 990)
}

func TestNewUserID(t *testing.T) {
	id, err := NewUserID()
	assert.NoError(t, err)
	assert.Len(t, id, len("user_")+10)
	assert.True(t, strings.HasPrefix(id, "user_"))
	for _, r := range strings.TrimPrefix(id, "user_") {
		assert.Contains(t, Charset, string(r))
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"lowercase alphanumeric", "abc123", true},
		{"all letters", "abcdef", true},
		{"all digits", "012345", true},
		{"too short", "abc12", false},
		{"too long", "abc1234", false},
		{"uppercase", "ABC123", false},
		{"mixed case and underscore", "AB12_3", false},
		{"empty", "", false},
		{"whitespace", "abc 12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCode(tt.code))
		})
	}
}
