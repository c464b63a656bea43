// Package shortid generates the random identifiers used across the
// platform: 6-character instruction short codes and user id suffixes,
// both drawn uniformly from lowercase letters and digits.
package shortid

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// Charset is the alphabet short ids are drawn from.
const Charset = "abcdefghijklmnopqrstuvwxyz0123456789"

// CodeLength is the fixed length of instruction short codes.
const CodeLength = 6

// userIDSuffixLength is the random part of a user id after the prefix.
const userIDSuffixLength = 10

var codePattern = regexp.MustCompile(`^[a-z0-9]{6}$`)

// New returns a random string of the given length, each character drawn
// uniformly from Charset.
func New(length int) (string, error) {
	max := big.NewInt(int64(len(Charset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = Charset[n.Int64()]
	}
	return string(buf), nil
}

// NewCode returns a candidate instruction short code. Uniqueness is the
// caller's concern; the store enforces it at insert time.
func NewCode() (string, error) {
	return New(CodeLength)
}

// NewUserID returns a fresh opaque user id of the form "user_" plus a
// 10-character random suffix.
func NewUserID() (string, error) {
	suffix, err := New(userIDSuffixLength)
	if err != nil {
		return "", err
	}
	return "user_" + suffix, nil
}

// ValidCode reports whether s is a well-formed instruction short code.
func ValidCode(s string) bool {
	return codePattern.MatchString(s)
}
