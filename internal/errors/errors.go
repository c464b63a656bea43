package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required request field is absent.
	ErrMissingFields = errors.New("Missing information.")
	// ErrInvalidRole is returned when the requested role is not recognized.
	ErrInvalidRole = errors.New("Invalid role.")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("Password confirmation does not match.")
	// ErrWeakPassword is returned when the password fails the policy.
	ErrWeakPassword = errors.New("Password must contain at least 8 characters, 1 uppercase letter, and 1 lowercase letter.")
	// ErrWrongCode is returned when the verification code is unknown or
	// bound to a different email.
	ErrWrongCode = errors.New("Wrong verification code.")
	// ErrCodeExpired is returned when the verification code has expired.
	ErrCodeExpired = errors.New("Code expired.")
	// ErrEmailTaken is returned when the email already belongs to a user.
	ErrEmailTaken = errors.New("Email already registered.")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid email or password.")
	// ErrSessionInvalid is returned when a session token is absent,
	// malformed, unknown, or expired.
	ErrSessionInvalid = errors.New("Forbidden.")
	// ErrUserGone is returned when a valid session points at a user row
	// that no longer exists.
	ErrUserGone = errors.New("User not found. Maybe the user has been deleted?")
	// ErrBadInstructionID is returned when an instruction id does not match
	// the 6-character lowercase alphanumeric format.
	ErrBadInstructionID = errors.New("id format incorrect")
	// ErrInstructionNotFound is returned when no instruction exists under
	// the requested id.
	ErrInstructionNotFound = errors.New("id not found")
	// ErrResendCooldown is returned when a verification code was requested
	// again before the cooldown elapsed.
	ErrResendCooldown = errors.New("Please wait before requesting another code.")
	// ErrCodeSpaceExhausted is returned when short-code allocation gives up
	// after repeated collisions.
	ErrCodeSpaceExhausted = errors.New("short code allocation exhausted")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become
// a 500 with a generic message; the underlying error is never surfaced to
// the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrWrongCode),
		errors.Is(err, ErrCodeExpired),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrUserGone),
		errors.Is(err, ErrBadInstructionID):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrSessionInvalid):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrInstructionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrResendCooldown):
		return NewHTTPError(http.StatusTooManyRequests, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error.")
	}
}
