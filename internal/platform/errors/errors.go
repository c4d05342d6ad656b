package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrBadEnvelope        = errors.New("malformed server response")
)

// HTTPError covers non-2xx responses that are neither an auth failure nor a
// decoding problem. The status code is kept for the message and for logs.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Status)
}

// IsAuth reports whether err means the bearer token was rejected and the
// session must be torn down.
func IsAuth(err error) bool {
	return errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrInvalidCredentials)
}
