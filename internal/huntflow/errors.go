package huntflow

import (
	"errors"
	"fmt"
)

// ErrRefreshExpired reports that the refresh token itself has expired and a
// full credential login is required.
var ErrRefreshExpired = errors.New("refresh token is expired")

// AuthError is a failed login or refresh attempt for any reason other than
// refresh-token expiry.
type AuthError struct {
	Op  string // "login" or "refresh"
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("huntflow auth: %s failed: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// BackendError is a non-2xx response from the management server. Code carries
// the server error code used for localized display.
type BackendError struct {
	Status int
	Code   string
	Detail string
}

func (e *BackendError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("huntflow: server returned %d (%s): %s", e.Status, e.Code, e.Detail)
	}
	return fmt.Sprintf("huntflow: server returned %d: %s", e.Status, e.Detail)
}

// TransportError is a network failure or timeout with no server response.
// Such requests are never replayed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("huntflow: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
