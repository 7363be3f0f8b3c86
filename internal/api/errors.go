package api

import (
	"errors"
	"fmt"
)

// ErrProtocol marks responses that were syntactically readable but violated
// the API contract: a 2xx status with a missing success flag, an absent data
// field, or success=false without a recognizable error message.
var ErrProtocol = errors.New("malformed API response")

// NetworkError wraps connection-level failures: refused connections, DNS
// errors, timeouts, and an open circuit breaker.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError describes a response that arrived but could not be used.
type ProtocolError struct {
	Op     string
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrProtocol, e.Reason)
}

func (e *ProtocolError) Unwrap() error {
	return ErrProtocol
}

// APIError carries a server-reported failure: a non-2xx status and the
// error message the backend put in the response body, if any.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: API error (status %d): %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: API error (status %d)", e.Op, e.Status)
}

// IsNetwork reports whether err is a connection-level failure.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsProtocol reports whether err is a contract violation on a 2xx response.
func IsProtocol(err error) bool {
	return errors.Is(err, ErrProtocol)
}

// Recoverable reports whether a read-path failure may be recovered by
// falling back to bundled or locally derived data. Server-reported errors
// on the recommendation path are never recoverable.
func Recoverable(err error) bool {
	return IsNetwork(err) || IsProtocol(err)
}
