package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated signals a 401. The stored credential has already
	// been cleared by the time callers see this; the only recovery is a
	// fresh login. It must never be retried.
	ErrUnauthenticated = errors.New("unauthenticated: credential rejected")
	// ErrTransport wraps network and connection failures.
	ErrTransport = errors.New("transport failure")
	// ErrDecode wraps malformed or unexpected response bodies.
	ErrDecode = errors.New("malformed response body")
)

// StatusError is a non-2xx response other than 401.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server rejected request: %d %s", e.Status, e.Message)
}
