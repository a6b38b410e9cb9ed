package api

import (
	"fmt"
	"net/http"

	"catalog/internal/errors"
)

// Sentinels for the failure kinds a caller routes on.
var (
	ErrTransport    = errors.New("transport failure")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
)

// TransportError reports that no usable response was received: the request
// never completed or the body could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ServerError is any response the client has no dedicated kind for, 5xx included.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded %d %s", e.Status, http.StatusText(e.Status))
	}

	return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
}

func (e *ServerError) Is(target error) bool { return target == ErrServer }

// statusError maps a non-success status to its error kind.
func statusError(status int, message string) error {
	var kind error
	switch status {
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	default:
		return &ServerError{Status: status, Message: message}
	}

	if message == "" {
		return kind
	}

	return errors.Wrap(kind, message)
}
