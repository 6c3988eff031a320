package client

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a conversion is submitted while another one
// is still in flight
var ErrBusy = errors.New("a conversion is already in progress")

// ErrCanceled is returned when the user declines a confirmation
var ErrCanceled = errors.New("canceled by user")

// StatusError is a well-formed HTTP response outside the 2xx range
type StatusError struct {
	Code   int
	Status string
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error: %s", e.Status)
}

// TransportError is a failure preventing a usable response (network,
// unreadable or malformed body)
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ConversionError is a conversion refused or failed by the backend
type ConversionError struct {
	Code    int // HTTP status, 0 when the backend answered 2xx with success:false
	Message string
}

func (e *ConversionError) Error() string {
	return "conversion failed: " + e.Message
}
