package model

import (
	"errors"
	"fmt"
)

// Input validation errors. They are returned before any network call.
var (
	ErrMalformedReference = errors.New("malformed block reference")
	ErrInvalidPosition    = errors.New("invalid block position")
	ErrInvalidHash        = errors.New("invalid block hash")
	ErrEmptyReferences    = errors.New("no block references given")
)

// Transport errors.
var (
	ErrConnect = errors.New("connect to sync service")
	ErrRPC     = errors.New("sync service call failed")
	ErrStream  = errors.New("follow stream failed")
)

// ErrDecode marks payload interpretation failures.
var ErrDecode = errors.New("decode block")

// DecodeError reports a response item that could not be interpreted.
type DecodeError struct {
	Op    string
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: item #%d: %v", e.Op, e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrDecode so callers can classify without a type assertion.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsTransport reports whether err came from the sync transport.
func IsTransport(err error) bool {
	return errors.Is(err, ErrConnect) || errors.Is(err, ErrRPC) || errors.Is(err, ErrStream)
}
