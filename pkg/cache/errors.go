package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind of error returned for an argument with an
	// unacceptable value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilArgument is the kind of error returned when a required argument is nil.
	ErrNilArgument = errors.New("argument is nil")

	// ErrArgumentOutOfRange is the kind of error returned when an argument is
	// outside of its allowed range.
	ErrArgumentOutOfRange = errors.New("argument out of range")
)

const (
	msgCapacity          = "Must be greater than 0."
	msgInsufficientSpace = "Not enough elements after arrayIndex in the destination array."
)

// ArgumentError reports which parameter of a call was rejected and why.
// Use errors.Is against the package sentinels to check its kind.
type ArgumentError struct {
	Param string
	Msg   string
	Kind  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("cache: %s: %s (parameter %q)", e.Kind, e.Msg, e.Param)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

func argumentError(kind error, param, msg string) error {
	return &ArgumentError{Param: param, Msg: msg, Kind: kind}
}
