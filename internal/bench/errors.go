package bench

import "errors"

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid bench config")

	// ErrUnknownFormat is returned by Write for an unsupported report format.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrInterrupted is returned when the run context ends before all operations completed.
	ErrInterrupted = errors.New("bench run interrupted")
)
