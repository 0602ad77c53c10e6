package domain

import "github.com/pkg/errors"

var (
	// ErrNilInput is returned when there is nothing to normalize.
	ErrNilInput = errors.New("input is nil")
	// ErrUnsupportedInput is returned for inputs that have no positional order,
	// such as maps, channels and functions.
	ErrUnsupportedInput = errors.New("unsupported input")
)
