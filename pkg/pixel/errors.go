package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrPayloadTooSmall indicates the RGB565 input is shorter than width*height*2.
	ErrPayloadTooSmall = errors.New("payload too small")
	// ErrInvalidArguments indicates bad dimensions or a malformed resize spec.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrFileNotFound indicates the referenced input file is missing.
	ErrFileNotFound = errors.New("file not found")
)

// PayloadTooSmallError reports the actual and expected payload lengths.
type PayloadTooSmallError struct {
	Actual   int
	Expected int
}

// Error implements error.
func (e *PayloadTooSmallError) Error() string {
	return fmt.Sprintf("payload too small: %d < %d", e.Actual, e.Expected)
}

// Is allows errors.Is(err, ErrPayloadTooSmall).
func (e *PayloadTooSmallError) Is(target error) bool {
	return target == ErrPayloadTooSmall
}
