package pack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath indicates the path is empty or contains forbidden bytes.
	ErrInvalidPath = errors.New("invalid path")
	// ErrInvalidArguments indicates a missing or conflicting payload source.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrPayloadTooLarge indicates the payload length overflows the length prefix.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrFileNotFound indicates the payload file is missing.
	ErrFileNotFound = errors.New("file not found")
	// ErrTransportWriteFailed indicates a write made no progress or flush failed.
	// The transport may be out of sync with the peer afterwards.
	ErrTransportWriteFailed = errors.New("transport write failed")
)

// PathError describes why a path is rejected.
type PathError struct {
	Path   string
	Reason string
}

// Error implements error.
func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// Is allows errors.Is(err, ErrInvalidPath).
func (e *PathError) Is(target error) bool {
	return target == ErrInvalidPath
}

// TransportError wraps a failed write or flush.
type TransportError struct {
	Op      string
	Offset  int
	Written int
	Err     error
}

// Error implements error.
func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s: %s at offset %d", ErrTransportWriteFailed, e.Op, e.Offset)
	if e.Op == "write" {
		msg += fmt.Sprintf(" (wrote %d)", e.Written)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is allows errors.Is(err, ErrTransportWriteFailed).
func (e *TransportError) Is(target error) bool {
	return target == ErrTransportWriteFailed
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}
