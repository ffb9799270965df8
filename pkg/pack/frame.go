package pack

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	// PathTerminator ends the path.
	PathTerminator byte = '\n'
	// LengthSize is the size of the little-endian length prefix.
	LengthSize = 4
)

// Frame is a path and the payload delivered to it.
type Frame struct {
	Path    string
	Payload []byte
}

// ValidatePath checks the path is a non-empty ASCII string of at most
// MaxPathLen bytes without spaces, carriage returns or newlines, so the
// device's Parser receives it unchanged.
func ValidatePath(path string) error {
	if path == "" {
		return &PathError{Path: path, Reason: "empty"}
	}
	if len(path) > MaxPathLen {
		return &PathError{Path: path, Reason: fmt.Sprintf("longer than %d bytes", MaxPathLen)}
	}
	for i := 0; i < len(path); i++ {
		switch b := path[i]; {
		case b == ' ' || b == '\n' || b == '\r':
			return &PathError{Path: path, Reason: "must not contain spaces or line breaks"}
		case b >= 0x80:
			return &PathError{Path: path, Reason: "must be ASCII"}
		}
	}
	return nil
}

func validatePayloadLen(n uint64) error {
	if n > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, n)
	}
	return nil
}

// NewFrame validates path and payload size and creates a Frame.
func NewFrame(path string, payload []byte) (*Frame, error) {
	f := &Frame{Path: path, Payload: payload}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the path and that the payload length fits the length
// prefix.
func (f *Frame) Validate() error {
	if err := ValidatePath(f.Path); err != nil {
		return err
	}
	return validatePayloadLen(uint64(len(f.Payload)))
}

// Build validates path and returns the encoded frame.
func Build(path string, payload []byte) ([]byte, error) {
	f, err := NewFrame(path, payload)
	if err != nil {
		return nil, err
	}
	return f.Bytes(), nil
}

// Len returns the encoded size.
func (f *Frame) Len() int {
	return len(f.Path) + 1 + LengthSize + len(f.Payload)
}

// Bytes returns encoded bytes for sending.
func (f *Frame) Bytes() []byte {
	b := make([]byte, f.Len())
	n := copy(b, f.Path)
	b[n] = PathTerminator
	binary.LittleEndian.PutUint32(b[n+1:], uint32(len(f.Payload)))
	copy(b[n+1+LengthSize:], f.Payload)
	return b
}

// WriteTo writes encoded bytes.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}
