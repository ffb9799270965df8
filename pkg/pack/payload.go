package pack

import (
	"fmt"
	"os"
)

// PayloadSource selects exactly one of a literal string or a file.
type PayloadSource struct {
	Data    string
	HasData bool
	File    string
}

// Load returns the payload bytes.
func (s PayloadSource) Load() ([]byte, error) {
	hasFile := s.File != ""
	switch {
	case !s.HasData && !hasFile:
		return nil, fmt.Errorf("%w: must provide data or file", ErrInvalidArguments)
	case s.HasData && hasFile:
		return nil, fmt.Errorf("%w: use only one of data or file", ErrInvalidArguments)
	case s.HasData:
		return []byte(s.Data), nil
	}
	data, err := os.ReadFile(s.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, s.File)
		}
		return nil, err
	}
	return data, nil
}
