package pack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "payload.bin")
	require.NoError(t, os.WriteFile(file, []byte{0, 1, 2}, 0o644))

	data, err := PayloadSource{Data: "hi", HasData: true}.Load()
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), data)

	data, err = PayloadSource{HasData: true}.Load()
	require.NoError(t, err)
	require.Empty(t, data)

	data, err = PayloadSource{File: file}.Load()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2}, data)

	_, err = PayloadSource{}.Load()
	require.True(t, errors.Is(err, ErrInvalidArguments))

	_, err = PayloadSource{Data: "hi", HasData: true, File: file}.Load()
	require.True(t, errors.Is(err, ErrInvalidArguments))

	_, err = PayloadSource{File: filepath.Join(dir, "missing.bin")}.Load()
	require.True(t, errors.Is(err, ErrFileNotFound))
}
