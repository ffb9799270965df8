package sh

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/lumen.go/pkg/pack"
	"github.com/robotalks/lumen.go/pkg/transport"
)

type fakeConn struct {
	bytes.Buffer
	writeErr error
	closed   bool
}

func (c *fakeConn) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	return c.Buffer.Write(p)
}

func (c *fakeConn) Flush() error { return nil }

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func TestShellSend(t *testing.T) {
	s := &Shell{Config: transport.NewConfig()}
	err := s.Send(&pack.Frame{Path: "sync"})
	require.Equal(t, ErrNotOpen, err)

	conn := &fakeConn{}
	s.Conn = conn
	require.NoError(t, s.Send(&pack.Frame{Path: "sync", Payload: []byte("hi")}))
	require.Equal(t, "sync\n\x02\x00\x00\x00hi", conn.String())

	err = s.Send(&pack.Frame{Path: "bad path"})
	require.True(t, errors.Is(err, pack.ErrInvalidPath))
	require.False(t, conn.closed)

	conn.writeErr = errors.New("unplugged")
	err = s.Send(&pack.Frame{Path: "sync"})
	require.True(t, errors.Is(err, pack.ErrTransportWriteFailed))
	require.True(t, conn.closed)
	require.Nil(t, s.Conn)
}

func TestShellOpenFailureKeepsConn(t *testing.T) {
	conn := &fakeConn{}
	s := &Shell{Config: transport.NewConfig(), Conn: conn, URL: "old"}
	err := s.Open("bogus://device")
	require.True(t, errors.Is(err, transport.ErrUnsupportedScheme))
	require.False(t, conn.closed)
	require.Equal(t, "old", s.URL)

	s.Close()
	require.True(t, conn.closed)
	require.Empty(t, s.URL)
}
