package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/lumen.go/pkg/pack"
)

func TestConfig(t *testing.T) {
	conf := NewConfig()
	require.False(t, Default() == conf)
	require.Equal(t, 460800, conf.Baud)
	require.Equal(t, time.Second, conf.ReadTimeout)
	require.Equal(t, 2*time.Second, conf.WriteTimeout)

	other := conf.WithURL("tcp://localhost:2000")
	require.Equal(t, "tcp://localhost:2000", other.URL)
	require.NotEqual(t, other.URL, conf.URL)
	require.Equal(t, conf.Baud, other.Baud)
}

func TestOpenUnsupportedScheme(t *testing.T) {
	conf := NewConfig().WithURL("bogus://somewhere")
	_, err := conf.Open()
	require.True(t, errors.Is(err, ErrUnsupportedScheme))
}

func TestDeliverRejectsPathBeforeOpen(t *testing.T) {
	conf := NewConfig().WithURL("bogus://somewhere")
	err := Deliver(context.Background(), conf, &pack.Frame{Path: "a b", Payload: []byte{1}})
	require.True(t, errors.Is(err, pack.ErrInvalidPath))
}

func TestDeliverOpenFailure(t *testing.T) {
	conf := NewConfig().WithURL("bogus://somewhere")
	err := Deliver(context.Background(), conf, &pack.Frame{Path: "img", Payload: []byte{1}})
	require.True(t, errors.Is(err, ErrUnsupportedScheme))
}

func TestDeliverTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	recvCh := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			close(recvCh)
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		recvCh <- data
	}()

	conf := NewConfig().WithURL("tcp://" + ln.Addr().String())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, Deliver(ctx, conf, &pack.Frame{Path: "sync", Payload: []byte("hi")}))

	select {
	case data := <-recvCh:
		require.Equal(t, []byte("sync\n\x02\x00\x00\x00hi"), data)
	case <-time.After(5 * time.Second):
		t.Fatal("frame not received")
	}
}

func TestStreamReadTimeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			time.Sleep(time.Second)
			conn.Close()
		}
	}()

	conf := NewConfig().WithURL("tcp://" + ln.Addr().String())
	conf.ReadTimeout = 10 * time.Millisecond
	conn, err := conf.Open()
	require.NoError(t, err)
	defer conn.Close()
	n, err := conn.(io.Reader).Read(make([]byte, 8))
	require.NoError(t, err)
	require.Zero(t, n)
}

type fakeConn struct {
	bytes.Buffer
	closeErr error
	closed   int
}

func (c *fakeConn) Flush() error { return nil }

func (c *fakeConn) Close() error {
	c.closed++
	return c.closeErr
}

func TestDeliverCloseFailureAfterSend(t *testing.T) {
	conn := &fakeConn{closeErr: errors.New("port gone")}
	err := deliverOn(context.Background(), conn, "fake", &pack.Frame{Path: "sync", Payload: []byte("hi")})
	require.NoError(t, err)
	require.Equal(t, 1, conn.closed)
	require.Equal(t, "sync\n\x02\x00\x00\x00hi", conn.String())
}

func TestDeliverSendFailure(t *testing.T) {
	conn := &failingConn{fakeConn{closeErr: errors.New("port gone")}}
	err := deliverOn(context.Background(), conn, "fake", &pack.Frame{Path: "sync"})
	require.True(t, errors.Is(err, pack.ErrTransportWriteFailed))
	require.Equal(t, 1, conn.closed)
}

type failingConn struct {
	fakeConn
}

func (c *failingConn) Write(p []byte) (int, error) {
	return 0, errors.New("unplugged")
}
