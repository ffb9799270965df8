package transport

import (
	"context"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/robotalks/lumen.go/pkg/framework"
)

// serialConn bounds writes and drains by the write timeout. On timeout the
// port is closed, which unblocks the pending call with an error.
type serialConn struct {
	port         serial.Port
	writeTimeout time.Duration
	closeOnce    sync.Once
	closeErr     error
}

func openSerial(name string, c *Config) (Conn, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: c.Baud})
	if err != nil {
		return nil, err
	}
	if c.ReadTimeout > 0 {
		if err := port.SetReadTimeout(c.ReadTimeout); err != nil {
			port.Close()
			return nil, err
		}
	}
	return &serialConn{port: port, writeTimeout: c.WriteTimeout}, nil
}

// Read returns 0 bytes without error when the read timeout expires.
func (s *serialConn) Read(p []byte) (int, error) {
	return s.port.Read(p)
}

func (s *serialConn) Write(p []byte) (n int, err error) {
	err = s.bounded(func() (err error) {
		n, err = s.port.Write(p)
		return
	})
	return
}

// Flush waits until all written bytes are transmitted.
func (s *serialConn) Flush() error {
	return s.bounded(s.port.Drain)
}

func (s *serialConn) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.port.Close()
	})
	return s.closeErr
}

func (s *serialConn) bounded(fn func() error) error {
	if s.writeTimeout <= 0 {
		return fn()
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	return framework.RunWithContextCancel(ctx, func() { s.Close() }, fn)
}
