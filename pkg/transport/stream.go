package transport

import (
	"net"
	"time"
)

// streamConn is a serial link exposed over TCP (e.g. ser2net).
type streamConn struct {
	net.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

const defaultDialTimeout = 5 * time.Second

func dialTCP(addr string, c *Config) (Conn, error) {
	timeout := c.WriteTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}
	return &streamConn{Conn: conn, readTimeout: c.ReadTimeout, writeTimeout: c.WriteTimeout}, nil
}

// Read behaves like a serial port: 0 bytes without error on timeout.
func (s *streamConn) Read(p []byte) (int, error) {
	if s.readTimeout > 0 {
		s.Conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	}
	n, err := s.Conn.Read(p)
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return n, nil
	}
	return n, err
}

func (s *streamConn) Write(p []byte) (int, error) {
	if s.writeTimeout > 0 {
		s.Conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	return s.Conn.Write(p)
}

// Flush is a no-op: TCP writes are handed to the kernel.
func (s *streamConn) Flush() error {
	return nil
}
