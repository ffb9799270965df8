package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/golang/glog"

	"github.com/robotalks/lumen.go/pkg/framework"
	"github.com/robotalks/lumen.go/pkg/pack"
	"github.com/robotalks/lumen.go/pkg/relay/mqtt"
)

// Conn is an opened transport.
type Conn interface {
	pack.Transport
	io.Closer
}

// ErrUnsupportedScheme indicates the URL scheme is unknown.
var ErrUnsupportedScheme = errors.New("unsupported transport scheme")

// Open opens the transport selected by the URL.
func (c *Config) Open() (Conn, error) {
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// a plain device path, or a Windows drive letter.
		return openSerial(c.URL, c)
	}
	switch u.Scheme {
	case "serial":
		name := u.Path
		if name == "" {
			name = u.Opaque
		}
		return openSerial(name, c)
	case "tcp":
		return dialTCP(u.Host, c)
	case "ws", "wss":
		return dialWebsocket(c.URL, c)
	case "mqtt", "mqtts":
		return mqtt.Dial(c.URL, c.WriteTimeout)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
}

// Deliver opens the transport, sends exactly one frame and closes the
// transport on every exit path. The path is validated before anything is
// opened. When ctx is done before the frame is sent, the transport is
// closed and the send fails.
func Deliver(ctx context.Context, conf *Config, f *pack.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	conn, err := conf.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", conf.URL, err)
	}
	glog.V(2).Infof("opened %s", conf.URL)
	return deliverOn(ctx, conn, conf.URL, f)
}

// deliverOn sends f on conn and closes conn. The frame is delivered once
// it is written and flushed; a later Close failure is only logged.
func deliverOn(ctx context.Context, conn Conn, name string, f *pack.Frame) error {
	err := framework.RunWithContextCloser(ctx, conn, func() error {
		return pack.SendFrame(conn, f)
	})
	var closeErr *framework.CloseError
	switch {
	case err == context.Canceled || err == context.DeadlineExceeded:
		return &pack.TransportError{Op: "send", Err: err}
	case errors.As(err, &closeErr):
		glog.Warningf("%s: frame %q delivered, %v", name, f.Path, err)
		return nil
	}
	return err
}
