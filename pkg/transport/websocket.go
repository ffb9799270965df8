package transport

import (
	"net/url"
	"time"

	"golang.org/x/net/websocket"
)

type websocketConn struct {
	*websocket.Conn
	writeTimeout time.Duration
}

func dialWebsocket(rawURL string, c *Config) (Conn, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	origin := "http://" + u.Host + "/"
	if u.Scheme == "wss" {
		origin = "https://" + u.Host + "/"
	}
	conn, err := websocket.Dial(rawURL, "", origin)
	if err != nil {
		return nil, err
	}
	conn.PayloadType = websocket.BinaryFrame
	return &websocketConn{Conn: conn, writeTimeout: c.WriteTimeout}, nil
}

// Write sends p as one binary message.
func (w *websocketConn) Write(p []byte) (int, error) {
	if w.writeTimeout > 0 {
		w.Conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}
	return w.Conn.Write(p)
}

// Flush is a no-op: each Write is a complete message.
func (w *websocketConn) Flush() error {
	return nil
}
