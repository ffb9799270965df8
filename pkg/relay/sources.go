package relay

import (
	"context"
	"io"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/lumen.go/pkg/framework"
	"github.com/robotalks/lumen.go/pkg/pack"
	"github.com/robotalks/lumen.go/pkg/relay/mqtt"
)

// MQTTSource submits packs published on the device's pack topic.
type MQTTSource struct {
	Queue  *mqtt.Queue
	Device string
	Bridge *Bridge
}

// Name implements Named.
func (s *MQTTSource) Name() string {
	return "mqtt:" + s.Device
}

// HandleMessage decodes a Pack message and submits it.
func (s *MQTTSource) HandleMessage(ctx context.Context, payload []byte) {
	msg, f, err := mqtt.DecodePack(payload)
	if err != nil {
		glog.Warningf("drop pack from mqtt: %v", err)
		return
	}
	glog.V(2).Infof("pack %q seq=%d from %q", msg.Path, msg.Seq, msg.Source)
	if err := s.Bridge.Submit(ctx, f); err != nil {
		glog.Warningf("drop pack %q: %v", f.Path, err)
	}
}

// Run implements Runnable.
func (s *MQTTSource) Run(ctx context.Context) error {
	sub := s.Queue.Sub(mqtt.PackTopic(s.Device), func(_ string, payload []byte) {
		s.HandleMessage(ctx, payload)
	})
	defer s.Queue.Close()
	defer sub.Close()
	token := s.Queue.Connect()
	if token.Wait(); token.Error() != nil {
		return token.Error()
	}
	<-ctx.Done()
	return ctx.Err()
}

// WebsocketSource accepts raw pack streams over websocket connections.
type WebsocketSource struct {
	Addr   string
	Path   string
	Bridge *Bridge
}

// Name implements Named.
func (s *WebsocketSource) Name() string {
	return "ws:" + s.Addr
}

// Handler returns the websocket handler. Bytes from each connection are
// reassembled into frames and submitted.
func (s *WebsocketSource) Handler(ctx context.Context) http.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		remote := conn.Request().RemoteAddr
		glog.Infof("websocket %s connected", remote)
		a := pack.NewAssembler(func(f *pack.Frame) error {
			return s.Bridge.Submit(ctx, f)
		})
		if _, err := io.Copy(a, conn); err != nil {
			glog.Warningf("websocket %s: %v", remote, err)
		}
		if a.Pending() {
			glog.Warningf("websocket %s closed with incomplete pack", remote)
		}
	})
}

// Run implements Runnable.
func (s *WebsocketSource) Run(ctx context.Context) error {
	path := s.Path
	if path == "" {
		path = "/pack"
	}
	mux := http.NewServeMux()
	mux.Handle(path, s.Handler(ctx))
	srv := &http.Server{Addr: s.Addr, Handler: mux}
	glog.Infof("listening on %s%s", s.Addr, path)
	return framework.RunWithContextCloser(ctx, srv, srv.ListenAndServe)
}
