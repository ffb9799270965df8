// Package relay forwards packs received from the network to a device.
package relay

import (
	"context"
	"errors"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/lumen.go/pkg/pack"
	"github.com/robotalks/lumen.go/pkg/transport"
)

// DeliverFunc delivers one frame downstream.
type DeliverFunc func(context.Context, *transport.Config, *pack.Frame) error

// ErrBridgeStopped indicates the bridge is no longer accepting frames.
var ErrBridgeStopped = errors.New("bridge stopped")

// DefaultFrameTimeout bounds delivering a single frame.
const DefaultFrameTimeout = 10 * time.Second

// Bridge delivers submitted frames to one downstream transport, one frame
// at a time, so frames from different sources never interleave.
type Bridge struct {
	Downstream   *transport.Config
	FrameTimeout time.Duration
	Deliver      DeliverFunc

	frames chan *pack.Frame
	doneCh chan struct{}
}

// NewBridge creates a Bridge delivering to downstream.
func NewBridge(downstream *transport.Config) *Bridge {
	return &Bridge{
		Downstream:   downstream,
		FrameTimeout: DefaultFrameTimeout,
		Deliver:      transport.Deliver,
		frames:       make(chan *pack.Frame, 16),
		doneCh:       make(chan struct{}),
	}
}

// Submit queues a frame for delivery.
func (b *Bridge) Submit(ctx context.Context, f *pack.Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	select {
	case b.frames <- f:
		return nil
	case <-b.doneCh:
		return ErrBridgeStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run implements Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	defer close(b.doneCh)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-b.frames:
			b.deliver(ctx, f)
		}
	}
}

func (b *Bridge) deliver(ctx context.Context, f *pack.Frame) {
	timeout := b.FrameTimeout
	if timeout <= 0 {
		timeout = DefaultFrameTimeout
	}
	frameCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	start := time.Now()
	if err := b.Deliver(frameCtx, b.Downstream, f); err != nil {
		glog.Errorf("deliver %q (%d bytes) to %s failed: %v", f.Path, len(f.Payload), b.Downstream.URL, err)
		return
	}
	glog.V(1).Infof("delivered %q (%d bytes) in %v", f.Path, len(f.Payload), time.Since(start))
}
