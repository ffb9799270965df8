package pack

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DefaultRxTimeout aborts a pack when no bytes arrive for this long.
const DefaultRxTimeout = 3 * time.Second

// Handler is called for each chunk received on an attached path.
type Handler interface {
	HandleChunk(context.Context, *Chunk)
}

// HandleChunkFunc is func type of Handler.
type HandleChunkFunc func(context.Context, *Chunk)

// HandleChunk implements Handler.
func (f HandleChunkFunc) HandleChunk(ctx context.Context, c *Chunk) {
	f(ctx, c)
}

// Receiver parses packs from a byte stream and dispatches chunks by path.
type Receiver struct {
	Reader  io.Reader
	Timeout time.Duration
	Parser  Parser
	// Fallback receives chunks of paths without a handler. If nil, such
	// chunks are logged and dropped.
	Fallback Handler

	handlers map[string]Handler
	lock     sync.RWMutex
}

// NewReceiver creates a Receiver.
func NewReceiver(r io.Reader) *Receiver {
	return &Receiver{Reader: r, Timeout: DefaultRxTimeout}
}

// Attach registers or replaces the handler for path.
func (r *Receiver) Attach(path string, h Handler) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("%w: nil handler for %q", ErrInvalidArguments, path)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.handlers == nil {
		r.handlers = make(map[string]Handler)
	}
	if _, exists := r.handlers[path]; !exists {
		glog.Infof("handler %s is attached", path)
	}
	r.handlers[path] = h
	return nil
}

// Detach removes the handler for path.
func (r *Receiver) Detach(path string) {
	r.lock.Lock()
	delete(r.handlers, path)
	r.lock.Unlock()
}

// Run processes the stream until it ends, fails or ctx is done.
// The end of stream is not an error.
func (r *Receiver) Run(ctx context.Context) error {
	bufCh, errCh := make(chan []byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go r.readLoop(subCtx, bufCh, errCh)

	var timer <-chan time.Time
	for {
		select {
		case buf := <-bufCh:
			for _, b := range buf {
				r.apply(ctx, r.Parser.Parse(b))
			}
			if r.Parser.Idle() {
				timer = nil
			} else {
				timer = time.After(r.timeout())
			}
		case <-timer:
			timer = nil
			if path := r.Parser.Path(); r.Parser.Timeout() {
				glog.Warningf("rx timeout, aborting pack %q", path)
			}
		case err := <-errCh:
			if err == io.EOF {
				return nil
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Receiver) readLoop(ctx context.Context, bufCh chan []byte, errCh chan error) {
	buf := make([]byte, 128)
	for {
		n, err := r.Reader.Read(buf)
		if n > 0 {
			select {
			case bufCh <- append([]byte(nil), buf[:n]...):
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			errCh <- err
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (r *Receiver) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultRxTimeout
}

func (r *Receiver) apply(ctx context.Context, pr ParseResult) {
	if pr.Err != nil {
		glog.Errorf("%v", pr.Err)
	}
	if pr.Chunk == nil {
		return
	}
	r.lock.RLock()
	h := r.handlers[pr.Chunk.Path]
	r.lock.RUnlock()
	if h == nil {
		h = r.Fallback
	}
	if h == nil {
		logUnhandled(pr.Chunk)
		return
	}
	h.HandleChunk(ctx, pr.Chunk)
}

const hexPreviewLen = 16

func logUnhandled(c *Chunk) {
	if len(c.Data) == 0 {
		glog.Warningf("unhandled path %q, size=0", c.Path)
		return
	}
	preview := c.Data
	if len(preview) > hexPreviewLen {
		preview = preview[:hexPreviewLen]
	}
	var more string
	if !c.Last {
		more = " ..."
	}
	glog.Warningf("unhandled path %q, size=%d, data=% X%s", c.Path, len(c.Data), preview, more)
}
