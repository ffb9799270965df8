package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/lumen.go/pkg/framework"
	"github.com/robotalks/lumen.go/pkg/pack"
	"github.com/robotalks/lumen.go/pkg/transport"
)

var (
	path    = "sync"
	source  pack.PayloadSource
	timeout time.Duration
	listen  bool
)

func init() {
	transport.SetupFlags()
	flag.StringVar(&path, "path", path, "Pack path (no spaces).")
	flag.Func("data", "Payload string.", func(val string) error {
		source.Data, source.HasData = val, true
		return nil
	})
	flag.StringVar(&source.File, "file", "", "Binary payload file.")
	flag.DurationVar(&timeout, "timeout", 0, "Overall send timeout, 0 for none.")
	flag.BoolVar(&listen, "listen", false, "Print packs received on the port instead of sending.")
	flag.Set("logtostderr", "true")
}

func fail(code int, err error) {
	glog.Error(err)
	glog.Flush()
	os.Exit(code)
}

func send(ctx context.Context) {
	f, err := pack.NewFrame(path, nil)
	if err != nil {
		fail(2, err)
	}
	if f.Payload, err = source.Load(); err != nil {
		fail(2, err)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := transport.Deliver(ctx, transport.Default(), f); err != nil {
		if errors.Is(err, pack.ErrInvalidPath) {
			fail(2, err)
		}
		fail(1, err)
	}
}

func printChunk(ctx context.Context, c *pack.Chunk) {
	end := c.Offset + uint32(len(c.Data))
	fmt.Printf("%s [%d-%d/%d] % X", c.Path, c.Offset, end, c.Size, c.Data)
	if c.Last {
		fmt.Print(" (end)")
	}
	fmt.Println()
}

func receive(ctx context.Context) error {
	conn, err := transport.Default().Open()
	if err != nil {
		return err
	}
	r, ok := conn.(io.Reader)
	if !ok {
		conn.Close()
		return fmt.Errorf("%s: transport can't receive", transport.Default().URL)
	}
	recv := pack.NewReceiver(r)
	recv.Fallback = pack.HandleChunkFunc(printChunk)
	return framework.RunWithContextCloser(ctx, conn, func() error {
		return recv.Run(ctx)
	})
}

func main() {
	flag.Parse()
	defer glog.Flush()
	if listen {
		runner := framework.NewRunner().HandleSignals().Go(framework.RunFunc(receive))
		if err := runner.Wait(); err != nil {
			fail(1, err)
		}
		return
	}
	send(context.Background())
}
