package mqtt

import (
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/lumen.go/pkg/env"
	"github.com/robotalks/lumen.go/pkg/pack"
	pb "github.com/robotalks/lumen.go/pkg/proto/lumen/pack/v1"
)

var (
	// ErrTimeout indicates the broker did not acknowledge in time.
	ErrTimeout = errors.New("mqtt timeout")
	// ErrIncompleteFrame indicates Flush was called in the middle of a frame.
	ErrIncompleteFrame = errors.New("incomplete frame")
)

// DefaultTimeout bounds connecting and publishing when no timeout is given.
const DefaultTimeout = 5 * time.Second

// Conn relays packs to a device through the broker. It implements
// pack.Transport: written bytes are reassembled into frames and each frame
// is published as a Pack message on the device's pack topic.
type Conn struct {
	Queue   *Queue
	Device  string
	Source  string
	Timeout time.Duration

	assembler pack.Assembler
	seq       uint64
	pending   []paho.Token
}

// NewConn creates a Conn over q publishing for device.
func NewConn(q *Queue, device string) *Conn {
	c := &Conn{Queue: q, Device: device, Source: env.DeviceID(), Timeout: DefaultTimeout}
	c.assembler.OnFrame = c.publish
	return c
}

// Dial connects to the broker in brokerURL and returns a Conn.
func Dial(brokerURL string, timeout time.Duration) (*Conn, error) {
	b, err := ParseBrokerURL(brokerURL)
	if err != nil {
		return nil, err
	}
	c := NewConn(NewQueueFor(b), b.Device)
	if timeout > 0 {
		c.Timeout = timeout
	}
	if err := c.wait(c.Queue.Connect()); err != nil {
		c.Queue.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	return c, nil
}

// Write implements io.Writer.
func (c *Conn) Write(p []byte) (int, error) {
	return c.assembler.Write(p)
}

// Flush waits until all published packs are acknowledged.
func (c *Conn) Flush() error {
	if c.assembler.Pending() {
		return ErrIncompleteFrame
	}
	pending := c.pending
	c.pending = nil
	for _, token := range pending {
		if err := c.wait(token); err != nil {
			return err
		}
	}
	return nil
}

// Close implements io.Closer.
func (c *Conn) Close() error {
	return c.Queue.Close()
}

func (c *Conn) publish(f *pack.Frame) error {
	c.seq++
	payload, err := EncodePack(f, c.seq, c.Source)
	if err != nil {
		return err
	}
	glog.V(2).Infof("PUB %q path=%q size=%d", PackTopic(c.Device), f.Path, len(f.Payload))
	c.pending = append(c.pending, c.Queue.Pub(PackTopic(c.Device), payload))
	return nil
}

func (c *Conn) wait(token paho.Token) error {
	if !token.WaitTimeout(c.Timeout) {
		return ErrTimeout
	}
	return token.Error()
}

// DecodePack decodes a Pack message into a validated frame.
func DecodePack(payload []byte) (*pb.Pack, *pack.Frame, error) {
	var msg pb.Pack
	if err := proto.Unmarshal(payload, &msg); err != nil {
		return nil, nil, err
	}
	f, err := pack.NewFrame(msg.Path, msg.Data)
	return &msg, f, err
}

// EncodePack encodes a frame as a Pack message.
func EncodePack(f *pack.Frame, seq uint64, source string) ([]byte, error) {
	return proto.Marshal(&pb.Pack{Path: f.Path, Data: f.Payload, Seq: seq, Source: source})
}
