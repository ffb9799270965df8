package pack

import (
	"io"

	"github.com/golang/glog"
)

// Transport is a byte link which may accept partial writes.
type Transport interface {
	io.Writer
	// Flush blocks until written bytes are transmitted.
	Flush() error
}

// Send writes the encoded frame to t, resuming after partial writes, then
// flushes. A write reporting no progress fails immediately without retry.
func Send(t Transport, frame []byte) error {
	offset := 0
	for offset < len(frame) {
		n, err := t.Write(frame[offset:])
		if err != nil || n <= 0 {
			return &TransportError{Op: "write", Offset: offset, Written: n, Err: err}
		}
		offset += n
		if glog.V(4) {
			glog.Infof("wrote %d bytes, %d/%d", n, offset, len(frame))
		}
	}
	if err := t.Flush(); err != nil {
		return &TransportError{Op: "flush", Offset: offset, Err: err}
	}
	return nil
}

// SendFrame encodes f and sends it with Send.
func SendFrame(t Transport, f *Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	glog.V(2).Infof("SEND %q size=%d", f.Path, len(f.Payload))
	return Send(t, f.Bytes())
}
