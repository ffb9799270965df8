package pack

import "github.com/golang/glog"

// the length prefix is untrusted, so preallocation is bounded.
const maxPreallocSize = 64 * 1024

// Assembler reassembles complete frames from a written byte stream.
type Assembler struct {
	Parser Parser
	// OnFrame receives each complete frame. An error stops the current Write.
	OnFrame func(*Frame) error

	payload []byte
}

// NewAssembler creates an Assembler calling fn for each frame.
func NewAssembler(fn func(*Frame) error) *Assembler {
	return &Assembler{OnFrame: fn}
}

// Write implements io.Writer.
func (a *Assembler) Write(p []byte) (int, error) {
	for n, b := range p {
		pr := a.Parser.Parse(b)
		if pr.Err != nil {
			glog.Warningf("assembler: %v", pr.Err)
			a.payload = nil
		}
		c := pr.Chunk
		if c == nil {
			continue
		}
		if c.Offset == 0 {
			size := c.Size
			if size > maxPreallocSize {
				size = maxPreallocSize
			}
			a.payload = make([]byte, 0, size)
		}
		a.payload = append(a.payload, c.Data...)
		if !c.Last {
			continue
		}
		f := &Frame{Path: c.Path, Payload: a.payload}
		a.payload = nil
		if a.OnFrame != nil {
			if err := a.OnFrame(f); err != nil {
				return n + 1, err
			}
		}
	}
	return len(p), nil
}

// Pending indicates a frame is partially received.
func (a *Assembler) Pending() bool {
	return !a.Parser.Idle()
}

// Reset drops a partially received frame.
func (a *Assembler) Reset() {
	a.Parser.Reset()
	a.payload = nil
}
