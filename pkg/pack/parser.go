package pack

import "encoding/binary"

const (
	// MaxPathLen is the longest path the device accepts.
	MaxPathLen = 15
	// MaxChunkSize is the largest payload chunk delivered at once.
	MaxChunkSize = 2 * 1024
)

// Chunk is a piece of a received payload.
type Chunk struct {
	Path string
	// Data may be empty when Last is set.
	Data []byte
	// Offset of Data within the payload.
	Offset uint32
	// Size is the total payload size.
	Size uint32
	// Last marks the end of the pack.
	Last bool
}

// ParseResult indicates the result after one parsing step.
type ParseResult struct {
	Chunk *Chunk
	Err   error
}

// Parser parses received bytes into chunks, the way the device does.
// The zero value is ready to use.
type Parser struct {
	// MaxPathLen overrides the default MaxPathLen if positive.
	MaxPathLen int
	// MaxChunkSize overrides the default MaxChunkSize if positive.
	MaxChunkSize int

	state     parseState
	path      []byte
	sizeBytes [LengthSize]byte
	sizeIndex int
	size      uint32
	remaining uint32
	offset    uint32
	data      []byte
}

type parseState int

const (
	statePath    parseState = iota // collecting path bytes
	stateDiscard                   // invalid path, skipping until newline
	stateSize                      // collecting length bytes
	stateData                      // collecting payload
)

// Idle indicates no pack is in progress.
func (p *Parser) Idle() bool {
	return p.state == statePath && len(p.path) == 0
}

// Path returns the path of the pack in progress.
func (p *Parser) Path() string {
	return string(p.path)
}

// Reset drops any pack in progress.
func (p *Parser) Reset() {
	p.state = statePath
	p.path = p.path[:0]
	p.sizeIndex = 0
	p.size, p.remaining, p.offset = 0, 0, 0
	p.data = nil
}

// Timeout aborts the pack in progress, if any, and reports whether
// something was dropped.
func (p *Parser) Timeout() bool {
	if p.Idle() {
		return false
	}
	p.Reset()
	return true
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	switch p.state {
	case stateDiscard:
		if b == PathTerminator {
			p.Reset()
		}
	case statePath:
		switch {
		case b == '\r':
		case b == PathTerminator:
			if len(p.path) > 0 {
				p.state, p.sizeIndex = stateSize, 0
			}
		case b == ' ':
			pr.Err = &PathError{Path: string(p.path), Reason: "contains space"}
			p.state = stateDiscard
		case len(p.path) >= p.maxPathLen():
			pr.Err = &PathError{Path: string(p.path), Reason: "too long"}
			p.state = stateDiscard
		default:
			p.path = append(p.path, b)
		}
	case stateSize:
		p.sizeBytes[p.sizeIndex] = b
		if p.sizeIndex++; p.sizeIndex < LengthSize {
			return
		}
		p.size = binary.LittleEndian.Uint32(p.sizeBytes[:])
		p.remaining, p.offset = p.size, 0
		if p.size == 0 {
			pr.Chunk = p.chunk()
			p.Reset()
			return
		}
		p.data = p.newChunkBuf()
		p.state = stateData
	case stateData:
		p.data = append(p.data, b)
		p.remaining--
		if len(p.data) >= p.maxChunkSize() || p.remaining == 0 {
			pr.Chunk = p.chunk()
			if p.remaining == 0 {
				p.Reset()
				return
			}
			p.offset += uint32(len(pr.Chunk.Data))
			p.data = p.newChunkBuf()
		}
	}
	return
}

func (p *Parser) chunk() *Chunk {
	return &Chunk{
		Path:   string(p.path),
		Data:   p.data,
		Offset: p.offset,
		Size:   p.size,
		Last:   p.remaining == 0,
	}
}

func (p *Parser) newChunkBuf() []byte {
	n := p.maxChunkSize()
	if p.remaining < uint32(n) {
		n = int(p.remaining)
	}
	return make([]byte, 0, n)
}

func (p *Parser) maxPathLen() int {
	if p.MaxPathLen > 0 {
		return p.MaxPathLen
	}
	return MaxPathLen
}

func (p *Parser) maxChunkSize() int {
	if p.MaxChunkSize > 0 {
		return p.MaxChunkSize
	}
	return MaxChunkSize
}
