// Source: lumen/pack/v1/pack.proto
// Kept in the protoc-gen-go v1.3 struct layout; update together with pack.proto.

package v1

import (
	proto "github.com/golang/protobuf/proto"
)

// Pack carries one serial pack over a message broker.
type Pack struct {
	// path is the handler path on the device.
	Path string `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	// data is the payload.
	Data []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	// seq increases per pack from the same source.
	Seq uint64 `protobuf:"varint,3,opt,name=seq,proto3" json:"seq,omitempty"`
	// source identifies the publisher.
	Source string `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
}

func (m *Pack) Reset()         { *m = Pack{} }
func (m *Pack) String() string { return proto.CompactTextString(m) }
func (*Pack) ProtoMessage()    {}

func (m *Pack) GetPath() string {
	if m != nil {
		return m.Path
	}
	return ""
}

func (m *Pack) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *Pack) GetSeq() uint64 {
	if m != nil {
		return m.Seq
	}
	return 0
}

func (m *Pack) GetSource() string {
	if m != nil {
		return m.Source
	}
	return ""
}

func init() {
	proto.RegisterType((*Pack)(nil), "lumen.pack.v1.Pack")
}
