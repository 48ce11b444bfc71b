package flt

import (
	"bytes"
	"encoding/binary"
)

// stream builds OpenFlight record streams for tests.
type stream struct {
	buf bytes.Buffer
}

func (s *stream) header(op Opcode, length int) *stream {
	binary.Write(&s.buf, binary.BigEndian, uint16(op))
	binary.Write(&s.buf, binary.BigEndian, uint16(length))
	return s
}

func (s *stream) raw(b ...byte) *stream {
	s.buf.Write(b)
	return s
}

func (s *stream) padded(name string, size int) *stream {
	field := make([]byte, size)
	copy(field, name)
	s.buf.Write(field)
	return s
}

// named writes a database, group or object record; extra bytes pad the
// record beyond its fixed fields.
func (s *stream) named(op Opcode, name string, extra int) *stream {
	s.header(op, HeaderSize+nameSize+extra)
	s.padded(name, nameSize)
	return s.raw(make([]byte, extra)...)
}

func (s *stream) face(name string, color uint16, material int16, extra int) *stream {
	s.header(FaceOp, faceLength+extra)
	s.padded(name, faceNameSize)
	s.raw(make([]byte, faceReservedSize)...)
	binary.Write(&s.buf, binary.BigEndian, color)
	s.raw(make([]byte, faceReservedSize)...)
	binary.Write(&s.buf, binary.BigEndian, material)
	return s.raw(make([]byte, extra)...)
}

// longID writes an opcode 33 record holding name and a terminating NUL.
func (s *stream) longID(name string) *stream {
	s.header(LongIDOp, HeaderSize+len(name)+1)
	return s.padded(name, len(name)+1)
}

func (s *stream) push() *stream {
	return s.header(PushOp, HeaderSize)
}

func (s *stream) pop() *stream {
	return s.header(PopOp, HeaderSize)
}

func (s *stream) bytes() []byte {
	return s.buf.Bytes()
}

func (s *stream) reader() *bytes.Reader {
	return bytes.NewReader(s.buf.Bytes())
}

// scenario is a database with a group that contains an object.
func scenario() *stream {
	s := &stream{}
	s.named(DatabaseOp, "DB1", 0)
	s.named(GroupOp, "G1", 0)
	s.push()
	s.named(ObjectOp, "O1", 0)
	s.pop()
	return s
}

type observed struct {
	header     Header
	start, end int64
}

func observer(records *[]observed) Option {
	return WithObserver(func(h Header, start, end int64) {
		*records = append(*records, observed{h, start, end})
	})
}
