package flt

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the size of the opcode + length prefix of every record.
const HeaderSize = 4

type Opcode uint16

const (
	DatabaseOp Opcode = 1
	GroupOp    Opcode = 2
	ObjectOp   Opcode = 4
	FaceOp     Opcode = 5
	PushOp     Opcode = 10
	PopOp      Opcode = 11
	LongIDOp   Opcode = 33
)

func (o Opcode) String() string {
	var name string
	switch o {
	case DatabaseOp:
		name = "Database"
	case GroupOp:
		name = "Group"
	case ObjectOp:
		name = "Object"
	case FaceOp:
		name = "Face"
	case PushOp:
		name = "Push"
	case PopOp:
		name = "Pop"
	case LongIDOp:
		name = "LongID"
	default:
		return fmt.Sprintf("%d", uint16(o))
	}
	return fmt.Sprintf("%d (%s)", uint16(o), name)
}

// Header prefixes every record. Length includes the header itself.
type Header struct {
	Opcode Opcode
	Length uint16
}

func (h Header) String() string {
	return fmt.Sprintf("Opcode: %v, length: %d", h.Opcode, h.Length)
}

// ParseHeader decodes the first HeaderSize bytes of b.
func ParseHeader(b []byte) Header {
	return Header{
		Opcode: Opcode(binary.BigEndian.Uint16(b[0:2])),
		Length: binary.BigEndian.Uint16(b[2:4]),
	}
}

// ReadHeader reads one record header. It returns io.EOF when the stream ends
// exactly at a record boundary and io.ErrUnexpectedEOF when 1-3 bytes are left.
func ReadHeader(reader io.Reader) (h Header, err error) {
	buffer := make([]byte, HeaderSize)
	_, err = io.ReadFull(reader, buffer)
	if err != nil {
		return
	}
	h = ParseHeader(buffer)
	return
}
