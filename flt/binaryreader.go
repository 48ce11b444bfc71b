package flt

import (
	"bufio"
	"encoding/binary"
	"io"
)

// BinaryReader is a forward only, big-endian reader over a record stream.
// It keeps track of the absolute offset so records can be accounted for.
type BinaryReader struct {
	r        *bufio.Reader
	position int64
}

// NewBinaryReader wraps r, starting at offset 0
func NewBinaryReader(r io.Reader) *BinaryReader {
	return &BinaryReader{
		r: bufio.NewReader(r),
	}
}

// Pos current position in the stream
func (d *BinaryReader) Pos() int64 {
	return d.position
}

func (d *BinaryReader) Read(b []byte) (n int, err error) {
	n, err = d.r.Read(b)
	d.position += int64(n)
	return
}

func (d *BinaryReader) ReadByte() (b byte, err error) {
	b, err = d.r.ReadByte()
	if err != nil {
		return b, err
	}
	d.position += 1
	return
}

func (d *BinaryReader) GetBytes(size int) (result []byte, err error) {
	result = make([]byte, size)
	_, err = io.ReadFull(d, result)
	return
}

func (d *BinaryReader) GetUint16() (result uint16, err error) {
	err = binary.Read(d, binary.BigEndian, &result)
	return
}

func (d *BinaryReader) GetInt16() (result int16, err error) {
	err = binary.Read(d, binary.BigEndian, &result)
	return
}

// Peek returns the next n bytes without moving the position.
// The slice is only valid until the next read.
func (d *BinaryReader) Peek(n int) ([]byte, error) {
	return d.r.Peek(n)
}

// Skip moves forward n bytes. A zero or negative n is a no-op.
func (d *BinaryReader) Skip(n int64) (skipped int64, err error) {
	for n > 0 {
		chunk := n
		if chunk > maxDiscard {
			chunk = maxDiscard
		}
		var discarded int
		discarded, err = d.r.Discard(int(chunk))
		d.position += int64(discarded)
		skipped += int64(discarded)
		n -= int64(discarded)
		if err != nil {
			return
		}
	}
	return
}

const maxDiscard = 1 << 20
