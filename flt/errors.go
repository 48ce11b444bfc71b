package flt

import (
	"errors"
	"fmt"
)

var (
	ErrCorruptRecord = errors.New("corrupt record")
	ErrTruncated     = errors.New("record truncated")
)

// CorruptRecordError reports a record whose declared length cannot hold
// the fields its opcode requires.
type CorruptRecordError struct {
	Offset int64
	Opcode Opcode
	Length uint16
	Min    int
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt record at offset %d (0x%x): opcode %v declares length %d, needs at least %d",
		e.Offset, e.Offset, e.Opcode, e.Length, e.Min)
}

func (e *CorruptRecordError) Unwrap() error {
	return ErrCorruptRecord
}

// TruncatedError reports a stream that ended in the middle of a record.
type TruncatedError struct {
	Offset int64
	Opcode Opcode
	Length uint16
	Err    error
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("record %v at offset %d (0x%x) with length %d is truncated: %v",
		e.Opcode, e.Offset, e.Offset, e.Length, e.Err)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

func (e *TruncatedError) Unwrap() error {
	return e.Err
}
