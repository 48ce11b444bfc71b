package flt

import (
	"bytes"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// fixed identifier field, the last byte is the terminator
	nameSize = 8

	faceNameSize     = 7
	faceReservedSize = 8
	faceLength       = HeaderSize + faceNameSize + faceReservedSize + 2 + faceReservedSize + 2
)

// minLength the smallest declared length a record needs for its fixed fields
func minLength(op Opcode) int {
	switch op {
	case DatabaseOp, GroupOp, ObjectOp:
		return HeaderSize + nameSize
	case FaceOp:
		return faceLength
	}
	return HeaderSize
}

// decodeName returns the identifier in a fixed-width NUL-padded field,
// limited to usable bytes and cut at the first NUL.
func decodeName(field []byte, usable int) string {
	if usable < len(field) {
		field = field[:usable]
	}
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}

// Decoder does a single forward pass over an OpenFlight record stream and
// reports the records to a Sink.
type Decoder struct {
	r     *BinaryReader
	sink  Sink
	opts  Options
	log   *log.Entry
	stats Stats
}

// loggerSetter is implemented by sinks that log through the decoder's logger.
type loggerSetter interface {
	setLogger(logger log.Ext1FieldLogger)
}

func NewDecoder(r io.Reader, sink Sink, opts ...Option) *Decoder {
	o := newOptions(opts)
	run := uuid.New()
	d := &Decoder{
		r:    NewBinaryReader(r),
		sink: sink,
		opts: o,
		log: o.Logger.WithFields(log.Fields{
			"run":    run.String(),
			"source": o.Source,
		}),
		stats: Stats{
			Run:     run,
			Opcodes: make(map[Opcode]int),
		},
	}
	if ls, ok := sink.(loggerSetter); ok {
		ls.setLogger(d.log)
	}
	return d
}

// Pos current position in the stream
func (d *Decoder) Pos() int64 {
	return d.r.Pos()
}

func (d *Decoder) Stats() Stats {
	stats := d.stats
	stats.Bytes = d.r.Pos()
	stats.Opcodes = make(map[Opcode]int, len(d.stats.Opcodes))
	for op, n := range d.stats.Opcodes {
		stats.Opcodes[op] = n
	}
	return stats
}

// Decode reads records until the end of the stream. Running out of data at a
// record boundary is a clean stop; anything else is returned as an error.
func (d *Decoder) Decode() (err error) {
	for {
		start := d.r.Pos()
		var header Header
		header, err = ReadHeader(d.r)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			d.log.Warnf("ignoring %d trailing bytes at offset %d", d.r.Pos()-start, start)
			break
		}
		if err != nil {
			return errors.Wrapf(err, "reading header at offset %d", start)
		}
		d.log.Tracef("%v, position:\t0x%-x", header, start)

		err = d.interpret(header, start)
		if err != nil {
			return
		}
	}
	d.log.Debug("decoded: ", d.Stats())
	return nil
}

func (d *Decoder) interpret(header Header, start int64) (err error) {
	d.stats.count(header.Opcode)

	if need := minLength(header.Opcode); int(header.Length) < need {
		return d.corrupt(header, start, need)
	}

	switch header.Opcode {
	case DatabaseOp, GroupOp, ObjectOp:
		var field []byte
		field, err = d.r.GetBytes(nameSize)
		if err != nil {
			return d.readError(header, start, err)
		}
		if err = d.finish(header, start); err != nil {
			return
		}
		return d.sink.Record(Record{
			Kind:   kindOf(header.Opcode),
			Name:   decodeName(field, nameSize-1),
			Offset: start,
			Length: header.Length,
		})
	case FaceOp:
		var rec Record
		rec, err = d.readFace(header, start)
		if err != nil {
			return
		}
		return d.sink.Record(rec)
	case PushOp:
		if err = d.finish(header, start); err != nil {
			return
		}
		return d.sink.Push()
	case PopOp:
		if err = d.finish(header, start); err != nil {
			return
		}
		return d.sink.Pop()
	default:
		d.stats.Skipped++
		d.log.Debugf("skipping %v at offset %d", header, start)
		return d.finish(header, start)
	}
}

// finish skips whatever is left of the record so the position ends at
// start + length, then reports the record to the observer.
func (d *Decoder) finish(header Header, start int64) error {
	remaining := start + int64(header.Length) - d.r.Pos()
	if remaining > 0 {
		if _, err := d.r.Skip(remaining); err != nil {
			return d.readError(header, start, err)
		}
	}
	if d.opts.Observer != nil {
		d.opts.Observer(header, start, d.r.Pos())
	}
	return nil
}

func (d *Decoder) corrupt(header Header, start int64, need int) error {
	cerr := &CorruptRecordError{
		Offset: start,
		Opcode: header.Opcode,
		Length: header.Length,
		Min:    need,
	}
	if !d.opts.Lenient {
		return cerr
	}
	d.stats.Corrupt++
	d.log.Warnf("%v, skipping", cerr)
	return d.finish(header, start)
}

func (d *Decoder) readError(header Header, start int64, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &TruncatedError{
			Offset: start,
			Opcode: header.Opcode,
			Length: header.Length,
			Err:    err,
		}
	}
	return errors.Wrapf(err, "reading %v at offset %d", header.Opcode, start)
}

func (d *Decoder) readFace(header Header, start int64) (rec Record, err error) {
	rec = Record{
		Kind:   FaceKind,
		Offset: start,
		Length: header.Length,
	}
	field, err := d.r.GetBytes(faceNameSize)
	if err != nil {
		err = d.readError(header, start, err)
		return
	}
	rec.Name = decodeName(field, faceNameSize-1)

	if _, err = d.r.Skip(faceReservedSize); err != nil {
		err = d.readError(header, start, err)
		return
	}
	rec.ColorNameIndex, err = d.r.GetUint16()
	if err != nil {
		err = d.readError(header, start, err)
		return
	}
	if _, err = d.r.Skip(faceReservedSize); err != nil {
		err = d.readError(header, start, err)
		return
	}
	rec.MaterialIndex, err = d.r.GetInt16()
	if err != nil {
		err = d.readError(header, start, err)
		return
	}
	if err = d.finish(header, start); err != nil {
		return
	}

	name, found, err := d.readLongID()
	if err != nil {
		return
	}
	if found {
		rec.Name = name
	}
	return
}

// readLongID absorbs a long identifier record directly following the current
// record. Any other record is left in the stream untouched.
func (d *Decoder) readLongID() (name string, found bool, err error) {
	start := d.r.Pos()
	peeked, err := d.r.Peek(HeaderSize)
	if err == io.EOF {
		// fewer than HeaderSize bytes left, the main loop handles that
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "peeking header at offset %d", start)
	}
	header := ParseHeader(peeked)
	if header.Opcode != LongIDOp {
		return "", false, nil
	}

	if _, err = d.r.Skip(HeaderSize); err != nil {
		return "", false, d.readError(header, start, err)
	}
	d.stats.count(header.Opcode)
	if int(header.Length) < HeaderSize {
		if err = d.corrupt(header, start, HeaderSize); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	field, err := d.r.GetBytes(int(header.Length) - HeaderSize)
	if err != nil {
		return "", false, d.readError(header, start, err)
	}
	if err = d.finish(header, start); err != nil {
		return "", false, err
	}
	name = decodeName(field, len(field))
	if name == "" {
		d.log.Debugf("empty long id at offset %d, keeping the short name", start)
		return "", false, nil
	}
	d.stats.LongIDs++
	return name, true, nil
}
