package flt

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadTree decodes the whole stream into a Tree.
func ReadTree(r io.Reader, opts ...Option) (*Tree, error) {
	builder := NewTreeBuilder()
	err := NewDecoder(r, builder, opts...).Decode()
	if err != nil {
		return nil, err
	}
	return builder.Tree(), nil
}

// PrintRecords writes one line per record to w while decoding, indented by
// the push/pop level.
func PrintRecords(r io.Reader, w io.Writer, opts ...Option) error {
	return NewDecoder(r, NewLinePrinter(w), opts...).Decode()
}

// DecodeFile opens filename, decodes it into sink and closes it again.
func DecodeFile(filename string, sink Sink, opts ...Option) (stats Stats, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return stats, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()

	decoder := NewDecoder(file, sink, append([]Option{WithSourceName(filename)}, opts...)...)
	err = decoder.Decode()
	return decoder.Stats(), err
}

func ReadFile(filename string, opts ...Option) (*Tree, error) {
	builder := NewTreeBuilder()
	_, err := DecodeFile(filename, builder, opts...)
	if err != nil {
		return nil, err
	}
	return builder.Tree(), nil
}

func PrintFile(filename string, w io.Writer, opts ...Option) error {
	_, err := DecodeFile(filename, NewLinePrinter(w), opts...)
	return err
}
