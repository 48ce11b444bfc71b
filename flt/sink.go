package flt

// Record is a visible record (database, group, object or face) as decoded
// from the stream.
type Record struct {
	Kind   Kind
	Name   string
	Offset int64
	Length uint16
	// face only
	ColorNameIndex uint16
	MaterialIndex  int16
}

// Sink receives the decoded records in stream order. Returning an error
// aborts the decode.
type Sink interface {
	Record(rec Record) error
	Push() error
	Pop() error
}
