package flt

import (
	"fmt"

	"github.com/google/uuid"
)

// Stats summarises one decode run.
type Stats struct {
	Run     uuid.UUID
	Records int
	Bytes   int64
	Opcodes map[Opcode]int
	// unknown records skipped without interpretation
	Skipped int
	LongIDs int
	// undersized records skipped in lenient mode
	Corrupt int
}

func (s Stats) String() string {
	return fmt.Sprintf("run: %v, records: %d, bytes: %d, skipped: %d, long ids: %d, corrupt: %d",
		s.Run, s.Records, s.Bytes, s.Skipped, s.LongIDs, s.Corrupt)
}

func (s *Stats) count(op Opcode) {
	s.Records++
	s.Opcodes[op]++
}
