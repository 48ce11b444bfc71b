package flt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTree(t *testing.T) {
	s := scenario()
	s.push()
	s.face("f", 3, -1, 0)
	s.longID("LongerName")

	tree, err := ReadTree(s.reader())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, PrintTree(&out, tree))
	assert.Equal(t, "Database: DB1\n"+
		"  Group: G1\n"+
		"    Object: O1\n"+
		"    Face: 'LongerName', Color Index: 3, Material Index: -1\n", out.String())
}

func TestPrintRecordsFlat(t *testing.T) {
	s := scenario()
	s.push()
	s.face("f", 3, -1, 0)
	s.pop().pop().pop()
	s.named(GroupOp, "G2", 0)

	var out bytes.Buffer
	require.NoError(t, PrintRecords(s.reader(), &out))
	assert.Equal(t, "Database: DB1\n"+
		"Group: G1\n"+
		"  Object: O1\n"+
		"  Face: 'f', Color Index: 3, Material Index: -1\n"+
		"Group: G2\n", out.String())
}

func TestLinePrinterDepth(t *testing.T) {
	p := NewLinePrinter(&bytes.Buffer{})
	require.NoError(t, p.Pop())
	assert.Equal(t, 0, p.Depth())
	require.NoError(t, p.Push())
	require.NoError(t, p.Push())
	assert.Equal(t, 2, p.Depth())
	require.NoError(t, p.Pop())
	assert.Equal(t, 1, p.Depth())
}
