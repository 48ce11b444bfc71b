package flt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "model.flt")
	require.NoError(t, os.WriteFile(name, data, 0o644))
	return name
}

func TestReadFile(t *testing.T) {
	name := writeFile(t, scenario().bytes())

	tree, err := ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Len())

	var out bytes.Buffer
	require.NoError(t, PrintFile(name, &out))
	assert.Equal(t, "Database: DB1\nGroup: G1\n  Object: O1\n", out.String())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.flt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	err = PrintFile(filepath.Join(t.TempDir(), "missing.flt"), &bytes.Buffer{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadFileCorrupt(t *testing.T) {
	s := &stream{}
	s.header(DatabaseOp, 2)
	name := writeFile(t, s.bytes())

	tree, err := ReadFile(name)
	assert.Nil(t, tree)
	assert.True(t, errors.Is(err, ErrCorruptRecord))

	tree, err = ReadFile(name, WithLenient(true))
	require.NoError(t, err)
	assert.Equal(t, 0, tree.Len())
}

func TestDecodeFileStats(t *testing.T) {
	s := scenario()
	s.face("f", 1, 0, 0).longID("LongerName")
	name := writeFile(t, s.bytes())

	builder := NewTreeBuilder()
	stats, err := DecodeFile(name, builder)
	require.NoError(t, err)
	assert.Equal(t, int64(len(s.bytes())), stats.Bytes)
	assert.Equal(t, 7, stats.Records)
	assert.Equal(t, 1, stats.LongIDs)
	assert.Equal(t, 4, builder.Tree().Len())

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.flt"), NewTreeBuilder())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
