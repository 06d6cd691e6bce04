package dataset

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.dat")
	sample := Sample{5, 3, 5, 1, 2}

	require.NoError(t, WriteFile(path, sample))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestWriteReadEmptySample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dat")

	require.NoError(t, WriteFile(path, Sample{}))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.dat"))
	assert.Error(t, err)
}

func TestReadFileEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.dat")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadFileTruncatedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.dat")

	// declares 10 values but carries only 2
	buf := binary.LittleEndian.AppendUint32(nil, 10)
	buf = binary.LittleEndian.AppendUint32(buf, 7)
	buf = binary.LittleEndian.AppendUint32(buf, 9)
	require.NoError(t, os.WriteFile(path, buf, 0644))

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadFileNegativeLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dat")

	buf := binary.LittleEndian.AppendUint32(nil, 0xFFFFFFFF) // int32 -1
	require.NoError(t, os.WriteFile(path, buf, 0644))

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrBadLength)
}

func TestFileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.dat")
	require.NoError(t, WriteFile(path, Sample{-1, 256}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// int32 length prefix then packed little-endian int32 values
	want := []byte{
		0x02, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x01, 0x00, 0x00,
	}
	assert.Equal(t, want, raw)
}
