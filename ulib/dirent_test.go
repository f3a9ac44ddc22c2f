package ulib

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putDirent(buf []byte, ino uint64, off int64, typ uint8, name string) []byte {
	reclen := direntHeaderLen + len(name) + 1
	// getdents aligns records to 8 bytes
	reclen = (reclen + 7) &^ 7
	rec := make([]byte, reclen)
	binary.LittleEndian.PutUint64(rec[0:8], ino)
	binary.LittleEndian.PutUint64(rec[8:16], uint64(off))
	binary.LittleEndian.PutUint16(rec[16:18], uint16(reclen))
	rec[18] = typ
	copy(rec[direntHeaderLen:], name)
	return append(buf, rec...)
}

func TestParseDirentWalksBuffer(t *testing.T) {
	var buf []byte
	buf = putDirent(buf, 2, 1, DT_DIR, ".")
	buf = putDirent(buf, 1, 2, DT_DIR, "..")
	buf = putDirent(buf, 77, 3, DT_REG, "test_file")

	ent, name, rest, ok := ParseDirent(buf)
	require.True(t, ok)
	assert.Equal(t, ino_t(2), ent.Ino)
	assert.Equal(t, uint8(DT_DIR), ent.Type)
	assert.Equal(t, ".", name)

	ent, name, rest, ok = ParseDirent(rest)
	require.True(t, ok)
	assert.Equal(t, "..", name)

	ent, name, rest, ok = ParseDirent(rest)
	require.True(t, ok)
	assert.Equal(t, ino_t(77), ent.Ino)
	assert.Equal(t, off_t(3), ent.Off)
	assert.Equal(t, uint8(DT_REG), ent.Type)
	assert.Equal(t, "test_file", name)

	_, _, _, ok = ParseDirent(rest)
	assert.False(t, ok)
}

func TestParseDirentRejectsTruncated(t *testing.T) {
	var buf []byte
	buf = putDirent(buf, 2, 1, DT_REG, "abc")

	_, _, _, ok := ParseDirent(buf[:direntHeaderLen-1])
	assert.False(t, ok)

	// reclen pointing past the buffer is a short read, not a record
	short := append([]byte(nil), buf...)
	binary.LittleEndian.PutUint16(short[16:18], uint16(len(buf)+8))
	_, _, _, ok = ParseDirent(short)
	assert.False(t, ok)
}
