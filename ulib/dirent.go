package ulib

import "encoding/binary"

// Directory entry types as getdents64 reports them.
const (
	DT_UNKNOWN = 0
	DT_FIFO    = 1
	DT_CHR     = 2
	DT_DIR     = 4
	DT_BLK     = 6
	DT_REG     = 8
	DT_LNK     = 10
	DT_SOCK    = 12
)

// Dirent64 is the fixed header of one directory record; the
// NUL-terminated name follows inline and Reclen covers both.
type Dirent64 struct {
	Ino    ino_t
	Off    off_t
	Reclen uint16
	Type   uint8
}

// 8 (ino) + 8 (off) + 2 (reclen) + 1 (type)
const direntHeaderLen = 19

// ParseDirent decodes the record at the head of a buffer filled by
// Getdents, returning the header, the entry name and the remaining
// buffer. ok is false once no complete record is left.
func ParseDirent(buf []byte) (ent Dirent64, name string, rest []byte, ok bool) {
	if len(buf) < direntHeaderLen {
		return Dirent64{}, "", nil, false
	}
	ent.Ino = ino_t(binary.LittleEndian.Uint64(buf[0:8]))
	ent.Off = off_t(binary.LittleEndian.Uint64(buf[8:16]))
	ent.Reclen = binary.LittleEndian.Uint16(buf[16:18])
	ent.Type = buf[18]
	if int(ent.Reclen) < direntHeaderLen || int(ent.Reclen) > len(buf) {
		return Dirent64{}, "", nil, false
	}
	raw := buf[direntHeaderLen:ent.Reclen]
	for i, b := range raw {
		if b == 0 {
			raw = raw[:i]
			break
		}
	}
	return ent, string(raw), buf[ent.Reclen:], true
}
