package ulib

import (
	"runtime"

	"github.com/wingrew/thcore"
)

// Field mask the fallback requests from statx: type, mode, nlink, gid,
// atime and mtime, matching what musl's fstat emulation asks for.
const statxWantMask = 0x77

// Makedev packs split device major/minor components into the combined
// device-number encoding the legacy status record carries: major in
// bits 44 and 8, minor in bits 12 and 0.
func Makedev(major, minor uint32) dev_t {
	x := uint64(major)
	y := uint64(minor)
	return dev_t((x&0xfffff000)<<32 | (x&0x00000fff)<<8 | (y&0xffffff00)<<12 | y&0x000000ff)
}

// Fstat queries file status for an open descriptor. Targets that carry
// the legacy number forward unchanged; on the others the query goes
// through statx with the empty-path addressing mode and the extended
// record is transcribed field-by-field into st. A failed query leaves
// st untouched and propagates the negative result.
func (s *Shim) Fstat(fd int32, st *Kstat) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	if s.abi.HasFstat() {
		return int32(s.k.Invoke(thcore.NR_fstat, argi(fd), pinRef(&pin, st)))
	}
	var stx Statx
	p := cstring("")
	r := s.k.Invoke(thcore.NR_statx, argi(fd), pinBytes(&pin, p), AT_EMPTY_PATH, statxWantMask, pinRef(&pin, &stx))
	if r < 0 {
		return int32(r)
	}
	*st = Kstat{
		Dev:     Makedev(stx.DevMajor, stx.DevMinor),
		Ino:     ino_t(stx.Ino),
		Mode:    mode_t(stx.Mode),
		Nlink:   nlink_t(stx.Nlink),
		Uid:     uid_t(stx.Uid),
		Gid:     gid_t(stx.Gid),
		Rdev:    Makedev(stx.RdevMajor, stx.RdevMinor),
		Size:    off_t(stx.Size),
		Blksize: int32(stx.Blksize),
		Blocks:  long_t(stx.Blocks),
		Atim:    TimeSpec{Sec: time_t(stx.Atime.Sec), Nsec: long_t(stx.Atime.Nsec)},
		Mtim:    TimeSpec{Sec: time_t(stx.Mtime.Sec), Nsec: long_t(stx.Mtime.Nsec)},
		Ctim:    TimeSpec{Sec: time_t(stx.Ctime.Sec), Nsec: long_t(stx.Ctime.Nsec)},
	}
	return int32(r)
}
