package ulib

import "github.com/wingrew/thcore"

// Mmap forwards the six mapping arguments verbatim and returns the raw
// result: the mapped address, or a negative error in the same word.
func (s *Shim) Mmap(start uint64, length uint64, prot, flags, fd int32, off int64) uint64 {
	r := s.k.Invoke(thcore.NR_mmap, start, length, argi(prot), argi(flags), argi(fd), uint64(off))
	return uint64(r)
}

func (s *Shim) Munmap(start uint64, length uint64) int32 {
	return int32(s.k.Invoke(thcore.NR_munmap, start, length))
}
