package ulib

import (
	"runtime"

	"github.com/wingrew/thcore"
)

// Uname fills u with the kernel's identification record.
func (s *Shim) Uname(u *Utsname) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return int32(s.k.Invoke(thcore.NR_uname, pinRef(&pin, u)))
}

// UtsField returns one NUL-padded Utsname component as a string.
func UtsField(f *[65]byte) string {
	for i, b := range f {
		if b == 0 {
			return string(f[:i])
		}
	}
	return string(f[:])
}
