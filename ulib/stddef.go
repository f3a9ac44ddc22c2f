// Package ulib is the user-space syscall layer the kernel test programs
// link against: one exported operation per POSIX-like primitive, each
// translating into exactly one raw invocation with a fixed argument
// order. The layer validates nothing and keeps no state; constraint
// checking belongs to the kernel under test and failures surface
// verbatim as negative results.
package ulib

import (
	"runtime"
	"unsafe"
)

type long_t int
type ulong_t uint
type size_t ulong_t
type ssize_t long_t
type time_t long_t
type suseconds_t long_t
type off_t long_t
type dev_t ulong_t
type ino_t ulong_t
type mode_t uint32
type nlink_t uint32
type uid_t uint32
type gid_t uint32
type pid_t int32

const (
	AT_FDCWD      = -100
	AT_EMPTY_PATH = 0x1000

	O_RDONLY = 0x0
	O_WRONLY = 0x1
	O_RDWR   = 0x2
	O_CREATE = 0x40

	SIGCHLD = 17

	// Default mode openat injects when the caller does not pass one.
	defaultFileMode = 0o600
)

// TimeVal is the wall-clock pair used both as a sleep request and as
// the remainder left by an interrupted sleep.
type TimeVal struct {
	Sec  time_t
	Usec suseconds_t
}

type TimeSpec struct {
	Sec  time_t
	Nsec long_t
}

// Kstat is the legacy file-status record, laid out field-for-field as
// the target kernel writes it.
type Kstat struct {
	Dev     dev_t
	Ino     ino_t
	Mode    mode_t
	Nlink   nlink_t
	Uid     uid_t
	Gid     gid_t
	Rdev    dev_t
	_       ulong_t
	Size    off_t
	Blksize int32
	_       int32
	Blocks  long_t
	Atim    TimeSpec
	Mtim    TimeSpec
	Ctim    TimeSpec
	_       [2]uint32
}

type StatxTimestamp struct {
	Sec  int64
	Nsec uint32
	_    int32
}

// Statx is the extended file-status record with split device
// major/minor fields and nanosecond timestamps.
type Statx struct {
	Mask           uint32
	Blksize        uint32
	Attributes     uint64
	Nlink          uint32
	Uid            uint32
	Gid            uint32
	Mode           uint16
	_              uint16
	Ino            uint64
	Size           uint64
	Blocks         uint64
	AttributesMask uint64
	Atime          StatxTimestamp
	Btime          StatxTimestamp
	Ctime          StatxTimestamp
	Mtime          StatxTimestamp
	RdevMajor      uint32
	RdevMinor      uint32
	DevMajor       uint32
	DevMinor       uint32
	_              [14]uint64
}

// Utsname is the fixed record uname fills in caller memory.
type Utsname struct {
	Sysname    [65]byte
	Nodename   [65]byte
	Release    [65]byte
	Version    [65]byte
	Machine    [65]byte
	Domainname [65]byte
}

// Tms is the process-times record filled by times.
type Tms struct {
	Utime  long_t
	Stime  long_t
	Cutime long_t
	Cstime long_t
}

// pinRef pins a record and yields its address for an invocation
// argument slot. An integer address is only stable while its object is
// pinned: stacks move when they grow, and KeepAlive prevents
// collection, not movement. Every pin lasts until the invocation
// returns.
func pinRef[T any](pin *runtime.Pinner, p *T) uint64 {
	pin.Pin(p)
	return uint64(uintptr(unsafe.Pointer(p)))
}

// pinBytes pins a caller buffer and yields its base address; an empty
// buffer passes the null address, matching a null pointer in the C
// surface.
func pinBytes(pin *runtime.Pinner, b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	p := unsafe.SliceData(b)
	pin.Pin(p)
	return uint64(uintptr(unsafe.Pointer(p)))
}

// addr reads back the base address of an already-pinned buffer.
func addr(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	return uint64(uintptr(unsafe.Pointer(unsafe.SliceData(b))))
}

// cstring copies s into a NUL-terminated buffer; paths cross the
// boundary as null-terminated byte sequences.
func cstring(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// argi sign-extends a small signed argument (fd, pid, dirfd anchor)
// into the register-width slot.
func argi[T ~int | ~int32 | ~int64](v T) uint64 {
	return uint64(int64(v))
}
