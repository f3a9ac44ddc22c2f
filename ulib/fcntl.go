package ulib

import (
	"runtime"

	"github.com/wingrew/thcore"
)

// Open resolves path against the current directory. The legacy
// surface has no mode parameter; the mode slot carries O_RDWR, which
// is what the test programs were built against.
func (s *Shim) Open(path string, flags int32) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	p := cstring(path)
	return int32(s.k.Invoke(thcore.NR_openat, argi(AT_FDCWD), pinBytes(&pin, p), argi(flags), O_RDWR))
}

// Openat resolves path against dirfd and injects the 0600 default mode.
func (s *Shim) Openat(dirfd int32, path string, flags int32) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	p := cstring(path)
	return int32(s.k.Invoke(thcore.NR_openat, argi(dirfd), pinBytes(&pin, p), argi(flags), defaultFileMode))
}

func (s *Shim) Close(fd int32) int32 {
	return int32(s.k.Invoke(thcore.NR_close, argi(fd)))
}

// Read fills buf from fd; the count is the buffer's length, the result
// the number of bytes read or a negative error.
func (s *Shim) Read(fd int32, buf []byte) int64 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return s.k.Invoke(thcore.NR_read, argi(fd), pinBytes(&pin, buf), uint64(len(buf)))
}

func (s *Shim) Write(fd int32, buf []byte) int64 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return s.k.Invoke(thcore.NR_write, argi(fd), pinBytes(&pin, buf), uint64(len(buf)))
}

func (s *Shim) Lseek(fd int32, off int64, whence int32) int64 {
	return s.k.Invoke(thcore.NR_lseek, argi(fd), uint64(off), argi(whence))
}

// Pipe fills fds with the read and write descriptors of a new pipe,
// passing a zero flag set to the underlying pipe2.
func (s *Shim) Pipe(fds *[2]int32) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return int32(s.k.Invoke(thcore.NR_pipe2, pinRef(&pin, fds), 0))
}

func (s *Shim) Dup(fd int32) int32 {
	return int32(s.k.Invoke(thcore.NR_dup, argi(fd)))
}

// Dup2 is a dup3 with a zero flag set.
func (s *Shim) Dup2(oldfd, newfd int32) int32 {
	return int32(s.k.Invoke(thcore.NR_dup3, argi(oldfd), argi(newfd), 0))
}

// Getdents fills buf with packed Dirent64 records; see ParseDirent for
// walking the result.
func (s *Shim) Getdents(fd int32, buf []byte) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return int32(s.k.Invoke(thcore.NR_getdents64, argi(fd), pinBytes(&pin, buf), uint64(len(buf))))
}

func (s *Shim) Mkdir(path string, mode uint32) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	p := cstring(path)
	return int32(s.k.Invoke(thcore.NR_mkdirat, argi(AT_FDCWD), pinBytes(&pin, p), uint64(mode)))
}

func (s *Shim) Chdir(path string) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	p := cstring(path)
	return int32(s.k.Invoke(thcore.NR_chdir, pinBytes(&pin, p)))
}

// Getcwd writes the current directory into the caller's buffer and
// returns the raw result.
func (s *Shim) Getcwd(buf []byte) int64 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return s.k.Invoke(thcore.NR_getcwd, pinBytes(&pin, buf), uint64(len(buf)))
}

// Linkat is the five-argument primitive; Link is the convenience form
// anchored to the current directory on both sides with a zero flag set.
func (s *Shim) Linkat(olddirfd int32, oldpath string, newdirfd int32, newpath string, flags uint32) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	op := cstring(oldpath)
	np := cstring(newpath)
	return int32(s.k.Invoke(thcore.NR_linkat, argi(olddirfd), pinBytes(&pin, op), argi(newdirfd), pinBytes(&pin, np), uint64(flags)))
}

func (s *Shim) Link(oldpath, newpath string) int32 {
	return s.Linkat(AT_FDCWD, oldpath, AT_FDCWD, newpath, 0)
}

// Unlinkat is the three-argument primitive; Unlink anchors to the
// current directory with a zero flag set.
func (s *Shim) Unlinkat(dirfd int32, path string, flags uint32) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	p := cstring(path)
	return int32(s.k.Invoke(thcore.NR_unlinkat, argi(dirfd), pinBytes(&pin, p), uint64(flags)))
}

func (s *Shim) Unlink(path string) int32 {
	return s.Unlinkat(AT_FDCWD, path, 0)
}

func (s *Shim) Mount(special, dir, fstype string, flags uint64, data []byte) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	sp := cstring(special)
	dp := cstring(dir)
	tp := cstring(fstype)
	return int32(s.k.Invoke(thcore.NR_mount, pinBytes(&pin, sp), pinBytes(&pin, dp), pinBytes(&pin, tp), flags, pinBytes(&pin, data)))
}

// Umount is an umount2 with a zero flag set.
func (s *Shim) Umount(special string) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	p := cstring(special)
	return int32(s.k.Invoke(thcore.NR_umount2, pinBytes(&pin, p), 0))
}
