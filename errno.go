package thcore

import "fmt"

// Errno names a kernel error code. Operations signal failure by
// returning the negated code; nothing in this module classifies
// errors beyond that, Errno exists so callers can render them.
type Errno int64

const (
	EPERM   Errno = 1
	ENOENT  Errno = 2
	ESRCH   Errno = 3
	EINTR   Errno = 4
	EIO     Errno = 5
	ENXIO   Errno = 6
	E2BIG   Errno = 7
	ENOEXEC Errno = 8
	EBADF   Errno = 9
	ECHILD  Errno = 10
	EAGAIN  Errno = 11
	ENOMEM  Errno = 12
	EACCES  Errno = 13
	EFAULT  Errno = 14
	ENOTBLK Errno = 15
	EBUSY   Errno = 16
	EEXIST  Errno = 17
	EXDEV   Errno = 18
	ENODEV  Errno = 19
	ENOTDIR Errno = 20
	EISDIR  Errno = 21
	EINVAL  Errno = 22
	ENFILE  Errno = 23
	EMFILE  Errno = 24
	ENOTTY  Errno = 25
	EFBIG   Errno = 27
	ENOSPC  Errno = 28
	ESPIPE  Errno = 29
	EROFS   Errno = 30
	EMLINK  Errno = 31
	EPIPE   Errno = 32
	ERANGE  Errno = 34
	ENOSYS  Errno = 38
)

var errnoNames = map[Errno]string{
	EPERM:   "EPERM",
	ENOENT:  "ENOENT",
	ESRCH:   "ESRCH",
	EINTR:   "EINTR",
	EIO:     "EIO",
	ENXIO:   "ENXIO",
	E2BIG:   "E2BIG",
	ENOEXEC: "ENOEXEC",
	EBADF:   "EBADF",
	ECHILD:  "ECHILD",
	EAGAIN:  "EAGAIN",
	ENOMEM:  "ENOMEM",
	EACCES:  "EACCES",
	EFAULT:  "EFAULT",
	ENOTBLK: "ENOTBLK",
	EBUSY:   "EBUSY",
	EEXIST:  "EEXIST",
	EXDEV:   "EXDEV",
	ENODEV:  "ENODEV",
	ENOTDIR: "ENOTDIR",
	EISDIR:  "EISDIR",
	EINVAL:  "EINVAL",
	ENFILE:  "ENFILE",
	EMFILE:  "EMFILE",
	ENOTTY:  "ENOTTY",
	EFBIG:   "EFBIG",
	ENOSPC:  "ENOSPC",
	ESPIPE:  "ESPIPE",
	EROFS:   "EROFS",
	EMLINK:  "EMLINK",
	EPIPE:   "EPIPE",
	ERANGE:  "ERANGE",
	ENOSYS:  "ENOSYS",
}

func (e Errno) Error() string {
	if name, ok := errnoNames[e]; ok {
		return name
	}
	return fmt.Sprintf("errno %d", int64(e))
}

// FromResult converts a raw negative invocation result into an Errno,
// or nil if the result signals success.
func FromResult(r int64) error {
	if r >= 0 {
		return nil
	}
	return Errno(-r)
}
