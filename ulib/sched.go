package ulib

import (
	"runtime"

	"github.com/wingrew/thcore"
)

// Fork duplicates the calling process via clone, requesting only
// child-termination-signal delivery, the traditional fork semantics.
func (s *Shim) Fork() int32 {
	return int32(s.k.Invoke(thcore.NR_clone, SIGCHLD, 0))
}

// Clone starts a child running fn(arg) on the caller-supplied stack.
// The stack grows downward, so the primitive receives the buffer's end
// as the stack base; a nil stack passes the null address and the child
// shares the parent's. The parent/child thread-ID slots are left empty
// for this simplified surface.
func (s *Shim) Clone(fn, arg uint64, stack []byte, flags uint64) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	top := pinBytes(&pin, stack)
	if top != 0 {
		top += uint64(len(stack))
	}
	return int32(s.k.Invoke(thcore.NR_clone, fn, top, flags, arg, 0, 0))
}

func (s *Shim) Exit(code int32) {
	s.k.Invoke(thcore.NR_exit, argi(code))
}

// Waitpid blocks until pid changes state, storing the raw status word
// through code. The rusage slot of the underlying wait4 stays empty.
func (s *Shim) Waitpid(pid int32, code *int32, options int32) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return int32(s.k.Invoke(thcore.NR_wait4, argi(pid), pinRef(&pin, code), argi(options), 0))
}

// Wait reaps any child.
func (s *Shim) Wait(code *int32) int32 {
	return s.Waitpid(-1, code, 0)
}

// Exec replaces the process image by name alone, leaving the argument
// and environment slots to the kernel's defaults.
func (s *Shim) Exec(name string) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	p := cstring(name)
	return int32(s.k.Invoke(thcore.NR_execve, pinBytes(&pin, p)))
}

// Execve replaces the process image. argv and envp are marshaled into
// null-terminated pointer vectors the way a C caller would lay them out.
func (s *Shim) Execve(name string, argv, envp []string) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	p := cstring(name)
	av := pinVector(&pin, argv)
	ev := pinVector(&pin, envp)
	return int32(s.k.Invoke(thcore.NR_execve, pinBytes(&pin, p), pinRef(&pin, &av[0]), pinRef(&pin, &ev[0])))
}

// ExecImage is a fully marshaled exec request. In a forked child the
// runtime locks other threads held at clone time are never released,
// so the child must not allocate between fork and exec; building the
// image up front keeps ExecPrepared allocation-free.
type ExecImage struct {
	pin  runtime.Pinner
	name uint64
	argv uint64
	envp uint64
}

// NewExecImage marshals and pins an exec request. The parent (or an
// exec-failure path) must call Release when the image is no longer
// needed.
func NewExecImage(name string, argv, envp []string) *ExecImage {
	img := new(ExecImage)
	p := cstring(name)
	av := pinVector(&img.pin, argv)
	ev := pinVector(&img.pin, envp)
	img.name = pinBytes(&img.pin, p)
	img.argv = pinRef(&img.pin, &av[0])
	img.envp = pinRef(&img.pin, &ev[0])
	return img
}

// Release unpins the image's buffers.
func (img *ExecImage) Release() {
	img.pin.Unpin()
}

// ExecPrepared replaces the process image from a pre-marshaled request
// without touching the allocator.
func (s *Shim) ExecPrepared(img *ExecImage) int32 {
	return int32(s.k.Invoke(thcore.NR_execve, img.name, img.argv, img.envp))
}

// pinVector lays out a null-terminated vector of pinned string
// addresses.
func pinVector(pin *runtime.Pinner, ss []string) []uint64 {
	vec := make([]uint64, len(ss)+1)
	for i, s := range ss {
		vec[i] = pinBytes(pin, cstring(s))
	}
	return vec
}

func (s *Shim) Getpid() int32 {
	return int32(s.k.Invoke(thcore.NR_getpid))
}

func (s *Shim) Getppid() int32 {
	return int32(s.k.Invoke(thcore.NR_getppid))
}

func (s *Shim) SchedYield() int32 {
	return int32(s.k.Invoke(thcore.NR_sched_yield))
}

// SetPriority forwards the single priority argument; the which/who
// selectors are not part of this surface.
func (s *Shim) SetPriority(prio int32) int32 {
	return int32(s.k.Invoke(thcore.NR_setpriority, argi(prio)))
}

// Times fills t with the process's accumulated times and returns the
// raw clock-tick result.
func (s *Shim) Times(t *Tms) int64 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return s.k.Invoke(thcore.NR_times, pinRef(&pin, t))
}

// Brk forwards the requested program break.
func (s *Shim) Brk(a uint64) int64 {
	return s.k.Invoke(thcore.NR_brk, a)
}
