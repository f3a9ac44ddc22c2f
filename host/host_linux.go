//go:build linux && (arm64 || riscv64 || loong64)

// Package host provides the thcore.Kernel backed by the running
// machine's syscall instruction. It is only available where the host's
// native number table is the asm-generic one the shim targets.
package host

import (
	"golang.org/x/sys/unix"

	"github.com/wingrew/thcore"
)

type Kernel struct{}

var _ thcore.Kernel = Kernel{}

// Invoke traps into the host kernel. Missing arguments are zero-padded
// to the six-register convention; an errno comes back negated so the
// result matches what a raw trap would have left in the return register.
func (Kernel) Invoke(nr thcore.NR, args ...uint64) int64 {
	var a [6]uintptr
	for i, v := range args {
		a[i] = uintptr(v)
	}
	r1, _, errno := unix.Syscall6(uintptr(nr), a[0], a[1], a[2], a[3], a[4], a[5])
	if errno != 0 {
		return -int64(errno)
	}
	return int64(r1)
}
