//go:build !linux || !(arm64 || riscv64 || loong64)

package host

import "github.com/wingrew/thcore"

// Kernel is unavailable off-target: the shim's number table is the
// asm-generic one, so trapping with it on any other host would invoke
// arbitrary services.
type Kernel struct{}

var _ thcore.Kernel = Kernel{}

func (Kernel) Invoke(nr thcore.NR, args ...uint64) int64 {
	return -int64(thcore.ENOSYS)
}
