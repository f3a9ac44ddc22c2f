package ulib

import "github.com/wingrew/thcore"

// Shim binds the operation surface to a kernel entry. It holds no
// mutable state, so a single value may be shared by any number of
// goroutines without coordination.
type Shim struct {
	k   thcore.Kernel
	abi thcore.ABI
}

// New returns a Shim forwarding to k under the given target ABI. The
// ABI only matters to Fstat, which needs to know whether the legacy
// status number exists on the target.
func New(k thcore.Kernel, abi thcore.ABI) *Shim {
	return &Shim{k: k, abi: abi}
}

// ABI reports the target flavor the shim was built for.
func (s *Shim) ABI() thcore.ABI {
	return s.abi
}
