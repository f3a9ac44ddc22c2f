package thcore

// Kernel is the raw entry point every operation forwards to: a numeric
// service code plus up to six machine-word arguments, returning a single
// signed machine-word result. Negative results encode errors; the layer
// above performs no classification of its own.
type Kernel interface {
	Invoke(nr NR, args ...uint64) int64
}

// ABI selects the target kernel flavor. The two differ only in whether
// the legacy fstat number exists: riscv64 kept it, loongarch64 removed
// it and file status must go through statx instead.
type ABI int

const (
	ABI_LOONG64 ABI = iota
	ABI_RISCV64
)

func (abi ABI) String() string {
	switch abi {
	case ABI_LOONG64:
		return "loong64"
	case ABI_RISCV64:
		return "riscv64"
	}
	return "unknown"
}

// HasFstat reports whether the target exposes the legacy file-status
// number directly.
func (abi ABI) HasFstat() bool {
	return abi == ABI_RISCV64
}
