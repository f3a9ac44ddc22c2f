package ulib

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingrew/thcore"
)

// pipeKernel backs read/write with an in-memory byte queue so the
// round-trip property can be checked against the real marshaling.
type pipeKernel struct {
	fakeKernel
	data []byte
}

func (k *pipeKernel) Invoke(nr thcore.NR, args ...uint64) int64 {
	k.calls = append(k.calls, call{nr, append([]uint64(nil), args...)})
	switch nr {
	case thcore.NR_write:
		buf := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(args[1]))), args[2])
		k.data = append(k.data, buf...)
		return int64(len(buf))
	case thcore.NR_read:
		buf := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(args[1]))), args[2])
		n := copy(buf, k.data)
		k.data = k.data[n:]
		return int64(n)
	}
	return 0
}

func TestReadWriteRoundTrip(t *testing.T) {
	k := &pipeKernel{}
	s := New(k, thcore.ABI_LOONG64)

	msg := []byte("Hello operating system contest.\n")
	n := s.Write(1, msg)
	require.Equal(t, int64(len(msg)), n)

	got := make([]byte, len(msg))
	n = s.Read(0, got)
	require.Equal(t, int64(len(msg)), n)
	assert.Equal(t, msg, got)
}

func TestReadForwardsBufferLength(t *testing.T) {
	k := &fakeKernel{ret: []int64{0}}
	s := New(k, thcore.ABI_LOONG64)

	buf := make([]byte, 128)
	s.Read(4, buf)

	c := k.last(t)
	assert.Equal(t, thcore.NR_read, c.nr)
	require.Len(t, c.args, 3)
	assert.Equal(t, uint64(4), c.args[0])
	assert.Equal(t, addr(buf), c.args[1])
	assert.Equal(t, uint64(128), c.args[2])
}

// growStack forces the calling goroutine's stack to grow, which moves
// every movable object on it.
//
//go:noinline
func growStack(n int) byte {
	var pad [512]byte
	if n == 0 {
		return pad[0]
	}
	return growStack(n-1) + pad[11]
}

func TestBufferPinnedAcrossStackGrowth(t *testing.T) {
	k := &fakeKernel{}
	k.hook = func(nr thcore.NR, args []uint64) (int64, bool) {
		if nr != thcore.NR_read {
			return 0, false
		}
		growStack(128)
		// the address captured before the call must still be the
		// caller's buffer after the stack moved
		dst := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(args[1]))), args[2])
		for i := range dst {
			dst[i] = 'x'
		}
		return int64(len(dst)), true
	}
	s := New(k, thcore.ABI_LOONG64)

	buf := make([]byte, 32)
	require.Equal(t, int64(32), s.Read(9, buf))
	for i, b := range buf {
		require.Equalf(t, byte('x'), b, "byte %d written through a stale address", i)
	}
	assert.Equal(t, addr(buf), k.last(t).args[1])
}

func TestLseekForwardsVerbatim(t *testing.T) {
	k := &fakeKernel{ret: []int64{4096}}
	s := New(k, thcore.ABI_LOONG64)

	assert.Equal(t, int64(4096), s.Lseek(3, -128, 2))
	c := k.last(t)
	assert.Equal(t, thcore.NR_lseek, c.nr)
	require.Len(t, c.args, 3)
	assert.Equal(t, uint64(3), c.args[0])
	assert.Equal(t, argi(-128), c.args[1])
	assert.Equal(t, uint64(2), c.args[2])
}

func TestGetcwdForwardsCallerBuffer(t *testing.T) {
	k := &fakeKernel{}
	s := New(k, thcore.ABI_LOONG64)

	buf := make([]byte, 64)
	s.Getcwd(buf)

	c := k.last(t)
	assert.Equal(t, thcore.NR_getcwd, c.nr)
	assert.Equal(t, addr(buf), c.args[0])
	assert.Equal(t, uint64(64), c.args[1])
}

func TestMountArgumentOrder(t *testing.T) {
	k := &fakeKernel{}
	s := New(k, thcore.ABI_LOONG64)

	s.Mount("/dev/vda2", "/mnt", "ext4", 0, nil)

	c := k.last(t)
	assert.Equal(t, thcore.NR_mount, c.nr)
	require.Len(t, c.args, 5)
	assert.Equal(t, uint64(0), c.args[3])
	assert.Equal(t, uint64(0), c.args[4], "nil data passes the null address")
}
