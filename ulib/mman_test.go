package ulib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingrew/thcore"
)

func TestMmapForwardsVerbatim(t *testing.T) {
	k := &fakeKernel{ret: []int64{0x40000000}}
	s := New(k, thcore.ABI_LOONG64)

	got := s.Mmap(0x1000, 8192, 3, 0x22, -1, 4096)
	assert.Equal(t, uint64(0x40000000), got)

	c := k.last(t)
	assert.Equal(t, thcore.NR_mmap, c.nr)
	require.Len(t, c.args, 6)
	assert.Equal(t, uint64(0x1000), c.args[0])
	assert.Equal(t, uint64(8192), c.args[1])
	assert.Equal(t, uint64(3), c.args[2])
	assert.Equal(t, uint64(0x22), c.args[3])
	assert.Equal(t, argi(-1), c.args[4])
	assert.Equal(t, uint64(4096), c.args[5])
}

func TestMunmap(t *testing.T) {
	k := &fakeKernel{}
	s := New(k, thcore.ABI_LOONG64)

	assert.Equal(t, int32(0), s.Munmap(0x40000000, 8192))
	c := k.last(t)
	assert.Equal(t, thcore.NR_munmap, c.nr)
	assert.Equal(t, []uint64{0x40000000, 8192}, c.args)
}

func TestUtsnameField(t *testing.T) {
	var f [65]byte
	copy(f[:], "Linux")
	assert.Equal(t, "Linux", UtsField(&f))

	for i := range f {
		f[i] = 'x'
	}
	assert.Len(t, UtsField(&f), 65, "unterminated field returns the whole component")
}
