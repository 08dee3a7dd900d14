// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPoolAllocLayoutMismatch(t *testing.T) {
	p, err := New(4, 8, 8)
	require.NoError(t, err)

	_, err = p.Alloc(p.Stride()+1, 8)
	require.ErrorIs(t, err, ErrLayoutMismatch)

	_, err = p.Alloc(8, 16)
	require.ErrorIs(t, err, ErrLayoutMismatch)

	require.Equal(t, 0, p.Len())
}

func TestPoolAllocSmallerLayout(t *testing.T) {
	p, err := New(4, unsafe.Sizeof(uint64(0)), unsafe.Alignof(uint64(0)))
	require.NoError(t, err)

	// A smaller layout is served from a full slot.
	ptr, err := p.Alloc(1, 1)
	require.NoError(t, err)
	require.NotNil(t, ptr)
	require.Equal(t, 1, p.Len())

	p.Free(ptr, 1, 1)
	require.Equal(t, 0, p.Len())
}

func TestAllocateTyped(t *testing.T) {
	p, err := New(4, unsafe.Sizeof(uint64(0)), unsafe.Alignof(uint64(0)))
	require.NoError(t, err)

	v, err := Allocate[uint64](p)
	require.NoError(t, err)

	*v = 0xdeadbeef
	require.Equal(t, uint64(0xdeadbeef), *v)

	Deallocate(p, v)
	require.True(t, p.IsEmpty())
}

func TestAllocateThroughInterface(t *testing.T) {
	p, err := New(2, unsafe.Sizeof(int64(0)), unsafe.Alignof(int64(0)))
	require.NoError(t, err)

	var a Allocator = p

	x, err := Allocate[int64](a)
	require.NoError(t, err)
	y, err := Allocate[int64](a)
	require.NoError(t, err)
	require.NotSame(t, x, y)

	_, err = Allocate[int64](a)
	require.ErrorIs(t, err, ErrPoolExhausted)

	Deallocate(a, x)
	Deallocate(a, y)
	require.True(t, p.IsEmpty())
}

func TestPoolFreeLayoutMismatchPanics(t *testing.T) {
	p, err := New(2, 8, 8)
	require.NoError(t, err)

	ptr, err := p.Allocate()
	require.NoError(t, err)

	require.Panics(t, func() {
		p.Free(ptr, p.Stride()+1, 8)
	})
}
