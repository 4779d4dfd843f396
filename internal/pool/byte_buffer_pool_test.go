package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(TagBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.Bytes())

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(11), written)
	assert.Equal(t, "hello world", out.String())
}

func TestByteBuffer_ZeroReservePatch(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.MustWrite([]byte{0xAA})

	off := bb.Reserve(4)
	require.Equal(t, 1, off)
	require.Equal(t, []byte{0xAA, 0, 0, 0, 0}, bb.Bytes())

	bb.Patch(off, []byte{1, 2, 3, 4})
	require.Equal(t, []byte{0xAA, 1, 2, 3, 4}, bb.Bytes())

	bb.Zero(3)
	require.Equal(t, 8, bb.Len())
	require.Equal(t, []byte{0, 0, 0}, bb.Bytes()[5:])

	require.Panics(t, func() { bb.Patch(6, []byte{1, 2, 3, 4}) })
}

func TestByteBuffer_ZeroClearsReusedMemory(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3, 4})
	bb.Reset()

	bb.Zero(4)
	require.Equal(t, []byte{0, 0, 0, 0}, bb.Bytes())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		bb.MustWrite(make([]byte, 10))
		bb.Grow(1)
		assert.Equal(t, 10+TagBufferDefaultSize, cap(bb.B))
		assert.Equal(t, 10, bb.Len())
	})

	t.Run("large request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(TagBufferDefaultSize * 2)
		assert.GreaterOrEqual(t, cap(bb.B), TagBufferDefaultSize*2)
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	reused := p.Get()
	require.Equal(t, 0, reused.Len(), "pooled buffer must be reset")

	p.Put(nil)
	p.Put(NewByteBuffer(1024))
}

func TestDefaultPools_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bb := GetTagBuffer()
				bb.MustWrite([]byte("tag"))
				PutTagBuffer(bb)

				ab := GetArchiveBuffer()
				ab.Zero(16)
				PutArchiveBuffer(ab)
			}
		}()
	}
	wg.Wait()
}
