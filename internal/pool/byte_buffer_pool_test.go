package pool

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = bb.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(8)
	_, err := bb.Write([]byte("data"))
	require.NoError(t, err)

	oldCap := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, oldCap, bb.Cap())
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	// Larger than the initial capacity, forcing growth mid-drain.
	src := bytes.Repeat([]byte{0xab}, PeakBufferDefaultSize*3+17)

	bb := NewByteBuffer(PeakBufferDefaultSize)
	n, err := bb.ReadFrom(bytes.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, int64(len(src)), n)
	require.Equal(t, src, bb.Bytes())
}

func TestByteBuffer_ReadFrom_Empty(t *testing.T) {
	bb := NewByteBuffer(8)
	n, err := bb.ReadFrom(bytes.NewReader(nil))
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, bb.Len())
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestByteBuffer_ReadFrom_Error(t *testing.T) {
	wantErr := errors.New("broken stream")
	bb := NewByteBuffer(8)

	n, err := bb.ReadFrom(&failingReader{data: []byte("partial"), err: wantErr})
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, int64(7), n)
	require.Equal(t, []byte("partial"), bb.Bytes())
}

func TestPeakBufferPool(t *testing.T) {
	bb := GetPeakBuffer()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	_, err := bb.Write([]byte("scratch"))
	require.NoError(t, err)
	PutPeakBuffer(bb)

	// A reused buffer always comes back empty.
	again := GetPeakBuffer()
	require.Zero(t, again.Len())
	PutPeakBuffer(again)

	// Oversized buffers are dropped rather than pooled.
	big := NewByteBuffer(PeakBufferMaxThreshold + 1)
	PutPeakBuffer(big)
	PutPeakBuffer(nil)
}

var _ io.Writer = (*ByteBuffer)(nil)
var _ io.ReaderFrom = (*ByteBuffer)(nil)
