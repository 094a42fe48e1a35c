package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mzkit/mzpeaks/errs"
	"github.com/mzkit/mzpeaks/format"
)

func TestZlibCodec_RoundTrip(t *testing.T) {
	codec := NewZlibCodec()
	original := bytes.Repeat([]byte("peak data "), 100)

	compressed, err := codec.Compress(original)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(original))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, original, decompressed)
}

func TestZlibCodec_RoundTrip_Empty(t *testing.T) {
	codec := NewZlibCodec()

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, decompressed)
}

func TestZlibCodec_WrapReader_Streaming(t *testing.T) {
	codec := NewZlibCodec()
	original := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 256)

	compressed, err := codec.Compress(original)
	require.NoError(t, err)

	r, err := codec.WrapReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	defer r.Close()

	// Pull in small chunks to exercise the lazy path.
	var inflated []byte
	chunk := make([]byte, 7)
	for {
		n, err := r.Read(chunk)
		inflated = append(inflated, chunk[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	require.Equal(t, original, inflated)
}

func TestZlibCodec_WrapReader_BadHeader(t *testing.T) {
	codec := NewZlibCodec()

	_, err := codec.WrapReader(bytes.NewReader([]byte("definitely not zlib")))
	require.ErrorIs(t, err, errs.ErrCompressionFormat)
}

func TestZlibCodec_Decompress_BadHeader(t *testing.T) {
	codec := NewZlibCodec()

	_, err := codec.Decompress([]byte{0x00, 0x01, 0x02, 0x03})
	require.ErrorIs(t, err, errs.ErrCompressionFormat)
}

func TestZlibCodec_Decompress_CorruptBody(t *testing.T) {
	codec := NewZlibCodec()
	compressed, err := codec.Compress(bytes.Repeat([]byte("abc"), 500))
	require.NoError(t, err)

	corrupted := bytes.Clone(compressed)
	for i := 4; i < len(corrupted)-4; i++ {
		corrupted[i] ^= 0xFF
	}

	_, err = codec.Decompress(corrupted)
	require.Error(t, err)
}

func TestZlibCodec_Decompress_Truncated(t *testing.T) {
	codec := NewZlibCodec()
	compressed, err := codec.Compress(bytes.Repeat([]byte("abc"), 500))
	require.NoError(t, err)

	_, err = codec.Decompress(compressed[:len(compressed)/2])
	require.Error(t, err)
}

func TestNoOpCodec_PassThrough(t *testing.T) {
	codec := NewNoOpCodec()
	data := []byte{1, 2, 3}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestCodecFor(t *testing.T) {
	codec, err := CodecFor(format.StageNone)
	require.NoError(t, err)
	require.IsType(t, NoOpCodec{}, codec)

	codec, err = CodecFor(format.StageZlib)
	require.NoError(t, err)
	require.IsType(t, ZlibCodec{}, codec)

	_, err = CodecFor(format.StageNumpressLinear)
	require.Error(t, err)
}
