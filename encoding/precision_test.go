package encoding

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mzkit/mzpeaks/endian"
	"github.com/mzkit/mzpeaks/errs"
	"github.com/mzkit/mzpeaks/format"
)

func packFloat64s(values []float64) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func packFloat32s(values []float32) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, len(values)*4)
	for _, v := range values {
		buf = engine.AppendUint32(buf, math.Float32bits(v))
	}

	return buf
}

func TestPrecisionDecoder_DecodeFloat64_From64Bit(t *testing.T) {
	values := []float64{1.0, 2.5, -3.25, 0.0, 12345.6789}
	decoder := NewPrecisionDecoder(endian.GetLittleEndianEngine())

	decoded, err := decoder.DecodeFloat64(bytes.NewReader(packFloat64s(values)), format.PrecisionFloat64, len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestPrecisionDecoder_DecodeFloat64_From32Bit(t *testing.T) {
	values := []float32{1.5, -2.25, 100.0}
	decoder := NewPrecisionDecoder(endian.GetLittleEndianEngine())

	decoded, err := decoder.DecodeFloat64(bytes.NewReader(packFloat32s(values)), format.PrecisionFloat32, len(values))
	require.NoError(t, err)
	require.Len(t, decoded, len(values))
	for i, want := range values {
		// Widening is exact.
		require.Equal(t, float64(want), decoded[i])
	}
}

func TestPrecisionDecoder_DecodeFloat32_From64Bit_Narrows(t *testing.T) {
	// Exactly representable in single precision, so narrowing is lossless.
	values := []float64{1.0, 2.5, -3.25, 0.0}
	decoder := NewPrecisionDecoder(endian.GetLittleEndianEngine())

	decoded, err := decoder.DecodeFloat32(bytes.NewReader(packFloat64s(values)), format.PrecisionFloat64, len(values))
	require.NoError(t, err)
	require.Equal(t, []float32{1.0, 2.5, -3.25, 0.0}, decoded)
}

func TestPrecisionDecoder_DecodeFloat32_NarrowingRounds(t *testing.T) {
	values := []float64{523.7751234567}
	decoder := NewPrecisionDecoder(endian.GetLittleEndianEngine())

	decoded, err := decoder.DecodeFloat32(bytes.NewReader(packFloat64s(values)), format.PrecisionFloat64, 1)
	require.NoError(t, err)
	require.Equal(t, float32(values[0]), decoded[0])
}

func TestDecodeFixed_IntegerPrecisionsShareWidth(t *testing.T) {
	values := []float64{42.0, -1.0}
	engine := endian.GetLittleEndianEngine()

	decoded, err := DecodeFixed[float64](engine, bytes.NewReader(packFloat64s(values)), format.PrecisionInt64, len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	values32 := []float32{7.5, -0.25}
	decoded32, err := DecodeFixed[float32](engine, bytes.NewReader(packFloat32s(values32)), format.PrecisionInt32, len(values32))
	require.NoError(t, err)
	require.Equal(t, values32, decoded32)
}

func TestDecodeFixed_ZeroCount(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	decoded, err := DecodeFixed[float64](engine, bytes.NewReader(nil), format.PrecisionFloat64, 0)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecodeFixed_Truncated(t *testing.T) {
	values := []float64{1.0, 2.0}
	engine := endian.GetLittleEndianEngine()

	packed := packFloat64s(values)
	_, err := DecodeFixed[float64](engine, bytes.NewReader(packed[:11]), format.PrecisionFloat64, len(values))
	require.ErrorIs(t, err, errs.ErrTruncated)

	// Clean EOF exactly at a value boundary still means too few values.
	_, err = DecodeFixed[float64](engine, bytes.NewReader(packed), format.PrecisionFloat64, 3)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestDecodeFixed_InvalidPrecision(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := DecodeFixed[float64](engine, bytes.NewReader(nil), format.PrecisionUnspecified, 4)
	require.ErrorIs(t, err, errs.ErrInvalidPrecision)

	_, err = DecodeFixed[float32](engine, bytes.NewReader(nil), format.Precision(0x7F), 4)
	require.ErrorIs(t, err, errs.ErrInvalidPrecision)
}
