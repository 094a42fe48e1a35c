package encoding

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mzkit/mzpeaks/endian"
	"github.com/mzkit/mzpeaks/errs"
	"github.com/mzkit/mzpeaks/format"
)

// Value constrains the element type produced by fixed-width decoding.
type Value interface {
	~float32 | ~float64
}

// DecodeFixed reads exactly count fixed-width values from r and converts each
// to F.
//
// The stored width comes from precision: 32-bit words are reinterpreted as
// IEEE-754 single precision, 64-bit words as double precision; integer
// precisions share the bit-pattern reinterpretation of their float
// counterparts. Widening 32-bit values to a float64 destination is exact;
// narrowing 64-bit values to a float32 destination rounds to nearest and is
// not an error.
//
// Returns:
//   - []F: Exactly count decoded values
//   - error: errs.ErrInvalidPrecision for a missing/unsupported width,
//     errs.ErrTruncated when r ends early, or the untouched read error
//     otherwise
func DecodeFixed[F Value](engine endian.EndianEngine, r io.Reader, precision format.Precision, count int) ([]F, error) {
	width := precision.BitWidth()
	if width != 32 && width != 64 {
		return nil, fmt.Errorf("%w: got %s", errs.ErrInvalidPrecision, precision)
	}

	out := make([]F, count)
	var scratch [8]byte
	word := scratch[:width/8]

	for i := range out {
		if _, err := io.ReadFull(r, word); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: stopped at value %d of %d", errs.ErrTruncated, i, count)
			}

			return nil, err
		}

		if width == 32 {
			out[i] = F(math.Float32frombits(engine.Uint32(word)))
		} else {
			out[i] = F(math.Float64frombits(engine.Uint64(word)))
		}
	}

	return out, nil
}

// PrecisionDecoder decodes fixed-width binary peak values using the
// specified endian engine. The peak array wire format is little-endian.
type PrecisionDecoder struct {
	engine endian.EndianEngine
}

// NewPrecisionDecoder creates a new fixed-width value decoder using the
// specified endian engine.
//
// Parameters:
//   - engine: Endian engine for byte order (typically little-endian)
//
// Returns:
//   - *PrecisionDecoder: A new decoder instance
func NewPrecisionDecoder(engine endian.EndianEngine) *PrecisionDecoder {
	return &PrecisionDecoder{engine: engine}
}

// DecodeFloat32 reads exactly count values of the declared precision from r,
// narrowing 64-bit values to single precision.
func (d *PrecisionDecoder) DecodeFloat32(r io.Reader, precision format.Precision, count int) ([]float32, error) {
	return DecodeFixed[float32](d.engine, r, precision, count)
}

// DecodeFloat64 reads exactly count values of the declared precision from r,
// widening 32-bit values to double precision.
func (d *PrecisionDecoder) DecodeFloat64(r io.Reader, precision format.Precision, count int) ([]float64, error) {
	return DecodeFixed[float64](d.engine, r, precision, count)
}
