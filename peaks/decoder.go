package peaks

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/mzkit/mzpeaks/compress"
	"github.com/mzkit/mzpeaks/encoding"
	"github.com/mzkit/mzpeaks/endian"
	"github.com/mzkit/mzpeaks/errs"
	"github.com/mzkit/mzpeaks/format"
	"github.com/mzkit/mzpeaks/internal/pool"
	"github.com/mzkit/mzpeaks/numpress"
)

// value constrains the output element type of a decode call.
type value interface {
	~float32 | ~float64
}

// DecodeFloat32 decodes the peak array described by desc into single
// precision values. If the stored precision is 64-bit the values are narrowed
// to float32 with round-to-nearest.
//
// The source is borrowed read-only for the duration of the call; no state is
// retained between calls, so concurrent decodes over the same source need no
// coordination.
//
// Parameters:
//   - src: Byte-addressable source holding the encoded text at desc.Offset
//   - desc: Layout and encoding of the peak array
//
// Returns:
//   - []float32: Exactly desc.ValueCount values (empty when
//     desc.EncodedLength is zero)
//   - error: One of the errs sentinels classifying the failed stage
func DecodeFloat32(src io.ReaderAt, desc Descriptor) ([]float32, error) {
	return decode[float32](src, desc)
}

// DecodeFloat64 decodes the peak array described by desc into double
// precision values. If the stored precision is 32-bit the values are widened
// to float64 exactly.
//
// See DecodeFloat32 for the shared contract.
func DecodeFloat64(src io.ReaderAt, desc Descriptor) ([]float64, error) {
	return decode[float64](src, desc)
}

// decode runs the stage pipeline: base64 text decode, optional zlib
// inflation, then either numpress decoding over the materialized bytes or
// fixed-width precision unpacking over the lazy stream.
func decode[F value](src io.ReaderAt, desc Descriptor) ([]F, error) {
	// Zero-length peak data occurs legitimately (empty MS2 scans); yield an
	// empty array without touching the source.
	if desc.EncodedLength == 0 {
		return []F{}, nil
	}

	section := io.NewSectionReader(src, desc.Offset, int64(desc.EncodedLength))
	stream := io.Reader(base64.NewDecoder(base64.StdEncoding, section))

	stages := desc.Compression.Stages()

	// Inflation must be undone before numpress: the write side always
	// deflates last.
	if stages.Has(format.StageZlib) {
		inflated, err := compress.NewZlibCodec().WrapReader(stream)
		if err != nil {
			return nil, classifyError(err)
		}
		defer inflated.Close()
		stream = inflated
	}

	if stage, ok := stages.Numpress(); ok {
		out, err := decodeNumpress[F](stream, stage, desc.ValueCount)
		if err != nil {
			return nil, classifyError(err)
		}

		return out, nil
	}

	out, err := encoding.DecodeFixed[F](endian.GetLittleEndianEngine(), stream, desc.Precision, desc.ValueCount)
	if err != nil {
		return nil, classifyError(err)
	}

	return out, nil
}

// decodeNumpress drains the remaining stream into a pooled buffer and
// dispatches to the matching numpress decoder. The half byte encodings are
// not stream-friendly, so the input must be fully materialized first.
//
// The destination is pre-sized to count and returned whole; precision
// unpacking never runs for numpress data.
func decodeNumpress[F value](r io.Reader, stage format.Stage, count int) ([]F, error) {
	buf := pool.GetPeakBuffer()
	defer pool.PutPeakBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	raw := buf.Bytes()
	out := make([]F, count)

	var err error
	switch stage {
	case format.StageNumpressLinear:
		_, err = numpress.DecodeLinear(raw, out)
	case format.StageNumpressPic:
		_, err = numpress.DecodePic(raw, out)
	case format.StageNumpressSlof:
		_, err = numpress.DecodeSlof(raw, out)
	default:
		return nil, fmt.Errorf("unsupported numeric compression stage: %s", stage)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errs.ErrNumericCompression, stage, err)
	}

	return out, nil
}

// classifyError maps raw text-decoding errors onto the errs sentinels.
// Compression errors are classified inside the compress package, truncation
// inside the precision unpacker; the base64 layer is the only one whose
// errors can surface here unclassified.
func classifyError(err error) error {
	var corrupt base64.CorruptInputError
	if errors.As(err, &corrupt) {
		return fmt.Errorf("%w: %s", errs.ErrMalformedEncoding, err)
	}

	return err
}
