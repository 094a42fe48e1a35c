package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"

	"github.com/mzkit/mzpeaks/errs"
)

// ZlibCodec provides zlib (RFC 1950) stream compression, the only general
// compressor the container format can declare for a peak array.
//
// Decompression is the hot path: encoded arrays are inflated once per decode
// call and the inflated bytes are consumed immediately. The codec is
// stateless; the underlying flate state lives in the reader returned by
// WrapReader.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec creates a new zlib codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress deflates data into a zlib stream at the default compression level.
func (ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a complete zlib stream.
//
// Corrupt input yields an error wrapping errs.ErrCompressionFormat.
func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := c.WrapReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// WrapReader wraps r in a lazily inflating reader: compressed bytes are
// pulled from r only as the returned reader is consumed.
//
// The zlib header is read eagerly, so a stream that is corrupt at the very
// start fails here rather than on the first Read. Errors from the underlying
// reader pass through unchanged; zlib format violations are wrapped with
// errs.ErrCompressionFormat.
func (ZlibCodec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, classifyInflateError(err)
	}

	return &inflateReader{zr: zr}, nil
}

// inflateReader classifies zlib/flate corruption errors on every Read so
// downstream consumers see errs.ErrCompressionFormat instead of raw
// library errors.
type inflateReader struct {
	zr io.ReadCloser
}

func (r *inflateReader) Read(p []byte) (int, error) {
	n, err := r.zr.Read(p)
	if err != nil && err != io.EOF {
		err = classifyInflateError(err)
	}

	return n, err
}

func (r *inflateReader) Close() error {
	return r.zr.Close()
}

func classifyInflateError(err error) error {
	var corrupt flate.CorruptInputError
	switch {
	case errors.Is(err, zlib.ErrHeader),
		errors.Is(err, zlib.ErrChecksum),
		errors.Is(err, zlib.ErrDictionary),
		errors.As(err, &corrupt):
		return fmt.Errorf("%w: %s", errs.ErrCompressionFormat, err)
	default:
		return err
	}
}
