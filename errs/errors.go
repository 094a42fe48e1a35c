// Package errs defines the sentinel errors returned by the peak array decode
// pipeline. Callers classify failures with errors.Is; the decoding packages
// wrap these sentinels with per-call context via fmt.Errorf and %w.
package errs

import "errors"

var (
	// ErrMalformedEncoding reports base64 text that violates the alphabet or
	// padding rules. The text decode is streamed, so the error surfaces on the
	// first read that consumes the corrupt region.
	ErrMalformedEncoding = errors.New("malformed base64 data")

	// ErrCompressionFormat reports a corrupt zlib stream (bad header, bad
	// checksum, or corrupt deflate data).
	ErrCompressionFormat = errors.New("corrupt zlib stream")

	// ErrNumericCompression reports that a numpress decoder rejected its
	// input. The wrapped message names the variant that failed.
	ErrNumericCompression = errors.New("numpress decoding failed")

	// ErrInvalidPrecision reports a missing or unsupported bit width on a
	// descriptor whose compression does not imply a numpress variant.
	ErrInvalidPrecision = errors.New("precision must be 32-bit or 64-bit when numpress compression is not used")

	// ErrTruncated reports that the binary stream ended before the declared
	// value count was unpacked.
	ErrTruncated = errors.New("binary data ends before the declared value count")
)
