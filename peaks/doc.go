// Package peaks decodes the numeric peak arrays embedded in mzML binary
// data elements.
//
// A peak array arrives as a located byte range inside a larger
// byte-addressable source, plus a Descriptor carrying the metadata the
// container parser extracted: encoded length, value count, declared
// precision, and declared compression. Decoding composes up to four
// transformations in a fixed order:
//
//  1. base64 text decode (streaming)
//  2. zlib inflation, when declared (streaming)
//  3. numpress numeric decompression, when declared (materialized)
//  4. fixed-width precision unpacking (streaming; skipped entirely when a
//     numpress stage ran)
//
// Two entry points differ only in output element width: DecodeFloat32 always
// yields float32 values and DecodeFloat64 always yields float64 values,
// regardless of the stored precision. Narrowing stored doubles on the
// float32 path is deliberate and lossy.
//
// Every call is independent and synchronous: the source is borrowed
// read-only, intermediate buffers are released on all exit paths, and
// nothing is cached between calls.
//
//	desc := peaks.Descriptor{
//	    EncodedLength: 5848,
//	    ValueCount:    365,
//	    Precision:     format.PrecisionFloat64,
//	    Compression:   format.CompressionZlib,
//	    Offset:        81920,
//	}
//	mzs, err := peaks.DecodeFloat64(file, desc)
//
// Failures are classified by the errs sentinels: ErrMalformedEncoding,
// ErrCompressionFormat, ErrNumericCompression, ErrInvalidPrecision and
// ErrTruncated. Corrupt input is terminal for the call; there are no retries.
package peaks
