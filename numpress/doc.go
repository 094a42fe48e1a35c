// Package numpress implements the MS-Numpress family of numeric compression
// schemes for mass spectrometry peak data.
//
// Three independent codecs are provided. Which one applies to a given peak
// array is declared in the container file; they are never combined with each
// other.
//
// # Linear prediction (EncodeLinear, DecodeLinear)
//
// Intended for m/z arrays, which grow near-linearly. Values are multiplied by
// a fixed point and rounded to integers; the first two integers seed a linear
// extrapolation and every later value is stored as the residual against that
// extrapolation, packed as a variable-length half byte integer. Lossless up
// to the fixed point rounding (at most 0.5/fixedPoint per value).
//
// # Positive integer (EncodePic, DecodePic)
//
// Intended for count-like intensity arrays. Each value is rounded to the
// nearest non-negative integer and stored directly as a variable-length half
// byte integer. Lossless for integral input.
//
// # Short logged float (EncodeSlof, DecodeSlof)
//
// Intended for wide dynamic-range intensity arrays. Each value is stored as
// the 16-bit fixed point rounding of log(v+1); the relative error is bounded
// by the fixed point. Lossy.
//
// # Layout
//
// Linear and slof payloads begin with their fixed point stored as a
// big-endian IEEE-754 double; all other fields are little-endian. Pic has no
// header. The half byte streams of linear and pic are padded with a zero
// nibble when they end mid-byte, which the decoders distinguish from a
// trailing zero value (head nibble 0x8).
//
// # Usage
//
//	fp := numpress.OptimalLinearFixedPoint(mzs)
//	encoded, err := numpress.EncodeLinear(mzs, fp)
//	if err != nil {
//	    return err
//	}
//
//	decoded := make([]float64, count)
//	n, err := numpress.DecodeLinear(encoded, decoded)
//
// The decoders are generic over float32 and float64 destinations; decoding
// into float32 narrows with round-to-nearest. Destinations are pre-sized by
// the caller: the count of values in a payload is not self-describing, it is
// carried by the surrounding container metadata.
//
// The codecs operate on fully materialized byte slices. The half byte
// encoding is not stream-friendly (integer boundaries are data-dependent),
// so callers decompressing a zlib-wrapped numpress payload must drain the
// inflate stream first.
package numpress
