// Package mzpeaks decodes the binary peak arrays (m/z and intensity values)
// stored in mzML mass spectrometry files.
//
// Peak values are text-encoded with base64 and may additionally be
// compressed with zlib, with one of the three MS-Numpress numeric schemes,
// or with both. Given a byte range located by a container parser and a
// descriptor of how it was encoded, this module reconstructs the original
// float sequence exactly as the producer intended.
//
// # Core Features
//
//   - Streaming base64 and zlib stages; bytes are pulled lazily
//   - MS-Numpress linear, positive integer and short logged float codecs
//   - 32-bit and 64-bit fixed-width unpacking with explicit widen/narrow
//     semantics per entry point
//   - Stateless, allocation-conscious decode calls safe to run concurrently
//
// # Basic Usage
//
//	import "github.com/mzkit/mzpeaks"
//
//	desc := mzpeaks.Descriptor{
//	    EncodedLength: info.EncodedLength,
//	    ValueCount:    info.ArrayLength,
//	    Precision:     format.PrecisionFloat64,
//	    Compression:   format.CompressionNumpressLinZlib,
//	    Offset:        info.Position,
//	}
//
//	mzs, err := mzpeaks.DecodeFloat64(file, desc)
//	if err != nil {
//	    return err
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the peaks
// package. For the individual pipeline stages, use the format, compress,
// numpress and encoding packages directly.
package mzpeaks

import (
	"io"

	"github.com/mzkit/mzpeaks/peaks"
)

// Descriptor describes the layout and encoding of one peak array.
// It is an alias of peaks.Descriptor.
type Descriptor = peaks.Descriptor

// DecodeFloat32 decodes one peak array into single precision values,
// narrowing 64-bit stored values with round-to-nearest.
func DecodeFloat32(src io.ReaderAt, desc Descriptor) ([]float32, error) {
	return peaks.DecodeFloat32(src, desc)
}

// DecodeFloat64 decodes one peak array into double precision values,
// widening 32-bit stored values exactly.
func DecodeFloat64(src io.ReaderAt, desc Descriptor) ([]float64, error) {
	return peaks.DecodeFloat64(src, desc)
}
