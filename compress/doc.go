// Package compress provides the general-compression codecs used when
// decoding peak array payloads.
//
// The container format declares at most one general compressor per array, and
// its vocabulary admits only zlib, so this package is small: a zlib codec and
// a no-op codec behind shared interfaces.
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Stream decoding
//
// Peak decoding pulls bytes lazily through the pipeline (base64, then zlib,
// then fixed-width unpacking), so ZlibCodec additionally offers WrapReader,
// which inflates on demand instead of materializing the whole payload:
//
//	codec := compress.NewZlibCodec()
//	r, err := codec.WrapReader(base64Stream)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	// read inflated bytes from r
//
// The byte-slice Compress/Decompress pair exists for callers that already
// hold a materialized payload, and for building test fixtures.
//
// # Error Handling
//
// Every zlib format violation (bad header, bad checksum, corrupt deflate
// data) is wrapped with errs.ErrCompressionFormat so callers can classify it
// with errors.Is. Errors produced by the underlying reader, such as a base64
// alphabet violation in the layer below, pass through unchanged.
//
// Ordering invariant: when a peak array was numpress-encoded and then
// deflated, inflation must run first on decode. The decode orchestrator in
// the peaks package owns that sequencing; this package only supplies the
// inflate stage.
package compress
