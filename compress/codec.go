package compress

import (
	"fmt"

	"github.com/mzkit/mzpeaks/format"
)

// Compressor compresses a fully materialized byte payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// The input must have been produced by the matching algorithm; corrupt or
// mismatched data yields an error wrapping errs.ErrCompressionFormat.
//
// Thread safety: implementations are stateless and safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CodecFor returns the general-compression codec for the given decode stage.
//
// Only StageNone and StageZlib have a general codec; the numpress stages are
// numeric codecs and live in the numpress package.
//
// Returns:
//   - Codec: Codec instance for the specified stage
//   - error: Stage has no general-compression codec
func CodecFor(stage format.Stage) (Codec, error) {
	switch stage {
	case format.StageNone:
		return NewNoOpCodec(), nil
	case format.StageZlib:
		return NewZlibCodec(), nil
	default:
		return nil, fmt.Errorf("no general compression codec for stage: %s", stage)
	}
}
