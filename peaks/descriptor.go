package peaks

import "github.com/mzkit/mzpeaks/format"

// Descriptor describes how one encoded peak array is laid out inside the
// backing source. It is produced by the surrounding container parser and is
// read-only to the decoder; a zero Descriptor describes an empty array.
type Descriptor struct {
	// EncodedLength is the byte length of the base64 text. Zero marks a
	// legitimately empty peak array and short-circuits decoding.
	EncodedLength int

	// ValueCount is the number of numeric values the array decodes to.
	ValueCount int

	// Precision is the declared width of each stored value. It may be
	// PrecisionUnspecified only when Compression names a numpress variant,
	// which infers element boundaries itself.
	Precision format.Precision

	// Compression is the declared compression scheme.
	Compression format.CompressionType

	// Offset is the byte offset of the encoded text within the source.
	Offset int64
}
