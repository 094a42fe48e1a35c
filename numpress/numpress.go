package numpress

import (
	"encoding/binary"
	"errors"
	"math"
)

// Value constrains the element type of a decode destination. Decoding into
// float32 narrows each reconstructed value with round-to-nearest.
type Value interface {
	~float32 | ~float64
}

var (
	// ErrCorruptInput reports input that is too short or structurally
	// invalid for the codec.
	ErrCorruptInput = errors.New("numpress: corrupt input")

	// ErrDestinationFull reports a destination slice with fewer slots than
	// the input decodes to.
	ErrDestinationFull = errors.New("numpress: destination too small for decoded values")

	// ErrValueOutOfRange reports an input value the codec cannot represent
	// at the chosen fixed point.
	ErrValueOutOfRange = errors.New("numpress: value out of range")
)

// The fixed point scaling factor is stored as a big-endian IEEE-754 double in
// the first 8 bytes of linear and slof payloads. Everything after it is
// little-endian.
func encodeFixedPoint(fixedPoint float64, dst []byte) {
	binary.BigEndian.PutUint64(dst, math.Float64bits(fixedPoint))
}

func decodeFixedPoint(data []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(data))
}
