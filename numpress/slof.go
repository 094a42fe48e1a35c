package numpress

import (
	"encoding/binary"
	"fmt"
	"math"
)

// OptimalSlofFixedPoint computes the largest fixed point that keeps the
// logged value range within 16 bits.
func OptimalSlofFixedPoint(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	maxLog := 1.0
	for _, v := range data {
		maxLog = math.Max(maxLog, math.Log(v+1))
	}

	return math.Floor(0xFFFF / maxLog)
}

// EncodeSlof encodes intensity-like values on a logarithmic scale: each value
// is stored as the 16-bit rounding of log(v+1)*fixedPoint, after the 8-byte
// fixed point header. The encoding is lossy.
func EncodeSlof(data []float64, fixedPoint float64) ([]byte, error) {
	res := make([]byte, 8+len(data)*2)
	encodeFixedPoint(fixedPoint, res)

	ri := 8
	for i, v := range data {
		if v < 0 {
			return nil, fmt.Errorf("%w: %g at index %d is negative", ErrValueOutOfRange, v, i)
		}
		x := int64(math.Log(v+1)*fixedPoint + 0.5)
		binary.LittleEndian.PutUint16(res[ri:], uint16(x))
		ri += 2
	}

	return res, nil
}

// DecodeSlof reverses EncodeSlof, writing reconstructed values into dst and
// returning how many were decoded.
func DecodeSlof[F Value](data []byte, dst []F) (int, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("%w: slof input of %d bytes is shorter than the fixed point header", ErrCorruptInput, len(data))
	}

	fixedPoint := decodeFixedPoint(data)

	ri := 0
	for i := 8; i+1 < len(data); i += 2 {
		x := binary.LittleEndian.Uint16(data[i:])

		if ri >= len(dst) {
			return ri, fmt.Errorf("%w: more than %d values in slof input", ErrDestinationFull, len(dst))
		}
		dst[ri] = F(math.Exp(float64(x)/fixedPoint) - 1)
		ri++
	}

	return ri, nil
}
