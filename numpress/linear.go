package numpress

import (
	"encoding/binary"
	"fmt"
	"math"
)

// OptimalLinearFixedPoint computes the largest fixed point that keeps the
// first two values and every extrapolation residual within 32-bit range.
func OptimalLinearFixedPoint(data []float64) float64 {
	switch len(data) {
	case 0:
		return 0
	case 1:
		return math.Floor(0x7FFFFFFF / data[0])
	}

	maxValue := math.Max(data[0], data[1])
	for i := 2; i < len(data); i++ {
		extrapol := data[i-1] + (data[i-1] - data[i-2])
		diff := data[i] - extrapol
		maxValue = math.Max(maxValue, math.Ceil(math.Abs(diff)+1))
	}

	return math.Floor(0x7FFFFFFF / maxValue)
}

// EncodeLinear encodes data using linear prediction: values are scaled by
// fixedPoint and rounded, the first two are stored as 4-byte seeds, and each
// subsequent value is stored as the variable-length residual against a linear
// extrapolation of its two predecessors.
//
// The output starts with the 8-byte fixed point header; an empty input
// encodes to just that header.
func EncodeLinear(data []float64, fixedPoint float64) ([]byte, error) {
	res := make([]byte, 16+len(data)*5)
	encodeFixedPoint(fixedPoint, res)

	if len(data) == 0 {
		return res[:8], nil
	}

	var ints [3]int64
	ints[1] = int64(data[0]*fixedPoint + 0.5)
	if ints[1] < 0 || ints[1] > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %g at index 0 does not fit the fixed point", ErrValueOutOfRange, data[0])
	}
	binary.LittleEndian.PutUint32(res[8:], uint32(ints[1]))

	if len(data) == 1 {
		return res[:12], nil
	}

	ints[2] = int64(data[1]*fixedPoint + 0.5)
	if ints[2] < 0 || ints[2] > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %g at index 1 does not fit the fixed point", ErrValueOutOfRange, data[1])
	}
	binary.LittleEndian.PutUint32(res[12:], uint32(ints[2]))

	ri := 16
	var halfBytes [10]byte
	halfByteCount := 0

	for i := 2; i < len(data); i++ {
		ints[0], ints[1] = ints[1], ints[2]
		ints[2] = int64(data[i]*fixedPoint + 0.5)

		extrapol := ints[1] + (ints[1] - ints[0])
		diff := ints[2] - extrapol
		if diff < math.MinInt32 || diff > math.MaxInt32 {
			return nil, fmt.Errorf("%w: residual at index %d overflows 32 bits", ErrValueOutOfRange, i)
		}

		halfByteCount += encodeInt(diff, halfBytes[:], halfByteCount)
		for hbi := 1; hbi < halfByteCount; hbi += 2 {
			res[ri] = halfBytes[hbi-1]<<4 | halfBytes[hbi]&0xf
			ri++
		}
		if halfByteCount%2 != 0 {
			halfBytes[0] = halfBytes[halfByteCount-1]
			halfByteCount = 1
		} else {
			halfByteCount = 0
		}
	}

	if halfByteCount == 1 {
		res[ri] = halfBytes[0] << 4
		ri++
	}

	return res[:ri], nil
}

// DecodeLinear reverses EncodeLinear, writing reconstructed values into dst
// and returning how many were decoded.
//
// An 8-byte input is a valid encoding of zero values. Shorter input, or a
// half byte stream that ends mid-integer, yields ErrCorruptInput; more
// decoded values than dst can hold yields ErrDestinationFull.
func DecodeLinear[F Value](data []byte, dst []F) (int, error) {
	if len(data) == 8 {
		return 0, nil
	}
	if len(data) < 12 {
		return 0, fmt.Errorf("%w: linear input of %d bytes is truncated", ErrCorruptInput, len(data))
	}

	fixedPoint := decodeFixedPoint(data)

	var ints [3]int64
	ints[1] = int64(binary.LittleEndian.Uint32(data[8:12]))
	if len(dst) == 0 {
		return 0, fmt.Errorf("%w: need at least 1 slot", ErrDestinationFull)
	}
	dst[0] = F(float64(ints[1]) / fixedPoint)

	if len(data) == 12 {
		return 1, nil
	}
	if len(data) < 16 {
		return 1, fmt.Errorf("%w: linear input of %d bytes is truncated", ErrCorruptInput, len(data))
	}

	ints[2] = int64(binary.LittleEndian.Uint32(data[12:16]))
	if len(dst) < 2 {
		return 1, fmt.Errorf("%w: need at least 2 slots", ErrDestinationFull)
	}
	dst[1] = F(float64(ints[2]) / fixedPoint)

	ri := 2
	dec := intDecoder{data: data, pos: 16}

	for dec.pos < len(data) {
		// A trailing half byte is padding unless it is 0x8, the encoding of
		// a final zero residual.
		if dec.pos == len(data)-1 && dec.half {
			if data[dec.pos]&0xf != 0x8 {
				break
			}
		}

		word, err := dec.next()
		if err != nil {
			return ri, err
		}
		diff := int64(int32(word))

		ints[0], ints[1] = ints[1], ints[2]
		extrapol := ints[1] + (ints[1] - ints[0])
		y := extrapol + diff

		if ri >= len(dst) {
			return ri, fmt.Errorf("%w: more than %d values in linear input", ErrDestinationFull, len(dst))
		}
		dst[ri] = F(float64(y) / fixedPoint)
		ri++
		ints[2] = y
	}

	return ri, nil
}
