package numpress

import (
	"fmt"
	"math"
)

// EncodePic encodes non-negative values by rounding each to the nearest
// integer and storing it as a variable-length half byte integer. There is no
// header and no fixed point; the representable range is [0, 2^32).
func EncodePic(data []float64) ([]byte, error) {
	res := make([]byte, len(data)*5+1)
	ri := 0
	var halfBytes [10]byte
	halfByteCount := 0

	for i, v := range data {
		if v < -0.5 {
			return nil, fmt.Errorf("%w: %g at index %d is negative", ErrValueOutOfRange, v, i)
		}
		count := int64(v + 0.5)
		if count > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %g at index %d exceeds 32 bits", ErrValueOutOfRange, v, i)
		}

		halfByteCount += encodeInt(count, halfBytes[:], halfByteCount)
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

// DecodePic reverses EncodePic, writing reconstructed counts into dst and
// returning how many were decoded.
func DecodePic[F Value](data []byte, dst []F) (int, error) {
	ri := 0
	dec := intDecoder{data: data}

	for dec.pos < len(data) {
		// A trailing half byte is padding unless it is 0x8, the encoding of
		// a final zero count.
		if dec.pos == len(data)-1 && dec.half {
			if data[dec.pos]&0xf != 0x8 {
				break
			}
		}

		word, err := dec.next()
		if err != nil {
			return ri, err
		}

		if ri >= len(dst) {
			return ri, fmt.Errorf("%w: more than %d values in pic input", ErrDestinationFull, len(dst))
		}
		// Counts are unsigned; the full [0, 2^32) range is representable.
		dst[ri] = F(uint64(word))
		ri++
	}

	return ri, nil
}
