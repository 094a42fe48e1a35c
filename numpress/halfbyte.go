package numpress

import "fmt"

// intDecoder reads variable-length signed integers from a half-byte stream.
// Nibbles are consumed high-nibble-first within each byte; pos and half
// together address the next unread nibble.
type intDecoder struct {
	data []byte
	pos  int
	half bool
}

func (d *intDecoder) nextNibble() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, fmt.Errorf("%w: half byte stream ends mid-integer", ErrCorruptInput)
	}

	var nb byte
	if !d.half {
		nb = d.data[d.pos] >> 4
	} else {
		nb = d.data[d.pos] & 0xf
		d.pos++
	}
	d.half = !d.half

	return nb, nil
}

// next decodes one integer into its raw 32-bit word. The head nibble encodes
// the count of leading zero nibbles of the word (0-8), or 8 plus the count of
// leading 0xf nibbles; the remaining data nibbles follow least significant
// first. Whether the word is signed is up to the caller: linear residuals are
// two's complement, pic counts are unsigned.
func (d *intDecoder) next() (uint32, error) {
	head, err := d.nextNibble()
	if err != nil {
		return 0, err
	}

	n := int(head)
	var res uint32
	if head > 8 {
		n = int(head) - 8
		// Leading ones down to the first data nibble.
		res = ^uint32(0) << uint((8-n)*4)
	}
	if n == 8 {
		return 0, nil
	}

	for i := n; i < 8; i++ {
		hb, err := d.nextNibble()
		if err != nil {
			return 0, err
		}
		res |= uint32(hb) << uint((i-n)*4)
	}

	return res, nil
}

// signedMask selects the bits that must be all zeros (non-negative) or all
// ones (negative) for a value to be 32-bit two's complement representable.
const signedMask = uint64(0xFFFFFFFFF0000000)

// encodeInt writes x as 1-9 half bytes into res[off:], returning how many
// were written. Values whose high bits are neither all zeros nor all ones
// use the 9-nibble escape form (head 0 plus all 8 data nibbles).
func encodeInt(x int64, res []byte, off int) int {
	ux := uint64(x)

	switch ux & signedMask {
	case 0:
		l := 8
		for i := 0; i < 8; i++ {
			if byte(ux>>uint(4*(7-i)))&0xf != 0 {
				l = i
				break
			}
		}
		res[off] = byte(l)
		for i := l; i < 8; i++ {
			res[off+1+i-l] = byte(ux>>uint(4*(i-l))) & 0xf
		}

		return 1 + 8 - l
	case signedMask:
		l := 7
		for i := 0; i < 8; i++ {
			if byte(ux>>uint(4*(7-i)))&0xf != 0xf {
				l = i
				break
			}
		}
		res[off] = byte(l + 8)
		for i := l; i < 8; i++ {
			res[off+1+i-l] = byte(ux>>uint(4*(i-l))) & 0xf
		}

		return 1 + 8 - l
	default:
		res[off] = 0
		for i := 0; i < 8; i++ {
			res[off+1+i] = byte(ux>>uint(4*i)) & 0xf
		}

		return 9
	}
}
