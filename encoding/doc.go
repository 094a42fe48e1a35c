// Package encoding decodes fixed-width binary peak values.
//
// A peak array that was not numpress-compressed is a plain little-endian
// sequence of 32-bit or 64-bit words, each word the bit pattern of an
// IEEE-754 float. This package turns such a byte stream into float32 or
// float64 slices, widening or narrowing as the destination requires.
//
// The reader passed in may be lazy (a base64 decoder, possibly wrapped in a
// zlib inflater); values are pulled word by word and the stream is consumed
// exactly as far as the requested count.
package encoding
