package bitpack

import "errors"

// ErrShortBuffer indicates the packed input holds fewer bytes than the
// requested bit count requires. Matched via errors.Is.
var ErrShortBuffer = errors.New("bitpack: packed buffer shorter than required")

// RowBytes returns the number of bytes needed to hold n bits: ceil(n/8).
// Complexity: O(1).
func RowBytes(n int) int {
	return (n + 7) / 8
}

// Pack encodes bits into bytes, least-significant bit first. Any nonzero
// entry is treated as a set bit. Unused high bits of the final byte are
// left zero, as the interop convention demands.
// Complexity: O(n) time, O(ceil(n/8)) memory.
func Pack(bits []uint8) []byte {
	out := make([]byte, RowBytes(len(bits)))
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// Unpack decodes the first n bits of data into a 0/1 vector, ignoring any
// padding bits beyond n. Returns ErrShortBuffer when data cannot hold n bits.
// Complexity: O(n).
func Unpack(data []byte, n int) ([]uint8, error) {
	if n < 0 || len(data) < RowBytes(n) {
		return nil, ErrShortBuffer
	}
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = (data[i/8] >> (uint(i) % 8)) & 1
	}
	return out, nil
}
