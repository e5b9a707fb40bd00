package bitpack_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qecstress/driftbench/bitpack"
)

// TestRowBytes verifies the ceil(n/8) sizing rule on boundary widths.
func TestRowBytes(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3}, {64, 8},
	}
	for _, tc := range cases {
		if got := bitpack.RowBytes(tc.n); got != tc.want {
			t.Errorf("RowBytes(%d) = %d; want %d", tc.n, got, tc.want)
		}
	}
}

// TestPack_LittleBitOrder pins the bit convention: bit i lands at byte i/8,
// position i%8 from the LSB.
func TestPack_LittleBitOrder(t *testing.T) {
	bits := []uint8{1, 0, 0, 0, 0, 0, 0, 0, 1} // bits 0 and 8 set
	packed := bitpack.Pack(bits)
	require.Equal(t, []byte{0x01, 0x01}, packed)

	bits = []uint8{0, 1, 1} // bits 1 and 2 set -> 0b00000110
	packed = bitpack.Pack(bits)
	require.Equal(t, []byte{0x06}, packed)
}

// TestPack_PaddingZero verifies unused high bits are zero on write.
func TestPack_PaddingZero(t *testing.T) {
	packed := bitpack.Pack([]uint8{1, 1, 1}) // 3 bits -> 1 byte, top 5 bits must be 0
	require.Equal(t, []byte{0x07}, packed)
}

// TestRoundTrip exercises the widths named by the interop contract.
func TestRoundTrip(t *testing.T) {
	for _, k := range []int{0, 1, 7, 8, 9, 64} {
		bits := make([]uint8, k)
		for i := range bits {
			if i%3 == 0 || i == k-1 {
				bits[i] = 1
			}
		}
		packed := bitpack.Pack(bits)
		require.Len(t, packed, bitpack.RowBytes(k))
		got, err := bitpack.Unpack(packed, k)
		require.NoError(t, err)
		require.Equal(t, bits, got, "round trip mismatch at k=%d", k)
	}
}

// TestUnpack_IgnoresPadding verifies high padding bits do not leak into the
// decoded vector.
func TestUnpack_IgnoresPadding(t *testing.T) {
	got, err := bitpack.Unpack([]byte{0xFF}, 3)
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 1, 1}, got)
}

// TestUnpack_ShortBuffer verifies the sentinel on undersized input.
func TestUnpack_ShortBuffer(t *testing.T) {
	_, err := bitpack.Unpack([]byte{0x00}, 9)
	if !errors.Is(err, bitpack.ErrShortBuffer) {
		t.Errorf("Unpack short buffer error = %v; want ErrShortBuffer", err)
	}
}

// TestPack_NonBinaryInput verifies nonzero entries count as set bits.
func TestPack_NonBinaryInput(t *testing.T) {
	require.Equal(t, []byte{0x05}, bitpack.Pack([]uint8{2, 0, 7}))
}
