package bint

import (
	"fmt"
	"math/bits"

	"github.com/holiman/uint256"
)

func trim(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return b
}

// Packs n using the same encoding as [Pack]
func PackUint64(n uint64) []byte {
	b := make([]byte, 0, (bits.Len64(n)+7)/8)
	for ; n > 0; n = n >> 8 {
		b = append(b, byte(n&0xff))
	}
	return b
}

// Returns [ErrOverflow] when b holds more than 64 significant bits.
func UnpackUint64(b []byte) (uint64, error) {
	b = trim(b)
	if len(b) > 8 {
		return 0, fmt.Errorf("bint: %d bytes into uint64: %w", len(b), ErrOverflow)
	}
	var n uint64
	for i := len(b) - 1; i >= 0; i-- {
		n = n<<8 | uint64(b[i])
	}
	return n, nil
}

// Packs n using the same encoding as [Pack].
// A nil n packs as zero.
func PackUint256(n *uint256.Int) []byte {
	if n == nil {
		return []byte{}
	}
	b := make([]byte, 0, 32)
	// limbs are stored least significant first
	for _, w := range *n {
		for i := 0; i < 8; i++ {
			b = append(b, byte(w&0xff))
			w = w >> 8
		}
	}
	return trim(b)
}

// Returns [ErrOverflow] when b holds more than 256 significant bits.
func UnpackUint256(b []byte) (uint256.Int, error) {
	var z uint256.Int
	b = trim(b)
	if len(b) > 32 {
		return z, fmt.Errorf("bint: %d bytes into uint256: %w", len(b), ErrOverflow)
	}
	for i, c := range b {
		z[i/8] |= uint64(c) << (8 * (i % 8))
	}
	return z, nil
}
