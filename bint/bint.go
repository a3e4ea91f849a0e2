// little endian, arbitrary precision integer encoding/decoding
//
// Integers are packed least significant byte first using
// the fewest bytes possible. Zero packs to an empty slice.
// Decoding accepts any byte slice, including ones with
// trailing (high order) zero bytes.
package bint

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOverflow        = errors.New("value overflows destination type")
)

const wordBytes = bits.UintSize / 8

// Number of bytes Pack will return for x.
func Size(x *big.Int) int {
	if x == nil {
		return 0
	}
	return (x.BitLen() + 7) / 8
}

// Packs a non-negative x into a minimal little-endian slice.
// Negative or nil x returns an error matching [ErrInvalidArgument].
func Pack(x *big.Int) ([]byte, error) {
	b, err := AppendPack(make([]byte, 0, Size(x)), x)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Same as [Pack] but appends to dst.
// On error, dst is returned unmodified.
func AppendPack(dst []byte, x *big.Int) ([]byte, error) {
	switch {
	case x == nil:
		return dst, fmt.Errorf("bint: nil integer: %w", ErrInvalidArgument)
	case x.Sign() < 0:
		return dst, fmt.Errorf("bint: negative integer %s: %w", x, ErrInvalidArgument)
	}
	start := len(dst)
	for _, w := range x.Bits() {
		for i := 0; i < wordBytes; i++ {
			dst = append(dst, byte(w&0xff))
			w = w >> 8
		}
	}
	// the most significant word is zero padded
	for n := len(dst); n > start && dst[n-1] == 0; n-- {
		dst = dst[:n-1]
	}
	return dst, nil
}

// Decodes little-endian b into a non-negative integer.
// Trailing zero bytes do not change the result.
func Unpack(b []byte) *big.Int {
	words := make([]big.Word, (len(b)+wordBytes-1)/wordBytes)
	for i, c := range b {
		words[i/wordBytes] |= big.Word(c) << (8 * (i % wordBytes))
	}
	return new(big.Int).SetBits(words)
}
