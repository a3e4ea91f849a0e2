package bint

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/indexsupply/bigpack/tc"
	"kr.dev/diff"
)

func TestUint64(t *testing.T) {
	var cases = []uint8{0, 8, 16, 32, 63, 64}
	for _, e := range cases {
		i := uint64(1<<e - 1)
		b := PackUint64(i)
		want, err := Pack(new(big.Int).SetUint64(i))
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, b, want)

		got, err := UnpackUint64(b)
		tc.NoErr(t, err)
		tc.WantGot(t, i, got)

		got, err = UnpackUint64(append(b, 0, 0, 0, 0, 0, 0, 0, 0, 0))
		tc.NoErr(t, err)
		tc.WantGot(t, i, got)
	}
}

func TestUnpackUint64_Overflow(t *testing.T) {
	_, err := UnpackUint64([]byte{0, 0, 0, 0, 0, 0, 0, 0, 1})
	tc.WantErr(t, ErrOverflow, err)
}

func TestUint256(t *testing.T) {
	cases := []*uint256.Int{
		uint256.NewInt(0),
		uint256.NewInt(0xff),
		uint256.NewInt(0x10001),
		uint256.MustFromHex("0x10000000000000000"),
		uint256.MustFromHex("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	}
	for _, n := range cases {
		b := PackUint256(n)
		want, err := Pack(n.ToBig())
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, b, want)

		got, err := UnpackUint256(append(b, 0, 0))
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, *n)
	}
	diff.Test(t, t.Errorf, PackUint256(nil), []byte{})
}

func TestUnpackUint256_Overflow(t *testing.T) {
	b := append(bytes.Repeat([]byte{0}, 32), 1)
	_, err := UnpackUint256(b)
	tc.WantErr(t, ErrOverflow, err)
}
