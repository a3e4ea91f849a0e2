// Compact identifiers for token components and nonces.
//
// An [ID] is an integer packed with [bint.Pack]. UUIDs are
// read as big-endian 128 bit integers so that leading zero
// bytes of the UUID are dropped from the packed form.
package tokid

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/indexsupply/bigpack/bint"
)

type ID []byte

var enc = base64.RawURLEncoding

func (id ID) String() string {
	return enc.EncodeToString(id)
}

func (id ID) Int() *big.Int {
	return bint.Unpack(id)
}

// Returns [bint.ErrOverflow] when id holds more than 128 bits.
func (id ID) UUID() (uuid.UUID, error) {
	var u uuid.UUID
	x := id.Int()
	if x.BitLen() > 128 {
		return u, fmt.Errorf("tokid: %d bit id: %w", x.BitLen(), bint.ErrOverflow)
	}
	x.FillBytes(u[:])
	return u, nil
}

func ParseID(s string) (ID, error) {
	b, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("tokid: decoding %q: %w", s, err)
	}
	return ID(b), nil
}

func FromUUID(u uuid.UUID) ID {
	b, err := bint.Pack(new(big.Int).SetBytes(u[:]))
	if err != nil {
		// SetBytes never yields a negative integer
		panic(err)
	}
	return ID(b)
}

func NewID() (ID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("tokid: generating uuid: %w", err)
	}
	return FromUUID(u), nil
}

// Random integer in [0, 2^bits)
func Nonce(bits int) (ID, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("tokid: nonce of %d bits: %w", bits, bint.ErrInvalidArgument)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	x, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, fmt.Errorf("tokid: reading random: %w", err)
	}
	b, err := bint.Pack(x)
	if err != nil {
		return nil, err
	}
	return ID(b), nil
}
