package poly

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/tuneinsight/ringsafety/factorization"
)

// MaxModulusBits is the largest supported modulus bit-size. The bound comes
// from the lazy 128-bit accumulation used by the dense prime-field arithmetic.
const MaxModulusBits = 57

// Modulus is a positive integer q, tagged at construction as prime or
// composite. The tag decides whether factorization modulo q happens over a
// field or over a ring with zero divisors.
type Modulus struct {
	Value uint64
	prime bool
}

// NewModulus returns the modulus q. Values below 2 or above MaxModulusBits
// bits return an error wrapping ErrInvalidModulus.
func NewModulus(q uint64) (Modulus, error) {

	if q < 2 {
		return Modulus{}, fmt.Errorf("%w: %d is not a positive modulus", ErrInvalidModulus, q)
	}

	if bits.Len64(q) > MaxModulusBits {
		return Modulus{}, fmt.Errorf("%w: %d exceeds %d bits", ErrInvalidModulus, q, MaxModulusBits)
	}

	return Modulus{
		Value: q,
		prime: factorization.IsPrime(new(big.Int).SetUint64(q)),
	}, nil
}

// IsPrime returns true if the modulus is prime.
func (m Modulus) IsPrime() bool {
	return m.prime
}

func (m Modulus) String() string {
	return fmt.Sprintf("%d", m.Value)
}
