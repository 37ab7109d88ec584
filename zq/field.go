// Package zq implements dense polynomial arithmetic over prime fields Z/pZ
// for primes of at most 57 bits. Polynomials are []uint64 slices with the
// coefficient of x^i at index i, always trimmed of leading zeros; the zero
// polynomial is the empty slice.
//
// The 57-bit bound allows the schoolbook multiplication to accumulate
// cross products lazily in 128 bits for degrees up to 2^13.
package zq

import (
	"fmt"
	"math/big"
	"math/bits"
)

// MaxBits is the largest supported prime bit-size.
const MaxBits = 57

// MaxDegree is the largest supported polynomial degree.
const MaxDegree = 1 << 13

// Field holds a prime p along with its precomputed Barrett constants.
type Field struct {
	P    uint64
	bigP *big.Int
	brc  []uint64
}

// NewField returns the prime field Z/pZ. Non-prime or oversized p returns an
// error.
func NewField(p uint64) (*Field, error) {

	if p < 2 {
		return nil, fmt.Errorf("field characteristic %d is not prime", p)
	}

	if bits.Len64(p) > MaxBits {
		return nil, fmt.Errorf("field characteristic %d exceeds %d bits", p, MaxBits)
	}

	bigP := new(big.Int).SetUint64(p)
	if !bigP.ProbablyPrime(0) {
		return nil, fmt.Errorf("field characteristic %d is not prime", p)
	}

	return &Field{
		P:    p,
		bigP: bigP,
		brc:  BRedParams(p),
	}, nil
}

// reduce128 returns (hi*2^64 + lo) mod p.
func (f *Field) reduce128(hi, lo uint64) uint64 {
	_, r := bits.Div64(hi%f.P, lo, f.P)
	return r
}

// MulCoeff returns x*y mod p.
func (f *Field) MulCoeff(x, y uint64) uint64 {
	return BRed(x, y, f.P, f.brc)
}

// ExpCoeff returns x^e mod p by square-and-multiply.
func (f *Field) ExpCoeff(x, e uint64) (r uint64) {
	r = 1
	x = BRedAdd(x, f.P, f.brc)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = BRed(r, x, f.P, f.brc)
		}
		x = BRed(x, x, f.P, f.brc)
	}
	return
}

// InvCoeff returns x^-1 mod p. It panics on x = 0.
func (f *Field) InvCoeff(x uint64) uint64 {
	if x%f.P == 0 {
		panic("zq: inverse of zero")
	}
	return f.ExpCoeff(x, f.P-2)
}
