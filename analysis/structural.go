package analysis

import (
	"math/big"

	"github.com/tuneinsight/ringsafety/poly"
)

// DefaultStructuralPrimes is the prime table used by the structural check
// when the caller supplies none.
var DefaultStructuralPrimes = []uint64{2, 3, 5, 7, 11, 13, 17, 19}

// StructuralWitness records one non-divisibility witness: the first tested
// prime that does not divide the coefficient at the given exponent.
type StructuralWitness struct {
	Prime       uint64
	Exponent    int
	Coefficient *big.Int
}

// StructuralCheck evaluates the non-maximality necessary condition on the
// ideal generated by p: for each non-zero coefficient of x^i, 1 <= i <=
// deg(p), it records the first prime in the table not dividing the
// coefficient. The flag is true iff at least one witness was found.
//
// A false flag only means no witness exists within the prime table, not that
// every prime divides the coefficients. The result is informational: the
// underlying structural theorem holds for nearly every non-constant integer
// polynomial, so the flag does not discriminate and never participates in
// the recommendation.
func StructuralCheck(p *poly.Poly, primes []uint64) (bool, []StructuralWitness) {

	if len(primes) == 0 {
		primes = DefaultStructuralPrimes
	}

	var witnesses []StructuralWitness

	tmp := new(big.Int)
	for i := 1; i <= p.Degree(); i++ {

		c := p.Coeff(i)
		if c.Sign() == 0 {
			continue
		}

		for _, prime := range primes {
			if tmp.Mod(c, new(big.Int).SetUint64(prime)).Sign() != 0 {
				witnesses = append(witnesses, StructuralWitness{Prime: prime, Exponent: i, Coefficient: c})
				break
			}
		}
	}

	return len(witnesses) > 0, witnesses
}
