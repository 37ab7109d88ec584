// Package factorization implements primality testing and integer
// factorization based on small-prime trial division, Pollard's rho algorithm
// and Lenstra's elliptic-curve method.
package factorization

import (
	"math/big"

	"github.com/tuneinsight/ringsafety/utils/sampling"
)

// trialDivisionBound is the bound under which prime factors are found by
// trial division before the probabilistic methods take over.
const trialDivisionBound = 1 << 12

// ecmThresholdBits is the size above which GetFactors tries the
// elliptic-curve method before falling back to Pollard's rho.
const ecmThresholdBits = 40

var one = big.NewInt(1)

// IsPrime returns true if x is prime. It applies the Baillie-PSW test, which
// is 100% accurate for numbers below 2^64.
func IsPrime(x *big.Int) bool {
	return x.ProbablyPrime(0)
}

// PrimesUpTo returns all primes up to and including bound, by sieving.
func PrimesUpTo(bound uint64) (primes []uint64) {

	if bound < 2 {
		return nil
	}

	composite := make([]bool, bound+1)
	for p := uint64(2); p <= bound; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for c := p * p; c <= bound; c += p {
			composite[c] = true
		}
	}

	return
}

// GetFactors returns the distinct prime factors of m in ascending order.
// Inputs with absolute value below 2 have no prime factors and return nil.
func GetFactors(m *big.Int) (factors []*big.Int) {

	n := new(big.Int).Abs(m)

	if n.Cmp(one) <= 0 {
		return nil
	}

	tmp := new(big.Int)
	for _, p := range PrimesUpTo(trialDivisionBound) {

		bigP := new(big.Int).SetUint64(p)

		if tmp.Mod(n, bigP).Sign() == 0 {
			factors = append(factors, bigP)
			for tmp.Mod(n, bigP).Sign() == 0 {
				n.Quo(n, bigP)
			}
		}

		if n.Cmp(one) == 0 {
			break
		}
	}

	if n.Cmp(one) > 0 {
		factors = append(factors, splitRecurse(n)...)
	}

	// splitRecurse can return duplicated primes out of order
	distinct := map[string]*big.Int{}
	for _, f := range factors {
		distinct[f.String()] = f
	}

	factors = factors[:0]
	for _, f := range distinct {
		factors = append(factors, f)
	}

	sortFactors(factors)

	return
}

func sortFactors(factors []*big.Int) {
	for i := 1; i < len(factors); i++ {
		for j := i; j > 0 && factors[j].Cmp(factors[j-1]) < 0; j-- {
			factors[j], factors[j-1] = factors[j-1], factors[j]
		}
	}
}

// splitRecurse fully factors a number free of small prime factors.
func splitRecurse(n *big.Int) (factors []*big.Int) {

	if IsPrime(n) {
		return []*big.Int{new(big.Int).Set(n)}
	}

	var factor *big.Int
	if n.BitLen() > ecmThresholdBits {
		factor = GetFactorECM(n)
	} else {
		factor = GetFactorPollardRho(n)
	}

	cofactor := new(big.Int).Quo(n, factor)

	factors = append(factors, splitRecurse(factor)...)
	factors = append(factors, splitRecurse(cofactor)...)

	return
}

// GetFactorPollardRho returns a non-trivial factor of the composite n using
// Pollard's rho algorithm with Brent's cycle finding.
func GetFactorPollardRho(n *big.Int) *big.Int {

	two := big.NewInt(2)

	if new(big.Int).And(n, one).Sign() == 0 {
		return two
	}

	tmp := new(big.Int)

	// f(x) = x^2 + c mod n
	step := func(x, c *big.Int) {
		x.Mul(x, x)
		x.Add(x, c)
		x.Mod(x, n)
	}

	for {

		c := sampling.RandInt(n)
		if c.Sign() == 0 {
			continue
		}

		y := sampling.RandInt(n)

		m := int64(128)
		g := new(big.Int).Set(one)
		r := int64(1)
		q := new(big.Int).Set(one)

		x := new(big.Int)
		ys := new(big.Int)

		for g.Cmp(one) == 0 {

			x.Set(y)
			for i := int64(0); i < r; i++ {
				step(y, c)
			}

			for k := int64(0); k < r && g.Cmp(one) == 0; k += m {

				ys.Set(y)

				bound := m
				if r-k < bound {
					bound = r - k
				}

				for i := int64(0); i < bound; i++ {
					step(y, c)
					tmp.Sub(x, y)
					tmp.Abs(tmp)
					q.Mul(q, tmp)
					q.Mod(q, n)
				}

				g.GCD(nil, nil, q, n)
			}

			r <<= 1
		}

		if g.Cmp(n) == 0 {
			// backtrack one step at a time
			for {
				step(ys, c)
				tmp.Sub(x, ys)
				tmp.Abs(tmp)
				g.GCD(nil, nil, tmp, n)
				if g.Cmp(one) > 0 {
					break
				}
			}
		}

		if g.Cmp(n) != 0 {
			return g
		}
	}
}
