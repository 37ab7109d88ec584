package algebra

import (
	"math/big"

	"github.com/tuneinsight/ringsafety/poly"
	"github.com/tuneinsight/ringsafety/zq"
)

// isXNPlusOne reports whether coeffs is x^n + 1 and, if so, whether it is
// irreducible over the rationals, which holds exactly when n is a power of
// two (x^n + 1 is then the 2n-th cyclotomic polynomial).
func isXNPlusOne(coeffs []*big.Int) (ok, irreducible bool) {

	n := len(coeffs) - 1

	if coeffs[n].Cmp(bigOne) != 0 || coeffs[0].Cmp(bigOne) != 0 {
		return false, false
	}
	for i := 1; i < n; i++ {
		if coeffs[i].Sign() != 0 {
			return false, false
		}
	}

	return true, n&(n-1) == 0
}

// splitXNPlusOne returns the two factors of the reducible x^n + 1, with
// n = 2^k * m for odd m > 1:
//
//	x^n + 1 = (y + 1) * (y^(m-1) - y^(m-2) + ... + 1), y = x^(2^k)
func splitXNPlusOne(n int) (lo, hi *poly.Poly) {

	m := n
	for m%2 == 0 {
		m >>= 1
	}
	// m is now the odd part, n/m the power of two
	step := n / m

	loCoeffs := make([]*big.Int, step+1)
	loCoeffs[0] = big.NewInt(1)
	loCoeffs[step] = big.NewInt(1)

	hiCoeffs := make([]*big.Int, n-step+1)
	sign := int64(1)
	for i := n - step; i >= 0; i -= step {
		hiCoeffs[i] = big.NewInt(sign)
		sign = -sign
	}

	lo, err := poly.NewPoly(loCoeffs)
	if err != nil {
		panic(err)
	}
	hi, err = poly.NewPoly(hiCoeffs)
	if err != nil {
		panic(err)
	}

	return lo, hi
}

// isSelmerTrinomial reports whether coeffs is x^n - x - 1 with n >= 2, which
// is irreducible over the rationals for every such n (Selmer, 1956).
func isSelmerTrinomial(coeffs []*big.Int) bool {

	n := len(coeffs) - 1
	if n < 2 {
		return false
	}

	minusOne := big.NewInt(-1)

	if coeffs[n].Cmp(bigOne) != 0 || coeffs[0].Cmp(minusOne) != 0 || coeffs[1].Cmp(minusOne) != 0 {
		return false
	}
	for i := 2; i < n; i++ {
		if coeffs[i].Sign() != 0 {
			return false
		}
	}

	return true
}

// eisenstein applies Eisenstein's criterion to the primitive polynomial and
// to its reverse over the oracle's certificate primes.
func (r *Rational) eisenstein(coeffs []*big.Int) bool {

	if applyEisenstein(coeffs, r.certPrimes) {
		return true
	}

	// the reverse x^n * f(1/x) is irreducible iff f is, provided f(0) != 0
	if coeffs[0].Sign() != 0 {
		reversed := make([]*big.Int, len(coeffs))
		for i := range coeffs {
			reversed[i] = coeffs[len(coeffs)-1-i]
		}
		return applyEisenstein(reversed, r.certPrimes)
	}

	return false
}

func applyEisenstein(coeffs []*big.Int, primes []uint64) bool {

	n := len(coeffs) - 1
	tmp := new(big.Int)

nextPrime:
	for _, p := range primes {

		bigP := new(big.Int).SetUint64(p)

		if tmp.Mod(coeffs[n], bigP).Sign() == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			if tmp.Mod(coeffs[i], bigP).Sign() != 0 {
				continue nextPrime
			}
		}
		if tmp.Mod(coeffs[0], new(big.Int).Mul(bigP, bigP)).Sign() == 0 {
			continue
		}

		return true
	}

	return false
}

// modCertificates decides irreducibility from factorizations modulo small
// primes: an irreducible image certifies irreducibility, and so does an
// empty intersection of the achievable proper factor degrees across primes.
// conclusive is false when neither certificate applies.
func (r *Rational) modCertificates(coeffs []*big.Int) (irreducible, conclusive bool) {

	n := len(coeffs) - 1

	// achievable[d] = true while degree d may appear in a rational
	// factorization, for 1 <= d <= n-1
	achievable := make([]bool, n)
	for d := 1; d < n; d++ {
		achievable[d] = true
	}

	used := 0
	tmp := new(big.Int)

	for _, p := range r.certPrimes {

		if used == maxCertPrimes {
			break
		}

		// the degree pattern mod p only constrains f when the leading
		// coefficient stays a unit
		if tmp.Mod(coeffs[n], new(big.Int).SetUint64(p)).Sign() == 0 {
			continue
		}

		field, err := zq.NewField(p)
		if err != nil {
			continue
		}

		fq := field.MakeMonic(field.Reduce(coeffs))

		var degrees []int
		for _, part := range squareFree(field, fq) {
			for _, dd := range distinctDegree(field, part.poly) {
				for i := 0; i < dd.count*part.multiplicity; i++ {
					degrees = append(degrees, dd.degree)
				}
			}
		}

		if len(degrees) == 1 {
			// irreducible mod p
			return true, true
		}

		used++

		// subset sums of the degree multiset mod p
		sums := make([]bool, n+1)
		sums[0] = true
		for _, d := range degrees {
			for s := n; s >= d; s-- {
				if sums[s-d] {
					sums[s] = true
				}
			}
		}

		for d := 1; d < n; d++ {
			if achievable[d] && !sums[d] {
				achievable[d] = false
			}
		}

		empty := true
		for d := 1; d < n; d++ {
			if achievable[d] {
				empty = false
				break
			}
		}

		if empty {
			return true, true
		}
	}

	return false, false
}
