package algebra

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ringsafety/factorization"
	"github.com/tuneinsight/ringsafety/poly"
)

// certPrimeBound bounds the small primes used for Eisenstein and mod-p
// certificates.
const certPrimeBound = 100

// maxCertPrimes is the number of usable certificate primes tried before the
// degree-pattern test gives up.
const maxCertPrimes = 7

// maxRootCandidates bounds the rational-root search. Coefficients whose
// divisor sets exceed it make the root test inconclusive (skipped), never
// wrong.
const maxRootCandidates = 1 << 12

// Rational decides irreducibility over the rational numbers. The answer is
// always exact: polynomials outside the reach of its certificates fail with
// an error wrapping poly.ErrOracleFailure instead of being guessed at.
type Rational struct {
	certPrimes []uint64
}

// NewRational returns a new rational irreducibility oracle.
func NewRational() *Rational {
	return &Rational{certPrimes: factorization.PrimesUpTo(certPrimeBound)}
}

// IsIrreducibleOverRationals returns true if p cannot be written as a product
// of two non-constant rational polynomials.
func (r *Rational) IsIrreducibleOverRationals(p *poly.Poly) (bool, error) {

	if p == nil {
		return false, fmt.Errorf("%w: nil polynomial", poly.ErrInvalidPolynomial)
	}

	n := p.Degree()
	if n == 1 {
		return true, nil
	}

	// units do not affect irreducibility
	coeffs := primitivePart(p.Coeffs())

	roots, _, err := rationalRoots(coeffs)
	if err == nil && len(roots) > 0 {
		return false, nil
	}

	// degree 2 and 3 are reducible iff they have a rational root
	if n <= 3 && err == nil {
		return true, nil
	}

	// x^n + 1 is the 2n-th cyclotomic polynomial iff n is a power of two
	if ok, irreducible := isXNPlusOne(coeffs); ok {
		return irreducible, nil
	}

	if isSelmerTrinomial(coeffs) {
		return true, nil
	}

	if r.eisenstein(coeffs) {
		return true, nil
	}

	if irreducible, conclusive := r.modCertificates(coeffs); conclusive {
		return irreducible, nil
	}

	return false, fmt.Errorf("%w: irreducibility of %s undecided", poly.ErrOracleFailure, p)
}

// FactorOverRationals returns a factorization of p over the rationals, used
// for reporting when p is reducible. The factorization splits off rational
// roots and the known cyclotomic pattern; the remaining cofactor is reported
// as a single factor without being factored further.
func (r *Rational) FactorOverRationals(p *poly.Poly) ([]poly.RationalFactor, error) {

	if p == nil {
		return nil, fmt.Errorf("%w: nil polynomial", poly.ErrInvalidPolynomial)
	}

	coeffs := primitivePart(p.Coeffs())

	if ok, irreducible := isXNPlusOne(coeffs); ok && !irreducible {
		lo, hi := splitXNPlusOne(len(coeffs) - 1)
		return []poly.RationalFactor{{Factor: lo, Multiplicity: 1}, {Factor: hi, Multiplicity: 1}}, nil
	}

	roots, cofactor, err := rationalRoots(coeffs)
	if err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		if irreducible, ierr := r.IsIrreducibleOverRationals(p); ierr == nil && irreducible {
			return []poly.RationalFactor{{Factor: p, Multiplicity: 1}}, nil
		}
		return nil, fmt.Errorf("%w: no known factorization of %s", poly.ErrOracleFailure, p)
	}

	var factors []poly.RationalFactor
	for _, root := range roots {
		linear, err := poly.NewPoly([]*big.Int{new(big.Int).Neg(root.num), root.den})
		if err != nil {
			return nil, err
		}
		factors = append(factors, poly.RationalFactor{Factor: linear, Multiplicity: root.multiplicity})
	}

	if len(cofactor) > 1 {
		q, err := poly.NewPoly(cofactor)
		if err != nil {
			return nil, err
		}
		factors = append(factors, poly.RationalFactor{Factor: q, Multiplicity: 1})
	}

	return factors, nil
}

// primitivePart divides out the content and normalizes the leading
// coefficient to be positive.
func primitivePart(coeffs []*big.Int) []*big.Int {

	content := new(big.Int)
	for _, c := range coeffs {
		content.GCD(nil, nil, content, new(big.Int).Abs(c))
	}

	if content.Sign() == 0 {
		content.SetInt64(1)
	}

	if coeffs[len(coeffs)-1].Sign() < 0 {
		content.Neg(content)
	}

	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		out[i] = new(big.Int).Quo(c, content)
	}

	return out
}

type rationalRoot struct {
	num, den     *big.Int // the root num/den in lowest terms, den > 0
	multiplicity int
}

// rationalRoots extracts all rational roots of a primitive polynomial with
// their multiplicities, returning the deflated cofactor. Coefficients whose
// divisor sets are too large to enumerate produce an error.
func rationalRoots(coeffs []*big.Int) (roots []rationalRoot, cofactor []*big.Int, err error) {

	cofactor = coeffs

	// roots at zero
	zeros := 0
	for zeros < len(cofactor)-1 && cofactor[zeros].Sign() == 0 {
		zeros++
	}
	if zeros > 0 {
		roots = append(roots, rationalRoot{num: new(big.Int), den: big.NewInt(1), multiplicity: zeros})
		cofactor = cofactor[zeros:]
	}

	if len(cofactor) < 2 {
		return roots, cofactor, nil
	}

	nums, err := divisors(cofactor[0])
	if err != nil {
		return nil, nil, err
	}
	dens, err := divisors(cofactor[len(cofactor)-1])
	if err != nil {
		return nil, nil, err
	}

	if len(nums)*len(dens)*2 > maxRootCandidates {
		return nil, nil, fmt.Errorf("%w: rational-root candidate set too large", poly.ErrOracleFailure)
	}

	gcd := new(big.Int)
	for _, den := range dens {
		for _, num := range nums {

			if gcd.GCD(nil, nil, num, den).Cmp(bigOne) != 0 {
				continue
			}

			for _, signed := range []*big.Int{num, new(big.Int).Neg(num)} {

				multiplicity := 0
				for len(cofactor) > 1 && evalScaled(cofactor, signed, den).Sign() == 0 {
					cofactor = deflate(cofactor, signed, den)
					multiplicity++
				}

				if multiplicity > 0 {
					roots = append(roots, rationalRoot{
						num:          new(big.Int).Set(signed),
						den:          new(big.Int).Set(den),
						multiplicity: multiplicity,
					})
				}
			}
		}
	}

	return roots, cofactor, nil
}

var bigOne = big.NewInt(1)

// divisors returns the positive divisors of |c| in no particular order.
func divisors(c *big.Int) ([]*big.Int, error) {

	abs := new(big.Int).Abs(c)

	if abs.Sign() == 0 || abs.Cmp(bigOne) == 0 {
		return []*big.Int{big.NewInt(1)}, nil
	}

	divs := []*big.Int{big.NewInt(1)}
	rest := new(big.Int).Set(abs)

	for _, prime := range factorization.GetFactors(abs) {

		exponent := 0
		for new(big.Int).Mod(rest, prime).Sign() == 0 {
			rest.Quo(rest, prime)
			exponent++
		}

		grown := make([]*big.Int, 0, len(divs)*(exponent+1))
		grown = append(grown, divs...)

		power := new(big.Int).Set(bigOne)
		for e := 1; e <= exponent; e++ {
			power = new(big.Int).Mul(power, prime)
			for _, d := range divs {
				grown = append(grown, new(big.Int).Mul(d, power))
			}
		}

		divs = grown

		if len(divs) > maxRootCandidates {
			return nil, fmt.Errorf("%w: divisor set of %s too large", poly.ErrOracleFailure, c)
		}
	}

	return divs, nil
}

// evalScaled returns den^n * f(num/den), an integer.
func evalScaled(coeffs []*big.Int, num, den *big.Int) *big.Int {

	n := len(coeffs) - 1

	y := new(big.Int)
	denPow := new(big.Int).Set(bigOne)
	numPow := new(big.Int).Set(bigOne)

	terms := make([]*big.Int, len(coeffs))
	for i := range coeffs {
		terms[i] = new(big.Int).Mul(coeffs[i], numPow)
		numPow = new(big.Int).Mul(numPow, num)
	}
	for i := n; i >= 0; i-- {
		y.Add(y, new(big.Int).Mul(terms[i], denPow))
		denPow = new(big.Int).Mul(denPow, den)
	}

	return y
}

// deflate divides the primitive polynomial f by (den*x - num), assuming
// num/den is a root in lowest terms. The divisions are exact by Gauss's
// lemma.
func deflate(coeffs []*big.Int, num, den *big.Int) []*big.Int {

	n := len(coeffs) - 1
	g := make([]*big.Int, n)

	rem := new(big.Int)

	g[n-1], rem = new(big.Int).QuoRem(coeffs[n], den, rem)
	if rem.Sign() != 0 {
		panic("algebra: deflation by a non-root")
	}

	for k := n - 1; k >= 1; k-- {
		t := new(big.Int).Mul(num, g[k])
		t.Add(t, coeffs[k])
		g[k-1], rem = new(big.Int).QuoRem(t, den, new(big.Int))
		if rem.Sign() != 0 {
			panic("algebra: deflation by a non-root")
		}
	}

	return g
}
