// Package algebra implements the two algebraic oracles consumed by the
// analyzer: irreducibility testing over the rationals and factorization of a
// polynomial modulo q. Both oracles are exact: when a question cannot be
// decided they fail explicitly instead of guessing.
package algebra

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/ringsafety/factorization"
	"github.com/tuneinsight/ringsafety/poly"
	"github.com/tuneinsight/ringsafety/zq"
)

// Modular factors polynomials over Z_q[x]. For prime q the factorization is
// over the field F_q; for a square-free composite q the polynomial is
// factored per CRT component F_p[x] and the most pessimistic component
// (smallest minimum factor degree, ties to the smaller prime) is reported.
type Modular struct {
}

// NewModular returns a new modular factorization oracle.
func NewModular() *Modular {
	return &Modular{}
}

// FactorModulo returns the multiset of irreducible factor descriptors of p
// modulo q. Moduli with repeated prime factors, or moduli for which the
// leading coefficient of p is not a unit, fail with an error wrapping
// poly.ErrOracleFailure.
func (m *Modular) FactorModulo(p *poly.Poly, q poly.Modulus) (poly.Factorization, error) {

	if p == nil {
		return poly.Factorization{}, fmt.Errorf("%w: nil polynomial", poly.ErrInvalidPolynomial)
	}

	if q.Value < 2 {
		return poly.Factorization{}, fmt.Errorf("%w: modulus %d", poly.ErrInvalidModulus, q.Value)
	}

	if p.Degree() > zq.MaxDegree {
		return poly.Factorization{}, fmt.Errorf("%w: degree %d exceeds %d", poly.ErrOracleFailure, p.Degree(), zq.MaxDegree)
	}

	if q.IsPrime() {
		return m.factorPrime(p, q.Value)
	}

	primes := factorization.GetFactors(new(big.Int).SetUint64(q.Value))

	// a composite modulus must be square-free so that Z_q is a product of
	// fields
	sqfree := big.NewInt(1)
	for _, prime := range primes {
		sqfree.Mul(sqfree, prime)
	}
	if sqfree.Uint64() != q.Value {
		return poly.Factorization{}, fmt.Errorf("%w: modulus %d has repeated prime factors", poly.ErrOracleFailure, q.Value)
	}

	// factor per CRT component, keep the weakest one
	var worst poly.Factorization
	var worstMin int

	for _, prime := range primes {

		f, err := m.factorPrime(p, prime.Uint64())
		if err != nil {
			return poly.Factorization{}, err
		}

		min := f.Factors[0].Degree // factors are sorted by ascending degree
		if worst.Factors == nil || min < worstMin {
			worst, worstMin = f, min
		}
	}

	return worst, nil
}

// factorPrime factors p over the field F_q.
func (m *Modular) factorPrime(p *poly.Poly, q uint64) (poly.Factorization, error) {

	field, err := zq.NewField(q)
	if err != nil {
		return poly.Factorization{}, fmt.Errorf("%w: %s", poly.ErrInvalidModulus, err)
	}

	fq := field.Reduce(p.Coeffs())

	if zq.Deg(fq) != p.Degree() {
		return poly.Factorization{}, fmt.Errorf("%w: leading coefficient of %s is not a unit modulo %d", poly.ErrOracleFailure, p, q)
	}

	fq = field.MakeMonic(fq)

	var descriptors []poly.FactorDescriptor
	for _, part := range squareFree(field, fq) {
		for _, dd := range distinctDegree(field, part.poly) {
			for i := 0; i < dd.count; i++ {
				descriptors = append(descriptors, poly.FactorDescriptor{
					Degree:       dd.degree,
					Multiplicity: part.multiplicity,
				})
			}
		}
	}

	f := poly.NewFactorization(q, descriptors)

	if err := f.Validate(p.Degree()); err != nil {
		return poly.Factorization{}, err
	}

	return f, nil
}

type squareFreePart struct {
	poly         []uint64
	multiplicity int
}

// squareFree returns the square-free decomposition of the monic polynomial f
// over the given field, as pairs of a square-free monic polynomial and its
// multiplicity. The characteristic-p descent handles the f' = 0 case, where
// f = g(x^p) = g~(x)^p since the Frobenius fixes F_p.
func squareFree(field *zq.Field, f []uint64) (parts []squareFreePart) {

	fp := field.Derivative(f)

	if len(fp) == 0 {
		for _, part := range squareFree(field, pthRoot(field, f)) {
			part.multiplicity *= int(field.P)
			parts = append(parts, part)
		}
		return
	}

	t := field.Gcd(f, fp)
	v, _ := field.DivMod(f, t)

	for k := 1; zq.Deg(v) > 0; k++ {

		w := field.Gcd(t, v)

		if out, _ := field.DivMod(v, w); zq.Deg(out) > 0 {
			parts = append(parts, squareFreePart{poly: out, multiplicity: k})
		}

		v = w
		t, _ = field.DivMod(t, w)
	}

	if zq.Deg(t) > 0 {
		for _, part := range squareFree(field, pthRoot(field, t)) {
			part.multiplicity *= int(field.P)
			parts = append(parts, part)
		}
	}

	return
}

// pthRoot returns g with g(x)^p = f(x), for f with vanishing derivative.
func pthRoot(field *zq.Field, f []uint64) []uint64 {
	g := make([]uint64, (uint64(len(f)-1)/field.P)+1)
	for i := range g {
		g[i] = f[uint64(i)*field.P]
	}
	return g
}

type distinctDegreePart struct {
	degree int
	count  int
}

// distinctDegree runs distinct-degree factorization on the monic square-free
// polynomial v: it returns, for each degree d present in the factorization,
// the number of irreducible factors of that degree. Descriptors are opaque
// beyond (degree, multiplicity), so the equal-degree splitting step is not
// needed.
func distinctDegree(field *zq.Field, v []uint64) (parts []distinctDegreePart) {

	x := []uint64{0, 1}
	h := x
	e := new(big.Int).SetUint64(field.P)

	for i := 1; zq.Deg(v) > 0; i++ {

		if 2*i > zq.Deg(v) {
			// remainder is irreducible
			parts = append(parts, distinctDegreePart{degree: zq.Deg(v), count: 1})
			break
		}

		h = field.PowMod(h, e, v)

		if g := field.Gcd(field.Sub(h, x), v); zq.Deg(g) > 0 {
			parts = append(parts, distinctDegreePart{degree: i, count: zq.Deg(g) / i})
			v, _ = field.DivMod(v, g)
			h = field.Mod(h, v)
		}
	}

	return
}
