package poly

import (
	"fmt"
	"sort"
	"strings"
)

// FactorDescriptor is an opaque reference to one irreducible factor of a
// factorization modulo q. It exposes only the factor's degree and its
// multiplicity; descriptors are never compared beyond these two fields.
type FactorDescriptor struct {
	Degree       int
	Multiplicity int
}

// Factorization is the multiset of irreducible factors of a polynomial over
// Z_p[x], ordered by ascending degree then multiplicity. Prime is the field
// characteristic the factorization was computed in; for a prime modulus q it
// equals q, for a composite modulus it is the CRT component prime the
// factorization refers to.
type Factorization struct {
	Prime   uint64
	Factors []FactorDescriptor
}

// NewFactorization returns a Factorization over the given prime with its
// factors sorted canonically.
func NewFactorization(prime uint64, factors []FactorDescriptor) Factorization {
	f := make([]FactorDescriptor, len(factors))
	copy(f, factors)
	sort.Slice(f, func(i, j int) bool {
		if f[i].Degree != f[j].Degree {
			return f[i].Degree < f[j].Degree
		}
		return f[i].Multiplicity < f[j].Multiplicity
	})
	return Factorization{Prime: prime, Factors: f}
}

// IsIrreducible returns true if the factorization consists of a single factor
// of multiplicity one.
func (f Factorization) IsIrreducible() bool {
	return len(f.Factors) == 1 && f.Factors[0].Multiplicity == 1
}

// SumOfDegrees returns the sum of the factor degrees weighted by their
// multiplicities.
func (f Factorization) SumOfDegrees() (sum int) {
	for _, d := range f.Factors {
		sum += d.Degree * d.Multiplicity
	}
	return
}

// Validate checks the factorization invariants against the degree n of the
// factored polynomial: positive degrees and multiplicities, and weighted
// degrees summing to n.
func (f Factorization) Validate(n int) error {

	if len(f.Factors) == 0 {
		return fmt.Errorf("%w: empty factorization", ErrOracleFailure)
	}

	for _, d := range f.Factors {
		if d.Degree < 1 || d.Multiplicity < 1 {
			return fmt.Errorf("%w: descriptor (degree=%d, multiplicity=%d) out of range", ErrOracleFailure, d.Degree, d.Multiplicity)
		}
	}

	if sum := f.SumOfDegrees(); sum != n {
		return fmt.Errorf("%w: factor degrees sum to %d, expected %d", ErrOracleFailure, sum, n)
	}

	return nil
}

func (f Factorization) String() string {
	parts := make([]string, len(f.Factors))
	for i, d := range f.Factors {
		parts[i] = fmt.Sprintf("(deg=%d)^%d", d.Degree, d.Multiplicity)
	}
	return fmt.Sprintf("mod %d: %s", f.Prime, strings.Join(parts, " "))
}

// RationalFactor is one factor of a factorization over the rationals, used
// only for reporting when a polynomial is reducible over Q.
type RationalFactor struct {
	Factor       *Poly
	Multiplicity int
}
