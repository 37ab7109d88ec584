package analysis

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/ringsafety/algebra"
	"github.com/tuneinsight/ringsafety/poly"
)

// IrreducibilityOracle answers irreducibility questions over the rationals.
// A factorization is requested only for reporting, when the polynomial is
// reducible.
type IrreducibilityOracle interface {
	IsIrreducibleOverRationals(p *poly.Poly) (bool, error)
	FactorOverRationals(p *poly.Poly) ([]poly.RationalFactor, error)
}

// ModularFactorizer factors a polynomial modulo q, failing with a
// distinguishable error when the modulus is invalid or the factorization
// cannot be completed.
type ModularFactorizer interface {
	FactorModulo(p *poly.Poly, q poly.Modulus) (poly.Factorization, error)
}

// Report is the result of one analysis run.
type Report struct {
	Polynomial *poly.Poly
	Modulus    *poly.Modulus

	// Fingerprint identifies the analysis input.
	Fingerprint [32]byte

	// Structural non-maximality check, informational only.
	StructurallyNonMaximal bool
	StructuralWitnesses    []StructuralWitness

	IrreducibleOverQ bool

	// RationalFactors is populated when the polynomial is reducible over
	// the rationals and a factorization is known.
	RationalFactors []poly.RationalFactor

	// Factorization modulo q, when a modulus was supplied and the oracle
	// succeeded.
	Factorization poly.Factorization

	Risk      RiskLevel
	MinDegree int
	MaxDegree int

	Verdict Verdict
	Reason  Reason

	// Err carries the underlying failure for INCOMPLETE verdicts.
	Err error
}

// Analyzer runs the full assessment. One analysis is one synchronous call
// with no shared state: analyzers are safe for concurrent use as long as
// their oracles are.
type Analyzer struct {
	irred            IrreducibilityOracle
	factorizer       ModularFactorizer
	structuralPrimes []uint64
}

// NewAnalyzer returns an Analyzer consuming the given oracles.
func NewAnalyzer(irred IrreducibilityOracle, factorizer ModularFactorizer) *Analyzer {
	return &Analyzer{
		irred:            irred,
		factorizer:       factorizer,
		structuralPrimes: DefaultStructuralPrimes,
	}
}

// Default returns an Analyzer wired to the algebra package oracles.
func Default() *Analyzer {
	return NewAnalyzer(algebra.NewRational(), algebra.NewModular())
}

// Analyze assesses p as the defining polynomial of Z_q[x]/(p), with q
// optional. It never panics and never returns a partial wrong answer: any
// input or oracle failure yields an INCOMPLETE verdict carrying the cause,
// and an oracle failure is never classified as a risk level other than
// UNKNOWN.
func (a *Analyzer) Analyze(p *poly.Poly, q *poly.Modulus) Report {

	rep := Report{
		Polynomial: p,
		Modulus:    q,
		Verdict:    VerdictIncomplete,
	}

	if p == nil {
		rep.Reason = ReasonInvalidPolynomial
		rep.Err = fmt.Errorf("%w: nil polynomial", poly.ErrInvalidPolynomial)
		return rep
	}

	rep.Fingerprint = poly.Fingerprint(p, q)
	rep.StructurallyNonMaximal, rep.StructuralWitnesses = StructuralCheck(p, a.structuralPrimes)

	irreducible, err := a.irred.IsIrreducibleOverRationals(p)
	if err != nil {
		rep.Reason = ReasonIrreducibilityFailed
		if errors.Is(err, poly.ErrInvalidPolynomial) {
			rep.Reason = ReasonInvalidPolynomial
		}
		rep.Err = err
		return rep
	}

	rep.IrreducibleOverQ = irreducible

	if !irreducible {
		// reporting only; the verdict does not depend on the factors
		if factors, err := a.irred.FactorOverRationals(p); err == nil {
			rep.RationalFactors = factors
		}
		rep.Verdict, rep.Reason = Recommend(false, q != nil, RiskUnknown)
		return rep
	}

	if q == nil {
		rep.Verdict, rep.Reason = Recommend(true, false, RiskUnknown)
		return rep
	}

	fact, err := a.factorizer.FactorModulo(p, *q)
	if err != nil {
		rep.Risk = RiskUnknown
		rep.Err = err
		rep.Verdict, rep.Reason = Recommend(true, true, RiskUnknown)
		if errors.Is(err, poly.ErrInvalidModulus) {
			rep.Reason = ReasonInvalidModulus
		}
		return rep
	}

	rep.Factorization = fact
	rep.Risk, rep.MinDegree, rep.MaxDegree = ClassifyRisk(p.Degree(), fact)
	rep.Verdict, rep.Reason = Recommend(true, true, rep.Risk)

	return rep
}
