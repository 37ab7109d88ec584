// Package analysis implements the decision core of the ring safety
// assessment: a structural coefficient-divisibility check, the risk
// classification of a modular factorization and the final accept/reject
// recommendation. The algebraic questions themselves are delegated to
// oracles consumed through interfaces.
package analysis

import (
	"fmt"

	"github.com/tuneinsight/ringsafety/poly"
)

// RiskLevel grades the exposure of a ring to subfield and algebraic attacks
// enabled by small-degree factors of its defining polynomial modulo q.
// Levels are totally ordered by severity except RiskUnknown, which is
// incomparable and reports an oracle failure.
type RiskLevel int

const (
	RiskUnknown RiskLevel = iota
	RiskExcellent
	RiskLow
	RiskModerate
	RiskHigh
	RiskCritical
)

// String returns the human-readable risk level name.
func (r RiskLevel) String() string {
	switch r {
	case RiskUnknown:
		return "UNKNOWN"
	case RiskExcellent:
		return "EXCELLENT"
	case RiskLow:
		return "LOW"
	case RiskModerate:
		return "MODERATE"
	case RiskHigh:
		return "HIGH"
	case RiskCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("RiskLevel(%d)", int(r))
	}
}

// ClassifyRisk derives the risk level of a degree-n polynomial from the
// factor-degree multiset of its factorization modulo q, along with the
// minimum and maximum factor degrees observed.
//
// The factor degree is always read from the descriptor's Degree field, never
// inferred from its Multiplicity: the two are independent, and conflating
// them silently turns a harmless high-multiplicity factorization into a
// misgraded one.
//
// A factor of degree 2 is graded MODERATE before the n/8 threshold is
// consulted: quadratic splittings are the module-structured pattern and must
// not be caught by the small-degree rule for large n.
func ClassifyRisk(n int, f poly.Factorization) (risk RiskLevel, minDeg, maxDeg int) {

	if len(f.Factors) == 0 {
		return RiskUnknown, 0, 0
	}

	minDeg = f.Factors[0].Degree
	maxDeg = minDeg
	for _, d := range f.Factors[1:] {
		if d.Degree < minDeg {
			minDeg = d.Degree
		}
		if d.Degree > maxDeg {
			maxDeg = d.Degree
		}
	}

	switch {
	case f.IsIrreducible():
		risk = RiskExcellent
	case minDeg == 1:
		risk = RiskCritical
	case minDeg == 2:
		risk = RiskModerate
	case 8*minDeg < n:
		risk = RiskHigh
	case 4*minDeg < n:
		risk = RiskModerate
	default:
		risk = RiskLow
	}

	return
}
