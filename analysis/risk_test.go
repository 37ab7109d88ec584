package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/ringsafety/poly"
)

func fact(prime uint64, descriptors ...poly.FactorDescriptor) poly.Factorization {
	return poly.NewFactorization(prime, descriptors)
}

func TestClassifyRiskReadsDegreeNotMultiplicity(t *testing.T) {

	// degree=1, multiplicity=5: a linear factor, however often it repeats,
	// is CRITICAL
	risk, minDeg, _ := ClassifyRisk(5, fact(7, poly.FactorDescriptor{Degree: 1, Multiplicity: 5}))
	require.Equal(t, RiskCritical, risk)
	require.Equal(t, 1, minDeg)

	// degree=5, multiplicity=1: irreducible, not CRITICAL
	risk, minDeg, _ = ClassifyRisk(5, fact(7, poly.FactorDescriptor{Degree: 5, Multiplicity: 1}))
	require.Equal(t, RiskExcellent, risk)
	require.NotEqual(t, RiskCritical, risk)
	require.Equal(t, 5, minDeg)
}

func TestClassifyRisk(t *testing.T) {

	two := func(d1, d2 int) poly.Factorization {
		return fact(3329,
			poly.FactorDescriptor{Degree: d1, Multiplicity: 1},
			poly.FactorDescriptor{Degree: d2, Multiplicity: 1},
		)
	}

	testCases := []struct {
		name    string
		n       int
		f       poly.Factorization
		risk    RiskLevel
		minDeg  int
		maxDeg  int
	}{
		{"irreducible", 761, fact(4591, poly.FactorDescriptor{Degree: 761, Multiplicity: 1}), RiskExcellent, 761, 761},
		{"linear", 256, two(1, 255), RiskCritical, 1, 255},
		{"quadratic beats n/8", 256, two(2, 254), RiskModerate, 2, 254},
		{"small degree", 256, two(31, 225), RiskHigh, 31, 225},
		{"boundary n/8", 256, two(32, 224), RiskModerate, 32, 224},
		{"boundary n/4", 256, two(64, 192), RiskLow, 64, 192},
		{"large factors", 256, two(127, 129), RiskLow, 127, 129},
		{"repeated linear", 4, fact(7, poly.FactorDescriptor{Degree: 1, Multiplicity: 2}, poly.FactorDescriptor{Degree: 2, Multiplicity: 1}), RiskCritical, 1, 2},
		{"single factor repeated", 4, fact(7, poly.FactorDescriptor{Degree: 2, Multiplicity: 2}), RiskModerate, 2, 2},
		{"empty is unknown", 8, poly.Factorization{}, RiskUnknown, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			risk, minDeg, maxDeg := ClassifyRisk(tc.n, tc.f)
			require.Equal(t, tc.risk, risk)
			require.Equal(t, tc.minDeg, minDeg)
			require.Equal(t, tc.maxDeg, maxDeg)
		})
	}
}

// Every (n, minDeg) pair must land on exactly one risk level: the switch is
// total and deterministic.
func TestClassifyRiskTotal(t *testing.T) {

	for n := 2; n <= 1024; n *= 2 {
		for d := 1; d <= n/2; d++ {

			f := fact(3329,
				poly.FactorDescriptor{Degree: d, Multiplicity: 1},
				poly.FactorDescriptor{Degree: n - d, Multiplicity: 1},
			)

			risk, minDeg, _ := ClassifyRisk(n, f)
			require.NotEqual(t, RiskUnknown, risk)
			require.Equal(t, d, minDeg)

			again, _, _ := ClassifyRisk(n, f)
			require.Equal(t, risk, again)
		}
	}
}

func TestRiskLevelString(t *testing.T) {
	require.Equal(t, "EXCELLENT", RiskExcellent.String())
	require.Equal(t, "UNKNOWN", RiskUnknown.String())
	require.Equal(t, "CRITICAL", RiskCritical.String())
}
