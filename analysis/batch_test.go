package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/ringsafety/poly"
)

func TestAnalyzeBatch(t *testing.T) {

	a := Default()
	q := modulus(t, 3329)

	candidates := []*poly.Poly{
		poly.MustParse("x^256 + 1"),
		poly.MustParse("x^4 - 1"),
		poly.MustParse("x^2 + 1"),
		nil,
	}

	reports := a.AnalyzeBatch(candidates, q)
	require.Len(t, reports, len(candidates))

	// order matches the input order
	require.Equal(t, VerdictAcceptWithCaveats, reports[0].Verdict)
	require.Equal(t, VerdictReject, reports[1].Verdict)
	require.Equal(t, ReasonReducibleOverRationals, reports[1].Reason)
	require.Equal(t, ReasonInvalidPolynomial, reports[3].Reason)

	// batch results agree with the sequential ones
	for i, p := range candidates {
		require.Equal(t, a.Analyze(p, q).Verdict, reports[i].Verdict)
	}

	summary := Summarize(reports)
	require.Equal(t, 4, summary.Total)
	require.Equal(t, 2, summary.Verdicts[VerdictReject])
	require.Equal(t, 1, summary.Verdicts[VerdictIncomplete])
	require.NotEmpty(t, summary.String())
}

func TestSummarize(t *testing.T) {

	reports := []Report{
		{Verdict: VerdictAccept, Risk: RiskExcellent, MinDegree: 8,
			Factorization: fact(17, poly.FactorDescriptor{Degree: 8, Multiplicity: 1})},
		{Verdict: VerdictAcceptWithCaveats, Risk: RiskModerate, MinDegree: 2,
			Factorization: fact(17, poly.FactorDescriptor{Degree: 2, Multiplicity: 4})},
		{Verdict: VerdictIncomplete, Risk: RiskUnknown},
	}

	summary := Summarize(reports)

	require.Equal(t, 3, summary.Total)
	require.Equal(t, 1, summary.Verdicts[VerdictAccept])
	require.Equal(t, 1, summary.Verdicts[VerdictAcceptWithCaveats])
	require.Equal(t, 1, summary.Verdicts[VerdictIncomplete])
	require.Equal(t, 1, summary.Risks[RiskUnknown])

	// degree statistics skip the report without a factorization
	require.Equal(t, 2.0, summary.MinFactorDegree)
	require.Equal(t, 5.0, summary.MeanFactorDegree)
	require.Equal(t, 5.0, summary.MedianFactorDegree)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	require.Equal(t, 0, summary.Total)
	require.Zero(t, summary.MeanFactorDegree)
}
