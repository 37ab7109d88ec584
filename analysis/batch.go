package analysis

import (
	"fmt"
	"strings"
	"sync"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/ringsafety/poly"
	"github.com/tuneinsight/ringsafety/utils"
)

// AnalyzeBatch runs one independent analysis per candidate polynomial
// against the same optional modulus. Analyses share no state and run
// concurrently, one goroutine per candidate.
func (a *Analyzer) AnalyzeBatch(polys []*poly.Poly, q *poly.Modulus) []Report {

	reports := make([]Report, len(polys))

	var wg sync.WaitGroup
	wg.Add(len(polys))

	for i := range polys {
		go func(i int) {
			defer wg.Done()
			reports[i] = a.Analyze(polys[i], q)
		}(i)
	}

	wg.Wait()

	return reports
}

// BatchSummary aggregates a batch of reports.
type BatchSummary struct {
	Total    int
	Verdicts map[Verdict]int
	Risks    map[RiskLevel]int

	// Statistics over the minimum factor degrees of the reports whose
	// factorization succeeded.
	MinFactorDegree    float64
	MeanFactorDegree   float64
	MedianFactorDegree float64
}

// Summarize aggregates verdict and risk counts and the distribution of
// minimum factor degrees over a batch of reports.
func Summarize(reports []Report) BatchSummary {

	summary := BatchSummary{
		Total:    len(reports),
		Verdicts: map[Verdict]int{},
		Risks:    map[RiskLevel]int{},
	}

	var minDegrees stats.Float64Data
	for i := range reports {
		summary.Verdicts[reports[i].Verdict]++
		summary.Risks[reports[i].Risk]++
		if len(reports[i].Factorization.Factors) > 0 {
			minDegrees = append(minDegrees, float64(reports[i].MinDegree))
		}
	}

	if len(minDegrees) > 0 {
		summary.MinFactorDegree, _ = stats.Min(minDegrees)
		summary.MeanFactorDegree, _ = stats.Mean(minDegrees)
		summary.MedianFactorDegree, _ = stats.Median(minDegrees)
	}

	return summary
}

func (s BatchSummary) String() string {

	var sb strings.Builder

	fmt.Fprintf(&sb, "%d candidates", s.Total)

	for _, v := range utils.GetSortedKeys(s.Verdicts) {
		fmt.Fprintf(&sb, ", %s=%d", v, s.Verdicts[v])
	}

	if s.MeanFactorDegree > 0 {
		fmt.Fprintf(&sb, ", min factor degree: min=%.0f mean=%.1f median=%.1f",
			s.MinFactorDegree, s.MeanFactorDegree, s.MedianFactorDegree)
	}

	return sb.String()
}
