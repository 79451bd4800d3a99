// Package compare diffs two assessment runs, typically the current run
// against a previous assessment.json.
package compare

import (
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/trend"
)

// Diff compares prev against curr and returns the summary embedded in the
// current assessment.
func Diff(prev, curr *model.Assessment) model.ComparisonSummary {
	movement := trend.Compute(prev.Overall.Score, curr.Overall.Score)
	r := model.ComparisonSummary{
		PreviousRunID:    prev.Run.RunID,
		PreviousAt:       prev.Metadata.GeneratedAt,
		PreviousScore:    prev.Overall.Score,
		PreviousMaturity: prev.Overall.Maturity.Name,
		ScoreDelta:       movement.DeltaScore,
		ScoreDirection:   string(movement.Direction),
		CoverageDelta:    curr.Overall.Coverage - prev.Overall.Coverage,
	}

	prevDomains := make(map[string]float64, len(prev.Domains))
	for _, d := range prev.Domains {
		prevDomains[d.DomainID] = d.Node.Score
	}
	for _, d := range curr.Domains {
		from, ok := prevDomains[d.DomainID]
		if !ok {
			continue // domain added to the catalog since the previous run
		}
		if from == d.Node.Score {
			continue
		}
		r.DomainDeltas = append(r.DomainDeltas, model.DomainDelta{
			DomainID: d.DomainID,
			From:     from,
			To:       d.Node.Score,
			Delta:    d.Node.Score - from,
		})
	}

	prevGaps := gapSet(prev.Gaps)
	currGaps := gapSet(curr.Gaps)
	for _, g := range curr.Gaps {
		if _, ok := prevGaps[g.QuestionID]; !ok {
			r.GapsNew = append(r.GapsNew, g)
		}
	}
	for _, g := range prev.Gaps {
		if _, ok := currGaps[g.QuestionID]; !ok {
			r.GapsResolved = append(r.GapsResolved, g)
		}
	}
	return r
}

func gapSet(gaps []model.GapEntry) map[string]struct{} {
	out := make(map[string]struct{}, len(gaps))
	for _, g := range gaps {
		out[g.QuestionID] = struct{}{}
	}
	return out
}
