// Package gaps produces the ordered critical-gap list: in-scope questions
// that are both high-stakes (HIGH or CRITICAL subcategory) and currently
// unmet (defined score below the threshold). Unanswered questions are a
// coverage gap, not a maturity gap, and never appear here.
package gaps

import (
	"sort"

	"security-maturity-assessor/internal/catalog"
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/scope"
	"security-maturity-assessor/internal/score"
)

// DefaultThreshold is the score below which a high-stakes question counts
// as a gap.
const DefaultThreshold = 0.5

// Ranker filters and orders critical gaps. The zero value uses a zero
// threshold and returns nothing useful; construct with New.
type Ranker struct {
	Threshold float64
}

// New returns a Ranker with the given threshold, defaulting non-positive
// values.
func New(threshold float64) Ranker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Ranker{Threshold: threshold}
}

// Rank returns the complete ordered gap list. Truncation is a presentation
// concern left to callers. Ordering: criticality descending, score
// ascending, then stable taxonomy order so reruns over the same inputs are
// identical.
//
// Questions whose subcategory does not resolve in the snapshot are silently
// excluded; the catalog and answers are maintained independently and must
// tolerate partial mismatches.
func (r Ranker) Rank(snap *catalog.Snapshot, answers model.AnswerSet, filter scope.Filter) []model.GapEntry {
	var out []model.GapEntry
	for _, q := range snap.Questions {
		if !snap.InScope(q, filter) {
			continue
		}
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}
		v, scored := score.Of(ans.Response)
		if !scored {
			continue
		}
		v = score.Clamp01(v)
		if v >= r.Threshold {
			continue
		}
		sub, ok := snap.SubcategoryByID(q.SubcategoryID)
		if !ok {
			continue
		}
		if sub.Criticality.Rank() < model.CriticalityHigh.Rank() {
			continue
		}
		out = append(out, model.GapEntry{
			QuestionID:      q.ID,
			QuestionText:    q.Text,
			SubcategoryID:   sub.ID,
			SubcategoryName: sub.Name,
			DomainID:        sub.DomainID,
			Criticality:     sub.Criticality,
			Ownership:       snap.Ownership(q),
			Score:           v,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Criticality.Rank() != out[j].Criticality.Rank() {
			return out[i].Criticality.Rank() > out[j].Criticality.Rank()
		}
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return snap.QuestionRank(out[i].QuestionID) < snap.QuestionRank(out[j].QuestionID)
	})
	return out
}
