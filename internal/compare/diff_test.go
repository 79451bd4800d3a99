package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"security-maturity-assessor/internal/model"
)

func run(score float64, domains map[string]float64, gapIDs ...string) *model.Assessment {
	a := model.NewAssessment(time.Now().UTC())
	a.Overall.Score = score
	a.Overall.Maturity.Name = "defined"
	for id, s := range domains {
		a.Domains = append(a.Domains, model.DomainMetrics{
			DomainID: id,
			Node:     model.MetricNode{Score: s},
		})
	}
	for _, id := range gapIDs {
		a.Gaps = append(a.Gaps, model.GapEntry{QuestionID: id, Criticality: model.CriticalityHigh})
	}
	return a
}

func TestDiff(t *testing.T) {
	prev := run(0.4, map[string]float64{"d1": 0.4, "d2": 0.4}, "q1", "q2")
	curr := run(0.6, map[string]float64{"d1": 0.8, "d2": 0.4}, "q2", "q3")

	d := Diff(prev, curr)

	assert.InDelta(t, 0.2, d.ScoreDelta, 1e-9)
	assert.Equal(t, "up", d.ScoreDirection)
	assert.Equal(t, prev.Run.RunID, d.PreviousRunID)
	assert.Equal(t, "defined", d.PreviousMaturity)

	// Only moved domains appear.
	assert.Len(t, d.DomainDeltas, 1)
	assert.Equal(t, "d1", d.DomainDeltas[0].DomainID)
	assert.InDelta(t, 0.4, d.DomainDeltas[0].Delta, 1e-9)

	var newIDs, resolvedIDs []string
	for _, g := range d.GapsNew {
		newIDs = append(newIDs, g.QuestionID)
	}
	for _, g := range d.GapsResolved {
		resolvedIDs = append(resolvedIDs, g.QuestionID)
	}
	assert.Equal(t, []string{"q3"}, newIDs)
	assert.Equal(t, []string{"q1"}, resolvedIDs)
}

func TestDiffIdenticalRuns(t *testing.T) {
	prev := run(0.5, map[string]float64{"d1": 0.5}, "q1")
	curr := run(0.5, map[string]float64{"d1": 0.5}, "q1")

	d := Diff(prev, curr)
	assert.Zero(t, d.ScoreDelta)
	assert.Equal(t, "flat", d.ScoreDirection)
	assert.Empty(t, d.DomainDeltas)
	assert.Empty(t, d.GapsNew)
	assert.Empty(t, d.GapsResolved)
}
