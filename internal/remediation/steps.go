// Package remediation turns the ranked gap list into prioritized,
// role-addressed follow-up steps for the remediation views.
package remediation

import (
	"fmt"
	"sort"

	"security-maturity-assessor/internal/model"
)

// Coverage and evidence levels below which a housekeeping step is added.
const (
	lowCoverage = 0.8
	lowEvidence = 0.5
)

// Generate produces a stably sorted list of remediation steps from an
// assessment. Gap-driven steps come first (priority from criticality),
// followed by coverage and evidence housekeeping.
func Generate(a *model.Assessment) []model.RemediationStep {
	var steps []model.RemediationStep

	for _, g := range a.Gaps {
		steps = append(steps, stepForGap(g))
	}

	if a.Overall.TotalCount > 0 && a.Overall.Coverage < lowCoverage {
		unanswered := a.Overall.TotalCount - a.Overall.AnsweredCount
		steps = append(steps, model.RemediationStep{
			Priority: 3,
			Category: "Coverage",
			Title:    "Complete the assessment",
			Detail:   fmt.Sprintf("%d of %d in-scope questions are unanswered; scores are computed over a partial picture.", unanswered, a.Overall.TotalCount),
		})
	}

	if a.Overall.ScoredCount > 0 && a.Overall.EvidenceReadiness < lowEvidence {
		steps = append(steps, model.RemediationStep{
			Priority: 4,
			Category: "Evidence",
			Title:    "Attach evidence to implemented controls",
			Detail:   "Most positive answers lack sufficient evidence; collect artifacts before an audit relies on them.",
		})
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Priority < steps[j].Priority
	})
	return steps
}

func stepForGap(g model.GapEntry) model.RemediationStep {
	priority := 2
	if g.Criticality == model.CriticalityCritical {
		priority = 1
	}
	verb := "Improve"
	if g.Score == 0 {
		verb = "Implement"
	}
	return model.RemediationStep{
		Priority:   priority,
		Category:   "Gap",
		Title:      fmt.Sprintf("%s: %s", verb, g.QuestionText),
		Detail:     fmt.Sprintf("%s control in %q scored %.2f.", g.Criticality, g.SubcategoryName, g.Score),
		Ownership:  g.Ownership,
		QuestionID: g.QuestionID,
	}
}
