package output

import (
	"fmt"
	"os"

	"security-maturity-assessor/internal/model"
)

func WriteMarkdown(path string, a *model.Assessment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# Security Maturity Assessment\n\n")
	if a.Metadata.Organization != "" {
		fmt.Fprintf(f, "Organization: %s\n\n", a.Metadata.Organization)
	}
	fmt.Fprintf(f, "## Overall Score: %.1f%%\n\n**Maturity Level: %s**\n\n", a.Overall.Score*100, a.Overall.Maturity.Name)
	fmt.Fprintf(f, "Coverage: %.0f%% (%d of %d questions answered) · Evidence readiness: %.0f%%\n\n",
		a.Overall.Coverage*100, a.Overall.AnsweredCount, a.Overall.TotalCount, a.Overall.EvidenceReadiness*100)

	fmt.Fprintf(f, "### Domain Breakdown\n")
	for _, d := range a.Domains {
		fmt.Fprintf(f, "- %s: %.1f%% (%s, %d/%d answered)\n", d.Name, d.Node.Score*100, d.Node.Maturity.Name, d.Node.AnsweredCount, d.Node.TotalCount)
	}
	fmt.Fprintf(f, "\n")

	if a.Comparison != nil {
		fmt.Fprintf(f, "### Since Last Run\n")
		fmt.Fprintf(f, "Score %+.1f points, coverage %+.1f points. %d new gaps, %d resolved.\n\n",
			a.Comparison.ScoreDelta*100, a.Comparison.CoverageDelta*100, len(a.Comparison.GapsNew), len(a.Comparison.GapsResolved))
	}

	fmt.Fprintf(f, "## Critical Gaps\n\n")
	if len(a.Gaps) == 0 {
		fmt.Fprintf(f, "No critical gaps detected.\n")
	} else {
		for _, g := range a.Gaps {
			fmt.Fprintf(f, "### [%s] %s\n", g.Criticality, g.QuestionText)
			fmt.Fprintf(f, "- Subcategory: %s\n", g.SubcategoryName)
			if g.Ownership != "" {
				fmt.Fprintf(f, "- Ownership: %s\n", g.Ownership)
			}
			fmt.Fprintf(f, "- Score: %.2f\n\n", g.Score)
		}
	}

	if len(a.RemediationSteps) > 0 {
		fmt.Fprintf(f, "## Remediation\n\n")
		for _, s := range a.RemediationSteps {
			fmt.Fprintf(f, "%d. %s", s.Priority, s.Title)
			if s.Ownership != "" {
				fmt.Fprintf(f, " (%s)", s.Ownership)
			}
			fmt.Fprintf(f, "\n")
		}
	}

	return nil
}
