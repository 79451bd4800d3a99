package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"security-maturity-assessor/internal/model"
)

// WriteCSV writes one CSV file per report section to outDir/csv/.
// Files are UTF-8 with BOM for clean Excel opening on Windows.
func WriteCSV(outDir string, a *model.Assessment) error {
	dir := filepath.Join(outDir, "csv")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("csv: mkdir: %w", err)
	}
	writers := []func(string, *model.Assessment) error{
		writeDomainsCSV,
		writeSubcategoriesCSV,
		writeGapsCSV,
		writeFrameworksCSV,
		writeRemediationCSV,
	}
	for _, fn := range writers {
		if err := fn(dir, a); err != nil {
			return err
		}
	}
	return nil
}

func csvFile(dir, name string) (*os.File, *csv.Writer, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, nil, err
	}
	// UTF-8 BOM for Excel
	_, _ = f.Write([]byte{0xEF, 0xBB, 0xBF})
	return f, csv.NewWriter(f), nil
}

func pct(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }
func num(v float64) string { return fmt.Sprintf("%.4f", v) }

func nodeCols(n model.MetricNode) []string {
	return []string{
		num(n.Score), pct(n.Coverage), num(n.EvidenceReadiness),
		fmt.Sprintf("%d", n.AnsweredCount), fmt.Sprintf("%d", n.TotalCount),
		n.Maturity.Name, fmt.Sprintf("%d", n.CriticalGapCount),
	}
}

func writeDomainsCSV(dir string, a *model.Assessment) error {
	f, w, err := csvFile(dir, "domains.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	hdr := []string{"Domain", "Standard", "Score", "Coverage", "Evidence Readiness", "Answered", "Total", "Maturity", "Critical Gaps"}
	_ = w.Write(hdr)
	overall := append([]string{"OVERALL", ""}, nodeCols(a.Overall)...)
	_ = w.Write(overall)
	for _, d := range a.Domains {
		_ = w.Write(append([]string{d.Name, d.Standard}, nodeCols(d.Node)...))
	}
	w.Flush()
	return w.Error()
}

func writeSubcategoriesCSV(dir string, a *model.Assessment) error {
	f, w, err := csvFile(dir, "subcategories.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	_ = w.Write([]string{"Domain", "Subcategory", "Criticality", "Weight", "Score", "Coverage", "Evidence Readiness", "Answered", "Total", "Maturity", "Critical Gaps"})
	for _, d := range a.Domains {
		for _, s := range d.Subcategories {
			row := []string{d.Name, s.Name, string(s.Criticality), num(s.Weight)}
			_ = w.Write(append(row, nodeCols(s.Node)...))
		}
	}
	w.Flush()
	return w.Error()
}

func writeGapsCSV(dir string, a *model.Assessment) error {
	f, w, err := csvFile(dir, "gaps.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	_ = w.Write([]string{"Question ID", "Question", "Subcategory", "Domain", "Criticality", "Ownership", "Score"})
	for _, g := range a.Gaps {
		_ = w.Write([]string{g.QuestionID, g.QuestionText, g.SubcategoryName, g.DomainID, string(g.Criticality), g.Ownership, num(g.Score)})
	}
	w.Flush()
	return w.Error()
}

func writeFrameworksCSV(dir string, a *model.Assessment) error {
	f, w, err := csvFile(dir, "frameworks.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	_ = w.Write([]string{"Type", "Key", "Name", "Score", "Coverage", "Evidence Readiness", "Answered", "Total", "Maturity", "Critical Gaps"})
	for _, g := range a.Frameworks {
		_ = w.Write(append([]string{"framework", g.Key, g.Name}, nodeCols(g.Node)...))
	}
	for _, g := range a.FrameworkCategories {
		_ = w.Write(append([]string{"category", g.Key, g.Name}, nodeCols(g.Node)...))
	}
	w.Flush()
	return w.Error()
}

func writeRemediationCSV(dir string, a *model.Assessment) error {
	f, w, err := csvFile(dir, "remediation.csv")
	if err != nil {
		return err
	}
	defer f.Close()
	_ = w.Write([]string{"Priority", "Category", "Title", "Detail", "Ownership", "Question ID"})
	for _, s := range a.RemediationSteps {
		_ = w.Write([]string{fmt.Sprintf("%d", s.Priority), s.Category, s.Title, s.Detail, s.Ownership, s.QuestionID})
	}
	w.Flush()
	return w.Error()
}
