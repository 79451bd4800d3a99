package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"security-maturity-assessor/internal/compare"
	"security-maturity-assessor/internal/history"
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/output"
)

func reportCmd(flags *rootFlags) *cobra.Command {
	var (
		ci        bool
		minScore  float64
		csvExport bool
		summary   bool
		compareTo string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute the assessment and write report artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, r, st, err := setup(flags)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return fmt.Errorf("mkdir %s: %w", cfg.OutDir, err)
			}

			a, err := r.Assess(cmd.Context(), st)
			if err != nil {
				return err
			}

			applyComparison(a, compareTo)

			tr, err := history.Record(cfg.OutDir, a)
			if err != nil {
				return fmt.Errorf("record history: %w", err)
			}
			a.TrendHistory = history.LastN(cfg.OutDir, 10)

			jsonPath := filepath.Join(cfg.OutDir, "assessment.json")
			htmlPath := filepath.Join(cfg.OutDir, "report.html")
			mdPath := filepath.Join(cfg.OutDir, "summary.md")

			if err := output.WriteJSON(jsonPath, a); err != nil {
				return fmt.Errorf("write json: %w", err)
			}
			if err := output.WriteHTML(htmlPath, a); err != nil {
				return fmt.Errorf("write html: %w", err)
			}
			if summary {
				if err := output.WriteMarkdown(mdPath, a); err != nil {
					return fmt.Errorf("write markdown: %w", err)
				}
			}
			if csvExport {
				if err := output.WriteCSV(cfg.OutDir, a); err != nil {
					return fmt.Errorf("write csv: %w", err)
				}
			}

			threshold := minScore
			if threshold == 0 {
				threshold = cfg.MinScore
			}
			passed := a.Overall.Score >= threshold

			if ci {
				printCISummary(a, threshold, tr, passed)
			} else {
				printReportSummary(a, tr, jsonPath, htmlPath)
			}

			if !passed {
				return fmt.Errorf("overall score %.1f%% below minimum %.1f%%", a.Overall.Score*100, threshold*100)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ci, "ci", false, "CI mode (machine-readable output)")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum acceptable overall score 0..1 (0 = use config)")
	cmd.Flags().BoolVar(&csvExport, "csv", false, "Also write CSV exports alongside the HTML report")
	cmd.Flags().BoolVar(&summary, "summary", false, "Also write a Markdown executive summary")
	cmd.Flags().StringVar(&compareTo, "compare", "", "Path to a previous assessment.json to diff against")

	return cmd
}

// applyComparison loads a previous assessment and attaches the diff.
// A broken comparison never fails the run.
func applyComparison(a *model.Assessment, path string) {
	if path == "" {
		return
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compare: %v (skipping)\n", err)
		return
	}
	var prev model.Assessment
	if err := json.Unmarshal(raw, &prev); err != nil {
		fmt.Fprintf(os.Stderr, "compare: parse %s: %v (skipping)\n", path, err)
		return
	}
	diff := compare.Diff(&prev, a)
	a.Comparison = &diff
}

func printReportSummary(a *model.Assessment, tr history.Trend, jsonPath, htmlPath string) {
	fmt.Printf("Overall: %.1f%%  Maturity: %s  Coverage: %.0f%% (%d/%d)\n",
		a.Overall.Score*100, a.Overall.Maturity.Name,
		a.Overall.Coverage*100, a.Overall.AnsweredCount, a.Overall.TotalCount)
	if tr.Label == "FIRST_RUN" {
		fmt.Println("Trend: FIRST RUN (no previous assessment found)")
	} else {
		fmt.Printf("Trend: %s (%+.1f) Previous: %.1f%%, Current: %.1f%%\n",
			tr.Label, tr.Delta*100, tr.Previous*100, tr.Current*100)
	}
	if len(a.Gaps) > 0 {
		fmt.Printf("Critical gaps: %d\n", len(a.Gaps))
	}
	for _, w := range a.Warnings {
		fmt.Println("Warning:", w)
	}
	fmt.Println("JSON:", jsonPath)
	fmt.Println("HTML Report:", htmlPath)
}

func printCISummary(a *model.Assessment, minScore float64, tr history.Trend, passed bool) {
	summary := model.AssessmentSummary{
		RunID:        a.Run.RunID,
		TimestampUTC: time.Now().UTC().Format(time.RFC3339),
		Overall:      a.Overall.Score,
		Coverage:     a.Overall.Coverage,
		Maturity:     a.Overall.Maturity.Name,
		Status:       "PASSED",
		MinScore:     minScore,
		GapCount:     len(a.Gaps),
		Trend:        tr.Label,
		Delta:        tr.Delta,
	}
	if !passed {
		summary.Status = "FAILED"
	}
	raw, _ := json.Marshal(summary)
	fmt.Println(string(raw))
}
