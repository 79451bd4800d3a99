package model

import (
	"time"

	"github.com/google/uuid"
)

const SchemaVersion = "1.0.0"

// Assessment is the full output artifact of one engine run, serialised to
// assessment.json and rendered by every report and dashboard.
type Assessment struct {
	SchemaVersion string   `json:"schemaVersion"`
	Metadata      Metadata `json:"metadata"`
	Run           Run      `json:"run"`

	Overall             MetricNode      `json:"overall"`
	Domains             []DomainMetrics `json:"domains"`
	Ownership           []GroupMetrics  `json:"ownership,omitempty"`
	Frameworks          []GroupMetrics  `json:"frameworks,omitempty"`
	FrameworkCategories []GroupMetrics  `json:"frameworkCategories,omitempty"`
	Gaps                []GapEntry      `json:"gaps"`

	// Warnings records data-integrity mismatches (dangling references
	// excluded from aggregates). Never fatal.
	Warnings []string `json:"warnings,omitempty"`

	RemediationSteps []RemediationStep `json:"remediationSteps,omitempty"`
	Indicators       []Indicator       `json:"indicators,omitempty"`

	// TrendHistory holds the last N run scores for sparkline rendering.
	TrendHistory []TrendPoint `json:"trendHistory,omitempty"`
	// Comparison holds the diff against a previous run when requested.
	Comparison *ComparisonSummary `json:"comparison,omitempty"`
}

type Metadata struct {
	Organization string `json:"organization,omitempty"`
	Team         string `json:"team,omitempty"`
	Environment  string `json:"environment,omitempty"`
	ToolVersion  string `json:"toolVersion"`
	GeneratedAt  string `json:"generatedAt"`
}

type Run struct {
	RunID     string    `json:"runId"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
	// FrameworkFilter is the active restriction, empty = all enabled.
	FrameworkFilter []string `json:"frameworkFilter,omitempty"`
}

// TrendPoint is a single data point for the score trend sparkline.
type TrendPoint struct {
	TimestampUTC string  `json:"ts"`
	Overall      float64 `json:"score"`
	Maturity     string  `json:"maturity"`
}

// RemediationStep is a prioritized follow-up derived from the gap list.
type RemediationStep struct {
	Priority   int    `json:"priority"` // 1 = most urgent
	Category   string `json:"category"`
	Title      string `json:"title"`
	Detail     string `json:"detail,omitempty"`
	Ownership  string `json:"ownership,omitempty"`
	QuestionID string `json:"questionId,omitempty"`
}

// Indicator is a cosmetic keyword-hit counter per domain, used by the
// "domain indicator" widgets. Not part of the scoring engine.
type Indicator struct {
	DomainID string `json:"domainId"`
	Label    string `json:"label"`
	Hits     int    `json:"hits"`
}

// ComparisonSummary is the diff against a previous assessment run.
type ComparisonSummary struct {
	PreviousRunID    string  `json:"previousRunId"`
	PreviousAt       string  `json:"previousAt"`
	PreviousScore    float64 `json:"previousScore"`
	PreviousMaturity string  `json:"previousMaturity"`
	ScoreDelta       float64 `json:"scoreDelta"`
	// ScoreDirection is up/down/flat with sub-epsilon noise flattened.
	ScoreDirection string  `json:"scoreDirection"`
	CoverageDelta  float64 `json:"coverageDelta"`

	DomainDeltas []DomainDelta `json:"domainDeltas,omitempty"`

	GapsNew      []GapEntry `json:"gapsNew,omitempty"`
	GapsResolved []GapEntry `json:"gapsResolved,omitempty"`
}

// DomainDelta is a per-domain score movement between two runs.
type DomainDelta struct {
	DomainID string  `json:"domainId"`
	From     float64 `json:"from"`
	To       float64 `json:"to"`
	Delta    float64 `json:"delta"`
}

// AssessmentSummary is the machine-readable CI summary printed after a run.
type AssessmentSummary struct {
	RunID        string  `json:"runId"`
	TimestampUTC string  `json:"timestampUtc"`
	Overall      float64 `json:"overall"`
	Coverage     float64 `json:"coverage"`
	Maturity     string  `json:"maturity"`
	Status       string  `json:"status"` // PASSED/FAILED
	MinScore     float64 `json:"minScore"`
	GapCount     int     `json:"gapCount"`
	Trend        string  `json:"trend"`
	Delta        float64 `json:"delta"`
}

// NewAssessment returns an Assessment shell with run identity and metadata
// filled in.
func NewAssessment(started time.Time) *Assessment {
	return &Assessment{
		SchemaVersion: SchemaVersion,
		Metadata: Metadata{
			ToolVersion: ToolVersion,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Run: Run{
			RunID:     uuid.New().String(),
			StartedAt: started,
		},
	}
}

// Tool identity, shown in report footers and the CI summary.
const (
	ToolName    = "security-maturity-assessor"
	ToolVersion = "0.3.0"
)
