package model

// MaturityLevel is a derived value object, never persisted. Two nodes with
// the same numeric score always carry the same level.
type MaturityLevel struct {
	Ordinal int    `json:"ordinal"` // 0..3
	Name    string `json:"name"`
	Color   string `json:"color"`
}

// MetricNode is the uniform rollup shape exposed at every granularity:
// Overall, Domain, Subcategory, Ownership, Framework and FrameworkCategory.
// Renderers are level-agnostic, so the field set must stay identical across
// all of them.
type MetricNode struct {
	AnsweredCount int `json:"answeredCount"`
	TotalCount    int `json:"totalCount"`
	// ScoredCount counts questions with a numeric response (excludes
	// not_applicable). A node with ScoredCount 0 has no defined score and
	// is excluded from its parent's weighted mean.
	ScoredCount int     `json:"scoredCount"`
	Coverage    float64 `json:"coverage"`
	Score       float64 `json:"score"` // 0 when ScoredCount == 0
	// EvidenceReadiness is the mean evidence score over the node's
	// positive/partial responses; 0 when there are none.
	EvidenceReadiness float64       `json:"evidenceReadiness"`
	Maturity          MaturityLevel `json:"maturity"`
	CriticalGapCount  int           `json:"criticalGapCount"`
}

// SubcategoryMetrics is a subcategory node with its catalog context.
type SubcategoryMetrics struct {
	SubcategoryID string      `json:"subcategoryId"`
	Name          string      `json:"name"`
	DomainID      string      `json:"domainId"`
	Criticality   Criticality `json:"criticality"`
	Weight        float64     `json:"weight"`
	Node          MetricNode  `json:"node"`
}

// DomainMetrics is a domain node carrying its child subcategory nodes.
type DomainMetrics struct {
	DomainID      string               `json:"domainId"`
	Name          string               `json:"name"`
	Standard      string               `json:"standard,omitempty"`
	Rank          int                  `json:"rank"`
	Node          MetricNode           `json:"node"`
	Subcategories []SubcategoryMetrics `json:"subcategories"`
}

// GroupMetrics is a cross-cut node: ownership tag, framework or framework
// category.
type GroupMetrics struct {
	Key  string     `json:"key"`
	Name string     `json:"name"`
	Node MetricNode `json:"node"`
}

// GapEntry is one ranked critical gap: a high-stakes question with a
// defined but low score.
type GapEntry struct {
	QuestionID      string      `json:"questionId"`
	QuestionText    string      `json:"questionText"`
	SubcategoryID   string      `json:"subcategoryId"`
	SubcategoryName string      `json:"subcategoryName"`
	DomainID        string      `json:"domainId"`
	Criticality     Criticality `json:"criticality"`
	Ownership       string      `json:"ownership,omitempty"`
	Score           float64     `json:"score"`
}
