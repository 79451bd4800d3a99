package model

// Criticality is the ordinal severity tier of a subcategory. It drives
// critical-gap inclusion: only HIGH and CRITICAL subcategories can produce
// gap entries.
type Criticality string

const (
	CriticalityLow      Criticality = "LOW"
	CriticalityMedium   Criticality = "MEDIUM"
	CriticalityHigh     Criticality = "HIGH"
	CriticalityCritical Criticality = "CRITICAL"
)

// Rank returns the ordering of a criticality tier (LOW=0 .. CRITICAL=3).
// Unknown values rank below LOW so malformed catalog rows never outrank
// real tiers.
func (c Criticality) Rank() int {
	switch c {
	case CriticalityLow:
		return 0
	case CriticalityMedium:
		return 1
	case CriticalityHigh:
		return 2
	case CriticalityCritical:
		return 3
	default:
		return -1
	}
}

// Valid reports whether c is one of the four known tiers.
func (c Criticality) Valid() bool {
	return c.Rank() >= 0
}

// Domain is a top-level grouping of the question taxonomy.
type Domain struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Standard string `json:"standard,omitempty" yaml:"standard,omitempty"` // external control-function tag
	Rank     int    `json:"rank" yaml:"rank"`                             // display order
}

// Subcategory is a weighted grouping of questions inside a domain.
type Subcategory struct {
	ID          string      `json:"id" yaml:"id"`
	DomainID    string      `json:"domain" yaml:"domain"`
	Name        string      `json:"name" yaml:"name"`
	Criticality Criticality `json:"criticality" yaml:"criticality"`
	// Weight is the relative weight used when folding into the domain
	// score. Non-positive weights are defaulted to 1.0 at the catalog
	// boundary.
	Weight    float64 `json:"weight" yaml:"weight"`
	Ownership string  `json:"ownership,omitempty" yaml:"ownership,omitempty"`
}

// Question is a single assessment item.
type Question struct {
	ID            string   `json:"id" yaml:"id"`
	Text          string   `json:"text" yaml:"text"`
	SubcategoryID string   `json:"subcategory" yaml:"subcategory"`
	DomainID      string   `json:"domain" yaml:"domain"`
	// Ownership is the responsible-role tag. Empty means the question
	// inherits its subcategory's ownership tag.
	Ownership  string   `json:"ownership,omitempty" yaml:"ownership,omitempty"`
	Frameworks []string `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
}

// Framework is an external standard a question counts toward.
type Framework struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Enabled  bool   `json:"enabled" yaml:"enabled"`
}
