// Package catalog loads and validates the question taxonomy: domains,
// subcategories, questions and frameworks. A validated catalog is frozen
// into a Snapshot, the immutable view every engine computation reads.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/score"
)

// Catalog is the raw decoded taxonomy file.
type Catalog struct {
	Version       int                 `yaml:"version"`
	Domains       []model.Domain      `yaml:"domains"`
	Subcategories []model.Subcategory `yaml:"subcategories"`
	Questions     []model.Question    `yaml:"questions"`
	Frameworks    []model.Framework   `yaml:"frameworks"`
}

// Load reads and parses a catalog YAML file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes catalog YAML.
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	return &c, nil
}

// Normalize defaults malformed attributes in place and returns
// data-integrity warnings. The catalog and answer set are maintained by
// independent CRUD flows, so partial mismatches are warnings, never errors:
// dangling references are left in place and excluded later by the snapshot
// scope rules.
func (c *Catalog) Normalize() []string {
	var warnings []string

	domains := make(map[string]bool, len(c.Domains))
	for _, d := range c.Domains {
		if domains[d.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate domain id %q", d.ID))
		}
		domains[d.ID] = true
	}

	subDomain := make(map[string]string, len(c.Subcategories))
	seenSub := make(map[string]bool, len(c.Subcategories))
	for i := range c.Subcategories {
		s := &c.Subcategories[i]
		if seenSub[s.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate subcategory id %q", s.ID))
		}
		seenSub[s.ID] = true
		subDomain[s.ID] = s.DomainID
		if !domains[s.DomainID] {
			warnings = append(warnings, fmt.Sprintf("subcategory %q references unknown domain %q", s.ID, s.DomainID))
		}
		if s.Weight <= 0 {
			if s.Weight < 0 {
				warnings = append(warnings, fmt.Sprintf("subcategory %q has non-positive weight %v, using 1.0", s.ID, s.Weight))
			}
			s.Weight = score.Weight(s.Weight)
		}
		if !s.Criticality.Valid() {
			warnings = append(warnings, fmt.Sprintf("subcategory %q has unknown criticality %q, using MEDIUM", s.ID, s.Criticality))
			s.Criticality = model.CriticalityMedium
		}
	}

	frameworks := make(map[string]bool, len(c.Frameworks))
	for _, f := range c.Frameworks {
		if frameworks[f.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate framework id %q", f.ID))
		}
		frameworks[f.ID] = true
	}

	seenQ := make(map[string]bool, len(c.Questions))
	for i := range c.Questions {
		q := &c.Questions[i]
		if seenQ[q.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate question id %q", q.ID))
		}
		seenQ[q.ID] = true
		dom, ok := subDomain[q.SubcategoryID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("question %q references unknown subcategory %q", q.ID, q.SubcategoryID))
		} else if q.DomainID == "" {
			q.DomainID = dom
		}
		for _, fw := range q.Frameworks {
			if !frameworks[fw] {
				warnings = append(warnings, fmt.Sprintf("question %q references unknown framework %q", q.ID, fw))
			}
		}
	}

	return warnings
}
