// Package indicator classifies question text against curated keyword
// lists to drive the per-domain indicator widgets. This is a cosmetic
// heuristic, independent of the scoring engine.
package indicator

import (
	"strings"

	"security-maturity-assessor/internal/catalog"
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/scope"
)

type rule struct {
	label    string
	keywords []string
}

var rules = []rule{
	{label: "Documentation", keywords: []string{"policy", "document", "procedure", "standard"}},
	{label: "Automation", keywords: []string{"automat", "pipeline", "scan", "continuous"}},
	{label: "Access", keywords: []string{"access", "privilege", "mfa", "authentication", "credential"}},
	{label: "Detection", keywords: []string{"monitor", "alert", "log", "detect"}},
	{label: "Response", keywords: []string{"incident", "respond", "recover", "drill", "exercise"}},
	{label: "Inventory", keywords: []string{"inventory", "asset", "classif"}},
}

// Classify counts keyword hits per domain over in-scope question text.
// Labels with zero hits for a domain are omitted. Output follows domain
// rank order and the rule table order within a domain.
func Classify(snap *catalog.Snapshot, filter scope.Filter) []model.Indicator {
	hits := make(map[string]map[string]int)
	for _, q := range snap.Questions {
		if !snap.InScope(q, filter) {
			continue
		}
		text := strings.ToLower(q.Text)
		for _, r := range rules {
			for _, kw := range r.keywords {
				if strings.Contains(text, kw) {
					if hits[q.DomainID] == nil {
						hits[q.DomainID] = make(map[string]int)
					}
					hits[q.DomainID][r.label]++
					break
				}
			}
		}
	}

	var out []model.Indicator
	for _, d := range snap.Domains {
		byLabel := hits[d.ID]
		if byLabel == nil {
			continue
		}
		for _, r := range rules {
			if n := byLabel[r.label]; n > 0 {
				out = append(out, model.Indicator{DomainID: d.ID, Label: r.label, Hits: n})
			}
		}
	}
	return out
}
