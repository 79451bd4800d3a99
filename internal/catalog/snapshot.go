package catalog

import (
	"sort"

	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/scope"
)

// Snapshot is the frozen, indexed taxonomy view handed to the engine.
// Slices keep stable taxonomy order: domains by display rank, everything
// else in catalog declaration order. Build it once per computation input;
// it is never mutated afterwards, so concurrent computations may share it.
type Snapshot struct {
	Domains       []model.Domain
	Subcategories []model.Subcategory
	Questions     []model.Question
	Frameworks    []model.Framework

	domByID  map[string]model.Domain
	subByID  map[string]model.Subcategory
	fwByID   map[string]model.Framework
	qRank    map[string]int
}

// Snapshot freezes the catalog. Call Normalize first; Snapshot assumes
// weights and criticalities are already defaulted.
func (c *Catalog) Snapshot() *Snapshot {
	s := &Snapshot{
		Domains:       append([]model.Domain(nil), c.Domains...),
		Subcategories: append([]model.Subcategory(nil), c.Subcategories...),
		Questions:     append([]model.Question(nil), c.Questions...),
		Frameworks:    append([]model.Framework(nil), c.Frameworks...),
		domByID:       make(map[string]model.Domain, len(c.Domains)),
		subByID:       make(map[string]model.Subcategory, len(c.Subcategories)),
		fwByID:        make(map[string]model.Framework, len(c.Frameworks)),
		qRank:         make(map[string]int, len(c.Questions)),
	}
	sort.SliceStable(s.Domains, func(i, j int) bool { return s.Domains[i].Rank < s.Domains[j].Rank })
	for _, d := range s.Domains {
		s.domByID[d.ID] = d
	}
	for _, sc := range s.Subcategories {
		s.subByID[sc.ID] = sc
	}
	for _, f := range s.Frameworks {
		s.fwByID[f.ID] = f
	}
	for i, q := range s.Questions {
		s.qRank[q.ID] = i
	}
	return s
}

// DomainByID resolves a domain reference.
func (s *Snapshot) DomainByID(id string) (model.Domain, bool) {
	d, ok := s.domByID[id]
	return d, ok
}

// SubcategoryByID resolves a subcategory reference.
func (s *Snapshot) SubcategoryByID(id string) (model.Subcategory, bool) {
	sc, ok := s.subByID[id]
	return sc, ok
}

// FrameworkByID resolves a framework reference.
func (s *Snapshot) FrameworkByID(id string) (model.Framework, bool) {
	f, ok := s.fwByID[id]
	return f, ok
}

// QuestionByID resolves a question reference.
func (s *Snapshot) QuestionByID(id string) (model.Question, bool) {
	if r, ok := s.qRank[id]; ok {
		return s.Questions[r], true
	}
	return model.Question{}, false
}

// QuestionRank returns the stable taxonomy position of a question, used as
// the deterministic tie-breaker in gap ordering. Unknown ids rank last.
func (s *Snapshot) QuestionRank(id string) int {
	if r, ok := s.qRank[id]; ok {
		return r
	}
	return len(s.Questions)
}

// Ownership returns the effective ownership tag of a question: its own tag,
// falling back to its subcategory's.
func (s *Snapshot) Ownership(q model.Question) string {
	if q.Ownership != "" {
		return q.Ownership
	}
	if sc, ok := s.subByID[q.SubcategoryID]; ok {
		return sc.Ownership
	}
	return ""
}

// InScope reports whether a question participates in a computation under
// the active framework filter. Questions tied to frameworks are in scope
// only when at least one referenced framework is enabled and selected;
// questions with no framework ties are always in scope. Dangling framework
// references count as disabled.
func (s *Snapshot) InScope(q model.Question, f scope.Filter) bool {
	if len(q.Frameworks) == 0 {
		return true
	}
	for _, id := range q.Frameworks {
		fw, ok := s.fwByID[id]
		if ok && fw.Enabled && f.Selected(id) {
			return true
		}
	}
	return false
}
