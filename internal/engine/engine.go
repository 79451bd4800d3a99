// Package engine folds the taxonomy bottom-up into MetricNode values at
// every granularity: Question -> Subcategory -> Domain -> Overall, plus the
// Ownership and Framework/FrameworkCategory cross-cuts.
//
// Compute is a pure function of (snapshot, answers, filter): no I/O, no
// caching, no mutation of its inputs. It is safe to invoke concurrently;
// each call produces a fresh result. Callers re-invoke it whenever the
// answer store changes.
package engine

import (
	"fmt"

	"security-maturity-assessor/internal/catalog"
	"security-maturity-assessor/internal/gaps"
	"security-maturity-assessor/internal/maturity"
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/scope"
	"security-maturity-assessor/internal/score"
)

// Engine bundles the shared classifier and gap ranker so every rollup uses
// the same band table and threshold.
type Engine struct {
	classifier maturity.Classifier
	ranker     gaps.Ranker
}

// New creates an Engine.
func New(classifier maturity.Classifier, ranker gaps.Ranker) *Engine {
	return &Engine{classifier: classifier, ranker: ranker}
}

// Default returns an Engine with the default maturity bands and gap
// threshold.
func Default() *Engine {
	return New(maturity.Default(), gaps.New(0))
}

// Result is the full derived dataset every dashboard renders.
type Result struct {
	Overall             model.MetricNode
	Domains             []model.DomainMetrics
	Ownership           []model.GroupMetrics
	Frameworks          []model.GroupMetrics
	FrameworkCategories []model.GroupMetrics
	Gaps                []model.GapEntry

	// Warnings records data-integrity mismatches recovered by exclusion.
	Warnings []string
}

// qStat is one in-scope question with its resolved answer contribution.
type qStat struct {
	q         model.Question
	ownership string
	answered  bool
	scored    bool
	score     float64
	// evidence readiness contribution: defined for positive/partial
	// responses only.
	evDefined bool
	evScore   float64
}

// acc accumulates one MetricNode over a set of questions.
type acc struct {
	total    int
	answered int
	scored   int
	scoreSum float64
	evCount  int
	evSum    float64
}

func (a *acc) add(st qStat) {
	a.total++
	if st.answered {
		a.answered++
	}
	if st.scored {
		a.scored++
		a.scoreSum += st.score
	}
	if st.evDefined {
		a.evCount++
		a.evSum += st.evScore
	}
}

// node finalises the accumulator. A node with no in-scope questions has
// coverage 0; a node with no scored questions has score 0 for display and
// is excluded from its parent's weighted mean (by ScoredCount).
func (a *acc) node(c maturity.Classifier, gapCount int) model.MetricNode {
	n := model.MetricNode{
		AnsweredCount:    a.answered,
		TotalCount:       a.total,
		ScoredCount:      a.scored,
		CriticalGapCount: gapCount,
	}
	if a.total > 0 {
		n.Coverage = float64(a.answered) / float64(a.total)
	}
	if a.scored > 0 {
		n.Score = a.scoreSum / float64(a.scored)
	}
	if a.evCount > 0 {
		n.EvidenceReadiness = a.evSum / float64(a.evCount)
	}
	n.Maturity = c.Classify(n.Score)
	return n
}

// Compute runs the full aggregation.
func (e *Engine) Compute(snap *catalog.Snapshot, answers model.AnswerSet, filter scope.Filter) *Result {
	r := &Result{}

	// Resolve every in-scope question once, in stable taxonomy order.
	stats := make([]qStat, 0, len(snap.Questions))
	for _, q := range snap.Questions {
		if !snap.InScope(q, filter) {
			continue
		}
		st := qStat{q: q, ownership: snap.Ownership(q)}
		if ans, ok := answers[q.ID]; ok {
			st.answered = true
			if v, scored := score.Of(ans.Response); scored {
				st.scored = true
				st.score = score.Clamp01(v)
				// Readiness is measured over positive/partial responses:
				// a negative answer has nothing to evidence.
				if ans.Response == model.ResponsePositive || ans.Response == model.ResponsePartial {
					if ev, ok := score.Evidence(ans.Response, ans.Evidence); ok {
						st.evDefined = true
						st.evScore = ev
					}
				}
			}
		}
		stats = append(stats, st)
	}

	r.Gaps = e.ranker.Rank(snap, answers, filter)

	e.foldTaxonomy(snap, stats, r)
	r.Ownership = e.foldOwnership(stats, r.Gaps)
	r.Frameworks, r.FrameworkCategories = e.foldFrameworks(snap, stats, filter, r.Gaps)
	return r
}

// foldTaxonomy builds subcategory, domain and overall nodes. The overall
// score accumulates the identical weighted sums the domain fold uses, so
// the rollup is associative: a domain's effective weight is the sum of its
// scored subcategories' weights.
func (e *Engine) foldTaxonomy(snap *catalog.Snapshot, stats []qStat, r *Result) {
	subAccs := make(map[string]*acc, len(snap.Subcategories))
	for _, sc := range snap.Subcategories {
		subAccs[sc.ID] = &acc{}
	}

	var overall acc // counts and evidence over every in-scope question
	for _, st := range stats {
		overall.add(st)
		sa, ok := subAccs[st.q.SubcategoryID]
		if !ok {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("question %q references unknown subcategory %q; excluded from domain rollups", st.q.ID, st.q.SubcategoryID))
			continue
		}
		sa.add(st)
	}

	gapsBySub := make(map[string]int)
	gapsByDomain := make(map[string]int)
	for _, g := range r.Gaps {
		gapsBySub[g.SubcategoryID]++
		gapsByDomain[g.DomainID]++
	}

	var overallScoreSum, overallWeightSum float64
	for _, d := range snap.Domains {
		dm := model.DomainMetrics{
			DomainID: d.ID,
			Name:     d.Name,
			Standard: d.Standard,
			Rank:     d.Rank,
		}
		var dAcc acc
		var dScoreSum, dWeightSum float64
		for _, sc := range snap.Subcategories {
			if sc.DomainID != d.ID {
				continue
			}
			sa := subAccs[sc.ID]
			node := sa.node(e.classifier, gapsBySub[sc.ID])
			dm.Subcategories = append(dm.Subcategories, model.SubcategoryMetrics{
				SubcategoryID: sc.ID,
				Name:          sc.Name,
				DomainID:      sc.DomainID,
				Criticality:   sc.Criticality,
				Weight:        sc.Weight,
				Node:          node,
			})
			// Counts and evidence roll up regardless of scoring.
			dAcc.total += sa.total
			dAcc.answered += sa.answered
			dAcc.scored += sa.scored
			dAcc.evCount += sa.evCount
			dAcc.evSum += sa.evSum
			// A subcategory with no scored questions contributes no
			// weight: unanswered areas do not drag the mean to zero.
			if sa.scored > 0 {
				w := score.Weight(sc.Weight)
				dScoreSum += w * node.Score
				dWeightSum += w
			}
		}
		node := dAcc.node(e.classifier, gapsByDomain[d.ID])
		if dWeightSum > 0 {
			node.Score = dScoreSum / dWeightSum
			node.Maturity = e.classifier.Classify(node.Score)
		}
		dm.Node = node
		r.Domains = append(r.Domains, dm)

		overallScoreSum += dScoreSum
		overallWeightSum += dWeightSum
	}

	// Subcategories pointing at unknown domains never enter the loop
	// above; surface them once each.
	for _, sc := range snap.Subcategories {
		if _, ok := snap.DomainByID(sc.DomainID); !ok {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("subcategory %q references unknown domain %q; excluded from overall rollup", sc.ID, sc.DomainID))
		}
	}

	node := overall.node(e.classifier, len(r.Gaps))
	if overallWeightSum > 0 {
		node.Score = overallScoreSum / overallWeightSum
		node.Maturity = e.classifier.Classify(node.Score)
	}
	r.Overall = node
}
