package engine

import (
	"security-maturity-assessor/internal/catalog"
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/scope"
)

// foldOwnership re-groups all in-scope questions by ownership tag,
// ignoring domain and subcategory boundaries, and computes a flat mean per
// group. Groups appear in order of first appearance in the taxonomy so the
// output is deterministic. Questions with no effective tag fold into an
// "Unassigned" group.
func (e *Engine) foldOwnership(stats []qStat, gapList []model.GapEntry) []model.GroupMetrics {
	const unassigned = "Unassigned"

	gapsByOwner := make(map[string]int)
	for _, g := range gapList {
		key := g.Ownership
		if key == "" {
			key = unassigned
		}
		gapsByOwner[key]++
	}

	var order []string
	accs := make(map[string]*acc)
	for _, st := range stats {
		key := st.ownership
		if key == "" {
			key = unassigned
		}
		a, ok := accs[key]
		if !ok {
			a = &acc{}
			accs[key] = a
			order = append(order, key)
		}
		a.add(st)
	}

	out := make([]model.GroupMetrics, 0, len(order))
	for _, key := range order {
		out = append(out, model.GroupMetrics{
			Key:  key,
			Name: key,
			Node: accs[key].node(e.classifier, gapsByOwner[key]),
		})
	}
	return out
}

// foldFrameworks computes one node per enabled (and selected) framework
// and one per framework category.
//
// A question belonging to multiple frameworks contributes to each
// independently: the fan-out is intentional. Within one category, however,
// a question is counted once even when several of its frameworks map to
// that category, so the category fold dedupes by question before adding.
func (e *Engine) foldFrameworks(snap *catalog.Snapshot, stats []qStat, filter scope.Filter, gapList []model.GapEntry) (frameworks, categories []model.GroupMetrics) {
	// Active frameworks in catalog order; categories in first-appearance
	// order over those frameworks.
	var fwOrder []model.Framework
	var catOrder []string
	catSeen := make(map[string]bool)
	for _, fw := range snap.Frameworks {
		if !fw.Enabled || !filter.Selected(fw.ID) {
			continue
		}
		fwOrder = append(fwOrder, fw)
		if fw.Category != "" && !catSeen[fw.Category] {
			catSeen[fw.Category] = true
			catOrder = append(catOrder, fw.Category)
		}
	}

	gapQuestions := make(map[string]bool, len(gapList))
	for _, g := range gapList {
		gapQuestions[g.QuestionID] = true
	}

	fwAccs := make(map[string]*acc, len(fwOrder))
	fwGaps := make(map[string]int, len(fwOrder))
	catAccs := make(map[string]*acc, len(catOrder))
	catGaps := make(map[string]int, len(catOrder))
	catCounted := make(map[string]map[string]bool, len(catOrder))
	for _, fw := range fwOrder {
		fwAccs[fw.ID] = &acc{}
	}
	for _, cat := range catOrder {
		catAccs[cat] = &acc{}
		catCounted[cat] = make(map[string]bool)
	}

	for _, st := range stats {
		for _, id := range st.q.Frameworks {
			a, ok := fwAccs[id]
			if !ok {
				continue // disabled, filtered out, or dangling
			}
			a.add(st)
			if gapQuestions[st.q.ID] {
				fwGaps[id]++
			}
			fw, _ := snap.FrameworkByID(id)
			if fw.Category == "" {
				continue
			}
			if counted := catCounted[fw.Category]; !counted[st.q.ID] {
				counted[st.q.ID] = true
				catAccs[fw.Category].add(st)
				if gapQuestions[st.q.ID] {
					catGaps[fw.Category]++
				}
			}
		}
	}

	for _, fw := range fwOrder {
		frameworks = append(frameworks, model.GroupMetrics{
			Key:  fw.ID,
			Name: fw.Name,
			Node: fwAccs[fw.ID].node(e.classifier, fwGaps[fw.ID]),
		})
	}
	for _, cat := range catOrder {
		categories = append(categories, model.GroupMetrics{
			Key:  cat,
			Name: cat,
			Node: catAccs[cat].node(e.classifier, catGaps[cat]),
		})
	}
	return frameworks, categories
}
