// Package score holds the scoring primitives: pure conversions from one
// answer into a numeric maturity score and an evidence-readiness
// contribution. No side effects, no error conditions; malformed enum values
// are rejected at the store boundary, not here.
package score

import "security-maturity-assessor/internal/model"

// Response score values.
const (
	positiveScore = 1.0
	partialScore  = 0.5
	negativeScore = 0.0
)

// Evidence score values.
const (
	evidenceSufficientScore = 1.0
	evidencePartialScore    = 0.5
)

// Of returns the numeric score of a response. ok is false for
// not_applicable and for unknown values: those are excluded from every
// score average (but not_applicable still counts toward coverage).
func Of(r model.Response) (v float64, ok bool) {
	switch r {
	case model.ResponsePositive:
		return positiveScore, true
	case model.ResponsePartial:
		return partialScore, true
	case model.ResponseNegative:
		return negativeScore, true
	default:
		return 0, false
	}
}

// Evidence returns the evidence-readiness contribution of an answer. It is
// defined only when the underlying response has a numeric score; an absent
// or insufficient status scores zero.
func Evidence(r model.Response, e model.EvidenceStatus) (v float64, ok bool) {
	if _, scored := Of(r); !scored {
		return 0, false
	}
	switch e {
	case model.EvidenceSufficient:
		return evidenceSufficientScore, true
	case model.EvidencePartial:
		return evidencePartialScore, true
	default:
		return 0, true
	}
}

// Clamp01 clamps v to [0,1]. Out-of-range values from upstream bugs are
// clamped rather than raised so dashboards stay renderable.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Weight normalises a subcategory weight: non-positive weights fall back
// to the default 1.0.
func Weight(w float64) float64 {
	if w <= 0 {
		return 1.0
	}
	return w
}
