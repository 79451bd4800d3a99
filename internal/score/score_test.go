package score

import (
	"testing"

	"security-maturity-assessor/internal/model"
)

func TestOf(t *testing.T) {
	if v, ok := Of(model.ResponsePositive); !ok || v != 1.0 {
		t.Errorf("Of(positive) = %v,%v, want 1.0,true", v, ok)
	}
	if v, ok := Of(model.ResponsePartial); !ok || v != 0.5 {
		t.Errorf("Of(partial) = %v,%v, want 0.5,true", v, ok)
	}
	if v, ok := Of(model.ResponseNegative); !ok || v != 0.0 {
		t.Errorf("Of(negative) = %v,%v, want 0.0,true", v, ok)
	}
	// not_applicable has no score, only coverage
	if _, ok := Of(model.ResponseNotApplicable); ok {
		t.Error("Of(not_applicable) should be undefined")
	}
	if _, ok := Of(model.Response("")); ok {
		t.Error("Of(empty) should be undefined")
	}
	if _, ok := Of(model.Response("bogus")); ok {
		t.Error("Of(bogus) should be undefined")
	}
}

func TestEvidence(t *testing.T) {
	// Undefined when the response itself is unscored
	if _, ok := Evidence(model.ResponseNotApplicable, model.EvidenceSufficient); ok {
		t.Error("Evidence over not_applicable should be undefined")
	}
	if v, ok := Evidence(model.ResponsePositive, model.EvidenceSufficient); !ok || v != 1.0 {
		t.Errorf("Evidence(positive, sufficient) = %v,%v, want 1.0,true", v, ok)
	}
	if v, ok := Evidence(model.ResponsePositive, model.EvidencePartial); !ok || v != 0.5 {
		t.Errorf("Evidence(positive, partial) = %v,%v, want 0.5,true", v, ok)
	}
	if v, ok := Evidence(model.ResponsePositive, model.EvidenceInsufficient); !ok || v != 0.0 {
		t.Errorf("Evidence(positive, insufficient) = %v,%v, want 0.0,true", v, ok)
	}
	// Absent status counts as insufficient, not undefined
	if v, ok := Evidence(model.ResponsePartial, ""); !ok || v != 0.0 {
		t.Errorf("Evidence(partial, absent) = %v,%v, want 0.0,true", v, ok)
	}
}

func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v, want 0", got)
	}
	if got := Clamp01(0.5); got != 0.5 {
		t.Errorf("Clamp01(0.5) = %v, want 0.5", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, want 1", got)
	}
}

func TestWeight(t *testing.T) {
	if got := Weight(0); got != 1.0 {
		t.Errorf("Weight(0) = %v, want 1.0", got)
	}
	if got := Weight(-2); got != 1.0 {
		t.Errorf("Weight(-2) = %v, want 1.0", got)
	}
	if got := Weight(2.5); got != 2.5 {
		t.Errorf("Weight(2.5) = %v, want 2.5", got)
	}
}
