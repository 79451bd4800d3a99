package trend

import "testing"

func TestComputeUp(t *testing.T) {
	tr := Compute(0.5, 0.75)
	if tr.Direction != Up {
		t.Errorf("direction = %s, want up", tr.Direction)
	}
	if tr.DeltaScore != 0.25 {
		t.Errorf("deltaScore = %v, want 0.25", tr.DeltaScore)
	}
	if tr.DeltaPercent != 50.0 {
		t.Errorf("deltaPercent = %v, want 50", tr.DeltaPercent)
	}
}

func TestComputeDown(t *testing.T) {
	tr := Compute(0.8, 0.6)
	if tr.Direction != Down {
		t.Errorf("direction = %s, want down", tr.Direction)
	}
	if tr.DeltaScore != -0.2 {
		t.Errorf("deltaScore = %v, want -0.2", tr.DeltaScore)
	}
}

func TestComputeFlat(t *testing.T) {
	tr := Compute(0.5, 0.5)
	if tr.Direction != Flat || tr.DeltaScore != 0 {
		t.Errorf("Compute(0.5, 0.5) = %+v, want flat/0", tr)
	}
	// Sub-epsilon noise is flat too.
	if tr := Compute(0.5, 0.5+1e-9); tr.Direction != Flat {
		t.Errorf("noise delta direction = %s, want flat", tr.Direction)
	}
}

func TestComputeFromZero(t *testing.T) {
	tr := Compute(0, 0.4)
	if tr.Direction != Up {
		t.Errorf("direction = %s, want up", tr.Direction)
	}
	if tr.DeltaPercent != 0 {
		t.Errorf("deltaPercent from zero = %v, want 0 (no division)", tr.DeltaPercent)
	}
}
