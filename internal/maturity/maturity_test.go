package maturity

import "testing"

func TestClassifyBands(t *testing.T) {
	c := Default()

	cases := []struct {
		score   float64
		ordinal int
		name    string
	}{
		{0.0, 0, "nonexistent"},
		{0.24, 0, "nonexistent"},
		{0.25, 1, "initial"},
		{0.49, 1, "initial"},
		{0.5, 2, "defined"},
		{0.74, 2, "defined"},
		{0.75, 3, "managed"},
		{1.0, 3, "managed"},
	}
	for _, tc := range cases {
		got := c.Classify(tc.score)
		if got.Ordinal != tc.ordinal || got.Name != tc.name {
			t.Errorf("Classify(%v) = %d/%s, want %d/%s", tc.score, got.Ordinal, got.Name, tc.ordinal, tc.name)
		}
	}
}

func TestClassifyClamps(t *testing.T) {
	c := Default()
	if got := c.Classify(-1); got.Ordinal != 0 {
		t.Errorf("Classify(-1) ordinal = %d, want 0", got.Ordinal)
	}
	if got := c.Classify(2); got.Ordinal != 3 {
		t.Errorf("Classify(2) ordinal = %d, want 3", got.Ordinal)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	c := Default()
	prev := -1
	for s := 0.0; s <= 1.0; s += 0.01 {
		got := c.Classify(s)
		if got.Ordinal < prev {
			t.Fatalf("classification not monotonic at %v: %d < %d", s, got.Ordinal, prev)
		}
		prev = got.Ordinal
	}
}

func TestClassifyStable(t *testing.T) {
	c := Default()
	// Scores within the same band classify identically.
	if c.Classify(0.51) != c.Classify(0.74) {
		t.Error("same-band scores must classify to the same level")
	}
}

func TestFromCutpoints(t *testing.T) {
	c, err := FromCutpoints([]float64{0.2, 0.4, 0.8})
	if err != nil {
		t.Fatalf("FromCutpoints: %v", err)
	}
	if got := c.Classify(0.3); got.Name != "initial" {
		t.Errorf("Classify(0.3) = %s, want initial", got.Name)
	}
	if got := c.Classify(0.79); got.Name != "defined" {
		t.Errorf("Classify(0.79) = %s, want defined", got.Name)
	}

	if _, err := FromCutpoints([]float64{0.4, 0.2, 0.8}); err == nil {
		t.Error("non-ascending cut points must be rejected")
	}
	if _, err := FromCutpoints([]float64{0.2, 0.4}); err == nil {
		t.Error("wrong cut point count must be rejected")
	}
	if _, err := FromCutpoints([]float64{0.2, 0.4, 1.2}); err == nil {
		t.Error("cut point outside (0,1) must be rejected")
	}
}

func TestLevels(t *testing.T) {
	levels := Default().Levels()
	if len(levels) != 4 {
		t.Fatalf("Levels() returned %d bands, want 4", len(levels))
	}
	for i, l := range levels {
		if l.Ordinal != i {
			t.Errorf("Levels()[%d].Ordinal = %d", i, l.Ordinal)
		}
	}
}
