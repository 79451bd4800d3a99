// Package maturity maps a [0,1] score to a discrete maturity level. One
// shared band table is consulted by every rollup so two nodes with the same
// score always render the same level and color.
package maturity

import (
	"fmt"
	"sort"

	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/score"
)

// Band is one maturity band: scores in [Min, nextBand.Min) classify to it.
type Band struct {
	Min   float64
	Name  string
	Color string
}

// Classifier holds an ordered band table. The zero value is unusable; use
// Default or FromCutpoints.
type Classifier struct {
	bands []Band
}

// Default returns the four equal-width bands over [0,1].
func Default() Classifier {
	return Classifier{bands: []Band{
		{Min: 0.00, Name: "nonexistent", Color: "#d64541"},
		{Min: 0.25, Name: "initial", Color: "#e67e22"},
		{Min: 0.50, Name: "defined", Color: "#f1c40f"},
		{Min: 0.75, Name: "managed", Color: "#2ecc71"},
	}}
}

// FromCutpoints builds a classifier from three ascending interior cut
// points, keeping the default names and colors. The cut points come from
// configuration; out-of-range or non-ascending input is rejected so a bad
// config fails at startup rather than misclassifying silently.
func FromCutpoints(cuts []float64) (Classifier, error) {
	if len(cuts) != 3 {
		return Classifier{}, fmt.Errorf("maturity: need exactly 3 cut points, got %d", len(cuts))
	}
	prev := 0.0
	for i, c := range cuts {
		if c <= prev || c >= 1 {
			return Classifier{}, fmt.Errorf("maturity: cut point %d (%v) must be ascending within (0,1)", i, c)
		}
		prev = c
	}
	c := Default()
	for i, cut := range cuts {
		c.bands[i+1].Min = cut
	}
	return c, nil
}

// Classify maps a score to its maturity level. The score is clamped to
// [0,1] first; classification is monotonic non-decreasing in score.
func (c Classifier) Classify(s float64) model.MaturityLevel {
	s = score.Clamp01(s)
	idx := sort.Search(len(c.bands), func(i int) bool { return c.bands[i].Min > s }) - 1
	if idx < 0 {
		idx = 0
	}
	b := c.bands[idx]
	return model.MaturityLevel{Ordinal: idx, Name: b.Name, Color: b.Color}
}

// Levels returns the full band table in ordinal order, for legends.
func (c Classifier) Levels() []model.MaturityLevel {
	out := make([]model.MaturityLevel, len(c.bands))
	for i, b := range c.bands {
		out[i] = model.MaturityLevel{Ordinal: i, Name: b.Name, Color: b.Color}
	}
	return out
}
