// Package trend computes score movement between two assessment runs.
package trend

import "math"

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
	Flat Direction = "flat"
)

// Deltas smaller than epsilon count as flat: [0,1]-scale scores make
// tiny float noise between near-identical runs likely.
const epsilon = 1e-6

type Trend struct {
	DeltaScore   float64   `json:"deltaScore"`
	DeltaPercent float64   `json:"deltaPercent"`
	Direction    Direction `json:"direction"`
	From         float64   `json:"from"`
	To           float64   `json:"to"`
}

// Compute returns the movement from prev to curr, both on the [0,1]
// overall score scale.
func Compute(prev, curr float64) Trend {
	d := curr - prev

	dir := Flat
	if d > epsilon {
		dir = Up
	} else if d < -epsilon {
		dir = Down
	}

	dp := 0.0
	if math.Abs(prev) > epsilon {
		dp = (d / prev) * 100.0
	}

	return Trend{
		DeltaScore:   round(d, 4),
		DeltaPercent: round(dp, 2),
		Direction:    dir,
		From:         round(prev, 4),
		To:           round(curr, 4),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
