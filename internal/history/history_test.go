package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"security-maturity-assessor/internal/model"
)

func assessment(score float64) *model.Assessment {
	a := model.NewAssessment(time.Now().UTC())
	a.Overall.Score = score
	a.Overall.Coverage = 1.0
	a.Overall.Maturity = model.MaturityLevel{Ordinal: 2, Name: "defined", Color: "#f1c40f"}
	return a
}

func TestRecordFirstRun(t *testing.T) {
	dir := t.TempDir()
	tr, err := Record(dir, assessment(0.6))
	require.NoError(t, err)
	assert.Equal(t, "FIRST_RUN", tr.Label)
	assert.Equal(t, 0.6, tr.Current)
}

func TestRecordTrendLabels(t *testing.T) {
	dir := t.TempDir()
	_, err := Record(dir, assessment(0.5))
	require.NoError(t, err)

	tr, err := Record(dir, assessment(0.7))
	require.NoError(t, err)
	assert.Equal(t, "IMPROVING", tr.Label)
	assert.InDelta(t, 0.2, tr.Delta, 1e-9)

	tr, err = Record(dir, assessment(0.4))
	require.NoError(t, err)
	assert.Equal(t, "DECLINING", tr.Label)

	tr, err = Record(dir, assessment(0.4))
	require.NoError(t, err)
	assert.Equal(t, "SAME", tr.Label)
}

func TestLastN(t *testing.T) {
	dir := t.TempDir()
	for _, s := range []float64{0.2, 0.4, 0.6, 0.8} {
		_, err := Record(dir, assessment(s))
		require.NoError(t, err)
	}

	points := LastN(dir, 3)
	require.Len(t, points, 3)
	assert.Equal(t, 0.4, points[0].Overall)
	assert.Equal(t, 0.8, points[2].Overall)

	assert.Nil(t, LastN(t.TempDir(), 3), "no history yields nil")
}
