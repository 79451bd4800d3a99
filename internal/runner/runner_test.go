package runner

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"security-maturity-assessor/internal/config"
	"security-maturity-assessor/internal/model"
	"security-maturity-assessor/internal/store"
)

func testRunner(t *testing.T) (*Runner, *store.Store) {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	r, err := New(config.Default(), slog.Default())
	require.NoError(t, err)
	return r, st
}

func TestAssessEmptyStore(t *testing.T) {
	r, st := testRunner(t)
	a, err := r.Assess(context.Background(), st)
	require.NoError(t, err)

	require.Equal(t, model.SchemaVersion, a.SchemaVersion)
	require.NotEmpty(t, a.Run.RunID)
	require.Zero(t, a.Overall.AnsweredCount)
	require.Zero(t, a.Overall.Coverage)
	require.Empty(t, a.Gaps)
	require.NotEmpty(t, a.Domains)
	require.NotEmpty(t, a.Indicators)
}

func TestAssessReflectsAnswers(t *testing.T) {
	r, st := testRunner(t)
	ctx := context.Background()

	q := r.Snapshot().Questions[0]
	require.NoError(t, st.PutAnswer(ctx, model.Answer{
		QuestionID: q.ID,
		Response:   model.ResponsePositive,
		Evidence:   model.EvidenceSufficient,
		UpdatedAt:  time.Now(),
	}))

	a, err := r.Assess(ctx, st)
	require.NoError(t, err)
	require.Equal(t, 1, a.Overall.AnsweredCount)
	require.Equal(t, 1.0, a.Overall.Score)
	require.Equal(t, 1.0, a.Overall.EvidenceReadiness)
}

func TestAssessUsesStoredFrameworkFilter(t *testing.T) {
	r, st := testRunner(t)
	ctx := context.Background()

	require.NoError(t, st.PutSetting(ctx, store.SettingFrameworkFilter, "nist-csf"))
	a, err := r.Assess(ctx, st)
	require.NoError(t, err)
	require.Equal(t, []string{"nist-csf"}, a.Run.FrameworkFilter)

	full, err := New(config.Default(), slog.Default())
	require.NoError(t, err)
	b, err := full.Assess(ctx, mustOpen(t))
	require.NoError(t, err)
	require.Less(t, a.Overall.TotalCount, b.Overall.TotalCount,
		"filtered run should scope out some questions")
}

func mustOpen(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestNewRejectsBadCutpoints(t *testing.T) {
	cfg := config.Default()
	cfg.MaturityCutpoints = []float64{0.9, 0.1, 0.5}
	_, err := New(cfg, nil)
	require.Error(t, err)
}

func TestNewMissingCatalogFile(t *testing.T) {
	cfg := config.Default()
	cfg.CatalogPath = "does-not-exist.yaml"
	_, err := New(cfg, nil)
	require.Error(t, err)
}
