package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"security-maturity-assessor/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAnswerRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := model.Answer{
		QuestionID:   "q1",
		Response:     model.ResponsePartial,
		Evidence:     model.EvidencePartial,
		Notes:        "rollout in progress",
		EvidenceRefs: []string{"https://wiki/mfa-rollout", "ticket-123"},
		UpdatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.PutAnswer(ctx, in))

	got, err := s.Answer(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, in, got)

	all, err := s.Answers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Upsert replaces in place.
	in.Response = model.ResponsePositive
	in.Evidence = model.EvidenceSufficient
	require.NoError(t, s.PutAnswer(ctx, in))
	got, err = s.Answer(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, model.ResponsePositive, got.Response)

	all, err = s.Answers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAnswerNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Answer(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutAnswerValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.PutAnswer(ctx, model.Answer{QuestionID: "q1", Response: "maybe"})
	assert.Error(t, err, "malformed response enums are rejected at the store boundary")

	err = s.PutAnswer(ctx, model.Answer{QuestionID: "q1", Response: model.ResponsePositive, Evidence: "plenty"})
	assert.Error(t, err)

	err = s.PutAnswer(ctx, model.Answer{Response: model.ResponsePositive})
	assert.Error(t, err, "missing question id")
}

func TestDeleteAnswer(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutAnswer(ctx, model.Answer{QuestionID: "q1", Response: model.ResponseNegative}))
	require.NoError(t, s.DeleteAnswer(ctx, "q1"))

	_, err := s.Answer(ctx, "q1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an unanswered question is a no-op, not an error.
	assert.NoError(t, s.DeleteAnswer(ctx, "never-answered"))
}

func TestSettings(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Setting(ctx, SettingFrameworkFilter)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.PutSetting(ctx, SettingFrameworkFilter, "nist-csf,cis-v8"))
	v, err := s.Setting(ctx, SettingFrameworkFilter)
	require.NoError(t, err)
	assert.Equal(t, "nist-csf,cis-v8", v)

	require.NoError(t, s.PutSetting(ctx, SettingFrameworkFilter, ""))
	v, err = s.Setting(ctx, SettingFrameworkFilter)
	require.NoError(t, err)
	assert.Empty(t, v)
}
