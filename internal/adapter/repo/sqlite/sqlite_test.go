package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordValidation(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	ctx := context.Background()

	err := s.RecordValidation(ctx, domain.ValidationEvent{
		Document:       "job",
		ContentLength:  1200,
		CanProceed:     true,
		QualityScore:   62,
		RelevanceScore: 88,
	})
	require.NoError(t, err)

	// IDs are generated; a second insert must not collide.
	err = s.RecordValidation(ctx, domain.ValidationEvent{Document: "resume"})
	require.NoError(t, err)
}

func TestRecordGeneration(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	ctx := context.Background()

	err := s.RecordGeneration(ctx, domain.GenerationEvent{
		RequestID:     "req-1",
		JobLength:     900,
		ResumeLength:  300,
		PromptTokens:  412,
		CombinedScore: 71,
		QuestionCount: 4,
		Model:         "stub",
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestExplicitIDsRoundTrip(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	ctx := context.Background()

	ev := domain.ValidationEvent{ID: "fixed-id", Document: "job"}
	require.NoError(t, s.RecordValidation(ctx, ev))
	// Duplicate primary key must surface as an error.
	assert.Error(t, s.RecordValidation(ctx, ev))
}

func TestPing(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
