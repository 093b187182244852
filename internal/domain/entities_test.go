package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

func TestValidationResult_PrimaryError_ByKindPriority(t *testing.T) {
	t.Parallel()
	r := domain.ValidationResult{Errors: []domain.ValidationError{
		{Kind: domain.KindNotJobRelated, Message: "not a job"},
		{Kind: domain.KindSecurity, Message: "suspicious"},
		{Kind: domain.KindTooLong, Message: "too long"},
	}}
	e, ok := r.PrimaryError()
	require.True(t, ok)
	assert.Equal(t, domain.KindSecurity, e.Kind)
}

func TestValidationResult_PrimaryError_Empty(t *testing.T) {
	t.Parallel()
	_, ok := domain.ValidationResult{}.PrimaryError()
	assert.False(t, ok)
}

func TestCombinedValidation_PrimaryError_JobOutranksResume(t *testing.T) {
	t.Parallel()
	c := domain.CombinedValidation{
		JobDescription: domain.ValidationResult{Errors: []domain.ValidationError{
			{Kind: domain.KindTooShort, Message: "job too short"},
		}},
		ResumeSummary: domain.ValidationResult{Errors: []domain.ValidationError{
			{Kind: domain.KindSecurity, Message: "resume suspicious"},
		}},
	}
	e, ok := c.PrimaryError()
	require.True(t, ok)
	assert.Equal(t, domain.KindTooShort, e.Kind)
	assert.Equal(t, "job too short", e.Message)
}

func TestCombinedValidation_PrimaryError_FallsBackToResume(t *testing.T) {
	t.Parallel()
	c := domain.CombinedValidation{
		ResumeSummary: domain.ValidationResult{Errors: []domain.ValidationError{
			{Kind: domain.KindResumeTooLong, Message: "resume too long"},
		}},
	}
	e, ok := c.PrimaryError()
	require.True(t, ok)
	assert.Equal(t, domain.KindResumeTooLong, e.Kind)
}
