package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fairyhunter13/ai-interview-coach/internal/adapter/ai/tokencount"
	"github.com/fairyhunter13/ai-interview-coach/internal/adapter/observability"
	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

// GenerateOutput carries the generated questions plus the validation metadata
// the transport attaches to the response.
type GenerateOutput struct {
	Questions  domain.GeneratedQuestions
	Validation domain.CombinedValidation
}

// GenerateService validates content and, when it may proceed, asks the
// generator for interview questions.
type GenerateService struct {
	Validate  ValidateService
	Generator domain.QuestionGenerator
	Analytics domain.AnalyticsRepository
	Counter   *tokencount.Counter
	Model     string
}

// NewGenerateService constructs a GenerateService with its dependencies.
func NewGenerateService(v ValidateService, g domain.QuestionGenerator, analytics domain.AnalyticsRepository, counter *tokencount.Counter, model string) GenerateService {
	return GenerateService{Validate: v, Generator: g, Analytics: analytics, Counter: counter, Model: model}
}

// Generate runs the full flow: sanitize, validate, block or forward.
// The generator receives the original pre-validation text, not the sanitized
// form, so the model sees exactly what the user wrote.
func (s GenerateService) Generate(ctx domain.Context, requestID, jobDescription, resumeSummary string) (GenerateOutput, error) {
	combined, _, _ := s.Validate.ValidateBoth(ctx, jobDescription, resumeSummary)
	out := GenerateOutput{Validation: combined}

	if !combined.CanProceed {
		observability.ObserveGeneration("blocked", 0)
		return out, fmt.Errorf("%w: content validation failed", domain.ErrContentBlocked)
	}

	start := time.Now()
	questions, err := s.Generator.Generate(ctx, jobDescription, resumeSummary)
	if err != nil {
		observability.ObserveGeneration("error", time.Since(start))
		return out, fmt.Errorf("op=generate: %w", err)
	}
	observability.ObserveGeneration("ok", time.Since(start))

	out.Questions = questions
	s.record(ctx, requestID, jobDescription, resumeSummary, combined, questions)
	return out, nil
}

func (s GenerateService) record(ctx domain.Context, requestID, jobDescription, resumeSummary string, combined domain.CombinedValidation, questions domain.GeneratedQuestions) {
	if s.Analytics == nil {
		return
	}
	promptTokens := 0
	if s.Counter != nil {
		prompt := jobDescription
		if strings.TrimSpace(resumeSummary) != "" {
			prompt += "\n\n" + resumeSummary
		}
		promptTokens = s.Counter.CountOrEstimate(prompt, s.Model)
	}
	ev := domain.GenerationEvent{
		RequestID:     requestID,
		JobLength:     len(jobDescription),
		ResumeLength:  len(resumeSummary),
		PromptTokens:  promptTokens,
		CombinedScore: combined.OverallQuality.Combined,
		QuestionCount: len(questions.Questions),
		Model:         questions.Model,
	}
	if err := s.Analytics.RecordGeneration(ctx, ev); err != nil {
		slog.WarnContext(ctx, "generation analytics record failed",
			slog.String("request_id", requestID), slog.Any("error", err))
	}
}
