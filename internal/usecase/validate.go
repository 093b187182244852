// Package usecase contains application business logic services.
package usecase

import (
	"log/slog"

	"github.com/fairyhunter13/ai-interview-coach/internal/adapter/observability"
	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
	"github.com/fairyhunter13/ai-interview-coach/internal/service/validation"
	"github.com/fairyhunter13/ai-interview-coach/pkg/textx"
)

// ValidateService sanitizes incoming text and runs the validation engine,
// recording outcomes for analytics and metrics.
type ValidateService struct {
	Validator *validation.Validator
	Analytics domain.AnalyticsRepository
}

// NewValidateService constructs a ValidateService with its dependencies.
func NewValidateService(v *validation.Validator, analytics domain.AnalyticsRepository) ValidateService {
	return ValidateService{Validator: v, Analytics: analytics}
}

// ValidateJob sanitizes and validates a job description on its own.
func (s ValidateService) ValidateJob(ctx domain.Context, text string) domain.ValidationResult {
	sanitized := textx.SanitizeJobDescription(textx.Sanitize(text))
	s.warnOnHeavyReduction(ctx, "job_description", text, sanitized)

	result := s.Validator.ValidateJobDescription(sanitized)
	s.record(ctx, "job", sanitized, result)
	observability.ObserveValidation("job_description", !result.CanProceed, blockKind(result))
	return result
}

// ValidateResume sanitizes and validates a resume summary on its own.
func (s ValidateService) ValidateResume(ctx domain.Context, text string) domain.ValidationResult {
	sanitized := textx.Sanitize(text)
	s.warnOnHeavyReduction(ctx, "resume_summary", text, sanitized)

	result := s.Validator.ValidateResumeSummary(sanitized)
	s.record(ctx, "resume", sanitized, result)
	observability.ObserveValidation("resume_summary", !result.CanProceed, blockKind(result))
	return result
}

// ValidateBoth runs the combined validation used by the generation flow.
// It returns the combined result along with the sanitized texts so the caller
// can hand the validated content downstream.
func (s ValidateService) ValidateBoth(ctx domain.Context, jobDescription, resumeSummary string) (domain.CombinedValidation, string, string) {
	sanitizedJob := textx.SanitizeJobDescription(textx.Sanitize(jobDescription))
	sanitizedResume := textx.Sanitize(resumeSummary)
	s.warnOnHeavyReduction(ctx, "job_description", jobDescription, sanitizedJob)
	s.warnOnHeavyReduction(ctx, "resume_summary", resumeSummary, sanitizedResume)

	combined := s.Validator.ValidateContent(sanitizedJob, sanitizedResume)

	s.record(ctx, "combined", sanitizedJob, combined.JobDescription)
	kind := ""
	if e, ok := combined.PrimaryError(); ok {
		kind = string(e.Kind)
	}
	observability.ObserveValidation("combined", !combined.CanProceed, kind)
	observability.ObserveScores(
		combined.JobDescription.Scores["relevance"],
		combined.OverallQuality.Job,
		combined.OverallQuality.Resume,
	)
	return combined, sanitizedJob, sanitizedResume
}

// record persists a best-effort analytics event. Failures are logged, never
// propagated: analytics must not block the serving path.
func (s ValidateService) record(ctx domain.Context, document, sanitized string, result domain.ValidationResult) {
	if s.Analytics == nil {
		return
	}
	ev := domain.ValidationEvent{
		Document:       document,
		ContentLength:  len(sanitized),
		CanProceed:     result.CanProceed,
		QualityScore:   result.Scores["quality"],
		RelevanceScore: result.Scores["relevance"],
		ErrorsCount:    len(result.Errors),
		WarningsCount:  len(result.Warnings),
	}
	if err := s.Analytics.RecordValidation(ctx, ev); err != nil {
		slog.WarnContext(ctx, "analytics record failed",
			slog.String("document", document), slog.Any("error", err))
	}
}

func (s ValidateService) warnOnHeavyReduction(ctx domain.Context, document, original, sanitized string) {
	if textx.ReductionSuspicious(original, sanitized) {
		slog.WarnContext(ctx, "sanitization removed most of the input",
			slog.String("document", document),
			slog.Int("original_len", len(original)),
			slog.Int("sanitized_len", len(sanitized)))
	}
}

func blockKind(result domain.ValidationResult) string {
	if e, ok := result.PrimaryError(); ok {
		return string(e.Kind)
	}
	return ""
}
