package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

// Validator composes every check into one validation pass per request. It is
// stateless across calls; construct once and share between goroutines.
type Validator struct {
	limits    Limits
	security  *SecurityChecker
	filter    *ContentFilter
	relevance *RelevanceScorer
	quality   *QualityScorer
	resume    *ResumeScorer
	compat    *CompatibilityAnalyzer
}

type settings struct {
	limits Limits
	tables Tables
}

// Option customizes a Validator.
type Option func(*settings)

// WithLimits overrides the default length ceilings.
func WithLimits(l Limits) Option {
	return func(s *settings) { s.limits = l }
}

// WithTables overrides the default keyword tables.
func WithTables(t Tables) Option {
	return func(s *settings) { s.tables = t }
}

// New builds a Validator with the default tables and limits.
func New(opts ...Option) *Validator {
	s := settings{limits: DefaultLimits(), tables: DefaultTables()}
	for _, opt := range opts {
		opt(&s)
	}
	return &Validator{
		limits:    s.limits,
		security:  NewSecurityChecker(),
		filter:    NewContentFilter(s.tables),
		relevance: NewRelevanceScorer(s.tables),
		quality:   NewQualityScorer(s.tables),
		resume:    NewResumeScorer(s.tables, s.limits.ResumeSummaryMaxChars),
		compat:    NewCompatibilityAnalyzer(s.tables),
	}
}

// ValidateJobDescription runs the full gate chain on a job description.
// Checks are ordered cheapest-first and fatal gates return immediately so a
// blocked request never pays for deeper scoring.
func (v *Validator) ValidateJobDescription(text string) domain.ValidationResult {
	result := domain.ValidationResult{
		IsValid:    true,
		CanProceed: true,
		Scores:     map[string]int{},
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fatal(result, domain.KindMissingInput, "Job description is required")
	}
	if len(trimmed) < v.limits.JobDescriptionMinChars {
		return fatal(result, domain.KindTooShort,
			fmt.Sprintf("Job description is too short (minimum %d characters)",
				v.limits.JobDescriptionMinChars))
	}
	if len(trimmed) > v.limits.JobDescriptionMaxChars {
		return fatal(result, domain.KindTooLong,
			fmt.Sprintf("Job description is too long (maximum %d characters)",
				v.limits.JobDescriptionMaxChars))
	}
	if lines := strings.Count(trimmed, "\n") + 1; lines > v.limits.JobDescriptionMaxLines {
		return fatal(result, domain.KindTooManyLines,
			fmt.Sprintf("Job description has too many lines (maximum %d)",
				v.limits.JobDescriptionMaxLines))
	}

	if sec := v.security.Check(trimmed); !sec.IsValid {
		result.SecurityIssues = sec.Issues
		// Matched patterns stay server-side; echoing them back would give an
		// attacker oracle feedback.
		return fatal(result, domain.KindSecurity,
			"Content contains suspicious patterns and cannot be processed")
	}

	if filter := v.filter.Filter(trimmed); !filter.IsAppropriate {
		if filter.Profanity.HasProfanity {
			result.Errors = append(result.Errors, domain.ValidationError{
				Kind:    domain.KindInappropriate,
				Message: "Content contains inappropriate language. Please use professional language only.",
			})
		}
		if filter.Spam.IsSpam {
			result.Errors = append(result.Errors, domain.ValidationError{
				Kind:    domain.KindSpam,
				Message: "Content appears to be spam or contains invalid patterns. Please provide a real job description.",
			})
		}
		result.IsValid = false
		result.CanProceed = false
		return result
	}

	relevance := v.relevance.Validate(trimmed)
	result.Scores["relevance"] = relevance.RelevanceScore
	if !relevance.IsJobRelated {
		result.Suggestions = append(result.Suggestions, relevance.Suggestions...)
		return fatal(result, domain.KindNotJobRelated,
			"Content does not appear to be a job description")
	}
	if relevance.RelevanceScore < 40 {
		result.Warnings = append(result.Warnings, "Content has limited job-related information")
		result.Suggestions = append(result.Suggestions, relevance.Suggestions...)
	}

	quality := v.quality.QuickCheck(trimmed, ContentTypeJobDescription)
	result.Scores["quality"] = quality.Score
	if !quality.IsAcceptable {
		result.Warnings = append(result.Warnings,
			"Content quality is low and may result in generic questions")
		result.Suggestions = append(result.Suggestions, quality.Suggestions...)
	}

	return result
}

// ValidateResumeSummary validates the optional resume text. The
// appropriateness and personal-information gates are fatal; everything the
// resume scorer itself finds, except the length ceiling, is advisory.
func (v *Validator) ValidateResumeSummary(text string) domain.ValidationResult {
	result := domain.ValidationResult{
		IsValid:    true,
		CanProceed: true,
		Scores:     map[string]int{},
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		result.Suggestions = append(result.Suggestions,
			"Adding a resume summary will help personalize your interview questions",
			"Include your experience level, key skills, and major achievements")
		return result
	}

	if filter := v.filter.Filter(trimmed); !filter.IsAppropriate {
		if filter.Profanity.HasProfanity {
			result.Errors = append(result.Errors, domain.ValidationError{
				Kind:    domain.KindInappropriate,
				Message: "Resume summary contains inappropriate language",
			})
		}
		if filter.Spam.IsSpam {
			result.Errors = append(result.Errors, domain.ValidationError{
				Kind:    domain.KindSpam,
				Message: "Resume summary appears to contain invalid content",
			})
		}
		result.IsValid = false
		result.CanProceed = false
		return result
	}

	// The scorer still runs when personal information blocks the request so
	// the response carries the full analysis and red-flag warnings.
	if v.resume.HasPersonalInfo(trimmed) {
		result.Errors = append(result.Errors, domain.ValidationError{
			Kind:    domain.KindResumePersonal,
			Message: "Resume summary contains personal information (age, marital status, etc.) that must be removed",
		})
	}

	scored := v.resume.Validate(trimmed)
	result.Errors = append(result.Errors, scored.Errors...)
	result.Warnings = append(result.Warnings, scored.Warnings...)
	result.Suggestions = append(result.Suggestions, scored.Suggestions...)
	for name, score := range scored.Scores {
		result.Scores[name] = score
	}
	result.Analysis = scored.Analysis

	if len(trimmed) > 100 && !scored.Analysis.HasExperienceIndicators {
		result.Warnings = append(result.Warnings, "Resume summary lacks clear experience indicators")
		result.Suggestions = append(result.Suggestions, "Include years of experience or specific role titles")
	}
	if len(trimmed) > 150 && !scored.Analysis.HasQuantifiableAchievements {
		result.Suggestions = append(result.Suggestions,
			"Add specific numbers, percentages, or metrics to showcase achievements")
	}

	if len(result.Errors) > 0 {
		result.IsValid = false
		result.CanProceed = false
	}
	return result
}

// ValidateContent is the top-level entry point: both documents, their
// compatibility, combined quality and recommendations in one pass. A panic in
// any component is converted into a fatal processing-error result so one bad
// request cannot take the pipeline down.
func (v *Validator) ValidateContent(jobDescription, resumeSummary string) (combined domain.CombinedValidation) {
	defer func() {
		if r := recover(); r != nil {
			combined = processingFailure()
		}
	}()

	job := v.ValidateJobDescription(jobDescription)
	resume := v.ValidateResumeSummary(resumeSummary)
	compat := v.compat.Analyze(jobDescription, resumeSummary)

	jobQuality := job.Scores["quality"]
	resumeOverall := resume.Scores["overall"]

	return domain.CombinedValidation{
		JobDescription: job,
		ResumeSummary:  resume,
		Compatibility:  compat,
		OverallQuality: domain.OverallQuality{
			Job:      jobQuality,
			Resume:   resumeOverall,
			Combined: int(math.Round(float64(jobQuality+resumeOverall) / 2)),
		},
		CanProceed:      job.CanProceed && resume.CanProceed,
		Recommendations: v.recommendations(job, resume),
	}
}

func (v *Validator) recommendations(job, resume domain.ValidationResult) []domain.Recommendation {
	var recs []domain.Recommendation

	if job.Scores["quality"] < 60 {
		recs = append(recs, domain.Recommendation{
			Type:     "job_improvement",
			Priority: "high",
			Message:  "Improve job description detail for better question personalization",
			Actions:  firstN(job.Suggestions, 2),
		})
	}
	if resume.Scores["overall"] < 50 && resume.Analysis.WordCount > 0 {
		recs = append(recs, domain.Recommendation{
			Type:     "resume_improvement",
			Priority: "medium",
			Message:  "Enhance resume summary for more targeted questions",
			Actions:  firstN(resume.Suggestions, 2),
		})
	}
	if job.Scores["quality"] > 70 && (resume.Analysis.WordCount == 0 || resume.Scores["overall"] < 30) {
		recs = append(recs, domain.Recommendation{
			Type:     "personalization_opportunity",
			Priority: "low",
			Message:  "Add a detailed resume summary to get highly personalized questions",
			Actions: []string{
				"Include 2-3 specific achievements with numbers",
				"Mention years of experience and key technologies",
			},
		})
	}
	return recs
}

func fatal(result domain.ValidationResult, kind domain.ErrorKind, message string) domain.ValidationResult {
	result.Errors = append(result.Errors, domain.ValidationError{Kind: kind, Message: message})
	result.IsValid = false
	result.CanProceed = false
	return result
}

func processingFailure() domain.CombinedValidation {
	failed := domain.ValidationResult{
		Errors: []domain.ValidationError{{
			Kind:    domain.KindProcessing,
			Message: "Content validation failed. Please try again.",
		}},
		Scores: map[string]int{},
	}
	return domain.CombinedValidation{
		JobDescription: failed,
		ResumeSummary:  domain.ValidationResult{IsValid: true, CanProceed: true, Scores: map[string]int{}},
		Compatibility:  domain.CompatibilityResult{Compatible: true},
	}
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
