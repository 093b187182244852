// Package domain holds the core entities, error taxonomy and ports of the
// interview coach backend. It is free of transport and storage concerns.
package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrContentBlocked  = errors.New("content blocked")
	ErrRateLimited     = errors.New("rate limited")
	ErrInternal        = errors.New("internal error")
)

// ErrorKind tags a blocking validation error at the point of detection so the
// orchestrator and the transport layer can select the primary user-facing
// message without re-parsing message text.
type ErrorKind string

const (
	KindMissingInput   ErrorKind = "missing_input"
	KindTooShort       ErrorKind = "too_short"
	KindTooLong        ErrorKind = "too_long"
	KindTooManyLines   ErrorKind = "too_many_lines"
	KindSecurity       ErrorKind = "security"
	KindInappropriate  ErrorKind = "inappropriate"
	KindSpam           ErrorKind = "spam"
	KindNotJobRelated  ErrorKind = "not_job_related"
	KindResumeTooLong  ErrorKind = "resume_too_long"
	KindResumePersonal ErrorKind = "resume_personal_info"
	KindProcessing     ErrorKind = "processing"
)

// kindPriority orders error kinds for primary-error selection. Lower is more
// urgent. Job-description errors outrank resume errors by document order, not
// by this table; the table breaks ties within one document.
var kindPriority = map[ErrorKind]int{
	KindSecurity:       0,
	KindInappropriate:  1,
	KindSpam:           2,
	KindTooLong:        3,
	KindTooShort:       4,
	KindTooManyLines:   5,
	KindMissingInput:   6,
	KindNotJobRelated:  7,
	KindResumeTooLong:  8,
	KindResumePersonal: 9,
	KindProcessing:     10,
}

// ValidationError is one blocking issue with its detection kind attached.
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Analysis carries per-document facts derived during validation. All fields
// use zero values when not applicable; the struct is zero only for empty input.
type Analysis struct {
	WordCount                   int      `json:"word_count"`
	SentenceCount               int      `json:"sentence_count"`
	HasQuantifiableAchievements bool     `json:"has_quantifiable_achievements"`
	HasExperienceIndicators     bool     `json:"has_experience_indicators"`
	IsProfessional              bool     `json:"is_professional"`
	RedFlags                    []string `json:"red_flags,omitempty"`
}

// ValidationResult is the outcome of validating one document (job description
// or resume summary).
//
// Invariant: if Errors is non-empty, CanProceed is false. Every score is an
// integer clamped to [0,100].
type ValidationResult struct {
	IsValid     bool              `json:"is_valid"`
	CanProceed  bool              `json:"can_proceed"`
	Errors      []ValidationError `json:"errors"`
	Warnings    []string          `json:"warnings"`
	Suggestions []string          `json:"suggestions"`
	Scores      map[string]int    `json:"scores"`
	Analysis    Analysis          `json:"analysis"`
	// SecurityIssues names matched security patterns. Retained for server-side
	// logging only; never echoed to the caller.
	SecurityIssues []string `json:"-"`
}

// PrimaryError returns the highest-priority blocking error, if any.
func (r ValidationResult) PrimaryError() (ValidationError, bool) {
	if len(r.Errors) == 0 {
		return ValidationError{}, false
	}
	best := r.Errors[0]
	for _, e := range r.Errors[1:] {
		if kindPriority[e.Kind] < kindPriority[best.Kind] {
			best = e
		}
	}
	return best, true
}

// CompatibilityResult cross-checks a job description against a resume summary.
// Derived per request, never persisted.
type CompatibilityResult struct {
	Compatible  bool     `json:"compatible"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// OverallQuality summarizes quality across both documents.
type OverallQuality struct {
	Job      int `json:"job"`
	Resume   int `json:"resume"`
	Combined int `json:"combined"`
}

// Recommendation is an actionable improvement hint ordered by priority.
type Recommendation struct {
	Type     string   `json:"type"`
	Priority string   `json:"priority"`
	Message  string   `json:"message"`
	Actions  []string `json:"actions"`
}

// CombinedValidation is the orchestrator output for one request.
type CombinedValidation struct {
	JobDescription  ValidationResult    `json:"job_description"`
	ResumeSummary   ValidationResult    `json:"resume_summary"`
	Compatibility   CompatibilityResult `json:"compatibility"`
	OverallQuality  OverallQuality      `json:"overall_quality"`
	CanProceed      bool                `json:"can_proceed"`
	Recommendations []Recommendation    `json:"recommendations"`
}

// PrimaryError selects the one error to surface: job errors outrank resume
// errors, then kind priority within the document.
func (c CombinedValidation) PrimaryError() (ValidationError, bool) {
	if e, ok := c.JobDescription.PrimaryError(); ok {
		return e, true
	}
	return c.ResumeSummary.PrimaryError()
}

// Question is one generated interview question with a model answer.
type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// GeneratedQuestions is the upstream generator output.
type GeneratedQuestions struct {
	Questions []Question `json:"questions"`
	Model     string     `json:"model"`
}

// ValidationEvent is one usage-analytics record for a validation call.
type ValidationEvent struct {
	ID             string
	Document       string // job | resume | combined
	ContentLength  int
	CanProceed     bool
	QualityScore   int
	RelevanceScore int
	ErrorsCount    int
	WarningsCount  int
	CreatedAt      time.Time
}

// GenerationEvent is one usage-analytics record for a generation call.
type GenerationEvent struct {
	ID            string
	RequestID     string
	JobLength     int
	ResumeLength  int
	PromptTokens  int
	CombinedScore int
	QuestionCount int
	Model         string
	CreatedAt     time.Time
}

// AnalyticsRepository persists usage telemetry. Failures must never block a
// request; callers log and continue.
type AnalyticsRepository interface {
	RecordValidation(ctx Context, ev ValidationEvent) error
	RecordGeneration(ctx Context, ev GenerationEvent) error
}

// QuestionGenerator produces interview questions from validated text.
type QuestionGenerator interface {
	Generate(ctx Context, jobDescription, resumeSummary string) (GeneratedQuestions, error)
}

// Context aliases context.Context so domain signatures stay terse.
type Context = context.Context
