package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/ai-interview-coach/internal/config"
	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
	"github.com/fairyhunter13/ai-interview-coach/internal/usecase"
)

// maxSuggestionsPerResponse caps suggestion lists at the transport so
// responses stay compact regardless of how chatty the validators are.
const maxSuggestionsPerResponse = 5

// Server aggregates handler dependencies.
type Server struct {
	Cfg        config.Config
	Validate   usecase.ValidateService
	Generate   usecase.GenerateService
	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, validate usecase.ValidateService, generate usecase.GenerateService, dbCheck, redisCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Validate: validate, Generate: generate, DBCheck: dbCheck, RedisCheck: redisCheck}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// decodeJSON enforces the request body cap, decodes into dst and runs struct
// validation. It writes the error response itself and reports success.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
		writeJSON(w, http.StatusNotAcceptable, errorEnvelope{Error: apiError{
			Code: "INVALID_ARGUMENT", Message: "not acceptable", Details: map[string]any{"accept": a},
		}})
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorEnvelope{Error: apiError{
				Code: "INVALID_ARGUMENT", Message: "payload too large",
				Details: map[string]any{"max_bytes": s.Cfg.MaxRequestBytes},
			}})
			return false
		}
		writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
		return false
	}
	if err := getValidator().Struct(dst); err != nil {
		verrs := map[string]string{}
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				verrs[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), verrs)
		return false
	}
	return true
}

// ValidateJobHandler validates a job description and returns the full
// per-document result, valid or not.
func (s *Server) ValidateJobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JobDescription string `json:"job_description" validate:"required"`
		}
		if !s.decodeJSON(w, r, &req) {
			return
		}
		res := s.Validate.ValidateJob(r.Context(), req.JobDescription)
		res.Suggestions = firstN(res.Suggestions, maxSuggestionsPerResponse)
		writeJSON(w, http.StatusOK, res)
	}
}

// ValidateResumeHandler validates a resume summary. An empty summary is a
// valid input here; the field only has to be present.
func (s *Server) ValidateResumeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ResumeSummary string `json:"resume_summary"`
		}
		if !s.decodeJSON(w, r, &req) {
			return
		}
		res := s.Validate.ValidateResume(r.Context(), req.ResumeSummary)
		res.Suggestions = firstN(res.Suggestions, maxSuggestionsPerResponse)
		writeJSON(w, http.StatusOK, res)
	}
}

// GenerateHandler validates both documents and, when the content may proceed,
// returns generated interview questions. Validation metadata rides on
// response headers so the body stays focused on the questions.
func (s *Server) GenerateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JobDescription string `json:"job_description" validate:"required"`
			ResumeSummary  string `json:"resume_summary"`
		}
		if !s.decodeJSON(w, r, &req) {
			return
		}
		out, err := s.Generate.Generate(r.Context(), r.Header.Get("X-Request-Id"), req.JobDescription, req.ResumeSummary)
		if err != nil {
			if errors.Is(err, domain.ErrContentBlocked) {
				primary, _ := out.Validation.PrimaryError()
				writeBlocked(w, primary, map[string]any{
					"suggestions": blockedSuggestions(out.Validation),
					"validation":  out.Validation,
				})
				return
			}
			writeError(w, r, err, nil)
			return
		}
		setValidationHeaders(w, out.Validation)
		writeJSON(w, http.StatusOK, map[string]any{
			"questions": out.Questions.Questions,
			"model":     out.Questions.Model,
		})
	}
}

func setValidationHeaders(w http.ResponseWriter, v domain.CombinedValidation) {
	w.Header().Set("X-Content-Quality", strconv.Itoa(v.OverallQuality.Combined))
	warnings := firstN(append(append([]string{}, v.JobDescription.Warnings...), v.ResumeSummary.Warnings...), maxSuggestionsPerResponse)
	if len(warnings) > 0 {
		if b, err := json.Marshal(warnings); err == nil {
			w.Header().Set("X-Content-Warnings", string(b))
		}
	}
	if len(v.Compatibility.Warnings) > 0 {
		if b, err := json.Marshal(v.Compatibility.Warnings); err == nil {
			w.Header().Set("X-Content-Compatibility", string(b))
		}
	}
	if v.ResumeSummary.Analysis.WordCount > 0 {
		if b, err := json.Marshal(v.ResumeSummary.Analysis); err == nil {
			w.Header().Set("X-Resume-Analysis", string(b))
		}
	}
}

func blockedSuggestions(v domain.CombinedValidation) []string {
	merged := append(append([]string{}, v.JobDescription.Suggestions...), v.ResumeSummary.Suggestions...)
	return firstN(merged, maxSuggestionsPerResponse)
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// HealthzHandler reports process liveness.
func HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ReadyzHandler returns a readiness handler that probes the analytics store
// and, when configured, Redis.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 2)
		if s.DBCheck != nil {
			if err := s.DBCheck(ctx); err != nil {
				checks = append(checks, check{Name: "db", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "db", OK: true})
			}
		}
		if s.RedisCheck != nil {
			if err := s.RedisCheck(ctx); err != nil {
				checks = append(checks, check{Name: "redis", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "redis", OK: true})
			}
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}
