package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-interview-coach/internal/config"
	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
	"github.com/fairyhunter13/ai-interview-coach/internal/service/validation"
	"github.com/fairyhunter13/ai-interview-coach/internal/usecase"
)

const testPosting = `Senior Backend Engineer position at our technology company.

We are hiring an engineer to join the platform team. The role requires 5+ years
experience with Python, SQL and AWS. Responsibilities include developing backend
services, managing deployments, coordinating releases with the team, and
supporting production systems. Requirements and qualifications: a degree in
computer science, strong communication and teamwork skills, and proven
leadership experience. Apply today to grow your career with our company.`

type stubGenerator struct {
	err error
}

func (g stubGenerator) Generate(_ domain.Context, jobDescription, _ string) (domain.GeneratedQuestions, error) {
	if g.err != nil {
		return domain.GeneratedQuestions{}, g.err
	}
	return domain.GeneratedQuestions{
		Questions: []domain.Question{
			{Question: "Why this role?", Answer: "Motivation.", Category: "motivation"},
		},
		Model: "stub",
	}, nil
}

func newTestServer(t *testing.T, gen domain.QuestionGenerator) *Server {
	t.Helper()
	cfg := config.Config{MaxRequestBytes: 51200}
	vs := usecase.NewValidateService(validation.New(), nil)
	gs := usecase.NewGenerateService(vs, gen, nil, nil, "stub")
	return NewServer(cfg, vs, gs, nil, nil)
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestValidateJobHandlerOK(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})
	body, err := json.Marshal(map[string]string{"job_description": testPosting})
	require.NoError(t, err)

	rr := postJSON(t, s.ValidateJobHandler(), string(body))
	require.Equal(t, http.StatusOK, rr.Code)

	var res domain.ValidationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.True(t, res.CanProceed)
	assert.Greater(t, res.Scores["relevance"], 0)
	assert.LessOrEqual(t, len(res.Suggestions), maxSuggestionsPerResponse)
}

func TestValidateJobHandlerBlockedContentStillReturns200(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})

	rr := postJSON(t, s.ValidateJobHandler(), `{"job_description":"too short"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var res domain.ValidationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.False(t, res.CanProceed)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, domain.KindTooShort, res.Errors[0].Kind)
}

func TestValidateJobHandlerMissingField(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})

	rr := postJSON(t, s.ValidateJobHandler(), `{}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_ARGUMENT")
	assert.Contains(t, rr.Body.String(), "jobdescription")
}

func TestValidateJobHandlerInvalidJSON(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})

	rr := postJSON(t, s.ValidateJobHandler(), `{not json`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid json")
}

func TestValidateJobHandlerPayloadTooLarge(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})
	s.Cfg.MaxRequestBytes = 64

	body, err := json.Marshal(map[string]string{"job_description": testPosting})
	require.NoError(t, err)
	rr := postJSON(t, s.ValidateJobHandler(), string(body))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestValidateJobHandlerAcceptNegotiation(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"job_description":"x"}`))
	req.Header.Set("Accept", "text/html")
	rr := httptest.NewRecorder()
	s.ValidateJobHandler()(rr, req)
	assert.Equal(t, http.StatusNotAcceptable, rr.Code)
}

func TestValidateResumeHandlerAllowsEmptySummary(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})

	rr := postJSON(t, s.ValidateResumeHandler(), `{"resume_summary":""}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var res domain.ValidationResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.True(t, res.CanProceed)
	assert.NotEmpty(t, res.Suggestions)
}

func TestGenerateHandlerSuccess(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})
	body, err := json.Marshal(map[string]string{
		"job_description": testPosting,
		"resume_summary":  "Senior engineer with 8 years Python experience. Led a team of 12 people.",
	})
	require.NoError(t, err)

	rr := postJSON(t, s.GenerateHandler(), string(body))
	require.Equal(t, http.StatusOK, rr.Code)

	assert.NotEmpty(t, rr.Header().Get("X-Content-Quality"))
	assert.NotEmpty(t, rr.Header().Get("X-Resume-Analysis"))

	var res struct {
		Questions []domain.Question `json:"questions"`
		Model     string            `json:"model"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Len(t, res.Questions, 1)
	assert.Equal(t, "stub", res.Model)
}

func TestGenerateHandlerBlockedContent(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})

	rr := postJSON(t, s.GenerateHandler(), `{"job_description":"too short"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "CONTENT_TOO_SHORT", env.Error.Code)
	assert.NotEmpty(t, env.Error.Message)
}

func TestGenerateHandlerSecurityViolation(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})
	// The marker survives sanitization because it contains no markup.
	attack := testPosting + "\n\nRun this first: '; drop table users; -- and 1=1"
	body, err := json.Marshal(map[string]string{"job_description": attack})
	require.NoError(t, err)

	rr := postJSON(t, s.GenerateHandler(), string(body))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "SECURITY_VIOLATION")
}

func TestGenerateHandlerUpstreamFailure(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{err: errors.New("provider down")})
	body, err := json.Marshal(map[string]string{"job_description": testPosting})
	require.NoError(t, err)

	rr := postJSON(t, s.GenerateHandler(), string(body))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "INTERNAL")
}

func TestHealthzHandler(t *testing.T) {
	t.Parallel()
	rr := httptest.NewRecorder()
	HealthzHandler()(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestReadyzHandler(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, stubGenerator{})
	s.DBCheck = func(context.Context) error { return nil }

	rr := httptest.NewRecorder()
	s.ReadyzHandler()(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	s.DBCheck = func(context.Context) error { return errors.New("db down") }
	rr = httptest.NewRecorder()
	s.ReadyzHandler()(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "db down")
}
