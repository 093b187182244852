// Package httpserver contains HTTP handlers and middleware.
//
// It exposes the REST endpoints for content validation and interview
// question generation, keeping HTTP concerns (decoding, status mapping,
// response headers) out of the business logic.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, _ *http.Request, err error, details interface{}) {
	code := http.StatusInternalServerError
	codeStr := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
		codeStr = "INVALID_ARGUMENT"
	case errors.Is(err, domain.ErrContentBlocked):
		code = http.StatusBadRequest
		codeStr = "CONTENT_BLOCKED"
	case errors.Is(err, domain.ErrRateLimited):
		code = http.StatusTooManyRequests
		codeStr = "RATE_LIMITED"
	}
	writeJSON(w, code, errorEnvelope{Error: apiError{Code: codeStr, Message: err.Error(), Details: details}})
}

// blockCode maps a validation error kind to its wire-level error code.
func blockCode(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindMissingInput:
		return "MISSING_INPUT"
	case domain.KindTooShort:
		return "CONTENT_TOO_SHORT"
	case domain.KindTooLong:
		return "CONTENT_TOO_LONG"
	case domain.KindTooManyLines:
		return "TOO_MANY_LINES"
	case domain.KindSecurity:
		return "SECURITY_VIOLATION"
	case domain.KindInappropriate:
		return "INAPPROPRIATE_CONTENT"
	case domain.KindSpam:
		return "SPAM_CONTENT"
	case domain.KindNotJobRelated:
		return "NOT_JOB_DESCRIPTION"
	case domain.KindResumeTooLong:
		return "RESUME_TOO_LONG"
	case domain.KindResumePersonal:
		return "RESUME_PERSONAL_INFO"
	case domain.KindProcessing:
		return "PROCESSING_FAILED"
	default:
		return "CONTENT_BLOCKED"
	}
}

// writeBlocked writes the envelope for content that failed validation, using
// the highest-priority error kind as the code and attaching the full
// validation payload as details.
func writeBlocked(w http.ResponseWriter, primary domain.ValidationError, details interface{}) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: apiError{
		Code:    blockCode(primary.Kind),
		Message: primary.Message,
		Details: details,
	}})
}
