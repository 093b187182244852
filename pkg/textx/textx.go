// Package textx provides text sanitation utilities used across the project.
package textx

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	htmlTagRe     = regexp.MustCompile(`<[^>]*>`)
	multiNLRe     = regexp.MustCompile(`\n{3,}`)
	multiSpaceRe  = regexp.MustCompile(`[ ]{2,}`)

	headerLabelRe = regexp.MustCompile(`(?i)^(job description|position|role):\s*`)
	ctaRe         = regexp.MustCompile(`(?i)\b(apply now|click here|visit our website)\b`)
	urlRe         = regexp.MustCompile(`https?://[^\s]+`)
	emailRe       = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	phoneRe       = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	formattingRe  = regexp.MustCompile(`_{3,}|-{3,}|={3,}|\*{3,}`)
)

// Sanitize normalizes untrusted text: strips script blocks and HTML tags,
// drops control characters (keeping newline and tab), dampens repeated
// characters, and normalizes whitespace. Total function; empty input yields
// the empty string. Reaches a fixed point in one pass.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = stripControlChars(s)
	// Repeat damping must run before whitespace normalization so it also
	// collapses runs of repeated whitespace characters.
	s = collapseRepeats(s, 3)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", "    ")
	s = multiNLRe.ReplaceAllString(s, "\n\n")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SanitizeJobDescription extends Sanitize with job-posting-specific cleanup:
// leading "Job Description:" style labels, call-to-action boilerplate, URL,
// email and phone placeholders, and copy-paste formatting runs.
func SanitizeJobDescription(s string) string {
	s = Sanitize(s)
	s = headerLabelRe.ReplaceAllString(s, "")
	s = ctaRe.ReplaceAllString(s, "")
	s = urlRe.ReplaceAllString(s, "[URL]")
	s = emailRe.ReplaceAllString(s, "[EMAIL]")
	s = phoneRe.ReplaceAllString(s, "[PHONE]")
	s = formattingRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// DeepSanitize applies Sanitize to every string leaf of an arbitrarily nested
// value built from maps, slices and scalars, including map keys. It returns a
// structurally identical copy that shares no containers with the input.
func DeepSanitize(v any) any {
	switch t := v.(type) {
	case string:
		return Sanitize(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = DeepSanitize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[Sanitize(k)] = DeepSanitize(val)
		}
		return out
	default:
		return v
	}
}

// ReductionSuspicious reports whether sanitization removed more than half of a
// non-trivial input, which usually means the input was mostly markup or
// control characters.
func ReductionSuspicious(original, sanitized string) bool {
	if len(original) <= 100 {
		return false
	}
	removed := len(original) - len(sanitized)
	return float64(removed)/float64(len(original)) > 0.5
}

// stripControlChars removes control characters except tab, newline and CR
// (line endings are normalized afterwards).
func stripControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseRepeats caps runs of one identical rune at max occurrences.
func collapseRepeats(s string, max int) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run <= max {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RepeatRun reports whether s contains a run of more than max identical runes.
func RepeatRun(s string, max int) bool {
	var prev rune = -1
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run > max {
			return true
		}
	}
	return false
}
