package validation

import (
	"regexp"
	"strings"

	"github.com/fairyhunter13/ai-interview-coach/pkg/textx"
)

// Severity grades how bad a content finding is.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ProfanityResult reports profanity findings.
type ProfanityResult struct {
	HasProfanity bool     `json:"has_profanity"`
	FoundWords   []string `json:"found_words"`
	Severity     Severity `json:"severity"`
}

// SpamResult reports spam pattern findings.
type SpamResult struct {
	IsSpam   bool     `json:"is_spam"`
	Issues   []string `json:"issues"`
	Severity Severity `json:"severity"`
}

// FilterResult combines profanity and spam checks.
type FilterResult struct {
	IsAppropriate bool            `json:"is_appropriate"`
	Profanity     ProfanityResult `json:"profanity"`
	Spam          SpamResult      `json:"spam"`
	Severity      Severity        `json:"severity"`
	Issues        []string        `json:"issues"`
}

// ContentFilter detects profanity and spam patterns.
type ContentFilter struct {
	profanity  []string
	loremIpsum *regexp.Regexp
	caps       *regexp.Regexp
	urls       *regexp.Regexp
	emails     *regexp.Regexp
}

// NewContentFilter builds a filter over the given tables.
func NewContentFilter(t Tables) *ContentFilter {
	return &ContentFilter{
		profanity:  t.Profanity,
		loremIpsum: regexp.MustCompile(`(?i)lorem\s+ipsum|dolor\s+sit\s+amet`),
		caps:       regexp.MustCompile(`[A-Z]{20,}`),
		urls:       regexp.MustCompile(`https?://[^\s]+`),
		emails:     regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	}
}

// CheckProfanity runs a case-insensitive substring match over the word list.
func (f *ContentFilter) CheckProfanity(text string) ProfanityResult {
	lower := strings.ToLower(text)
	var found []string
	for _, w := range f.profanity {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	sev := SeverityNone
	switch {
	case len(found) > 2:
		sev = SeverityHigh
	case len(found) > 0:
		sev = SeverityMedium
	}
	return ProfanityResult{HasProfanity: len(found) > 0, FoundWords: found, Severity: sev}
}

// DetectSpam runs the independent spam checks: repetition, lorem ipsum,
// excessive caps, URL/email spam and a short-word gibberish ratio.
func (f *ContentFilter) DetectSpam(text string) SpamResult {
	var issues []string
	if textx.RepeatRun(text, 10) {
		issues = append(issues, "excessive_repetition")
	}
	if f.loremIpsum.MatchString(text) {
		issues = append(issues, "lorem_ipsum")
	}
	if f.caps.MatchString(text) {
		issues = append(issues, "excessive_caps")
	}
	if len(f.urls.FindAllString(text, 3)) >= 3 {
		issues = append(issues, "url_spam")
	}
	if len(f.emails.FindAllString(text, 3)) >= 3 {
		issues = append(issues, "email_spam")
	}
	words := strings.Fields(text)
	if len(words) > 10 {
		short := 0
		for _, w := range words {
			if len(w) < 3 {
				short++
			}
		}
		if float64(short)/float64(len(words)) > 0.7 {
			issues = append(issues, "potential_gibberish")
		}
	}
	sev := SeverityNone
	switch {
	case len(issues) > 2:
		sev = SeverityHigh
	case len(issues) > 0:
		sev = SeverityMedium
	}
	return SpamResult{IsSpam: len(issues) > 0, Issues: issues, Severity: sev}
}

// Filter combines both checks into the final appropriateness verdict.
func (f *ContentFilter) Filter(text string) FilterResult {
	prof := f.CheckProfanity(text)
	spam := f.DetectSpam(text)
	sev := SeverityLow
	switch {
	case prof.Severity == SeverityHigh || spam.Severity == SeverityHigh:
		sev = SeverityHigh
	case prof.Severity == SeverityMedium || spam.Severity == SeverityMedium:
		sev = SeverityMedium
	}
	issues := make([]string, 0, len(prof.FoundWords)+len(spam.Issues))
	issues = append(issues, prof.FoundWords...)
	issues = append(issues, spam.Issues...)
	return FilterResult{
		IsAppropriate: !prof.HasProfanity && !spam.IsSpam,
		Profanity:     prof,
		Spam:          spam,
		Severity:      sev,
		Issues:        issues,
	}
}
