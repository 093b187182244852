package validation

import (
	"regexp"
	"strings"

	"github.com/fairyhunter13/ai-interview-coach/pkg/textx"
)

// SecurityContext captures the "looks like a job description" heuristic used
// to suppress false positives on technical vocabulary.
type SecurityContext struct {
	IsLikelyJobDescription bool `json:"is_likely_job_description"`
	HasJobIndicators       bool `json:"has_job_indicators"`
	HasTechnicalTerms      bool `json:"has_technical_terms"`
}

// SecurityResult is the outcome of one security scan.
type SecurityResult struct {
	IsValid bool            `json:"is_valid"`
	Issues  []string        `json:"issues"`
	Context SecurityContext `json:"context"`
}

// SecurityChecker detects injection-style patterns in submitted text. All
// patterns are compiled once at construction; match calls share no state.
type SecurityChecker struct {
	htmlTags      *regexp.Regexp
	scriptBlocks  *regexp.Regexp
	sqlInjection  *regexp.Regexp
	cmdInjection  *regexp.Regexp
	promptInject  *regexp.Regexp
	controlChars  *regexp.Regexp
	jobIndicators *regexp.Regexp
	techTerms     *regexp.Regexp
}

// Substrings that are unambiguous attack markers. These always flag, even in
// text that otherwise reads as a plausible job posting, closing the heuristic
// hole where injection is padded with job-sounding filler.
var (
	sqlAttackMarkers = []string{"'; drop table", "1=1"}
	cmdAttackMarkers = []string{"$(rm", "; rm "}
)

// NewSecurityChecker compiles the detection patterns.
func NewSecurityChecker() *SecurityChecker {
	return &SecurityChecker{
		htmlTags:     regexp.MustCompile(`<[^>]*>`),
		scriptBlocks: regexp.MustCompile(`(?is)<script\b.*?</script>`),
		sqlInjection: regexp.MustCompile(`(?i)(\bunion\s+select\b|\bselect\s+\*\s+from\b|\bdrop\s+table\b|;\s*delete\s+from\b|'\s*or\s+'1'\s*=\s*'1)`),
		cmdInjection: regexp.MustCompile("(?i)(\\$\\(.*\\)|`.*`|;\\s*(rm|cat|ls|wget|curl)\\s|\\|\\s*(nc|netcat)\\s)"),
		promptInject: regexp.MustCompile(`(?i)(ignore\s+previous\s+instructions|forget\s+everything|system\s*:\s*ignore|assistant\s*:\s*now|user\s*:\s*override)`),
		controlChars: regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`),
		jobIndicators: regexp.MustCompile(`(?i)\b(job|role|position|responsibilities|qualifications|requirements|experience|skills|company|about|salary|benefits)\b`),
		techTerms:     regexp.MustCompile(`(?i)\b(developer|engineer|programming|software|technical|computer|technology|system|application|database|web|mobile|cloud|api|framework|language)\b`),
	}
}

// Check scans text for injection-style content. HTML/script tags, prompt
// injection, excessive repetition and control characters always flag. SQL and
// command injection patterns are suppressed when the text reads as a job
// posting, unless an unambiguous attack marker is present.
func (c *SecurityChecker) Check(text string) SecurityResult {
	hasJob := c.jobIndicators.MatchString(text)
	hasTech := c.techTerms.MatchString(text)
	likelyJob := hasJob || hasTech

	var issues []string
	if c.htmlTags.MatchString(text) {
		issues = append(issues, "html tags detected")
	}
	if c.scriptBlocks.MatchString(text) {
		issues = append(issues, "script tags detected")
	}

	lower := strings.ToLower(text)
	if c.sqlInjection.MatchString(text) || containsAny(lower, sqlAttackMarkers) {
		if !likelyJob || containsAny(lower, sqlAttackMarkers) {
			issues = append(issues, "sql injection patterns detected")
		}
	}
	if c.cmdInjection.MatchString(text) || containsAny(lower, cmdAttackMarkers) {
		if !likelyJob || containsAny(lower, cmdAttackMarkers) {
			issues = append(issues, "command injection patterns detected")
		}
	}

	if c.promptInject.MatchString(text) {
		issues = append(issues, "prompt injection patterns detected")
	}
	if textx.RepeatRun(text, 50) {
		issues = append(issues, "excessive character repetition detected")
	}
	if c.controlChars.MatchString(text) {
		issues = append(issues, "invalid control characters detected")
	}

	return SecurityResult{
		IsValid: len(issues) == 0,
		Issues:  issues,
		Context: SecurityContext{
			IsLikelyJobDescription: likelyJob,
			HasJobIndicators:       hasJob,
			HasTechnicalTerms:      hasTech,
		},
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
