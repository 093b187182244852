package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

// Experience levels inferred from free text.
const (
	levelSenior = "senior"
	levelMid    = "mid"
	levelJunior = "junior"
)

// CompatibilityAnalyzer cross-checks a job description against a resume
// summary for experience-level alignment and industry overlap. Its findings
// are advisory; they never block a request.
type CompatibilityAnalyzer struct {
	industryNouns []string
	yearsPattern  *regexp.Regexp
}

func NewCompatibilityAnalyzer(t Tables) *CompatibilityAnalyzer {
	return &CompatibilityAnalyzer{
		industryNouns: t.IndustryNouns,
		yearsPattern:  regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?)`),
	}
}

// Analyze compares the two documents. A missing resume is trivially
// compatible; the caller only loses personalization.
func (c *CompatibilityAnalyzer) Analyze(jobDescription, resumeSummary string) domain.CompatibilityResult {
	if strings.TrimSpace(resumeSummary) == "" {
		return domain.CompatibilityResult{
			Compatible:  true,
			Suggestions: []string{"Adding a resume summary will improve question personalization"},
		}
	}

	result := domain.CompatibilityResult{Compatible: true}

	jobLevel := c.extractJobLevel(jobDescription)
	resumeLevel := c.extractResumeLevel(resumeSummary)
	if jobLevel != "" && resumeLevel != "" && jobLevel != resumeLevel {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Job appears to be %s-level but resume indicates %s-level experience",
				jobLevel, resumeLevel))
		result.Suggestions = append(result.Suggestions,
			"Ensure your experience level aligns with the job requirements")
	}

	jobIndustry := c.industryKeywords(jobDescription)
	resumeIndustry := c.industryKeywords(resumeSummary)
	if len(jobIndustry) > 0 && len(resumeIndustry) > 0 && !overlaps(jobIndustry, resumeIndustry) {
		result.Suggestions = append(result.Suggestions,
			"Consider highlighting relevant skills that transfer between industries")
	}

	return result
}

func (c *CompatibilityAnalyzer) extractJobLevel(text string) string {
	lower := strings.ToLower(text)
	senior := []string{"senior", "lead", "principal", "staff", "director", "5+ years", "7+ years"}
	mid := []string{"mid-level", "3-5 years", "2-4 years", "experienced"}
	junior := []string{"junior", "entry", "graduate", "0-2 years", "new grad"}

	switch {
	case containsAny(lower, senior):
		return levelSenior
	case containsAny(lower, mid):
		return levelMid
	case containsAny(lower, junior):
		return levelJunior
	}
	return ""
}

// extractResumeLevel prefers an explicit year count over level words.
func (c *CompatibilityAnalyzer) extractResumeLevel(text string) string {
	if m := c.yearsPattern.FindStringSubmatch(text); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case years >= 7:
				return levelSenior
			case years >= 3:
				return levelMid
			default:
				return levelJunior
			}
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "senior") || strings.Contains(lower, "lead"):
		return levelSenior
	case strings.Contains(lower, "experienced"):
		return levelMid
	case strings.Contains(lower, "recent graduate") || strings.Contains(lower, "entry"):
		return levelJunior
	}
	return ""
}

func (c *CompatibilityAnalyzer) industryKeywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, noun := range c.industryNouns {
		if strings.Contains(lower, noun) {
			found = append(found, noun)
		}
	}
	return found
}

func overlaps(a, b []string) bool {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	for _, s := range a {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
