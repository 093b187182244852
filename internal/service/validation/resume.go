package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

// ResumeScorer rates resume summaries on professional language, experience
// indicators and achievement indicators, and flags content that weakens a
// summary (generic phrases, personal details, unprofessional language).
type ResumeScorer struct {
	tables   Tables
	maxChars int

	yearsOfExperience *regexp.Regexp
	techTerms         *regexp.Regexp
	quantifiable      *regexp.Regexp
	sentenceSplit     *regexp.Regexp
	personalInfo      *regexp.Regexp
}

// NewResumeScorer builds a scorer over the given tables and length ceiling.
func NewResumeScorer(t Tables, maxChars int) *ResumeScorer {
	return &ResumeScorer{
		tables:            t,
		maxChars:          maxChars,
		yearsOfExperience: regexp.MustCompile(`(?i)\d+\s*(years?|yrs?|months?)`),
		techTerms:         regexp.MustCompile(`(?i)\b(javascript|python|java|react|angular|sql|aws|docker|kubernetes|agile|scrum|nodejs|html|css)\b`),
		quantifiable:      regexp.MustCompile(`(?i)\d+\s*(%|percent|million|thousand|years?|months?|people|team|projects|clients|hours)|\$\d+|\d+[kmb]\b`),
		sentenceSplit:     regexp.MustCompile(`[.!?]+`),
		personalInfo:      wordBoundaryPattern(t.PersonalInfoTerms),
	}
}

// wordBoundaryPattern compiles terms into a whole-word alternation so that
// "age" never matches inside "manager" or "language". Returns nil for an
// empty term list.
func wordBoundaryPattern(terms []string) *regexp.Regexp {
	if len(terms) == 0 {
		return nil
	}
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = regexp.QuoteMeta(term)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// Validate scores a resume summary. Empty input is valid: a resume is
// optional and its absence only costs personalization.
func (r *ResumeScorer) Validate(text string) domain.ValidationResult {
	result := domain.ValidationResult{
		IsValid:    true,
		CanProceed: true,
		Scores: map[string]int{
			"professional": 0,
			"experience":   0,
			"achievements": 0,
			"overall":      0,
		},
	}

	if strings.TrimSpace(text) == "" {
		result.Suggestions = append(result.Suggestions,
			"Adding a resume summary will significantly improve question personalization")
		return result
	}

	lower := strings.ToLower(text)

	if len(text) < 50 {
		result.Warnings = append(result.Warnings, "Resume summary is very brief")
		result.Suggestions = append(result.Suggestions,
			"Add more details about your experience, skills, and achievements")
	}
	if len(text) > r.maxChars {
		over := len(text) - r.maxChars
		result.Errors = append(result.Errors, domain.ValidationError{
			Kind: domain.KindResumeTooLong,
			Message: fmt.Sprintf("Resume summary exceeds %d characters by %d (not ATS-friendly)",
				r.maxChars, over),
		})
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("Shorten to under %d characters for better ATS compatibility", r.maxChars))
	}

	professional := r.professionalScore(lower)
	experience := r.experienceScore(lower)
	achievements := r.achievementScore(lower)
	result.Scores["professional"] = professional
	result.Scores["experience"] = experience
	result.Scores["achievements"] = achievements
	result.Scores["overall"] = clampScore(int(math.Round(
		float64(professional)*0.4 + float64(experience)*0.3 + float64(achievements)*0.3)))

	redFlags := r.checkRedFlags(lower)
	result.Warnings = append(result.Warnings, redFlags.Warnings...)
	result.Suggestions = append(result.Suggestions, redFlags.Suggestions...)

	if !r.isFirstPerson(lower) {
		result.Warnings = append(result.Warnings, "Resume summary should be written in first person")
		result.Suggestions = append(result.Suggestions,
			`Use "I" statements or implied first person (e.g., "Experienced developer..." instead of "John is an experienced developer...")`)
	}

	quantCount := len(r.quantifiable.FindAllString(text, -1))
	if quantCount == 0 && len(text) > 100 {
		result.Suggestions = append(result.Suggestions,
			"Include specific numbers, percentages, or timeframes to make achievements more impactful")
	}

	result.Analysis = domain.Analysis{
		WordCount:                   len(strings.Fields(text)),
		SentenceCount:               countSentences(r.sentenceSplit, text),
		HasQuantifiableAchievements: quantCount > 0,
		HasExperienceIndicators:     experience > 30,
		IsProfessional:              professional > 50,
		RedFlags:                    redFlags.Found,
	}

	if len(result.Errors) > 0 {
		result.IsValid = false
		result.CanProceed = false
	}
	return result
}

func (r *ResumeScorer) professionalScore(lower string) int {
	score := capped(countContains(lower, r.tables.RoleKeywords)*15, 60)
	score += capped(countContains(lower, r.tables.ExperienceKeywords)*10, 40)
	return clampScore(score)
}

func (r *ResumeScorer) experienceScore(lower string) int {
	score := 0
	if r.yearsOfExperience.MatchString(lower) {
		score += 30
	}
	if hits := r.techTerms.FindAllString(lower, -1); len(hits) > 0 {
		score += capped(len(hits)*10, 40)
	}
	for _, term := range r.tables.ProgressionTerms {
		if strings.Contains(lower, term) {
			score += 15
			break
		}
	}
	return clampScore(score)
}

func (r *ResumeScorer) achievementScore(lower string) int {
	score := capped(countContains(lower, r.tables.AchievementKeywords)*15, 60)
	if hits := r.quantifiable.FindAllString(lower, -1); len(hits) > 0 {
		score += capped(len(hits)*20, 40)
	}
	return clampScore(score)
}

type redFlagReport struct {
	Found       []string
	Warnings    []string
	Suggestions []string
}

func (r *ResumeScorer) checkRedFlags(lower string) redFlagReport {
	var rep redFlagReport
	for _, phrase := range r.tables.GenericPhrases {
		if strings.Contains(lower, phrase) {
			rep.Found = append(rep.Found, phrase)
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("Avoid generic phrases like %q", phrase))
			rep.Suggestions = append(rep.Suggestions,
				"Use specific examples and achievements instead of generic descriptors")
		}
	}
	for _, term := range r.tables.PersonalInfoTerms {
		if strings.Contains(lower, term) {
			rep.Found = append(rep.Found, term)
			rep.Warnings = append(rep.Warnings,
				"Resume summary contains personal information that should be omitted")
			rep.Suggestions = append(rep.Suggestions,
				"Focus on professional experience, skills, and achievements only")
		}
	}
	for _, term := range r.tables.UnprofessionalTerms {
		if strings.Contains(lower, term) {
			rep.Found = append(rep.Found, term)
			rep.Warnings = append(rep.Warnings,
				fmt.Sprintf("%q may seem unprofessional in a resume summary", term))
			rep.Suggestions = append(rep.Suggestions, "Use more formal, professional language")
		}
	}
	return rep
}

// HasPersonalInfo reports whether the text names personal details (age,
// marital status, religion and similar) that do not belong in a summary.
// Whole-word matching only: "manager" must not trip on "age".
func (r *ResumeScorer) HasPersonalInfo(text string) bool {
	return r.personalInfo != nil && r.personalInfo.MatchString(text)
}

// isFirstPerson accepts explicit first person and the implied professional
// register ("Experienced developer..."); any third-person pronoun defeats it.
func (r *ResumeScorer) isFirstPerson(lower string) bool {
	firstPerson := []string{
		" i ", " my ", " me ", " myself ", "i am", "i have", "i work",
		"experienced", "skilled", "proficient", "specialized",
	}
	thirdPerson := []string{" he ", " she ", " his ", " her ", " they ", " their "}

	hasFirst := false
	for _, ind := range firstPerson {
		if strings.Contains(lower, ind) {
			hasFirst = true
			break
		}
	}
	for _, ind := range thirdPerson {
		if strings.Contains(lower, ind) {
			return false
		}
	}
	return hasFirst
}

func countSentences(split *regexp.Regexp, text string) int {
	n := 0
	for _, s := range split.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
