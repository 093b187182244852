package validation

import (
	"regexp"
	"strings"
)

// Assessment is a scored verdict with a fixed message and confidence label.
type Assessment struct {
	Level      string `json:"level"`
	Message    string `json:"message"`
	Confidence string `json:"confidence"`
}

// FoundKeywords buckets the keywords matched during relevance scoring.
type FoundKeywords struct {
	Job      []string `json:"job"`
	Industry []string `json:"industry"`
	Skills   []string `json:"skills"`
}

// RelevanceResult is the outcome of one relevance scoring pass.
type RelevanceResult struct {
	Score         int           `json:"score"`
	Reason        string        `json:"reason,omitempty"`
	FoundKeywords FoundKeywords `json:"found_keywords"`
	TotalMatches  int           `json:"total_matches"`
	Assessment    Assessment    `json:"assessment"`
}

// JobRelevance wraps a relevance score with the accept/reject decision.
type JobRelevance struct {
	IsJobRelated   bool          `json:"is_job_related"`
	RelevanceScore int           `json:"relevance_score"`
	Assessment     Assessment    `json:"assessment"`
	FoundKeywords  FoundKeywords `json:"found_keywords"`
	Suggestions    []string      `json:"suggestions"`
}

// relevanceThreshold is the minimum score for text to count as job-related.
const relevanceThreshold = 20

// RelevanceScorer estimates how strongly text resembles an actual job posting
// via weighted keyword buckets.
type RelevanceScorer struct {
	job      []string
	industry []string
	skills   []string
	wordRe   *regexp.Regexp
}

// NewRelevanceScorer builds a scorer over the given tables.
func NewRelevanceScorer(t Tables) *RelevanceScorer {
	return &RelevanceScorer{
		job:      t.JobKeywords,
		industry: t.IndustryKeywords,
		skills:   t.SkillKeywords,
		wordRe:   regexp.MustCompile(`\W+`),
	}
}

// Score computes the 0-100 relevance score. Each keyword counts once no
// matter how often it repeats; job keywords weigh 5, industry 3, skills 2.
func (s *RelevanceScorer) Score(text string) RelevanceResult {
	lower := strings.ToLower(text)
	words := nonEmpty(s.wordRe.Split(lower, -1))
	if len(words) < 10 {
		return RelevanceResult{
			Score:  0,
			Reason: "too_short",
			Assessment: Assessment{
				Level:      "very_low",
				Message:    "Content too short to be a meaningful job description",
				Confidence: "high",
			},
		}
	}

	raw := 0
	var found FoundKeywords
	for _, kw := range s.job {
		if strings.Contains(lower, kw) {
			found.Job = append(found.Job, kw)
			raw += 5
		}
	}
	for _, kw := range s.industry {
		if strings.Contains(lower, kw) {
			found.Industry = append(found.Industry, kw)
			raw += 3
		}
	}
	for _, kw := range s.skills {
		if strings.Contains(lower, kw) {
			found.Skills = append(found.Skills, kw)
			raw += 2
		}
	}

	maxPossible := len(words) * 2
	if maxPossible > 100 {
		maxPossible = 100
	}
	score := clampScore(int(float64(raw) / float64(maxPossible) * 100))

	return RelevanceResult{
		Score:         score,
		FoundKeywords: found,
		TotalMatches:  len(found.Job) + len(found.Industry) + len(found.Skills),
		Assessment:    assessRelevance(score),
	}
}

// Validate wraps Score with the job-related decision and suggestions.
func (s *RelevanceScorer) Validate(text string) JobRelevance {
	res := s.Score(text)
	return JobRelevance{
		IsJobRelated:   res.Score >= relevanceThreshold,
		RelevanceScore: res.Score,
		Assessment:     res.Assessment,
		FoundKeywords:  res.FoundKeywords,
		Suggestions:    relevanceSuggestions(res),
	}
}

func assessRelevance(score int) Assessment {
	switch {
	case score >= 70:
		return Assessment{Level: "high", Message: "Content appears to be a well-structured job description", Confidence: "high"}
	case score >= 40:
		return Assessment{Level: "medium", Message: "Content has some job-related elements but could be more detailed", Confidence: "medium"}
	case score >= relevanceThreshold:
		return Assessment{Level: "low", Message: "Content has minimal job-related information", Confidence: "low"}
	default:
		return Assessment{Level: "very_low", Message: "Content does not appear to be a job description", Confidence: "high"}
	}
}

func relevanceSuggestions(res RelevanceResult) []string {
	var out []string
	if len(res.FoundKeywords.Job) == 0 {
		out = append(out, "Include basic job information (position title, responsibilities, requirements)")
	}
	if len(res.FoundKeywords.Industry) == 0 {
		out = append(out, "Add industry-specific terms or technical skills relevant to the role")
	}
	if res.Score < 40 {
		out = append(out, "Provide more details about job requirements, qualifications, and responsibilities")
	}
	if res.Score < relevanceThreshold {
		out = append(out, "This doesn't appear to be a job description. Please paste a job posting from a company or job board")
	}
	return out
}

func nonEmpty(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// clampScore clamps a score to [0,100].
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
