package validation

import (
	"math"
	"regexp"
	"strings"
)

// ContentType selects the weighting profile for quality scoring.
type ContentType string

const (
	ContentTypeJobDescription ContentType = "job_description"
	ContentTypeResumeSummary  ContentType = "resume_summary"
)

// QualityBreakdown exposes the three quality axes.
type QualityBreakdown struct {
	Structure    int `json:"structure"`
	Professional int `json:"professional"`
	Depth        int `json:"depth"`
}

// QualityResult is a full quality assessment.
type QualityResult struct {
	OverallScore int              `json:"overall_score"`
	Breakdown    QualityBreakdown `json:"breakdown"`
	Assessment   Assessment       `json:"assessment"`
	Suggestions  []string         `json:"suggestions"`
}

// QuickQuality is the condensed form used by the validation gate.
type QuickQuality struct {
	IsAcceptable     bool     `json:"is_acceptable"`
	Score            int      `json:"score"`
	Level            string   `json:"level"`
	NeedsImprovement bool     `json:"needs_improvement"`
	Suggestions      []string `json:"suggestions"`
}

// qualityAcceptThreshold is the minimum overall score for QuickCheck.
const qualityAcceptThreshold = 30

// QualityScorer rates structure, professional language and content depth.
type QualityScorer struct {
	actionVerbs        []string
	qualificationTerms []string
	professionalTerms  []string

	bullets     *regexp.Regexp
	numbered    *regexp.Regexp
	sections    *regexp.Regexp
	headings    *regexp.Regexp
	quantifiers *regexp.Regexp
	skills      *regexp.Regexp
	companyInfo *regexp.Regexp
}

// NewQualityScorer builds a scorer over the given tables.
func NewQualityScorer(t Tables) *QualityScorer {
	return &QualityScorer{
		actionVerbs:        t.ActionVerbs,
		qualificationTerms: t.QualificationTerms,
		professionalTerms:  t.ProfessionalTerms,
		bullets:            regexp.MustCompile(`[•\-\*]\s+`),
		numbered:           regexp.MustCompile(`\d+\.\s+`),
		sections:           regexp.MustCompile(`\n\s*\n`),
		headings:           regexp.MustCompile(`(?m)^[A-Z][A-Za-z\s:]+$`),
		quantifiers:        regexp.MustCompile(`(?i)\d+[\+\-]?\s*(years?|months?|%|percent|dollar|million|thousand)`),
		skills:             regexp.MustCompile(`(?i)\b(javascript|python|java|react|angular|aws|sql|mongodb|kubernetes|docker|agile|scrum)\b`),
		companyInfo:        regexp.MustCompile(`(?i)\b(company|organization|team|startup|enterprise|fortune|industry)\b`),
	}
}

// StructureScore rates organization: lists, sections, headings, length, lines.
func (q *QualityScorer) StructureScore(text string) int {
	score := 0
	if q.bullets.MatchString(text) || q.numbered.MatchString(text) {
		score += 25
	}
	if len(q.sections.FindAllString(text, -1)) >= 2 {
		score += 20
	}
	if q.headings.MatchString(text) {
		score += 15
	}
	wc := len(strings.Fields(text))
	switch {
	case wc >= 50 && wc <= 500:
		score += 20
	case wc > 500:
		score += 10
	}
	if len(strings.Split(text, "\n")) > 5 {
		score += 20
	}
	return clampScore(score)
}

// ProfessionalScore rates action verbs, qualification and professional terms.
func (q *QualityScorer) ProfessionalScore(text string) int {
	lower := strings.ToLower(text)
	score := capped(countContains(lower, q.actionVerbs)*8, 40)
	score += capped(countContains(lower, q.qualificationTerms)*10, 30)
	score += capped(countContains(lower, q.professionalTerms)*10, 30)
	return clampScore(score)
}

// DepthScore rates quantifiable detail, concrete skills and company context.
func (q *QualityScorer) DepthScore(text string) int {
	score := capped(len(q.quantifiers.FindAllString(text, -1))*15, 45)
	score += capped(len(q.skills.FindAllString(text, -1))*10, 30)
	score += capped(len(q.companyInfo.FindAllString(text, -1))*5, 25)
	return clampScore(score)
}

// Assess combines the three axes with content-type-specific weights.
func (q *QualityScorer) Assess(text string, contentType ContentType) QualityResult {
	structure := q.StructureScore(text)
	professional := q.ProfessionalScore(text)
	depth := q.DepthScore(text)

	var overall float64
	switch contentType {
	case ContentTypeJobDescription:
		overall = float64(structure)*0.3 + float64(professional)*0.4 + float64(depth)*0.3
	case ContentTypeResumeSummary:
		overall = float64(structure)*0.2 + float64(professional)*0.5 + float64(depth)*0.3
	default:
		overall = float64(structure+professional+depth) / 3
	}
	score := clampScore(int(math.Round(overall)))

	return QualityResult{
		OverallScore: score,
		Breakdown:    QualityBreakdown{Structure: structure, Professional: professional, Depth: depth},
		Assessment:   assessQuality(score),
		Suggestions:  qualitySuggestions(structure, professional, depth, contentType),
	}
}

// QuickCheck condenses Assess to the accept decision and top suggestions.
func (q *QualityScorer) QuickCheck(text string, contentType ContentType) QuickQuality {
	res := q.Assess(text, contentType)
	suggestions := res.Suggestions
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return QuickQuality{
		IsAcceptable:     res.OverallScore >= qualityAcceptThreshold,
		Score:            res.OverallScore,
		Level:            res.Assessment.Level,
		NeedsImprovement: res.OverallScore < 60,
		Suggestions:      suggestions,
	}
}

func assessQuality(score int) Assessment {
	switch {
	case score >= 80:
		return Assessment{Level: "excellent", Message: "High-quality, well-structured content", Confidence: "high"}
	case score >= 60:
		return Assessment{Level: "good", Message: "Good quality content with room for improvement", Confidence: "medium"}
	case score >= 40:
		return Assessment{Level: "fair", Message: "Adequate content but lacks detail or structure", Confidence: "medium"}
	case score >= 20:
		return Assessment{Level: "poor", Message: "Low quality content that needs significant improvement", Confidence: "high"}
	default:
		return Assessment{Level: "very_poor", Message: "Very low quality content, likely not useful for interview preparation", Confidence: "high"}
	}
}

func qualitySuggestions(structure, professional, depth int, contentType ContentType) []string {
	var out []string
	if structure < 50 {
		out = append(out,
			"Improve organization with bullet points or clear sections",
			"Break content into readable paragraphs")
	}
	if professional < 50 {
		out = append(out,
			"Include more specific job requirements and qualifications",
			"Use professional language and industry terminology")
	}
	if depth < 50 {
		out = append(out,
			"Add specific details like required years of experience",
			"Include technical skills, tools, or technologies",
			"Mention company size, industry, or work environment")
	}
	if contentType == ContentTypeJobDescription && structure < 30 {
		out = append(out, "Include sections like: Job Title, Responsibilities, Requirements, Company Info")
	}
	if contentType == ContentTypeResumeSummary && depth < 40 {
		out = append(out,
			"Include quantifiable achievements (numbers, percentages, timeframes)",
			"Mention specific technologies, tools, or methodologies you've used")
	}
	return out
}

func countContains(lower string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}

func capped(v, max int) int {
	if v > max {
		return max
	}
	return v
}
