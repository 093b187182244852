package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredPosting = `Senior Backend Engineer

About The Role
We are hiring a senior engineer to join our platform team at a fast-growing
startup in the fintech industry. The position requires strong experience with
distributed systems and a passion for developing reliable software.

Responsibilities
- Develop and maintain backend services in Go and Python
- Lead design reviews and coordinate releases across the team
- Implement monitoring with Kubernetes, Docker, and AWS
- Analyze production incidents and manage follow-up work

Requirements
- 5+ years of professional software development experience
- Proficiency in SQL and MongoDB, certified cloud skills preferred
- Bachelor degree in computer science or equivalent qualification
- Excellent communication and leadership skills

Benefits
Competitive salary, and the opportunity to grow your career with our company.`

func TestQualityStructureScore(t *testing.T) {
	t.Parallel()
	q := NewQualityScorer(DefaultTables())

	t.Run("structured posting earns full structure marks", func(t *testing.T) {
		t.Parallel()
		score := q.StructureScore(structuredPosting)
		assert.Equal(t, 100, score)
	})

	t.Run("single flat line scores low", func(t *testing.T) {
		t.Parallel()
		score := q.StructureScore("looking for a developer to build stuff")
		assert.LessOrEqual(t, score, 20)
	})

	t.Run("very long unstructured text gets the reduced length bonus", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("word other thing more text here again ", 80)
		withLength := q.StructureScore(long)
		short := q.StructureScore("word other thing")
		assert.Greater(t, withLength, short)
	})

	t.Run("word count band 50 to 500 outranks over 500", func(t *testing.T) {
		t.Parallel()
		inBand := strings.Repeat("alpha beta gamma delta epsilon ", 12) // ~60 words
		over := strings.Repeat("alpha beta gamma delta epsilon ", 120)  // ~600 words
		assert.Equal(t, 20, q.StructureScore(inBand))
		assert.Equal(t, 10, q.StructureScore(over))
	})
}

func TestQualityProfessionalScore(t *testing.T) {
	t.Parallel()
	q := NewQualityScorer(DefaultTables())

	t.Run("caps apply per bucket", func(t *testing.T) {
		t.Parallel()
		// 6 action verbs (cap 40), 3 qualification terms (cap 30),
		// 3 professional terms (cap 30).
		text := "develop manage lead implement analyze design; " +
			"required and preferred, must have a bachelor degree and certification"
		assert.Equal(t, 100, q.ProfessionalScore(text))
	})

	t.Run("casual text scores near zero", func(t *testing.T) {
		t.Parallel()
		assert.LessOrEqual(t, q.ProfessionalScore("my cat naps on the warm windowsill"), 10)
	})
}

func TestQualityDepthScore(t *testing.T) {
	t.Parallel()
	q := NewQualityScorer(DefaultTables())

	t.Run("quantifiers skills and company context all count", func(t *testing.T) {
		t.Parallel()
		text := "5+ years with Python and AWS at our startup, 3 months onboarding, " +
			"saving 20% cost for the company team using Docker and Kubernetes " +
			"across the enterprise industry"
		score := q.DepthScore(text)
		assert.Equal(t, 100, score)
	})

	t.Run("vague text has no depth", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, q.DepthScore("we want someone great who does things well"))
	})
}

func TestQualityAssessWeights(t *testing.T) {
	t.Parallel()
	q := NewQualityScorer(DefaultTables())

	res := q.Assess(structuredPosting, ContentTypeJobDescription)
	require.GreaterOrEqual(t, res.OverallScore, 80)
	assert.Equal(t, "excellent", res.Assessment.Level)
	assert.Empty(t, res.Suggestions)

	// Resume weighting favors professional language over structure.
	flatProfessional := "Developed and managed projects, implemented solutions, " +
		"analyzed results. Professional with expertise, proficient and responsible, " +
		"experience, skills, degree, certification."
	job := q.Assess(flatProfessional, ContentTypeJobDescription)
	resume := q.Assess(flatProfessional, ContentTypeResumeSummary)
	assert.Greater(t, resume.OverallScore, job.OverallScore)
}

func TestQualityAssessLevels(t *testing.T) {
	t.Parallel()
	q := NewQualityScorer(DefaultTables())

	res := q.Assess("nothing useful here at all", ContentTypeJobDescription)
	assert.Less(t, res.OverallScore, 20)
	assert.Equal(t, "very_poor", res.Assessment.Level)
	assert.Contains(t, res.Suggestions, "Improve organization with bullet points or clear sections")
	assert.Contains(t, res.Suggestions, "Include sections like: Job Title, Responsibilities, Requirements, Company Info")
}

func TestQualityQuickCheck(t *testing.T) {
	t.Parallel()
	q := NewQualityScorer(DefaultTables())

	t.Run("acceptable content passes the gate", func(t *testing.T) {
		t.Parallel()
		res := q.QuickCheck(structuredPosting, ContentTypeJobDescription)
		assert.True(t, res.IsAcceptable)
		assert.False(t, res.NeedsImprovement)
	})

	t.Run("weak content fails with at most three suggestions", func(t *testing.T) {
		t.Parallel()
		res := q.QuickCheck("short and vague", ContentTypeJobDescription)
		assert.False(t, res.IsAcceptable)
		assert.True(t, res.NeedsImprovement)
		assert.LessOrEqual(t, len(res.Suggestions), 3)
		assert.NotEmpty(t, res.Suggestions)
	})
}
