package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-interview-coach/internal/domain"
)

const strongResume = "Senior software engineer with 8 years experience specializing in Python " +
	"and AWS. Led a team of 12 people, increased deployment frequency by 40% and " +
	"reduced incident response time. Promoted from developer to principal engineer, " +
	"currently building Kubernetes platforms. Delivered 15 projects on time."

func newResumeScorer() *ResumeScorer {
	return NewResumeScorer(DefaultTables(), DefaultLimits().ResumeSummaryMaxChars)
}

func TestResumeEmptyIsValid(t *testing.T) {
	t.Parallel()
	r := newResumeScorer()

	for _, text := range []string{"", "   ", "\n\t"} {
		res := r.Validate(text)
		assert.True(t, res.IsValid)
		assert.True(t, res.CanProceed)
		assert.Empty(t, res.Errors)
		assert.Contains(t, res.Suggestions,
			"Adding a resume summary will significantly improve question personalization")
	}
}

func TestResumeLengthGate(t *testing.T) {
	t.Parallel()
	r := newResumeScorer()

	t.Run("exactly 800 characters is valid", func(t *testing.T) {
		t.Parallel()
		res := r.Validate(strings.Repeat("experienced engineer ", 39)[:800])
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("801 characters is fatal with the overage reported", func(t *testing.T) {
		t.Parallel()
		res := r.Validate(strings.Repeat("experienced engineer ", 39)[:801])
		require.Len(t, res.Errors, 1)
		assert.False(t, res.IsValid)
		assert.False(t, res.CanProceed)
		assert.Equal(t, domain.KindResumeTooLong, res.Errors[0].Kind)
		assert.Contains(t, res.Errors[0].Message, "exceeds 800 characters by 1")
	})

	t.Run("brief summary warns but stays valid", func(t *testing.T) {
		t.Parallel()
		res := r.Validate("Java developer")
		assert.True(t, res.IsValid)
		assert.Contains(t, res.Warnings, "Resume summary is very brief")
	})
}

func TestResumeScores(t *testing.T) {
	t.Parallel()
	r := newResumeScorer()

	t.Run("strong summary scores high on all axes", func(t *testing.T) {
		t.Parallel()
		res := r.Validate(strongResume)
		assert.GreaterOrEqual(t, res.Scores["professional"], 60)
		assert.Equal(t, 75, res.Scores["experience"]) // years + 3 tech terms + progression
		assert.GreaterOrEqual(t, res.Scores["achievements"], 60)
		assert.GreaterOrEqual(t, res.Scores["overall"], 60)
	})

	t.Run("experience score components", func(t *testing.T) {
		t.Parallel()
		res := r.Validate("worked with React for a while")
		assert.Equal(t, 10, res.Scores["experience"]) // one tech term, no years, no progression

		res = r.Validate("3 years with React, promoted to lead")
		assert.Equal(t, 55, res.Scores["experience"]) // 30 + 10 + 15
	})

	t.Run("vague summary scores low", func(t *testing.T) {
		t.Parallel()
		res := r.Validate("I like computers and want a good job soon")
		assert.LessOrEqual(t, res.Scores["overall"], 20)
	})

	t.Run("scores stay in bounds for degenerate input", func(t *testing.T) {
		t.Parallel()
		res := r.Validate(strings.Repeat("developer engineer manager 5 years increased 40% ", 200))
		for name, score := range res.Scores {
			assert.GreaterOrEqual(t, score, 0, name)
			assert.LessOrEqual(t, score, 100, name)
		}
	})
}

func TestResumeRedFlags(t *testing.T) {
	t.Parallel()
	r := newResumeScorer()

	t.Run("generic phrase", func(t *testing.T) {
		t.Parallel()
		res := r.Validate("I am a team player and a fast learner looking for work")
		assert.Contains(t, res.Warnings, `Avoid generic phrases like "team player"`)
		assert.Contains(t, res.Analysis.RedFlags, "team player")
		assert.Contains(t, res.Analysis.RedFlags, "fast learner")
	})

	t.Run("personal information warns without erroring", func(t *testing.T) {
		t.Parallel()
		res := r.Validate("I am a married engineer with experience, age 35")
		assert.True(t, res.IsValid)
		assert.Contains(t, res.Warnings,
			"Resume summary contains personal information that should be omitted")
		assert.True(t, r.HasPersonalInfo("married with two children"))
		assert.False(t, r.HasPersonalInfo("experienced platform engineer"))
	})

	t.Run("personal terms match whole words only", func(t *testing.T) {
		t.Parallel()
		// "manager" contains "age" and "embrace" contains "race"; neither
		// names a personal detail.
		assert.False(t, r.HasPersonalInfo("Engineering manager who embraces new programming languages"))
		assert.True(t, r.HasPersonalInfo("Age 42, looking for a new role"))
		res := r.Validate("Experienced engineering manager with 10 years building software teams.")
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("unprofessional language", func(t *testing.T) {
		t.Parallel()
		res := r.Validate("I am an awesome rockstar coder")
		assert.Contains(t, res.Warnings, `"awesome" may seem unprofessional in a resume summary`)
		assert.Contains(t, res.Warnings, `"rockstar" may seem unprofessional in a resume summary`)
	})
}

func TestResumeFirstPerson(t *testing.T) {
	t.Parallel()
	r := newResumeScorer()

	t.Run("third person draws a warning", func(t *testing.T) {
		t.Parallel()
		res := r.Validate("John is a developer. He works on backend systems and his focus is APIs.")
		assert.Contains(t, res.Warnings, "Resume summary should be written in first person")
	})

	t.Run("implied first person passes", func(t *testing.T) {
		t.Parallel()
		res := r.Validate("Experienced developer focused on backend systems and APIs.")
		assert.NotContains(t, res.Warnings, "Resume summary should be written in first person")
	})
}

func TestResumeQuantifiableSuggestion(t *testing.T) {
	t.Parallel()
	r := newResumeScorer()

	long := "Experienced engineer who worked on many backend services and improved " +
		"reliability across several products during a long career in software"
	require.Greater(t, len(long), 100)
	res := r.Validate(long)
	assert.Contains(t, res.Suggestions,
		"Include specific numbers, percentages, or timeframes to make achievements more impactful")
	assert.False(t, res.Analysis.HasQuantifiableAchievements)

	res = r.Validate(strongResume)
	assert.True(t, res.Analysis.HasQuantifiableAchievements)
	assert.NotContains(t, res.Suggestions,
		"Include specific numbers, percentages, or timeframes to make achievements more impactful")
}

func TestResumeAnalysis(t *testing.T) {
	t.Parallel()
	r := newResumeScorer()

	res := r.Validate("Skilled engineer with 6 years SQL experience. Led teams! Delivered results?")
	assert.Equal(t, 3, res.Analysis.SentenceCount)
	assert.Equal(t, 11, res.Analysis.WordCount)
	assert.True(t, res.Analysis.HasExperienceIndicators)
	assert.True(t, res.Analysis.IsProfessional)
}
