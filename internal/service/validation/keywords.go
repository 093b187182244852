// Package validation implements the content validation and quality-scoring
// engine: security pattern detection with job-context awareness, profanity and
// spam filtering, job-relevance scoring, multi-dimensional quality scoring,
// resume-summary scoring and cross-document compatibility analysis.
//
// The engine is pure and stateless per invocation. Keyword and pattern tables
// are read-only after construction and safe to share across goroutines.
package validation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables holds every keyword list the engine matches against. Instances are
// immutable after construction; the embedding application may override any
// list via a YAML file (see LoadTables).
type Tables struct {
	Profanity []string `yaml:"profanity"`

	JobKeywords      []string `yaml:"job_keywords"`
	IndustryKeywords []string `yaml:"industry_keywords"`
	SkillKeywords    []string `yaml:"skill_keywords"`

	ActionVerbs        []string `yaml:"action_verbs"`
	QualificationTerms []string `yaml:"qualification_terms"`
	ProfessionalTerms  []string `yaml:"professional_terms"`

	ExperienceKeywords  []string `yaml:"experience_keywords"`
	AchievementKeywords []string `yaml:"achievement_keywords"`
	RoleKeywords        []string `yaml:"role_keywords"`
	ProgressionTerms    []string `yaml:"progression_terms"`

	GenericPhrases      []string `yaml:"generic_phrases"`
	PersonalInfoTerms   []string `yaml:"personal_info_terms"`
	UnprofessionalTerms []string `yaml:"unprofessional_terms"`

	IndustryNouns []string `yaml:"industry_nouns"`
}

// DefaultTables returns the built-in keyword tables.
func DefaultTables() Tables {
	return Tables{
		Profanity: []string{
			"fuck", "shit", "damn", "bitch", "asshole", "bastard",
		},
		JobKeywords: []string{
			"job", "position", "role", "career", "employment", "opportunity",
			"responsibilities", "duties", "requirements", "qualifications", "skills",
			"experience", "education", "background", "knowledge",
			"company", "team", "department", "organization", "employer", "hire", "hiring",
			"candidate", "applicant", "interview", "apply", "application",
			"work", "working", "manage", "develop", "lead", "coordinate", "implement",
			"collaborate", "support", "maintain", "analyze", "design", "create",
		},
		IndustryKeywords: []string{
			"software", "engineer", "developer", "programming", "technology",
			"marketing", "sales", "business", "finance", "accounting", "management",
			"healthcare", "medical", "nurse", "doctor", "research", "science",
			"education", "teaching", "legal", "law", "consulting", "operations",
		},
		SkillKeywords: []string{
			"leadership", "communication", "analytical", "problem-solving", "teamwork",
			"project management", "customer service", "strategic", "creative",
		},
		ActionVerbs: []string{
			"manage", "lead", "develop", "implement", "coordinate", "analyze",
			"design", "create", "optimize", "execute",
		},
		QualificationTerms: []string{
			"required", "preferred", "must have", "should have", "experience with",
			"knowledge of", "proficiency in",
		},
		ProfessionalTerms: []string{
			"bachelor", "master", "degree", "certification", "years of experience",
			"proven track record",
		},
		ExperienceKeywords: []string{
			"years", "year", "experience", "worked", "led", "managed", "developed",
			"implemented", "achieved", "accomplished", "successful", "expert",
			"skilled", "proficient", "specializing", "background", "career",
		},
		AchievementKeywords: []string{
			"increased", "decreased", "improved", "optimized", "delivered", "exceeded",
			"reduced", "generated", "saved", "grew", "built", "created", "launched",
		},
		RoleKeywords: []string{
			"engineer", "developer", "manager", "analyst", "specialist", "coordinator",
			"director", "senior", "junior", "lead", "principal", "associate",
		},
		ProgressionTerms: []string{
			"promoted", "advanced", "grew from", "started as", "currently", "now",
		},
		GenericPhrases: []string{
			"hardworking individual", "team player", "results-oriented",
			"detail-oriented", "fast learner", "self-motivated",
		},
		PersonalInfoTerms: []string{
			"age", "married", "single", "children", "religion", "nationality",
			"race", "gender", "height", "weight",
		},
		UnprofessionalTerms: []string{
			"awesome", "amazing", "incredible", "best ever", "rockstar",
			"ninja", "guru", "unicorn",
		},
		IndustryNouns: []string{
			"software", "technology", "engineering", "development", "programming",
			"marketing", "sales", "business", "finance", "accounting",
			"healthcare", "medical", "research", "education", "consulting",
		},
	}
}

// LoadTables reads keyword overrides from a YAML file and merges them over the
// defaults. Lists absent from the file keep their built-in values.
func LoadTables(path string) (Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("op=validation.LoadTables: %w", err)
	}
	var override Tables
	if err := yaml.Unmarshal(b, &override); err != nil {
		return Tables{}, fmt.Errorf("op=validation.LoadTables: %w", err)
	}
	t := DefaultTables()
	merge := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	merge(&t.Profanity, override.Profanity)
	merge(&t.JobKeywords, override.JobKeywords)
	merge(&t.IndustryKeywords, override.IndustryKeywords)
	merge(&t.SkillKeywords, override.SkillKeywords)
	merge(&t.ActionVerbs, override.ActionVerbs)
	merge(&t.QualificationTerms, override.QualificationTerms)
	merge(&t.ProfessionalTerms, override.ProfessionalTerms)
	merge(&t.ExperienceKeywords, override.ExperienceKeywords)
	merge(&t.AchievementKeywords, override.AchievementKeywords)
	merge(&t.RoleKeywords, override.RoleKeywords)
	merge(&t.ProgressionTerms, override.ProgressionTerms)
	merge(&t.GenericPhrases, override.GenericPhrases)
	merge(&t.PersonalInfoTerms, override.PersonalInfoTerms)
	merge(&t.UnprofessionalTerms, override.UnprofessionalTerms)
	merge(&t.IndustryNouns, override.IndustryNouns)
	return t, nil
}

// Limits are the length ceilings enforced before deeper scoring runs.
type Limits struct {
	JobDescriptionMinChars int
	JobDescriptionMaxChars int
	JobDescriptionMaxLines int
	ResumeSummaryMaxChars  int
}

// DefaultLimits returns the product defaults.
func DefaultLimits() Limits {
	return Limits{
		JobDescriptionMinChars: 10,
		JobDescriptionMaxChars: 10000,
		JobDescriptionMaxLines: 500,
		ResumeSummaryMaxChars:  800,
	}
}
