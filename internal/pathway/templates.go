// Package pathway derives the ordered academic/career roadmap for a career
// from a small data-driven rule table keyed by education tier. Adding a new
// career to the taxonomy requires zero code changes here.
package pathway

import "github.com/careercompass/guidance-engine/internal/types"

// highSchoolStep is prepended while the student is still in grades 9-12.
const highSchoolStep = "Take high school courses and electives related to {sector}"

// tierSteps is the step template table, keyed by education tier. Templates
// substitute {title} and {sector} from the career.
var tierSteps = map[types.EducationTier][]string{
	types.TierShortTraining: {
		"Research {title} training programs and certification requirements",
		"Enroll in a {title} training or apprenticeship program",
		"Complete the program and earn any required certification",
		"Gain experience through entry-level {sector} work",
		"Apply for {title} positions",
	},
	types.TierCollegeTechnical: {
		"Research associate degree or technical college programs for {title}",
		"Complete prerequisite coursework and apply to a program",
		"Earn the associate degree or technical credential",
		"Complete any licensing or certification required for {title}",
		"Apply for entry-level {title} positions",
	},
	types.TierFourYear: {
		"Research bachelor's degree programs relevant to {title}",
		"Apply to colleges with strong {sector} programs",
		"Complete a bachelor's degree, seeking internships in {sector}",
		"Build a portfolio of {sector} projects and experience",
		"Apply for entry-level {title} positions",
	},
	types.TierAdvanced: {
		"Research the graduate or professional education path for {title}",
		"Complete a bachelor's degree with strong {sector} preparation",
		"Apply to and complete a graduate or professional program",
		"Finish any residency, licensure, or board requirements for {title}",
		"Apply for {title} positions",
	},
}

// defaultSteps covers careers whose tier is somehow unknown; the catalog
// loader rejects unknown tiers, so this is a safety net only.
var defaultSteps = []string{
	"Research the education and training required for {title}",
	"Complete the required education or training",
	"Gain experience in {sector}",
	"Apply for {title} positions",
}

// skillSet is the per-tier skill table feeding skill-gap analysis. Skills
// the student already signals having are excluded from the reported gaps.
type skillSet struct {
	immediate []string
	longTerm  []string
}

var tierSkillSets = map[types.EducationTier]skillSet{
	types.TierShortTraining: {
		immediate: []string{"reliability", "time_management", "communication"},
		longTerm:  []string{"hands_on", "customer_service", "problem_solving"},
	},
	types.TierCollegeTechnical: {
		immediate: []string{"study_skills", "time_management", "communication"},
		longTerm:  []string{"problem_solving", "teamwork", "technical_writing"},
	},
	types.TierFourYear: {
		immediate: []string{"study_skills", "writing", "math"},
		longTerm:  []string{"critical_thinking", "leadership", "project_management"},
	},
	types.TierAdvanced: {
		immediate: []string{"study_skills", "writing", "research"},
		longTerm:  []string{"critical_thinking", "leadership", "specialized_expertise"},
	},
}
