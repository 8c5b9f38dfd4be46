// Package types provides type definitions for structured data used throughout the guidance engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// StudentProfile is the canonical normalized form of a student's
// questionnaire responses. It is immutable once built for a scoring pass:
// the normalizer produces it, every downstream component only reads it.
//
// All tag slices are sorted and deduplicated by the normalizer so that
// repeated scoring of the same raw input is byte-identical.
type StudentProfile struct {
	Grade   int    `json:"grade"`
	ZipCode string `json:"zip_code"`

	WorkEnvironments []string `json:"work_environments"`

	HandsOnPreference       string `json:"hands_on_preference"`
	ProblemSolvingStyle     string `json:"problem_solving_style"`
	HelpingOthersImportance string `json:"helping_others_importance"`
	IncomeImportance        string `json:"income_importance"`
	JobSecurityImportance   string `json:"job_security_importance"`

	EducationWillingness EducationTier `json:"education_willingness"`

	AcademicPerformance map[string]Rating `json:"academic_performance"`
	SubjectStrengths    []string          `json:"subject_strengths"`

	InterestsText   string `json:"interests_text"`
	ExperienceText  string `json:"experience_text"`
	ImpactText      string `json:"impact_text"`
	InspirationText string `json:"inspiration_text"`

	PersonalTraits []string `json:"personal_traits"`
	OtherTrait     string   `json:"other_trait,omitempty"`

	Constraints []string `json:"constraints"`
}

// HasConstraint reports whether the profile carries the given constraint tag.
func (p *StudentProfile) HasConstraint(tag string) bool {
	for _, c := range p.Constraints {
		if c == tag {
			return true
		}
	}
	return false
}

// Constraint tags recognized by the matching engine.
const (
	ConstraintEarnMoneySoon   = "earn_money_soon"
	ConstraintStayCloseToHome = "stay_close_to_home"
)
