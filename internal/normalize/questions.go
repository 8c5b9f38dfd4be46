// Package normalize converts raw questionnaire responses into a canonical
// StudentProfile. It never fails: malformed input degrades to defaults and
// is reported through FieldWarnings.
package normalize

// Question IDs of the fixed questionnaire schema. Raw response keys outside
// this set are ignored for forward compatibility.
const (
	QGrade                = "grade"
	QZipCode              = "zip_code"
	QWorkEnvironment      = "work_environment"
	QHandsOn              = "hands_on"
	QProblemSolving       = "problem_solving"
	QHelpingOthers        = "helping_others"
	QIncomeImportance     = "income_importance"
	QJobSecurity          = "job_security"
	QEducationWillingness = "education_willingness"
	QAcademicPerformance  = "academic_performance"
	QSubjectStrengths     = "subject_strengths"
	QInterestsText        = "interests_text"
	QExperienceText       = "experience_text"
	QImpactText           = "impact_text"
	QInspirationText      = "inspiration_text"
	QPersonalTraits       = "personal_traits"
	QPersonalTraitsOther  = "personal_traits_other"
	QConstraints          = "constraints"
)

// Grade bounds and the neutral default used when the grade is missing or
// unparseable.
const (
	minGrade     = 9
	maxGrade     = 13
	defaultGrade = 11
)
