package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/careercompass/guidance-engine/internal/parsing"
	"github.com/careercompass/guidance-engine/internal/types"
)

var zipCodePattern = regexp.MustCompile(`^\d{5}$`)

// Normalize converts raw questionnaire responses keyed by question ID into a
// canonical StudentProfile. The call never fails: every malformed or missing
// field is defaulted and recorded as a FieldWarning so downstream scoring
// can proceed with a partial profile. Unknown keys are ignored.
func Normalize(raw map[string]any) (*types.StudentProfile, []types.FieldWarning) {
	n := &normalizer{raw: raw}
	profile := &types.StudentProfile{}

	profile.Grade = n.grade()
	profile.ZipCode = n.zipCode()
	profile.WorkEnvironments = n.tagSet(QWorkEnvironment)
	profile.HandsOnPreference = n.enumValue(QHandsOn)
	profile.ProblemSolvingStyle = n.enumValue(QProblemSolving)
	profile.HelpingOthersImportance = n.enumValue(QHelpingOthers)
	profile.IncomeImportance = n.enumValue(QIncomeImportance)
	profile.JobSecurityImportance = n.enumValue(QJobSecurity)
	profile.EducationWillingness = n.educationWillingness()
	profile.AcademicPerformance = n.academicPerformance()
	profile.SubjectStrengths = n.subjectStrengths()
	profile.InterestsText = n.text(QInterestsText)
	profile.ExperienceText = n.text(QExperienceText)
	profile.ImpactText = n.text(QImpactText)
	profile.InspirationText = n.text(QInspirationText)
	profile.PersonalTraits = n.tagSet(QPersonalTraits)
	profile.OtherTrait = n.text(QPersonalTraitsOther)
	profile.Constraints = n.tagSet(QConstraints)

	if profile.InterestsText == "" && profile.ExperienceText == "" &&
		profile.ImpactText == "" && profile.InspirationText == "" {
		n.warn("free_text", "no free-text responses provided; interest themes cannot be extracted", true)
	}

	return profile, n.warnings
}

type normalizer struct {
	raw      map[string]any
	warnings []types.FieldWarning
}

func (n *normalizer) warn(field, message string, defaulted bool) {
	n.warnings = append(n.warnings, types.FieldWarning{
		Field:     field,
		Message:   message,
		Defaulted: defaulted,
	})
}

func (n *normalizer) grade() int {
	v, present := n.raw[QGrade]
	if !present {
		n.warn(QGrade, fmt.Sprintf("missing; defaulted to %d", defaultGrade), true)
		return defaultGrade
	}

	grade, ok := asInt(v)
	if !ok {
		n.warn(QGrade, fmt.Sprintf("unparseable value %v; defaulted to %d", v, defaultGrade), true)
		return defaultGrade
	}

	if grade < minGrade {
		n.warn(QGrade, fmt.Sprintf("%d is below range; clamped to %d", grade, minGrade), false)
		return minGrade
	}
	if grade > maxGrade {
		n.warn(QGrade, fmt.Sprintf("%d is above range; clamped to %d", grade, maxGrade), false)
		return maxGrade
	}
	return grade
}

// zipCode validates format only. Invalid values are kept as-is (presentation
// is a UI concern) but flagged.
func (n *normalizer) zipCode() string {
	v, present := n.raw[QZipCode]
	if !present {
		n.warn(QZipCode, "missing; location-based suggestions unavailable", true)
		return ""
	}

	zip, ok := asString(v)
	if !ok || zip == "" {
		n.warn(QZipCode, "missing; location-based suggestions unavailable", true)
		return ""
	}

	if !zipCodePattern.MatchString(zip) {
		n.warn(QZipCode, fmt.Sprintf("%q is not a 5-digit ZIP code", zip), false)
	}
	return zip
}

func (n *normalizer) tagSet(key string) []string {
	v, present := n.raw[key]
	if !present {
		n.warn(key, "missing; treated as no selections", true)
		return []string{}
	}

	values, ok := asStringSlice(v)
	if !ok {
		n.warn(key, "unparseable value; treated as no selections", true)
		return []string{}
	}

	tags := parsing.NormalizeTagSet(values)
	sort.Strings(tags)
	return tags
}

func (n *normalizer) enumValue(key string) string {
	v, present := n.raw[key]
	if !present {
		n.warn(key, "missing; dimension will score neutrally", true)
		return ""
	}

	s, ok := asString(v)
	if !ok || s == "" {
		n.warn(key, "missing; dimension will score neutrally", true)
		return ""
	}
	return parsing.NormalizeTag(s)
}

func (n *normalizer) educationWillingness() types.EducationTier {
	v, present := n.raw[QEducationWillingness]
	if !present {
		n.warn(QEducationWillingness, "missing; defaulted to four_year", true)
		return types.TierFourYear
	}

	s, _ := asString(v)
	tier, ok := types.ParseEducationTier(s)
	if !ok {
		n.warn(QEducationWillingness, fmt.Sprintf("unrecognized value %q; defaulted to four_year", s), true)
		return types.TierFourYear
	}
	return tier
}

func (n *normalizer) academicPerformance() map[string]types.Rating {
	out := make(map[string]types.Rating)

	v, present := n.raw[QAcademicPerformance]
	if !present {
		n.warn(QAcademicPerformance, "missing; academic fit will score neutrally", true)
		return out
	}

	matrix, ok := asStringMap(v)
	if !ok {
		n.warn(QAcademicPerformance, "unparseable matrix; academic fit will score neutrally", true)
		return out
	}

	// Iterate in sorted key order so duplicate subjects resolve and warnings
	// emit deterministically.
	subjects := make([]string, 0, len(matrix))
	for subject := range matrix {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	for _, subject := range subjects {
		normalized := parsing.NormalizeSubject(subject)
		if normalized == "" {
			continue
		}
		rating, ok := types.ParseRating(matrix[subject])
		if !ok {
			n.warn(QAcademicPerformance, fmt.Sprintf("unrecognized rating %q for %s; skipped", matrix[subject], subject), false)
			continue
		}
		if _, exists := out[normalized]; !exists {
			out[normalized] = rating
		}
	}
	return out
}

func (n *normalizer) subjectStrengths() []string {
	v, present := n.raw[QSubjectStrengths]
	if !present {
		n.warn(QSubjectStrengths, "missing; treated as no selections", true)
		return []string{}
	}

	values, ok := asStringSlice(v)
	if !ok {
		n.warn(QSubjectStrengths, "unparseable value; treated as no selections", true)
		return []string{}
	}

	seen := make(map[string]bool, len(values))
	subjects := make([]string, 0, len(values))
	for _, value := range values {
		normalized := parsing.NormalizeSubject(value)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		subjects = append(subjects, normalized)
	}
	sort.Strings(subjects)
	return subjects
}

func (n *normalizer) text(key string) string {
	v, present := n.raw[key]
	if !present {
		return ""
	}
	s, _ := asString(v)
	return strings.TrimSpace(s)
}
