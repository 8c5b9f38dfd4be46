package pathway

import (
	"fmt"
	"strings"

	"github.com/careercompass/guidance-engine/internal/types"
)

// BuildPathway produces the ordered roadmap, timeline, and skill-gap
// analysis for one (career, profile) pair. The result is fully
// deterministic: two calls with the same inputs yield identical plans.
func BuildPathway(career *types.Career, profile *types.StudentProfile) types.PathwayPlan {
	return types.PathwayPlan{
		Steps:     buildSteps(career, profile),
		Timeline:  FormatTimeline(career.TimeToEntryYears),
		SkillGaps: buildSkillGaps(career, profile),
	}
}

func buildSteps(career *types.Career, profile *types.StudentProfile) []string {
	templates, ok := tierSteps[career.RequiredEducation]
	if !ok {
		templates = defaultSteps
	}

	steps := make([]string, 0, len(templates)+1)
	if profile.Grade >= 9 && profile.Grade <= 12 {
		steps = append(steps, specialize(highSchoolStep, career))
	}
	for _, template := range templates {
		steps = append(steps, specialize(template, career))
	}
	return steps
}

// specialize substitutes the career's title and sector into a step template.
func specialize(template string, career *types.Career) string {
	step := strings.ReplaceAll(template, "{title}", career.Title)
	return strings.ReplaceAll(step, "{sector}", career.Sector)
}

// FormatTimeline converts time-to-entry years into a human-readable range.
func FormatTimeline(years int) string {
	switch {
	case years <= 0:
		return "Less than a year"
	case years == 1:
		return "About 1 year"
	default:
		return fmt.Sprintf("%d-%d years", years, years+2)
	}
}

// buildSkillGaps partitions the tier's skill list into immediate and
// long-term gaps, excluding skills the student already signals having
// through personal traits, subject strengths, or good-or-better subject
// ratings.
func buildSkillGaps(career *types.Career, profile *types.StudentProfile) types.SkillGaps {
	skills, ok := tierSkillSets[career.RequiredEducation]
	if !ok {
		skills = tierSkillSets[types.TierFourYear]
	}

	present := presentSkills(profile)
	return types.SkillGaps{
		Immediate: filterGaps(skills.immediate, present),
		LongTerm:  filterGaps(skills.longTerm, present),
	}
}

// presentSkills collects the skill tags the profile already signals.
func presentSkills(profile *types.StudentProfile) map[string]bool {
	present := make(map[string]bool)
	for _, trait := range profile.PersonalTraits {
		present[trait] = true
	}
	for _, subject := range profile.SubjectStrengths {
		present[subject] = true
	}
	for subject, rating := range profile.AcademicPerformance {
		if rating >= types.RatingGood {
			present[subject] = true
		}
	}
	return present
}

// filterGaps keeps table order, which is fixed, so output order is
// deterministic without sorting.
func filterGaps(skills []string, present map[string]bool) []string {
	gaps := make([]string, 0, len(skills))
	for _, skill := range skills {
		if !present[skill] {
			gaps = append(gaps, skill)
		}
	}
	return gaps
}
