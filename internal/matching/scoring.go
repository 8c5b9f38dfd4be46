// Package matching scores every career in the taxonomy against a normalized
// student profile. Scoring is pure and deterministic: identical inputs
// always produce identical scores, ordering, and reasoning.
package matching

import (
	"sort"

	"github.com/careercompass/guidance-engine/internal/parsing"
	"github.com/careercompass/guidance-engine/internal/types"
)

// Default weights for the five scoring components. Exposed as named
// constants so engine behavior is auditable; deployments can override them
// through Config (the weighting tables are calibrated against the
// bias-testing profile corpus in testdata/test_profiles.json).
const (
	DefaultInterestWeight    = 0.35
	DefaultAcademicWeight    = 0.20
	DefaultEducationWeight   = 0.15
	DefaultEnvironmentWeight = 0.15
	DefaultConstraintWeight  = 0.15
)

// neutralScore is used when a dimension cannot be assessed because the
// inputs on one or both sides are empty. Missing data never penalizes.
const neutralScore = 50.0

// DefaultEarnSoonYearsThreshold is the time-to-entry, in years, beyond which
// the earn_money_soon constraint starts penalizing a career.
const DefaultEarnSoonYearsThreshold = 2

// earnSoonPenaltyPerYear is the constraint sub-score penalty applied for
// each year of time-to-entry beyond the threshold.
const earnSoonPenaltyPerYear = 15.0

// stayCloseToHomePenalty is the constraint sub-score penalty for careers
// whose work environment involves travel or relocation.
const stayCloseToHomePenalty = 30.0

// Weights holds the relative weight of each scoring component. Weights are
// normalized by their sum, so they need not add up to 1.
type Weights struct {
	Interest    float64 `json:"interest"`
	Academic    float64 `json:"academic"`
	Education   float64 `json:"education"`
	Environment float64 `json:"environment"`
	Constraint  float64 `json:"constraint"`
}

// DefaultWeights returns the default component weights.
func DefaultWeights() Weights {
	return Weights{
		Interest:    DefaultInterestWeight,
		Academic:    DefaultAcademicWeight,
		Education:   DefaultEducationWeight,
		Environment: DefaultEnvironmentWeight,
		Constraint:  DefaultConstraintWeight,
	}
}

func (w Weights) sum() float64 {
	return w.Interest + w.Academic + w.Education + w.Environment + w.Constraint
}

// sectorSubjects maps career sectors to the academic subjects relevant when
// assessing academic fit. Sectors not listed score neutrally.
var sectorSubjects = map[string][]string{
	"healthcare":     {"biology", "chemistry", "science"},
	"technology":     {"computer_science", "math", "science"},
	"trades":         {"industrial_arts", "math", "physical_education"},
	"business":       {"english", "math"},
	"education":      {"english", "history"},
	"arts":           {"art", "english", "music"},
	"science":        {"biology", "chemistry", "math", "physics"},
	"public_service": {"english", "history", "physical_education"},
}

// interestScore computes Jaccard-style overlap between the profile's
// trait/interest tags (selected traits plus themes extracted from free
// text) and the career's tag sets. Returns the 0-100 score and the matched
// tags sorted alphabetically. When either side has no tags the dimension is
// unassessable and scores neutral.
func interestScore(profile *types.StudentProfile, career *types.Career) (float64, []string) {
	profileTags := profileInterestTags(profile)
	careerTags := unionTags(career.TraitTags, career.InterestTags)

	if len(profileTags) == 0 || len(careerTags) == 0 {
		return neutralScore, nil
	}
	return jaccard(profileTags, careerTags)
}

// profileInterestTags builds the profile side of the interest overlap:
// selected personal traits, the free-form "other" trait, and themes
// extracted from the free-text answers.
func profileInterestTags(profile *types.StudentProfile) map[string]bool {
	tags := make(map[string]bool, len(profile.PersonalTraits)+4)
	for _, tag := range profile.PersonalTraits {
		tags[tag] = true
	}
	if other := parsing.NormalizeTag(profile.OtherTrait); other != "" {
		tags[other] = true
	}
	themes := parsing.ExtractThemes(
		profile.InterestsText,
		profile.ExperienceText,
		profile.ImpactText,
		profile.InspirationText,
	)
	for _, theme := range themes {
		tags[theme] = true
	}
	return tags
}

// academicScore compares the profile's subject ratings against the subjects
// relevant to the career's sector. Missing subject ratings contribute a
// neutral score rather than a penalty; a subject listed as a strength is
// rated at least "good".
func academicScore(profile *types.StudentProfile, career *types.Career) float64 {
	relevant, ok := sectorSubjects[career.Sector]
	if !ok || len(relevant) == 0 {
		return neutralScore
	}

	strengths := make(map[string]bool, len(profile.SubjectStrengths))
	for _, s := range profile.SubjectStrengths {
		strengths[s] = true
	}

	total := 0.0
	for _, subject := range relevant {
		score := neutralScore
		if rating, rated := profile.AcademicPerformance[subject]; rated && rating != types.RatingUnknown {
			score = ratingScore(rating)
		}
		if strengths[subject] && score < ratingScore(types.RatingGood) {
			score = ratingScore(types.RatingGood)
		}
		total += score
	}
	return total / float64(len(relevant))
}

// ratingScore maps an ordinal rating onto 0-100.
func ratingScore(r types.Rating) float64 {
	return float64(r-types.RatingPoor) / 4.0 * 100.0
}

// educationScore penalizes careers whose required education exceeds the
// student's stated willingness. A one-tier stretch is a mild penalty;
// beyond that the penalty is steep. Careers requiring less education than
// the student is willing to pursue are never penalized.
func educationScore(profile *types.StudentProfile, career *types.Career) float64 {
	gap := int(career.RequiredEducation) - int(profile.EducationWillingness)
	switch {
	case gap <= 0:
		return 100
	case gap == 1:
		return 70
	case gap == 2:
		return 30
	default:
		return 0
	}
}

// environmentScore computes overlap between the profile's preferred work
// environments and the career's environment tags. Either side empty scores
// neutral.
func environmentScore(profile *types.StudentProfile, career *types.Career) (float64, []string) {
	if len(profile.WorkEnvironments) == 0 || len(career.WorkEnvironmentTags) == 0 {
		return neutralScore, nil
	}

	profileTags := make(map[string]bool, len(profile.WorkEnvironments))
	for _, tag := range profile.WorkEnvironments {
		profileTags[tag] = true
	}
	careerTags := make(map[string]bool, len(career.WorkEnvironmentTags))
	for _, tag := range career.WorkEnvironmentTags {
		careerTags[tag] = true
	}
	return jaccard(profileTags, careerTags)
}

// mobilityTags mark careers that conflict with the stay_close_to_home
// constraint.
var mobilityTags = map[string]bool{
	"travel":     true,
	"relocation": true,
}

// constraintScore applies negative adjustments when a profile constraint
// conflicts with career attributes. A profile with no conflicting
// constraints scores 100 on this dimension for every career, which keeps
// the ranking unaffected.
func constraintScore(profile *types.StudentProfile, career *types.Career, earnSoonThresholdYears int) float64 {
	score := 100.0

	if profile.HasConstraint(types.ConstraintEarnMoneySoon) {
		if extra := career.TimeToEntryYears - earnSoonThresholdYears; extra > 0 {
			score -= earnSoonPenaltyPerYear * float64(extra)
		}
	}

	if profile.HasConstraint(types.ConstraintStayCloseToHome) {
		for _, tag := range career.WorkEnvironmentTags {
			if mobilityTags[tag] {
				score -= stayCloseToHomePenalty
				break
			}
		}
	}

	if score < 0 {
		return 0
	}
	return score
}

// jaccard returns |intersection| / |union| scaled to 0-100, plus the sorted
// intersection. Callers guarantee at least one set is non-empty.
func jaccard(a, b map[string]bool) (float64, []string) {
	matched := make([]string, 0, len(a))
	for tag := range a {
		if b[tag] {
			matched = append(matched, tag)
		}
	}
	sort.Strings(matched)

	union := len(a) + len(b) - len(matched)
	if union == 0 {
		return neutralScore, nil
	}
	return float64(len(matched)) / float64(union) * 100.0, matched
}

// unionTags merges tag slices into a set.
func unionTags(slices ...[]string) map[string]bool {
	out := make(map[string]bool)
	for _, tags := range slices {
		for _, tag := range tags {
			out[tag] = true
		}
	}
	return out
}
