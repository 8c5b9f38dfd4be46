package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/careercompass/guidance-engine/internal/types"
)

// Config holds the engine tunables. The zero value selects defaults.
type Config struct {
	Weights                Weights
	EarnSoonYearsThreshold int
}

// Engine scores careers against student profiles. It holds no mutable
// state, so a single Engine is safe to share across concurrent scoring
// calls.
type Engine struct {
	weights       Weights
	earnSoonYears int
}

// NewEngine builds an engine from the given config, substituting defaults
// for zero values.
func NewEngine(cfg Config) *Engine {
	weights := cfg.Weights
	if weights.sum() <= 0 {
		weights = DefaultWeights()
	}
	earnSoon := cfg.EarnSoonYearsThreshold
	if earnSoon <= 0 {
		earnSoon = DefaultEarnSoonYearsThreshold
	}
	return &Engine{weights: weights, earnSoonYears: earnSoon}
}

// ScoreAll scores every career in the catalog against the profile using the
// default engine configuration.
func ScoreAll(profile *types.StudentProfile, catalog *types.Catalog) []types.MatchResult {
	return NewEngine(Config{}).ScoreAll(profile, catalog)
}

// ScoreAll scores every career in the catalog, returning results sorted by
// score descending. Careers with equal scores keep their catalog order
// (stable sort): this determinism is part of the engine's contract. An
// empty catalog returns an empty slice, not an error.
func (e *Engine) ScoreAll(profile *types.StudentProfile, catalog *types.Catalog) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(catalog.Careers))

	for i := range catalog.Careers {
		career := &catalog.Careers[i]

		interest, matchedInterest := interestScore(profile, career)
		academic := academicScore(profile, career)
		education := educationScore(profile, career)
		environment, matchedEnv := environmentScore(profile, career)
		constraint := constraintScore(profile, career, e.earnSoonYears)

		subs := types.SubScores{
			Interest:    interest,
			Academic:    academic,
			Education:   education,
			Environment: environment,
			Constraint:  constraint,
		}

		weighted := (e.weights.Interest*interest +
			e.weights.Academic*academic +
			e.weights.Education*education +
			e.weights.Environment*environment +
			e.weights.Constraint*constraint) / e.weights.sum()

		score := int(math.Round(weighted))
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}

		results = append(results, types.MatchResult{
			Career:           *career,
			Score:            score,
			SubScores:        subs,
			Reasoning:        e.reasoning(subs, matchedInterest, matchedEnv, career),
			FeasibilityNotes: e.feasibilityNotes(profile, career),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// feasibilityNotes flags structural mismatches between the profile and the
// career. Notes come from rule violations only, in fixed rule order.
func (e *Engine) feasibilityNotes(profile *types.StudentProfile, career *types.Career) []string {
	notes := make([]string, 0, 2)

	if gap := int(career.RequiredEducation) - int(profile.EducationWillingness); gap >= 1 {
		notes = append(notes, fmt.Sprintf(
			"requires %s education, more than your stated preference of %s",
			career.RequiredEducation, profile.EducationWillingness))
	}

	if profile.HasConstraint(types.ConstraintEarnMoneySoon) {
		if career.TimeToEntryYears > e.earnSoonYears {
			notes = append(notes, fmt.Sprintf(
				"typically takes %d years to enter, longer than ideal if you need to earn money soon",
				career.TimeToEntryYears))
		}
	}

	if profile.HasConstraint(types.ConstraintStayCloseToHome) {
		for _, tag := range career.WorkEnvironmentTags {
			if mobilityTags[tag] {
				notes = append(notes, "often involves travel or relocation, which may conflict with staying close to home")
				break
			}
		}
	}

	return notes
}
