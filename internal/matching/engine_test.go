package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/guidance-engine/internal/types"
)

func nurseCareer() types.Career {
	return types.Career{
		ID:                  "registered_nurse",
		Title:               "Registered Nurse",
		Sector:              "healthcare",
		Cluster:             "Health Science",
		RequiredEducation:   types.TierCollegeTechnical,
		TimeToEntryYears:    2,
		AverageSalary:       77600,
		TraitTags:           []string{"compassionate", "patient"},
		InterestTags:        []string{"healthcare"},
		WorkEnvironmentTags: []string{"indoor", "teamwork"},
	}
}

func developerCareer() types.Career {
	return types.Career{
		ID:                  "software_developer",
		Title:               "Software Developer",
		Sector:              "technology",
		Cluster:             "Information Technology",
		RequiredEducation:   types.TierCollegeTechnical,
		TimeToEntryYears:    2,
		AverageSalary:       110140,
		TraitTags:           []string{"analytical"},
		InterestTags:        []string{"technology"},
		WorkEnvironmentTags: []string{"office"},
	}
}

func TestScoreAll_HealthcareLeaningProfile(t *testing.T) {
	profile := &types.StudentProfile{
		SubjectStrengths:     []string{"biology", "chemistry"},
		PersonalTraits:       []string{"compassionate", "patient"},
		EducationWillingness: types.TierCollegeTechnical,
	}
	catalog := &types.Catalog{Careers: []types.Career{nurseCareer(), developerCareer()}}

	results := ScoreAll(profile, catalog)
	require.Len(t, results, 2)

	assert.Equal(t, "registered_nurse", results[0].Career.ID)
	assert.Greater(t, results[0].Score, results[1].Score,
		"nurse must score strictly higher than developer for this profile")
	assert.NotEmpty(t, results[0].Reasoning)
}

func TestScoreAll_EducationMismatchPenalty(t *testing.T) {
	profile := &types.StudentProfile{
		EducationWillingness: types.TierShortTraining,
		PersonalTraits:       []string{"practical"},
	}

	demanding := nurseCareer()
	demanding.ID = "surgeon"
	demanding.Title = "Surgeon"
	demanding.RequiredEducation = types.TierAdvanced
	demanding.TimeToEntryYears = 8

	accessible := demanding
	accessible.ID = "medical_assistant"
	accessible.Title = "Medical Assistant"
	accessible.RequiredEducation = types.TierShortTraining
	accessible.TimeToEntryYears = 1

	catalog := &types.Catalog{Careers: []types.Career{demanding, accessible}}
	results := ScoreAll(profile, catalog)
	require.Len(t, results, 2)

	byID := make(map[string]types.MatchResult, 2)
	for _, r := range results {
		byID[r.Career.ID] = r
	}

	assert.Less(t, byID["surgeon"].Score, byID["medical_assistant"].Score)

	var foundEducationNote bool
	for _, note := range byID["surgeon"].FeasibilityNotes {
		if strings.Contains(note, "advanced education") {
			foundEducationNote = true
		}
	}
	assert.True(t, foundEducationNote, "surgeon result must flag the education gap, got %v", byID["surgeon"].FeasibilityNotes)
	assert.Empty(t, byID["medical_assistant"].FeasibilityNotes)
}

func TestScoreAll_EmptyCatalog(t *testing.T) {
	results := ScoreAll(&types.StudentProfile{}, &types.Catalog{})
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestScoreAll_EmptyProfileStillScores(t *testing.T) {
	catalog := &types.Catalog{Careers: []types.Career{nurseCareer(), developerCareer()}}
	results := ScoreAll(&types.StudentProfile{}, catalog)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
		assert.NotZero(t, r.Score, "non-interest sub-scores must still contribute")
		// Empty tag sets on the profile side score neutral, not zero.
		assert.Equal(t, neutralScore, r.SubScores.Interest)
		assert.Equal(t, neutralScore, r.SubScores.Environment)
	}
}

func TestScoreAll_ScoreBounds(t *testing.T) {
	profiles := []*types.StudentProfile{
		{},
		{
			PersonalTraits:       []string{"compassionate", "patient", "analytical", "creative"},
			EducationWillingness: types.TierAdvanced,
			WorkEnvironments:     []string{"indoor", "teamwork", "office"},
			AcademicPerformance: map[string]types.Rating{
				"biology": types.RatingExcellent, "math": types.RatingExcellent,
			},
		},
		{
			EducationWillingness: types.TierShortTraining,
			Constraints:          []string{types.ConstraintEarnMoneySoon, types.ConstraintStayCloseToHome},
			AcademicPerformance:  map[string]types.Rating{"biology": types.RatingPoor},
		},
	}
	catalog := &types.Catalog{Careers: []types.Career{nurseCareer(), developerCareer()}}

	for _, profile := range profiles {
		for _, r := range ScoreAll(profile, catalog) {
			assert.GreaterOrEqual(t, r.Score, 0)
			assert.LessOrEqual(t, r.Score, 100)
		}
	}
}

func TestScoreAll_TagOverlapMonotonicity(t *testing.T) {
	career := nurseCareer()
	career.TraitTags = []string{"compassionate", "patient", "detail_oriented"}
	career.InterestTags = nil
	catalog := &types.Catalog{Careers: []types.Career{career}}

	base := &types.StudentProfile{
		EducationWillingness: types.TierCollegeTechnical,
		PersonalTraits:       []string{"compassionate"},
	}
	prev := ScoreAll(base, catalog)[0].Score

	for _, traits := range [][]string{
		{"compassionate", "patient"},
		{"compassionate", "patient", "detail_oriented"},
	} {
		profile := *base
		profile.PersonalTraits = traits
		score := ScoreAll(&profile, catalog)[0].Score
		assert.GreaterOrEqual(t, score, prev,
			"increasing tag overlap must never decrease the score (traits %v)", traits)
		prev = score
	}
}

func TestScoreAll_Determinism(t *testing.T) {
	profile := &types.StudentProfile{
		PersonalTraits:       []string{"compassionate", "analytical"},
		SubjectStrengths:     []string{"biology", "math"},
		WorkEnvironments:     []string{"indoor", "office"},
		EducationWillingness: types.TierFourYear,
		Constraints:          []string{types.ConstraintEarnMoneySoon},
		InterestsText:        "I enjoy coding and helping patients",
	}
	catalog := &types.Catalog{Careers: []types.Career{nurseCareer(), developerCareer()}}

	first := ScoreAll(profile, catalog)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreAll(profile, catalog))
	}
}

func TestScoreAll_StableTieBreakFollowsCatalogOrder(t *testing.T) {
	a := nurseCareer()
	a.ID = "career_a"
	b := nurseCareer()
	b.ID = "career_b"
	c := nurseCareer()
	c.ID = "career_c"

	profile := &types.StudentProfile{
		PersonalTraits:       []string{"compassionate"},
		EducationWillingness: types.TierCollegeTechnical,
	}
	catalog := &types.Catalog{Careers: []types.Career{a, b, c}}

	results := ScoreAll(profile, catalog)
	require.Len(t, results, 3)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, results[1].Score, results[2].Score)
	assert.Equal(t, "career_a", results[0].Career.ID)
	assert.Equal(t, "career_b", results[1].Career.ID)
	assert.Equal(t, "career_c", results[2].Career.ID)
}

func TestScoreAll_EarnMoneySoonConstraint(t *testing.T) {
	slow := developerCareer()
	slow.ID = "slow_path"
	slow.TimeToEntryYears = 6

	fast := developerCareer()
	fast.ID = "fast_path"
	fast.TimeToEntryYears = 1

	profile := &types.StudentProfile{
		EducationWillingness: types.TierFourYear,
		Constraints:          []string{types.ConstraintEarnMoneySoon},
	}
	catalog := &types.Catalog{Careers: []types.Career{slow, fast}}

	results := ScoreAll(profile, catalog)
	byID := map[string]types.MatchResult{}
	for _, r := range results {
		byID[r.Career.ID] = r
	}

	assert.Less(t, byID["slow_path"].SubScores.Constraint, byID["fast_path"].SubScores.Constraint)
	require.NotEmpty(t, byID["slow_path"].FeasibilityNotes)
	assert.Contains(t, byID["slow_path"].FeasibilityNotes[0], "earn money soon")
}

func TestNewEngine_ZeroConfigUsesDefaults(t *testing.T) {
	e := NewEngine(Config{})
	assert.Equal(t, DefaultWeights(), e.weights)
	assert.Equal(t, DefaultEarnSoonYearsThreshold, e.earnSoonYears)
}

func TestScoreAll_CustomWeights(t *testing.T) {
	// An interest-only weighting should rank by tag overlap alone.
	e := NewEngine(Config{Weights: Weights{Interest: 1}})
	profile := &types.StudentProfile{
		PersonalTraits:       []string{"analytical"},
		EducationWillingness: types.TierShortTraining,
	}
	catalog := &types.Catalog{Careers: []types.Career{nurseCareer(), developerCareer()}}

	results := e.ScoreAll(profile, catalog)
	assert.Equal(t, "software_developer", results[0].Career.ID)
}
