package types

// SubScores holds the five normalized component scores (each 0-100) that
// feed the weighted total. They are retained on the MatchResult so reasoning
// generation and tests can inspect which dimensions drove the score.
type SubScores struct {
	Interest    float64 `json:"interest"`
	Academic    float64 `json:"academic"`
	Education   float64 `json:"education"`
	Environment float64 `json:"environment"`
	Constraint  float64 `json:"constraint"`
}

// MatchResult is the scored outcome for a single career. Results are created
// fresh per scoring call and never persisted by this core.
type MatchResult struct {
	Career    Career    `json:"career"`
	Score     int       `json:"score"`
	SubScores SubScores `json:"sub_scores"`

	// Reasoning lists the top contributing factors in descending order of
	// weighted contribution.
	Reasoning []string `json:"reasoning"`

	// FeasibilityNotes flag structural mismatches between the profile and
	// the career (for example an education-level gap). Generated purely
	// from rule violations.
	FeasibilityNotes []string `json:"feasibility_notes"`
}
