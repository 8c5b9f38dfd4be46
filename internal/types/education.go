package types

import (
	"encoding/json"
	"strings"
)

// EducationTier is an ordinal bucket of required-education level. Higher
// values mean a longer education commitment. The ordering is load-bearing:
// the matching engine compares tiers numerically and the pathway synthesizer
// selects step templates by tier.
type EducationTier int

const (
	// TierUnknown is the zero value for unrecognized or missing input.
	TierUnknown EducationTier = iota
	// TierShortTraining covers certificate programs and on-the-job training.
	TierShortTraining
	// TierCollegeTechnical covers associate degrees and technical college.
	TierCollegeTechnical
	// TierFourYear covers bachelor's degrees.
	TierFourYear
	// TierAdvanced covers graduate and professional degrees.
	TierAdvanced
)

var tierNames = map[EducationTier]string{
	TierShortTraining:    "short_training",
	TierCollegeTechnical: "college_technical",
	TierFourYear:         "four_year",
	TierAdvanced:         "advanced",
}

var tierValues = map[string]EducationTier{
	"short_training":    TierShortTraining,
	"college_technical": TierCollegeTechnical,
	"four_year":         TierFourYear,
	"advanced":          TierAdvanced,
}

// String returns the canonical snake_case name of the tier, or empty string
// for TierUnknown.
func (t EducationTier) String() string {
	return tierNames[t]
}

// ParseEducationTier parses a tier name (case-insensitive, surrounding
// whitespace ignored). Returns TierUnknown and false for unrecognized input.
func ParseEducationTier(s string) (EducationTier, bool) {
	t, ok := tierValues[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// MarshalJSON encodes the tier as its canonical name.
func (t EducationTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier name leniently: unrecognized values become
// TierUnknown rather than an error. Catalog loading applies its own strict
// validation before conversion.
func (t *EducationTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, _ := ParseEducationTier(s)
	*t = parsed
	return nil
}
