package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Rating is an ordinal academic performance rating for a single subject.
type Rating int

const (
	// RatingUnknown is the zero value for missing or unrecognized input.
	RatingUnknown Rating = iota
	// RatingPoor is the lowest rating.
	RatingPoor
	// RatingBelowAverage sits between poor and average.
	RatingBelowAverage
	// RatingAverage is the midpoint rating.
	RatingAverage
	// RatingGood sits between average and excellent.
	RatingGood
	// RatingExcellent is the highest rating.
	RatingExcellent
)

var ratingNames = map[Rating]string{
	RatingPoor:         "poor",
	RatingBelowAverage: "below_average",
	RatingAverage:      "average",
	RatingGood:         "good",
	RatingExcellent:    "excellent",
}

// String returns the canonical snake_case name of the rating, or empty
// string for RatingUnknown.
func (r Rating) String() string {
	return ratingNames[r]
}

// ParseRating parses a rating leniently. Accepts canonical names
// ("excellent"), spaced variants ("below average"), and numeric strings
// 1-5. Returns RatingUnknown and false for unrecognized input.
func ParseRating(s string) (Rating, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	for r, name := range ratingNames {
		if normalized == name {
			return r, true
		}
	}

	if n, err := strconv.Atoi(normalized); err == nil && n >= 1 && n <= 5 {
		return Rating(n), true
	}

	return RatingUnknown, false
}

// MarshalJSON encodes the rating as its canonical name.
func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a rating leniently; unrecognized values become
// RatingUnknown rather than an error.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, _ := ParseRating(s)
		*r = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if n >= 1 && n <= 5 {
		*r = Rating(n)
	} else {
		*r = RatingUnknown
	}
	return nil
}
