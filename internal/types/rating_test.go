package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		input    string
		expected Rating
		ok       bool
	}{
		{"excellent", RatingExcellent, true},
		{"Below Average", RatingBelowAverage, true},
		{"below-average", RatingBelowAverage, true},
		{" good ", RatingGood, true},
		{"3", RatingAverage, true},
		{"5", RatingExcellent, true},
		{"0", RatingUnknown, false},
		{"amazing", RatingUnknown, false},
		{"", RatingUnknown, false},
	}

	for _, tt := range tests {
		r, ok := ParseRating(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.expected, r, "input %q", tt.input)
	}
}

func TestRating_UnmarshalNumeric(t *testing.T) {
	var r Rating
	require.NoError(t, json.Unmarshal([]byte(`4`), &r))
	assert.Equal(t, RatingGood, r)

	require.NoError(t, json.Unmarshal([]byte(`9`), &r))
	assert.Equal(t, RatingUnknown, r)
}

func TestRating_Ordering(t *testing.T) {
	assert.Less(t, RatingPoor, RatingAverage)
	assert.Less(t, RatingAverage, RatingExcellent)
}
