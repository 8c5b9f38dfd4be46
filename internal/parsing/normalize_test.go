package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Healthcare", "healthcare"},
		{"Health Care", "healthcare"},
		{"medical", "healthcare"},
		{"Tech", "technology"},
		{"Hands-On", "hands_on"},
		{"Detail Oriented", "detail_oriented"},
		{"compassionate", "compassionate"},
		{"Working With Animals", "working_with_animals"},
		{"  ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeTag(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeSubject(t *testing.T) {
	assert.Equal(t, "math", NormalizeSubject("Mathematics"))
	assert.Equal(t, "math", NormalizeSubject("maths"))
	assert.Equal(t, "biology", NormalizeSubject("Bio"))
	assert.Equal(t, "english", NormalizeSubject("Language Arts"))
	assert.Equal(t, "computer_science", NormalizeSubject("Computer Science"))
	assert.Equal(t, "history", NormalizeSubject("Social Studies"))
	assert.Equal(t, "", NormalizeSubject(""))
}

func TestNormalizeTagSet_Dedupes(t *testing.T) {
	out := NormalizeTagSet([]string{"Tech", "technology", "Creative", "creative", ""})
	assert.Equal(t, []string{"technology", "creative"}, out)
}

func TestExtractThemes(t *testing.T) {
	themes := ExtractThemes(
		"I love helping patients at the hospital",
		"I spend weekends coding games on my computer",
	)
	assert.Equal(t, []string{"healthcare", "technology"}, themes)
}

func TestExtractThemes_Empty(t *testing.T) {
	assert.Empty(t, ExtractThemes(""))
	assert.Empty(t, ExtractThemes())
}

func TestExtractThemes_Deterministic(t *testing.T) {
	text := "building cars and fixing engines, also drawing and painting"
	first := ExtractThemes(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtractThemes(text))
	}
	assert.Equal(t, []string{"arts", "trades"}, first)
}

func TestTokenize_SkipsShortAndStopWords(t *testing.T) {
	tokens := Tokenize("I am the one who likes coding")
	assert.True(t, tokens["coding"])
	assert.True(t, tokens["likes"])
	assert.False(t, tokens["the"])
	assert.False(t, tokens["am"])
}
