package parsing

import (
	"sort"
	"strings"
	"unicode"
)

// themeStopWords filters common English words that add noise to theme
// extraction from free-text answers.
var themeStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"like": true, "want": true, "really": true, "would": true, "about": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "when": true,
	"because": true, "things": true, "something": true, "people": true,
}

// themeKeywords maps interest theme tags to the keywords that signal them in
// free text. Matching is whole-token, case-insensitive.
var themeKeywords = map[string][]string{
	"healthcare": {"doctor", "nurse", "nursing", "hospital", "medicine", "medical", "health", "patients", "caring", "therapy"},
	"technology": {"computer", "computers", "coding", "code", "software", "programming", "games", "robotics", "technology", "apps"},
	"trades":     {"building", "fixing", "cars", "engines", "tools", "wood", "welding", "repair", "machines", "construction"},
	"arts":       {"drawing", "painting", "music", "singing", "acting", "writing", "design", "creative", "photography", "dance"},
	"business":   {"business", "money", "selling", "entrepreneur", "managing", "marketing", "store", "leadership", "finance"},
	"education":  {"teaching", "teacher", "tutoring", "school", "kids", "children", "learning", "mentoring"},
	"science":    {"science", "biology", "chemistry", "physics", "experiments", "research", "nature", "animals", "space", "lab"},
	"service":    {"helping", "volunteer", "volunteering", "community", "serving", "church", "charity"},
	"outdoor":    {"outdoors", "outside", "farming", "fishing", "hiking", "wildlife", "camping", "landscaping"},
}

// Tokenize splits free text into lowercase word tokens of 3+ characters,
// skipping stop words.
func Tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len([]rune(w)) >= 3 && !themeStopWords[w] {
			tokens[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// ExtractThemes extracts interest theme tags signaled by the free-text
// answers. The result is sorted so repeated extraction from identical input
// is byte-identical.
func ExtractThemes(texts ...string) []string {
	tokens := make(map[string]bool)
	for _, text := range texts {
		for token := range Tokenize(text) {
			tokens[token] = true
		}
	}

	themes := make([]string, 0, 4)
	for theme, keywords := range themeKeywords {
		for _, kw := range keywords {
			if tokens[kw] {
				themes = append(themes, theme)
				break
			}
		}
	}

	sort.Strings(themes)
	return themes
}
