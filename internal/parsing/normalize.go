// Package parsing provides tag, subject, and free-text normalization shared
// by the normalizer and the matching engine.
package parsing

import "strings"

// tagNormalizations maps common tag variants to canonical snake_case tags.
var tagNormalizations = map[string]string{
	"health care":     "healthcare",
	"health_care":     "healthcare",
	"medical":         "healthcare",
	"tech":            "technology",
	"it":              "technology",
	"computers":       "technology",
	"hands on":        "hands_on",
	"hands-on":        "hands_on",
	"outdoors":        "outdoor",
	"out_doors":       "outdoor",
	"office work":     "office",
	"team work":       "teamwork",
	"team_work":       "teamwork",
	"detail oriented": "detail_oriented",
	"detail-oriented": "detail_oriented",
	"problem solving": "problem_solving",
	"problem-solving": "problem_solving",
}

// subjectNormalizations maps subject name variants to canonical subject keys.
var subjectNormalizations = map[string]string{
	"maths":              "math",
	"mathematics":        "math",
	"algebra":            "math",
	"bio":                "biology",
	"chem":               "chemistry",
	"language arts":      "english",
	"language_arts":      "english",
	"ela":                "english",
	"social studies":     "history",
	"social_studies":     "history",
	"cs":                 "computer_science",
	"computer science":   "computer_science",
	"programming":        "computer_science",
	"pe":                 "physical_education",
	"gym":                "physical_education",
	"physical education": "physical_education",
	"shop":               "industrial_arts",
	"shop class":         "industrial_arts",
}

// NormalizeTag converts a trait/interest/environment tag to canonical
// lowercase snake_case form. Returns empty string for blank input.
func NormalizeTag(tag string) string {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "" {
		return ""
	}
	if canonical, ok := tagNormalizations[normalized]; ok {
		return canonical
	}
	return strings.ReplaceAll(normalized, " ", "_")
}

// NormalizeSubject converts an academic subject name to its canonical key.
// Returns empty string for blank input.
func NormalizeSubject(subject string) string {
	normalized := strings.ToLower(strings.TrimSpace(subject))
	if normalized == "" {
		return ""
	}
	if canonical, ok := subjectNormalizations[normalized]; ok {
		return canonical
	}
	return strings.ReplaceAll(normalized, " ", "_")
}

// NormalizeTagSet normalizes, deduplicates, and returns tags in input order
// with duplicates removed. Callers that need deterministic output should
// sort the result.
func NormalizeTagSet(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized := NormalizeTag(tag)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}
