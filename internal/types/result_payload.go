package types

import "time"

// DetailedMatch is a top-N match enriched with a full pathway plan.
type DetailedMatch struct {
	Career           CareerSummary `json:"career"`
	MatchScore       int           `json:"matchScore"`
	Reasoning        []string      `json:"reasoning"`
	FeasibilityNotes []string      `json:"feasibilityNotes"`
	Pathway          PathwayPlan   `json:"pathway"`
	SalaryBand       string        `json:"salaryBand,omitempty"`
}

// MatchSummary is the compact form used for matches beyond the top N.
type MatchSummary struct {
	CareerID string `json:"careerId"`
	Title    string `json:"title"`
	Score    int    `json:"score"`
}

// ClusterSummary is the coarse roll-up of scores across a career cluster.
type ClusterSummary struct {
	Cluster string `json:"cluster"`
	Score   int    `json:"score"`
	Careers int    `json:"careers"`
}

// ValidationSummary carries the user-facing warning strings derived from
// normalization FieldWarnings.
type ValidationSummary struct {
	Warnings []string `json:"warnings"`
}

// ProfileSummary echoes the normalized key profile fields for display.
type ProfileSummary struct {
	Grade                int      `json:"grade"`
	ZipCode              string   `json:"zipCode,omitempty"`
	EducationWillingness string   `json:"educationWillingness"`
	SubjectStrengths     []string `json:"subjectStrengths"`
	PersonalTraits       []string `json:"personalTraits"`
	Constraints          []string `json:"constraints"`
}

// ResultPayload is the final response returned to the caller. Field names
// follow the external contract consumed by the web layer. GeneratedAt and
// GenerationID are metadata only and are excluded from determinism
// comparisons.
type ResultPayload struct {
	TopJobMatches         []DetailedMatch   `json:"topJobMatches"`
	AllMatches            []MatchSummary    `json:"allMatches"`
	TopClusters           []ClusterSummary  `json:"topClusters,omitempty"`
	Validation            ValidationSummary `json:"validation"`
	StudentProfileSummary ProfileSummary    `json:"studentProfileSummary"`

	GeneratedAt  time.Time `json:"generatedAt"`
	GenerationID string    `json:"generationId"`
}
