package types

// Career is a single entry in the static career taxonomy. Entries are
// immutable after load; the matching engine never mutates catalog entries.
type Career struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Sector  string `json:"sector"`
	Cluster string `json:"cluster"`

	RequiredEducation EducationTier `json:"required_education"`
	TimeToEntryYears  int           `json:"time_to_entry_years"`
	AverageSalary     int           `json:"average_salary"`

	TraitTags           []string `json:"trait_tags"`
	InterestTags        []string `json:"interest_tags"`
	WorkEnvironmentTags []string `json:"work_environment_tags"`
}

// Summary returns the display subset of the career used in result payloads.
func (c *Career) Summary() CareerSummary {
	return CareerSummary{
		ID:      c.ID,
		Title:   c.Title,
		Sector:  c.Sector,
		Cluster: c.Cluster,
	}
}

// CareerSummary is the display subset of a Career embedded in payloads.
type CareerSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Sector  string `json:"sector"`
	Cluster string `json:"cluster,omitempty"`
}

// Catalog is the loaded career taxonomy. Careers preserve document order,
// which the engine uses as the stable tie-break for equal scores. The
// catalog is read-only after load and safe to share across concurrent
// scoring calls.
type Catalog struct {
	Careers []Career `json:"careers"`
}
