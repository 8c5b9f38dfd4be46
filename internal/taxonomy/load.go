package taxonomy

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/careercompass/guidance-engine/internal/parsing"
	"github.com/careercompass/guidance-engine/internal/schemas"
	"github.com/careercompass/guidance-engine/internal/types"
)

// CatalogSchemaPath is the repo-relative path of the catalog JSON Schema.
const CatalogSchemaPath = "schemas/career_catalog.schema.json"

// careerDoc mirrors a catalog entry as it appears in the document, with
// struct-level validation rules. Tier conversion happens after validation.
type careerDoc struct {
	ID                  string   `json:"id" validate:"required"`
	Title               string   `json:"title" validate:"required"`
	Sector              string   `json:"sector" validate:"required"`
	Cluster             string   `json:"cluster"`
	RequiredEducation   string   `json:"required_education" validate:"required,oneof=short_training college_technical four_year advanced"`
	TimeToEntryYears    int      `json:"time_to_entry_years" validate:"gte=0,lte=15"`
	AverageSalary       int      `json:"average_salary" validate:"gte=0"`
	TraitTags           []string `json:"trait_tags"`
	InterestTags        []string `json:"interest_tags"`
	WorkEnvironmentTags []string `json:"work_environment_tags"`
}

type catalogDoc struct {
	Careers []careerDoc `json:"careers"`
}

// Load reads and validates a catalog document from a file. Any malformed
// entry fails the whole load.
func Load(path string) (*types.Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to read catalog file " + path,
			Cause:   err,
		}
	}
	return Parse(content)
}

// Parse validates and converts an in-memory catalog document. Validation
// runs in two passes: the JSON Schema (when the schema document can be
// resolved on disk) and per-entry struct validation, which also guards
// deployments where the schema file is not installed next to the binary.
func Parse(content []byte) (*types.Catalog, error) {
	if schemaPath := schemas.ResolveSchemaPath(CatalogSchemaPath); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, content); err != nil {
			return nil, &LoadError{
				Message: "catalog failed schema validation",
				Cause:   err,
			}
		}
	}

	var doc catalogDoc
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal catalog JSON",
			Cause:   err,
		}
	}

	validate := validator.New()
	seen := make(map[string]bool, len(doc.Careers))
	careers := make([]types.Career, 0, len(doc.Careers))

	for i, entry := range doc.Careers {
		if err := validate.Struct(entry); err != nil {
			return nil, &EntryError{
				Index:   i,
				ID:      entry.ID,
				Message: "invalid catalog entry",
				Cause:   err,
			}
		}
		if seen[entry.ID] {
			return nil, &EntryError{
				Index:   i,
				ID:      entry.ID,
				Message: "duplicate career id",
			}
		}
		seen[entry.ID] = true

		tier, ok := types.ParseEducationTier(entry.RequiredEducation)
		if !ok {
			return nil, &EntryError{
				Index:   i,
				ID:      entry.ID,
				Message: "unrecognized required_education " + entry.RequiredEducation,
			}
		}

		careers = append(careers, types.Career{
			ID:                  entry.ID,
			Title:               entry.Title,
			Sector:              entry.Sector,
			Cluster:             entry.Cluster,
			RequiredEducation:   tier,
			TimeToEntryYears:    entry.TimeToEntryYears,
			AverageSalary:       entry.AverageSalary,
			TraitTags:           normalizeTags(entry.TraitTags),
			InterestTags:        normalizeTags(entry.InterestTags),
			WorkEnvironmentTags: normalizeTags(entry.WorkEnvironmentTags),
		})
	}

	return &types.Catalog{Careers: careers}, nil
}

// normalizeTags canonicalizes and sorts a tag list so catalog tag sets
// compare deterministically during scoring.
func normalizeTags(tags []string) []string {
	normalized := parsing.NormalizeTagSet(tags)
	sort.Strings(normalized)
	return normalized
}
