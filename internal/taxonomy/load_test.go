package taxonomy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/guidance-engine/internal/types"
)

func TestLoad_ValidCatalog(t *testing.T) {
	catalog, err := Load(filepath.Join("testdata", "valid_catalog.json"))
	require.NoError(t, err)
	require.NotNil(t, catalog)
	require.Len(t, catalog.Careers, 3)

	nurse := catalog.Careers[0]
	assert.Equal(t, "registered_nurse", nurse.ID)
	assert.Equal(t, "Registered Nurse", nurse.Title)
	assert.Equal(t, types.TierCollegeTechnical, nurse.RequiredEducation)
	assert.Equal(t, 2, nurse.TimeToEntryYears)
	// Tags are normalized and sorted at load.
	assert.Equal(t, []string{"compassionate", "detail_oriented", "patient"}, nurse.TraitTags)
	assert.Equal(t, []string{"hands_on", "outdoor"}, catalog.Careers[2].WorkEnvironmentTags)
}

func TestLoad_PreservesDocumentOrder(t *testing.T) {
	catalog, err := Load(filepath.Join("testdata", "valid_catalog.json"))
	require.NoError(t, err)

	ids := make([]string, 0, len(catalog.Careers))
	for _, c := range catalog.Careers {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"registered_nurse", "software_developer", "electrician"}, ids)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.json"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read")
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"careers": [`))
	require.Error(t, err)

	_, ok := err.(*LoadError)
	assert.True(t, ok)
}

func TestParse_MissingRequiredField(t *testing.T) {
	_, err := Parse([]byte(`{"careers": [{"id": "x", "title": "X", "required_education": "four_year", "time_to_entry_years": 4, "average_salary": 50000}]}`))
	require.Error(t, err, "entry without sector must fail the load")
}

func TestParse_BadEducationTier(t *testing.T) {
	_, err := Parse([]byte(`{"careers": [{"id": "x", "title": "X", "sector": "s", "required_education": "bootcamp", "time_to_entry_years": 1, "average_salary": 50000}]}`))
	require.Error(t, err)
}

func TestParse_DuplicateID(t *testing.T) {
	doc := `{"careers": [
		{"id": "x", "title": "X", "sector": "s", "required_education": "short_training", "time_to_entry_years": 1, "average_salary": 40000},
		{"id": "x", "title": "X2", "sector": "s", "required_education": "short_training", "time_to_entry_years": 1, "average_salary": 40000}
	]}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	entryErr, ok := err.(*EntryError)
	require.True(t, ok, "error should be EntryError type")
	assert.Contains(t, entryErr.Error(), "duplicate")
}

func TestParse_EmptyCatalog(t *testing.T) {
	catalog, err := Parse([]byte(`{"careers": []}`))
	require.NoError(t, err)
	assert.Empty(t, catalog.Careers)
}
