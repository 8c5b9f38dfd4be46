package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/guidance-engine/internal/taxonomy"
)

func TestPathwayCommand_KnownCareer(t *testing.T) {
	pathwayResponses, pathwayCatalog = writeScoreFixtures(t)
	pathwayCareerID = "registered_nurse"
	pathwayEnrich = false

	assert.NoError(t, runPathway(pathwayCmd, nil))
}

func TestPathwayCommand_UnknownCareer(t *testing.T) {
	pathwayResponses, pathwayCatalog = writeScoreFixtures(t)
	pathwayCareerID = "astronaut"
	pathwayEnrich = false

	err := runPathway(pathwayCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPathwayCommand_MissingCatalog(t *testing.T) {
	pathwayResponses, _ = writeScoreFixtures(t)
	pathwayCatalog = filepath.Join(t.TempDir(), "absent.json")
	pathwayCareerID = "registered_nurse"
	pathwayEnrich = false

	err := runPathway(pathwayCmd, nil)
	assert.Error(t, err)
}

func TestFindCareer(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalogJSON), 0o644))

	catalog, err := taxonomy.Load(catalogPath)
	require.NoError(t, err)

	assert.NotNil(t, findCareer(catalog, "software_developer"))
	assert.Nil(t, findCareer(catalog, "missing"))
}
