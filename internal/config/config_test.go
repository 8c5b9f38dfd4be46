package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"catalog": "testdata/catalog.json",
		"top_matches": 3,
		"interest_weight": 0.5,
		"cache_ttl_seconds": 3600,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "testdata/catalog.json", cfg.Catalog)
	assert.Equal(t, 3, cfg.TopMatches)
	assert.Equal(t, 0.5, cfg.InterestWeight)
	assert.Equal(t, 3600, cfg.CacheTTLSeconds)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"top_matches": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("zero config is valid", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("negative top matches", func(t *testing.T) {
		cfg := &Config{TopMatches: -1}
		assert.Error(t, cfg.Validate())
	})

	t.Run("weight out of range", func(t *testing.T) {
		cfg := &Config{AcademicWeight: 1.5}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "academic_weight")
	})

	t.Run("missing catalog file", func(t *testing.T) {
		cfg := &Config{Catalog: filepath.Join(t.TempDir(), "absent.json")}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog file not found")
	})

	t.Run("existing catalog file", func(t *testing.T) {
		path := writeTempConfig(t, `[]`)
		cfg := &Config{Catalog: path}
		assert.NoError(t, cfg.Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Catalog:    "mine.json",
		TopMatches: 7,
		Debug:      true,
	}
	defaults := Config{
		Catalog:         "default.json",
		Responses:       "responses.json",
		TopMatches:      5,
		CacheTTLSeconds: 600,
		InterestWeight:  0.35,
		Verbose:         true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win over defaults.
	assert.Equal(t, "mine.json", merged.Catalog)
	assert.Equal(t, 7, merged.TopMatches)

	// Zero values are filled in.
	assert.Equal(t, "responses.json", merged.Responses)
	assert.Equal(t, 600, merged.CacheTTLSeconds)
	assert.Equal(t, 0.35, merged.InterestWeight)

	// Bools combine with or.
	assert.True(t, merged.Verbose)
	assert.True(t, merged.Debug)

	// Original is untouched.
	assert.Equal(t, "", cfg.Responses)
}
