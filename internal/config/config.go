// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog   string `json:"catalog,omitempty"`   // Path to career catalog JSON file
	Responses string `json:"responses,omitempty"` // Path to questionnaire responses JSON file
	Output    string `json:"output,omitempty"`    // Path to write the result payload to

	// Engine tunables
	TopMatches             int     `json:"top_matches,omitempty"`               // Number of matches that get full pathway detail
	EarnSoonYearsThreshold int     `json:"earn_soon_years_threshold,omitempty"` // Years beyond which earn-money-soon penalties start
	InterestWeight         float64 `json:"interest_weight,omitempty"`           // Override for the interest sub-score weight
	AcademicWeight         float64 `json:"academic_weight,omitempty"`           // Override for the academic sub-score weight
	EducationWeight        float64 `json:"education_weight,omitempty"`          // Override for the education-fit sub-score weight
	EnvironmentWeight      float64 `json:"environment_weight,omitempty"`        // Override for the environment sub-score weight
	ConstraintWeight       float64 `json:"constraint_weight,omitempty"`         // Override for the constraint sub-score weight

	// Caching
	RedisURL        string `json:"redis_url,omitempty"`         // Redis connection URL for the outlook cache
	CacheTTLSeconds int    `json:"cache_ttl_seconds,omitempty"` // TTL for cached outlook entries

	// Behavior
	APIKey   string `json:"api_key,omitempty"`   // Gemini API key for optional pathway enrichment
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
	JSONLogs bool   `json:"json_logs,omitempty"` // Emit structured JSON logs
	Debug    bool   `json:"debug,omitempty"`     // Lower the log level to debug
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TopMatches < 0 {
		return fmt.Errorf("config error: 'top_matches' must be non-negative")
	}
	if c.EarnSoonYearsThreshold < 0 {
		return fmt.Errorf("config error: 'earn_soon_years_threshold' must be non-negative")
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("config error: 'cache_ttl_seconds' must be non-negative")
	}

	weights := []struct {
		name  string
		value float64
	}{
		{"interest_weight", c.InterestWeight},
		{"academic_weight", c.AcademicWeight},
		{"education_weight", c.EducationWeight},
		{"environment_weight", c.EnvironmentWeight},
		{"constraint_weight", c.ConstraintWeight},
	}
	for _, w := range weights {
		if w.value < 0 || w.value > 1 {
			return fmt.Errorf("config error: '%s' must be between 0.0 and 1.0", w.name)
		}
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	if c.Responses != "" {
		if _, err := os.Stat(c.Responses); os.IsNotExist(err) {
			return fmt.Errorf("config error: responses file not found: %s", c.Responses)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Responses == "" {
		result.Responses = defaults.Responses
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.TopMatches == 0 {
		result.TopMatches = defaults.TopMatches
	}
	if result.EarnSoonYearsThreshold == 0 {
		result.EarnSoonYearsThreshold = defaults.EarnSoonYearsThreshold
	}
	if result.CacheTTLSeconds == 0 {
		result.CacheTTLSeconds = defaults.CacheTTLSeconds
	}

	// Float fields: use default if zero
	if result.InterestWeight == 0 {
		result.InterestWeight = defaults.InterestWeight
	}
	if result.AcademicWeight == 0 {
		result.AcademicWeight = defaults.AcademicWeight
	}
	if result.EducationWeight == 0 {
		result.EducationWeight = defaults.EducationWeight
	}
	if result.EnvironmentWeight == 0 {
		result.EnvironmentWeight = defaults.EnvironmentWeight
	}
	if result.ConstraintWeight == 0 {
		result.ConstraintWeight = defaults.ConstraintWeight
	}

	// Bool fields: true wins, flags can only turn behavior on
	result.Verbose = result.Verbose || defaults.Verbose
	result.JSONLogs = result.JSONLogs || defaults.JSONLogs
	result.Debug = result.Debug || defaults.Debug

	return result
}
