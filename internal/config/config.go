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
	// Input paths (JSON files shaped like the internal/types entities)
	Family    string `json:"family,omitempty"`    // Path to job family JSON
	Template  string `json:"template,omitempty"`  // Path to job template JSON
	Company   string `json:"company,omitempty"`   // Path to company profile JSON
	Variant   string `json:"variant,omitempty"`   // Path to company job variant JSON
	Candidate string `json:"candidate,omitempty"` // Path to parsed resume JSON

	// Scoring overrides (zero means use the engine default)
	MustWeight    float64 `json:"must_weight,omitempty"`
	ShouldWeight  float64 `json:"should_weight,omitempty"`
	NiceWeight    float64 `json:"nice_weight,omitempty"`
	GateThreshold float64 `json:"gate_threshold,omitempty"`
	GateCap       float64 `json:"gate_cap,omitempty"`

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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
	fractions := map[string]float64{
		"must_weight":    c.MustWeight,
		"should_weight":  c.ShouldWeight,
		"nice_weight":    c.NiceWeight,
		"gate_threshold": c.GateThreshold,
	}
	for name, v := range fractions {
		if v < 0 || v > 1 {
			return fmt.Errorf("config error: '%s' must be between 0 and 1", name)
		}
	}
	if c.GateCap < 0 || c.GateCap > 100 {
		return fmt.Errorf("config error: 'gate_cap' must be between 0 and 100")
	}

	// Validate file paths exist (if specified)
	paths := map[string]string{
		"family":    c.Family,
		"template":  c.Template,
		"company":   c.Company,
		"variant":   c.Variant,
		"candidate": c.Candidate,
	}
	for name, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Family == "" {
		result.Family = defaults.Family
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.Variant == "" {
		result.Variant = defaults.Variant
	}
	if result.Candidate == "" {
		result.Candidate = defaults.Candidate
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Float fields: use default if zero
	if result.MustWeight == 0 {
		result.MustWeight = defaults.MustWeight
	}
	if result.ShouldWeight == 0 {
		result.ShouldWeight = defaults.ShouldWeight
	}
	if result.NiceWeight == 0 {
		result.NiceWeight = defaults.NiceWeight
	}
	if result.GateThreshold == 0 {
		result.GateThreshold = defaults.GateThreshold
	}
	if result.GateCap == 0 {
		result.GateCap = defaults.GateCap
	}

	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
