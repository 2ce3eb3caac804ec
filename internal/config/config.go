package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional netproof.yaml configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig controls how statement files are read.
type InputConfig struct {
	// Sheet is the worksheet to read from xlsx statements. Empty = first.
	Sheet string `yaml:"sheet,omitempty"`
	// DateLayouts are Go reference layouts tried in order against Date
	// cells. Order resolves dd/mm vs mm/dd ambiguity.
	DateLayouts []string `yaml:"date_layouts,omitempty"`
}

// OutputConfig controls the report workbook.
type OutputConfig struct {
	File           string `yaml:"file"`
	UnmatchedSheet string `yaml:"unmatched_sheet"`
	MatchedSheet   string `yaml:"matched_sheet"`
}

// Load reads a netproof.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path if it exists and falls back to Default when it
// does not.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no netproof.yaml is present.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			DateLayouts: []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05"},
		},
		Output: OutputConfig{
			File:           "Reconciled_Account_Report.xlsx",
			UnmatchedSheet: "Unmatched Statement",
			MatchedSheet:   "Matched Entries",
		},
	}
}
