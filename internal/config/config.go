// Package config loads tool configuration with layered precedence:
// built-in defaults, then an optional assessor.yaml. Scoring constants
// (maturity cut points, gap threshold) live here because the product treats
// them as configurable, not derived truths.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory
// when no explicit path is given.
const DefaultFile = "assessor.yaml"

// Config is the merged tool configuration.
type Config struct {
	// CatalogPath points at a taxonomy YAML file; empty uses the
	// built-in catalog.
	CatalogPath string `yaml:"catalog"`
	DBPath      string `yaml:"db"`
	OutDir      string `yaml:"out"`
	ListenAddr  string `yaml:"listen"`

	// MinScore is the CI pass/fail policy on the overall score.
	MinScore float64 `yaml:"minScore"`
	// GapThreshold is the score below which a high-stakes question is a
	// critical gap.
	GapThreshold float64 `yaml:"gapThreshold"`
	// MaturityCutpoints are the three ascending interior band boundaries.
	MaturityCutpoints []float64 `yaml:"maturityCutpoints"`

	// Frameworks restricts scoring to the listed framework ids. Empty
	// means all enabled frameworks.
	Frameworks []string `yaml:"frameworks"`

	Organization string `yaml:"organization"`
	Team         string `yaml:"team"`
	Environment  string `yaml:"environment"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DBPath:            "assessor.db",
		OutDir:            "./out",
		ListenAddr:        ":8080",
		MinScore:          0.5,
		GapThreshold:      0.5,
		MaturityCutpoints: []float64{0.25, 0.5, 0.75},
	}
}

// Load returns defaults merged with the file at path. A missing file at
// the default location is fine; an explicitly named file must exist.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			logger.Debug("no config file, using defaults", slog.String("path", path))
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Merge(&file)
	logger.Debug("loaded config", slog.String("path", path))
	return cfg, nil
}

// Merge overlays non-zero fields from other onto c.
func (c *Config) Merge(other *Config) {
	if other.CatalogPath != "" {
		c.CatalogPath = other.CatalogPath
	}
	if other.DBPath != "" {
		c.DBPath = other.DBPath
	}
	if other.OutDir != "" {
		c.OutDir = other.OutDir
	}
	if other.ListenAddr != "" {
		c.ListenAddr = other.ListenAddr
	}
	if other.MinScore > 0 {
		c.MinScore = other.MinScore
	}
	if other.GapThreshold > 0 {
		c.GapThreshold = other.GapThreshold
	}
	if len(other.MaturityCutpoints) > 0 {
		c.MaturityCutpoints = other.MaturityCutpoints
	}
	if len(other.Frameworks) > 0 {
		c.Frameworks = other.Frameworks
	}
	if other.Organization != "" {
		c.Organization = other.Organization
	}
	if other.Team != "" {
		c.Team = other.Team
	}
	if other.Environment != "" {
		c.Environment = other.Environment
	}
}
