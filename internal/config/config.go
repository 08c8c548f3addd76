// Runtime configuration for the comparison pipeline
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a comparison run. The zero value is not
// usable; start from Default and override.
type Config struct {
	// Threshold is the binary cutoff applied to the combined difference map.
	Threshold int `yaml:"threshold"`

	// MinRegionWidth and MinRegionHeight are exclusive lower bounds: a
	// detected rectangle survives only if both dimensions are strictly
	// greater.
	MinRegionWidth  int `yaml:"min_region_width"`
	MinRegionHeight int `yaml:"min_region_height"`

	// NMF solver parameters. The fixed seed keeps repeated runs identical.
	NMFComponents int   `yaml:"nmf_components"`
	NMFIterations int   `yaml:"nmf_iterations"`
	NMFSeed       int64 `yaml:"nmf_seed"`

	// IncludeSVD folds the SVD difference map into the combined map. The
	// SVD map is always computed and shown, but historically it never took
	// part in region detection, so this defaults to false.
	IncludeSVD bool `yaml:"include_svd"`
}

// Default returns the configuration matching the original detector behavior.
func Default() *Config {
	return &Config{
		Threshold:       30,
		MinRegionWidth:  5,
		MinRegionHeight: 5,
		NMFComponents:   5,
		NMFIterations:   200,
		NMFSeed:         0,
		IncludeSVD:      false,
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks value ranges before the pipeline runs.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold must be between 0 and 255, got %d", c.Threshold)
	}
	if c.MinRegionWidth < 0 || c.MinRegionHeight < 0 {
		return fmt.Errorf("minimum region size must not be negative, got %dx%d",
			c.MinRegionWidth, c.MinRegionHeight)
	}
	if c.NMFComponents < 1 {
		return fmt.Errorf("nmf_components must be at least 1, got %d", c.NMFComponents)
	}
	if c.NMFIterations < 1 {
		return fmt.Errorf("nmf_iterations must be at least 1, got %d", c.NMFIterations)
	}
	return nil
}
