package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Threshold != 30 {
		t.Errorf("Threshold = %d, want 30", cfg.Threshold)
	}
	if cfg.MinRegionWidth != 5 || cfg.MinRegionHeight != 5 {
		t.Errorf("Min region size = %dx%d, want 5x5", cfg.MinRegionWidth, cfg.MinRegionHeight)
	}
	if cfg.NMFComponents != 5 {
		t.Errorf("NMFComponents = %d, want 5", cfg.NMFComponents)
	}
	if cfg.IncludeSVD {
		t.Error("IncludeSVD must default to false")
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"threshold too high", func(c *Config) { c.Threshold = 300 }, true},
		{"threshold negative", func(c *Config) { c.Threshold = -1 }, true},
		{"negative min width", func(c *Config) { c.MinRegionWidth = -1 }, true},
		{"zero components", func(c *Config) { c.NMFComponents = 0 }, true},
		{"zero iterations", func(c *Config) { c.NMFIterations = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Threshold = 50
	cfg.IncludeSVD = true
	cfg.NMFSeed = 7

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("threshold: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Threshold != 99 {
		t.Errorf("Threshold = %d, want 99", cfg.Threshold)
	}
	if cfg.NMFComponents != 5 {
		t.Errorf("NMFComponents = %d, want default 5", cfg.NMFComponents)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("threshold: 999\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for out-of-range threshold")
	}
}
