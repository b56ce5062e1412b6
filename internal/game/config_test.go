package game

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfigValid: the shipped defaults must pass validation.
func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

// TestLoadConfigOverlay: file keys override defaults, absent keys keep
// them.
func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beatpong.toml")
	data := []byte("ball_speed = 8.0\ntrack_bpm = 90.0\nestimator = \"fixed\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BallSpeed != 8 {
		t.Errorf("ball_speed = %g, want 8", cfg.BallSpeed)
	}
	if cfg.TrackBPM != 90 {
		t.Errorf("track_bpm = %g, want 90", cfg.TrackBPM)
	}
	if cfg.Estimator != "fixed" {
		t.Errorf("estimator = %q, want \"fixed\"", cfg.Estimator)
	}
	if cfg.CourtWidth != 800 || cfg.PaddleHeight != 100 {
		t.Errorf("defaults not retained: court_width=%g paddle_height=%g", cfg.CourtWidth, cfg.PaddleHeight)
	}
}

// TestLoadConfigMissingFile surfaces the underlying error.
func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

// TestConfigValidateRejects covers the validation rules.
func TestConfigValidateRejects(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero court width", func(c *Config) { c.CourtWidth = 0 }},
		{"negative court height", func(c *Config) { c.CourtHeight = -1 }},
		{"zero ball radius", func(c *Config) { c.BallRadius = 0 }},
		{"zero ball speed", func(c *Config) { c.BallSpeed = 0 }},
		{"zero paddle width", func(c *Config) { c.PaddleWidth = 0 }},
		{"paddle taller than court", func(c *Config) { c.PaddleHeight = 700 }},
		{"zero min scale", func(c *Config) { c.MinSpeedScale = 0 }},
		{"inverted scale bounds", func(c *Config) { c.MinSpeedScale = 2; c.MaxSpeedScale = 1 }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
