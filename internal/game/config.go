package game

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds all tunable game parameters.
// All speeds and steps are in logical pixels per frame (the loop paces to a
// fixed frame rate, so the per-frame step is the unit of motion).
type Config struct {
	// Court
	CourtWidth  float64 `toml:"court_width"`
	CourtHeight float64 `toml:"court_height"`

	// Ball
	BallRadius float64 `toml:"ball_radius"`
	BallSpeed  float64 `toml:"ball_speed"` // base speed before tempo scaling

	// Paddles
	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	HumanStep    float64 `toml:"human_step"`
	RuleStep     float64 `toml:"rule_step"`
	DeadZone     float64 `toml:"dead_zone"` // rule paddle tracking slack

	// Tempo-to-speed mapping bounds on the speed multiplier
	MinSpeedScale float64 `toml:"min_speed_scale"`
	MaxSpeedScale float64 `toml:"max_speed_scale"`

	// Audio
	TrackBPM  float64 `toml:"track_bpm"` // tempo of the generated track
	Estimator string  `toml:"estimator"` // "energy" or "fixed"
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		CourtWidth:  800,
		CourtHeight: 600,

		BallRadius: 10,
		BallSpeed:  5,

		PaddleWidth:  10,
		PaddleHeight: 100,
		HumanStep:    7,
		RuleStep:     5,
		DeadZone:     35,

		MinSpeedScale: 0.5,
		MaxSpeedScale: 2.0,

		TrackBPM:  120,
		Estimator: "energy",
	}
}

// LoadConfig reads a TOML config file and overlays it on the defaults.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.CourtWidth <= 0 || c.CourtHeight <= 0 {
		return fmt.Errorf("court dimensions must be positive, got %gx%g", c.CourtWidth, c.CourtHeight)
	}
	if c.BallRadius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %g", c.BallRadius)
	}
	if c.BallSpeed <= 0 {
		return fmt.Errorf("ball speed must be positive, got %g", c.BallSpeed)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return fmt.Errorf("paddle dimensions must be positive, got %gx%g", c.PaddleWidth, c.PaddleHeight)
	}
	if c.PaddleHeight > c.CourtHeight {
		return fmt.Errorf("paddle height %g exceeds court height %g", c.PaddleHeight, c.CourtHeight)
	}
	if c.MinSpeedScale <= 0 || c.MaxSpeedScale < c.MinSpeedScale {
		return fmt.Errorf("speed scale bounds [%g, %g] are invalid", c.MinSpeedScale, c.MaxSpeedScale)
	}
	return nil
}
