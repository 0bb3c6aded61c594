package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const froggerFile = "frogger.yaml"

// LoadFrogger loads Frogger configuration.
// Search order: customPath -> ~/.frogger/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default
func LoadFrogger(customPath string) (FroggerConfig, error) {
	var cfg FroggerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err = ParseFrogger(data)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(froggerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseFrogger(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", froggerFile)); err == nil {
		if cfg, err := ParseFrogger(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseFrogger(defaultFroggerYAML)
	if err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseFrogger decodes YAML on top of the defaults and validates the result.
// Sections missing from data keep their default values.
func ParseFrogger(data []byte) (FroggerConfig, error) {
	cfg := DefaultFroggerConfig()
	// Lanes are replaced, not merged, when the document defines them.
	cfg.Lanes = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Lanes == nil {
		cfg.Lanes = DefaultFroggerConfig().Lanes
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration back to YAML.
func (c FroggerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable board.
// All problems are reported together.
func (c FroggerConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		add("playfield: size must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Playfield.Cell <= 0 {
		add("playfield: cell must be positive, got %g", c.Playfield.Cell)
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		add("actor: size must be positive")
	} else if c.Actor.X < 0 || c.Actor.Y < 0 ||
		c.Actor.X+c.Actor.Width > c.Playfield.Width || c.Actor.Y+c.Actor.Height > c.Playfield.Height {
		add("actor: start box (%g,%g) is outside the playfield", c.Actor.X, c.Actor.Y)
	}
	if c.River.Width <= 0 || c.River.Height <= 0 {
		add("river: size must be positive")
	}
	if c.Goals.Count <= 0 {
		add("goals: count must be positive, got %d", c.Goals.Count)
	}
	if c.Goals.Width <= 0 || c.Goals.Height <= 0 {
		add("goals: size must be positive")
	}
	if c.Collectibles.Width <= 0 || c.Collectibles.Height <= 0 {
		add("collectibles: size must be positive")
	}
	if c.Scoring.Goal < 0 || c.Scoring.Collectible < 0 {
		add("scoring: increments must not be negative")
	}
	if c.Cycling.Period <= 0 {
		add("cycling: period must be positive, got %d", c.Cycling.Period)
	} else if c.Cycling.Solid < 0 || c.Cycling.Transition < 0 || c.Cycling.Solid+c.Cycling.Transition > c.Cycling.Period {
		add("cycling: solid+transition must fit in the period")
	}
	if c.Timing.TickRate <= 0 {
		add("timing: tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.MoveThrottleMS < 0 {
		add("timing: move_throttle_ms must not be negative")
	}

	names := make(map[string]bool, len(c.Lanes))
	for i, l := range c.Lanes {
		label := l.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		} else if names[label] {
			add("lane %s: duplicate name", label)
		}
		names[label] = true

		switch l.Kind {
		case LaneVehicle, LanePlatform:
		default:
			add("lane %s: unknown kind %q", label, l.Kind)
		}
		if len(l.Periods) == 0 {
			add("lane %s: at least one period is required", label)
		}
		for _, p := range l.Periods {
			if p <= 0 {
				add("lane %s: period must be positive, got %d", label, p)
			}
		}
		if l.Width <= 0 || l.Height <= 0 {
			add("lane %s: size must be positive", label)
		}
		if l.VariantEvery < 0 {
			add("lane %s: variant_every must not be negative", label)
		}
		if l.VariantEvery > 0 {
			if l.Kind != LanePlatform {
				add("lane %s: only platform lanes may declare a variant", label)
			}
			if l.Variant != VariantSubmersible {
				add("lane %s: unknown variant %q", label, l.Variant)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger", "configs", filename)
}
