package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := ParseFrogger(defaultFroggerYAML)
	if err != nil {
		t.Fatalf("embedded config: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFroggerConfig()) {
		t.Errorf("embedded yaml and DefaultFroggerConfig differ:\n%+v\n%+v", cfg, DefaultFroggerConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultFroggerConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadFroggerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frogger.yaml")
	doc := `
scoring:
  goal: 500
lanes:
  - {name: only, kind: vehicle, periods: [50], x: 0, y: 300, width: 40, height: 30, dx: 2, colour: red}
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrogger(path)
	if err != nil {
		t.Fatalf("LoadFrogger: %v", err)
	}
	if cfg.Scoring.Goal != 500 {
		t.Errorf("goal score = %d, want 500", cfg.Scoring.Goal)
	}
	if cfg.Scoring.Collectible != 100 {
		t.Errorf("collectible score = %d, want default 100", cfg.Scoring.Collectible)
	}
	if len(cfg.Lanes) != 1 || cfg.Lanes[0].Name != "only" {
		t.Errorf("lanes = %+v, want the single custom lane", cfg.Lanes)
	}
}

func TestLoadFroggerKeepsDefaultLanes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  tick_rate: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrogger(path)
	if err != nil {
		t.Fatalf("LoadFrogger: %v", err)
	}
	if got, want := len(cfg.Lanes), len(DefaultFroggerConfig().Lanes); got != want {
		t.Errorf("lanes = %d, want %d", got, want)
	}
	if cfg.Timing.TickRate != 50 {
		t.Errorf("tick rate = %d, want 50", cfg.Timing.TickRate)
	}
}

func TestLoadFroggerErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("lanes: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrogger(tt.path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FroggerConfig)
		want   string
	}{
		{"zero period", func(c *FroggerConfig) { c.Lanes[0].Periods = []int{0} }, "period must be positive"},
		{"no periods", func(c *FroggerConfig) { c.Lanes[0].Periods = nil }, "at least one period"},
		{"unknown kind", func(c *FroggerConfig) { c.Lanes[0].Kind = "boat" }, "unknown kind"},
		{"zero width lane", func(c *FroggerConfig) { c.Lanes[1].Width = 0 }, "size must be positive"},
		{"duplicate lane", func(c *FroggerConfig) { c.Lanes[1].Name = c.Lanes[0].Name }, "duplicate name"},
		{"vehicle variant", func(c *FroggerConfig) { c.Lanes[0].VariantEvery = 10; c.Lanes[0].Variant = VariantSubmersible }, "only platform lanes"},
		{"unknown variant", func(c *FroggerConfig) { c.Lanes[7].Variant = "flying" }, "unknown variant"},
		{"actor outside", func(c *FroggerConfig) { c.Actor.X = 590 }, "outside the playfield"},
		{"no goals", func(c *FroggerConfig) { c.Goals.Count = 0 }, "goals: count"},
		{"cycle overflow", func(c *FroggerConfig) { c.Cycling.Solid = 590 }, "fit in the period"},
		{"zero tick rate", func(c *FroggerConfig) { c.Timing.TickRate = 0 }, "tick_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFroggerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultFroggerConfig().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseFrogger(data)
	if err != nil {
		t.Fatalf("ParseFrogger: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFroggerConfig()) {
		t.Error("marshalled config does not decode to the default")
	}
}

func TestTimingDurations(t *testing.T) {
	tm := TimingConfig{TickRate: 100, MoveThrottleMS: 150}
	if got := tm.TickPeriod().Milliseconds(); got != 10 {
		t.Errorf("TickPeriod = %dms, want 10ms", got)
	}
	if got := tm.MoveThrottle().Milliseconds(); got != 150 {
		t.Errorf("MoveThrottle = %dms, want 150ms", got)
	}
}
