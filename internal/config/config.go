package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// World sets the extent of the generated grid and, optionally, a fixed seed.
// A nil Seed means the front end draws a random one at startup.
type World struct {
	Width  int     `yaml:"width" json:"width"`
	Height int     `yaml:"height" json:"height"`
	Seed   *uint32 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Render holds presentation settings shared by every front end.
type Render struct {
	Tile        float64 `yaml:"tile" json:"tile"`
	WaterAlpha  float64 `yaml:"water_alpha" json:"water_alpha"`
	CursorAlpha float64 `yaml:"cursor_alpha" json:"cursor_alpha"`
	Background  string  `yaml:"background" json:"background"`
	FPSLimit    int     `yaml:"fps_limit" json:"fps_limit"`
	HUD         bool    `yaml:"hud" json:"hud"`
}

// Config is the complete tunable surface of the application.
type Config struct {
	World      World      `yaml:"world" json:"world"`
	Terrain    Terrain    `yaml:"terrain" json:"terrain"`
	Vegetation Vegetation `yaml:"vegetation" json:"vegetation"`
	Render     Render     `yaml:"render" json:"render"`
}

// Default returns a configuration that renders a 20x20 world.
func Default() Config {
	return Config{
		World: World{
			Width:  20,
			Height: 20,
		},
		Terrain:    DefaultTerrain(),
		Vegetation: DefaultVegetation(),
		Render: Render{
			Tile:        24,
			WaterAlpha:  0.75,
			CursorAlpha: 0.55,
			Background:  "#1d2330",
			FPSLimit:    60,
			HUD:         true,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WithSeedFlag applies a -seed command-line value: negative leaves the seed
// unset, anything past the 32-bit seed range is rejected.
func (c Config) WithSeedFlag(seed int64) (Config, error) {
	switch {
	case seed < 0:
		return c, nil
	case seed > math.MaxUint32:
		return c, fmt.Errorf("seed %d out of range [0, %d]", seed, uint32(math.MaxUint32))
	}
	return c.WithSeed(uint32(seed)), nil
}

// WithSeed returns a copy of c pinned to seed.
func (c Config) WithSeed(seed uint32) Config {
	c.World.Seed = &seed
	return c
}
