package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigSeed(t *testing.T) {
	cfg, err := loadConfig("", -1)
	if err != nil || cfg.World.Seed != nil {
		t.Fatalf("loadConfig(-1) = %v, %v; want unset seed", cfg.World.Seed, err)
	}
	cfg, err = loadConfig("", 4294967295)
	if err != nil || cfg.World.Seed == nil || *cfg.World.Seed != 4294967295 {
		t.Fatalf("loadConfig(max) = %v, %v", cfg.World.Seed, err)
	}
	if _, err := loadConfig("", 4294967296); err == nil {
		t.Fatalf("loadConfig accepted a seed past 32 bits")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 12\n  height: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path, 7)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.World.Width != 12 || cfg.World.Height != 9 || *cfg.World.Seed != 7 {
		t.Errorf("config = %+v", cfg.World)
	}
}

// Setup failures before the window exists come back as errors, so main's
// closer handles them after run's defers have unwound.
func TestRunReturnsSetupErrors(t *testing.T) {
	tests := [][]string{
		{"-seed", "4294967296"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
		{"-bogus"},
	}
	for _, args := range tests {
		if err := run(args); err == nil {
			t.Errorf("run(%q) = nil, want error", args)
		}
	}
}
