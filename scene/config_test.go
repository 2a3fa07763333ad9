package scene

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig("  ")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := DefaultConfig()
	if cfg.Merge.StartCoins != def.Merge.StartCoins || cfg.TPS != 60 {
		t.Errorf("expected defaults, got coins=%d tps=%d", cfg.Merge.StartCoins, cfg.TPS)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeTuning(t, `
tps: 0
merge:
  start_coins: 50
  first_upgrade_wait: 5s
charging:
  interval: 2s
  rate_per_level: 7
vehicle:
  max_speed: 20
  auto_throttle: false
physics:
  box:
    enabled: false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Merge.StartCoins != 50 {
		t.Errorf("start coins %d, want 50", cfg.Merge.StartCoins)
	}
	if cfg.Merge.FirstUpgradeWait != 5*time.Second {
		t.Errorf("first upgrade wait %v, want 5s", cfg.Merge.FirstUpgradeWait)
	}
	if cfg.Merge.SpawnCost != 10 {
		t.Errorf("unset fields should keep defaults, spawn cost %d", cfg.Merge.SpawnCost)
	}
	if cfg.Charging.Interval != 2*time.Second || cfg.Charging.RatePerLevel != 7 {
		t.Errorf("charging overrides lost: %+v", cfg.Charging)
	}
	if cfg.Vehicle.MaxSpeed != 20 || cfg.Vehicle.AutoThrottle {
		t.Errorf("vehicle overrides lost: %+v", cfg.Vehicle)
	}
	if cfg.Vehicle.WheelRadius != 15 {
		t.Errorf("wheel radius %v, want default 15", cfg.Vehicle.WheelRadius)
	}
	if cfg.Physics.Box.Enabled {
		t.Errorf("box should be disabled")
	}
	if cfg.TPS != 60 {
		t.Errorf("tps should normalize to 60, got %d", cfg.TPS)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if err == nil || !strings.HasPrefix(err.Error(), "tuning.yaml:") {
		t.Errorf("expected wrapped read error, got %v", err)
	}

	_, err = LoadConfig(writeTuning(t, "merge: [1, 2"))
	if err == nil || !strings.HasPrefix(err.Error(), "tuning.yaml:") {
		t.Errorf("expected wrapped parse error, got %v", err)
	}

	_, err = LoadConfig(writeTuning(t, "charging:\n  max_charge: 0\n"))
	if err == nil || !strings.Contains(err.Error(), "max_charge") {
		t.Errorf("expected max_charge validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero wheel radius", func(c *Config) { c.Vehicle.WheelRadius = 0 }, "wheel radius"},
		{"zero cell size", func(c *Config) { c.Merge.Layout.CellSize = 0 }, "cell_size"},
		{"negative lerp", func(c *Config) { c.Tone.RateLerp = -0.1 }, "rate_lerp"},
		{"zero interval", func(c *Config) { c.Charging.Interval = 0 }, "interval"},
		{"spawn level", func(c *Config) { c.Merge.SpawnLevel = 0 }, "spawn_level"},
		{"negative drive torque", func(c *Config) { c.Physics.DriveTorque = -1 }, "drive_torque"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
