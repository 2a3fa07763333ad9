package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"chargeracer/charging"
	"chargeracer/merge"
	"chargeracer/physics"
	"chargeracer/sound"
	"chargeracer/vehicle"
)

// HUDConfig places the on-screen controls, in screen pixels
type HUDConfig struct {
	SpawnButton   merge.Rect `yaml:"spawn_button"`
	UpgradeButton merge.Rect `yaml:"upgrade_button"`
	ChargeBar     merge.Rect `yaml:"charge_bar"`
	// Seconds a toast message stays on screen
	ToastTTL float64 `yaml:"toast_ttl"`
	// Seconds a merge flash lasts
	FlashTTL float64 `yaml:"flash_ttl"`
}

// Config holds every tunable of the scene
type Config struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	// TPS is the fixed simulation rate, ticks per second
	TPS int `yaml:"tps"`
	// StarterLevel is the level of the token placed at (0,0) on start, 0 for none
	StarterLevel int `yaml:"starter_level"`

	Merge    merge.Config       `yaml:"merge"`
	Charging charging.Config    `yaml:"charging"`
	Vehicle  vehicle.Config     `yaml:"vehicle"`
	Tone     vehicle.ToneConfig `yaml:"tone"`
	Physics  physics.Config     `yaml:"physics"`
	Sound    sound.Config       `yaml:"sound"`
	HUD      HUDConfig          `yaml:"hud"`
}

// DefaultConfig returns the prototype scene: a 720x1280 portrait screen with
// the vehicle in the top half and the merge board in the bottom half
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  720,
		ScreenHeight: 1280,
		TPS:          60,
		StarterLevel: 1,

		Merge:    merge.DefaultConfig(),
		Charging: charging.DefaultConfig(),
		Vehicle:  vehicle.DefaultConfig(),
		Tone:     vehicle.DefaultToneConfig(),
		Physics:  physics.DefaultConfig(),
		Sound:    sound.DefaultConfig(),
		HUD: HUDConfig{
			SpawnButton:   merge.Rect{X: 145, Y: 1085, W: 200, H: 70},
			UpgradeButton: merge.Rect{X: 375, Y: 1085, W: 200, H: 70},
			ChargeBar:     merge.Rect{X: 60, Y: 24, W: 600, H: 24},
			ToastTTL:      2,
			FlashTTL:      0.4,
		},
	}
}

// LoadConfig reads a YAML tuning file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("tuning.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("tuning.yaml: %w", err)
	}
	return cfg, nil
}

// Normalize fills unset rates with their defaults
func (c *Config) Normalize() {
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Physics.Substeps <= 0 {
		c.Physics.Substeps = 1
	}
	if c.Physics.Iterations <= 0 {
		c.Physics.Iterations = 10
	}
	if c.Sound.SampleRate <= 0 {
		c.Sound.SampleRate = 44100
	}
	if c.Sound.Quality <= 0 {
		c.Sound.Quality = 4
	}
}

// Validate rejects tunings the models cannot run with
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.ScreenWidth > 0 && c.ScreenHeight > 0, "screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	check(c.StarterLevel >= 0, "starter_level %d must not be negative", c.StarterLevel)

	m := c.Merge
	check(m.Layout.CellSize > 0, "merge.layout.cell_size must be positive")
	check(m.Layout.Gap >= 0, "merge.layout.gap must not be negative")
	check(m.StartCoins >= 0, "merge.start_coins must not be negative")
	check(m.SpawnCost >= 0, "merge.spawn_cost must not be negative")
	check(m.SpawnLevel >= 1, "merge.spawn_level must be at least 1")
	check(m.FirstUpgradeWait > 0 && m.UpgradeWait > 0 && m.UpgradeWindow > 0, "merge upgrade timings must be positive")

	ch := c.Charging
	check(ch.SlotSize > 0, "charging.slot_size must be positive")
	check(ch.MaxCharge > 0, "charging.max_charge must be positive")
	check(ch.RatePerLevel >= 0, "charging.rate_per_level must not be negative")
	check(ch.Interval > 0, "charging.interval must be positive")

	v := c.Vehicle
	check(v.WheelRadius > 0 && v.WheelDensity > 0, "vehicle wheel radius and density must be positive")
	check(v.ChassisWidth > 0 && v.ChassisHeight > 0 && v.ChassisDensity > 0, "vehicle chassis size and density must be positive")
	check(v.MaxSpeed >= 0 && v.MaxSpeedBackwards >= 0, "vehicle max speeds must not be negative")
	check(v.Acceleration >= 0 && v.AccelerationBackwards >= 0, "vehicle accelerations must not be negative")

	check(c.Physics.DriveTorque >= 0, "physics.drive_torque must not be negative")

	t := c.Tone
	check(t.RateLerp >= 0 && t.RateLerp <= 1, "tone.rate_lerp must be within [0,1]")
	check(t.VolumeLerp >= 0 && t.VolumeLerp <= 1, "tone.volume_lerp must be within [0,1]")

	check(c.HUD.ToastTTL >= 0 && c.HUD.FlashTTL >= 0, "hud lifetimes must not be negative")

	return errors.Join(errs...)
}
