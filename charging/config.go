package charging

import (
	"time"

	"chargeracer/merge"
)

// SlotCount is the number of charging slots
const SlotCount = 3

// Config holds the charging bridge tuning
type Config struct {
	// Center of the middle slot; slots are laid out horizontally around it
	Center merge.Point `yaml:"center"`

	// SlotSize is the square drop area of a slot in pixels
	SlotSize float64 `yaml:"slot_size"`

	// Gap between neighbouring slots in pixels
	Gap float64 `yaml:"gap"`

	// RatePerLevel is the charge per minute contributed by one token level
	RatePerLevel float64 `yaml:"rate_per_level"`

	// MaxCharge bounds the charge meter
	MaxCharge float64 `yaml:"max_charge"`

	// Interval between accruals; each adds rate * Interval (per-minute rates)
	Interval time.Duration `yaml:"interval"`
}

// DefaultConfig returns the prototype tuning for a 720x1280 scene
func DefaultConfig() Config {
	return Config{
		Center:       merge.Point{X: 360, Y: 1280*0.35 + 120},
		SlotSize:     100,
		Gap:          15,
		RatePerLevel: 5,
		MaxCharge:    100,
		Interval:     time.Second,
	}
}

// SlotCenter returns the centre of slot i
func (c Config) SlotCenter(i int) merge.Point {
	step := c.SlotSize + c.Gap
	return merge.Point{
		X: c.Center.X + float64(i-SlotCount/2)*step,
		Y: c.Center.Y,
	}
}
