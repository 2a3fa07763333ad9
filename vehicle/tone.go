package vehicle

import "math"

// ToneConfig maps wheel speed to engine playback rate and volume
type ToneConfig struct {
	// Wheel speed at which the tone reaches MaxRate
	ReferenceSpeed float64 `yaml:"reference_speed"`
	IdleRate       float64 `yaml:"idle_rate"`
	MaxRate        float64 `yaml:"max_rate"`
	ReverseRate    float64 `yaml:"reverse_rate"`
	IdleVolume     float64 `yaml:"idle_volume"`
	ActiveVolume   float64 `yaml:"active_volume"`
	// Fraction of the remaining distance covered per tick
	RateLerp   float64 `yaml:"rate_lerp"`
	VolumeLerp float64 `yaml:"volume_lerp"`
}

// DefaultToneConfig returns the prototype engine sound tuning
func DefaultToneConfig() ToneConfig {
	return ToneConfig{
		ReferenceSpeed: DefaultConfig().MaxSpeed,
		IdleRate:       0.8,
		MaxRate:        2.2,
		ReverseRate:    0.6,
		IdleVolume:     0.4,
		ActiveVolume:   0.8,
		RateLerp:       0.08,
		VolumeLerp:     0.15,
	}
}

// Tone is the smoothed engine sound state
type Tone struct {
	cfg    ToneConfig
	Rate   float64
	Volume float64
}

// NewTone creates a tone resting at idle
func NewTone(cfg ToneConfig) *Tone {
	return &Tone{cfg: cfg, Rate: cfg.IdleRate, Volume: cfg.IdleVolume}
}

// Target returns the rate and volume the tone is heading to
func (t *Tone) Target(wheelSpeed float64, throttle Throttle) (rate, volume float64) {
	ratio := 0.0
	if t.cfg.ReferenceSpeed > 0 {
		ratio = math.Min(math.Abs(wheelSpeed)/t.cfg.ReferenceSpeed, 1)
	}
	rate = lerp(t.cfg.IdleRate, t.cfg.MaxRate, ratio)
	volume = lerp(t.cfg.IdleVolume, t.cfg.ActiveVolume, ratio)
	if throttle == Reverse {
		rate = t.cfg.ReverseRate
	}
	return rate, volume
}

// Update moves the tone one tick towards its target and returns it
func (t *Tone) Update(wheelSpeed float64, throttle Throttle) (rate, volume float64) {
	rate, volume = t.Target(wheelSpeed, throttle)
	t.Rate = lerp(t.Rate, rate, t.cfg.RateLerp)
	t.Volume = lerp(t.Volume, volume, t.cfg.VolumeLerp)
	return t.Rate, t.Volume
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
