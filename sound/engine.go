package sound

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// BytesPerFrame is one stereo float32 frame
const BytesPerFrame = 8

// minRate keeps the resampler ratio positive
const minRate = 0.05

// Config tunes the synthesised engine
type Config struct {
	SampleRate int     `yaml:"sample_rate"`
	Frequency  float64 `yaml:"frequency"` // fundamental at playback rate 1
	Amplitude  float64 `yaml:"amplitude"`
	Quality    int     `yaml:"quality"` // resampler quality, 1..64
}

// DefaultConfig returns a low four-stroke rumble
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Frequency:  55,
		Amplitude:  0.3,
		Quality:    4,
	}
}

// engineTone is a looping engine rumble: a few odd and even harmonics with a
// firing pulse at half the fundamental
type engineTone struct {
	sr    beep.SampleRate
	freq  float64
	amp   float64
	phase float64
}

func (g *engineTone) Stream(samples [][2]float64) (n int, ok bool) {
	step := g.freq / float64(g.sr)
	for i := range samples {
		p := 2 * math.Pi * g.phase
		s := math.Sin(p) + 0.5*math.Sin(2*p) + 0.3*math.Sin(3*p) + 0.15*math.Sin(5*p)
		pulse := 0.75 + 0.25*math.Sin(p/2)
		v := g.amp * s * pulse / 1.95

		samples[i][0] = v
		samples[i][1] = v

		g.phase += step
		if g.phase >= 2 {
			g.phase -= 2
		}
	}
	return len(samples), true
}

func (g *engineTone) Err() error {
	return nil
}

// EngineLoop is the engine sound: a tone whose pitch and volume follow Set.
// Read is called from the audio goroutine, Set from the game loop.
type EngineLoop struct {
	mu        sync.Mutex
	resampler *beep.Resampler
	volume    *effects.Volume
	buf       [][2]float64

	rate, level float64
}

// NewEngineLoop creates a loop at rate 1 and full volume
func NewEngineLoop(cfg Config) *EngineLoop {
	if cfg.Quality < 1 {
		cfg.Quality = 1
	}
	tone := &engineTone{
		sr:   beep.SampleRate(cfg.SampleRate),
		freq: cfg.Frequency,
		amp:  cfg.Amplitude,
	}
	rs := beep.ResampleRatio(cfg.Quality, 1, tone)
	return &EngineLoop{
		resampler: rs,
		volume:    &effects.Volume{Streamer: rs, Base: 2},
		rate:      1,
		level:     1,
	}
}

// Set changes the playback rate (pitch multiplier) and linear volume
func (e *EngineLoop) Set(rate, volume float64) {
	if rate < minRate {
		rate = minRate
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rate = rate
	e.level = volume
	e.resampler.SetRatio(rate)
	if volume <= 0 {
		e.volume.Silent = true
		e.volume.Volume = 0
	} else {
		e.volume.Silent = false
		e.volume.Volume = math.Log2(volume)
	}
}

// Rate returns the current playback rate
func (e *EngineLoop) Rate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rate
}

// Volume returns the current linear volume
func (e *EngineLoop) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.level
}

// Read fills p with interleaved little-endian float32 stereo frames. It never
// ends; a partial trailing frame is left unfilled.
func (e *EngineLoop) Read(p []byte) (int, error) {
	frames := len(p) / BytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if cap(e.buf) < frames {
		e.buf = make([][2]float64, frames)
	}
	buf := e.buf[:frames]
	n, _ := e.volume.Stream(buf)
	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}

	for i, s := range buf {
		binary.LittleEndian.PutUint32(p[i*BytesPerFrame:], math.Float32bits(float32(s[0])))
		binary.LittleEndian.PutUint32(p[i*BytesPerFrame+4:], math.Float32bits(float32(s[1])))
	}
	return frames * BytesPerFrame, nil
}
