package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"chargeracer/sound"
)

// EngineAudio plays the synthesised engine loop through ebiten
type EngineAudio struct {
	loop   *sound.EngineLoop
	player *audio.Player
}

// NewEngineAudio opens the audio context and starts the loop
func NewEngineAudio(cfg sound.Config) (*EngineAudio, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.SampleRate)
	}
	if ctx.SampleRate() != cfg.SampleRate {
		return nil, fmt.Errorf("engine audio: context runs at %d Hz, want %d", ctx.SampleRate(), cfg.SampleRate)
	}

	loop := sound.NewEngineLoop(cfg)
	player, err := ctx.NewPlayerF32(loop)
	if err != nil {
		return nil, fmt.Errorf("engine audio: %w", err)
	}
	player.SetBufferSize(50 * time.Millisecond)
	player.Play()

	return &EngineAudio{loop: loop, player: player}, nil
}

// Set forwards the tone to the loop. Safe on a nil receiver.
func (a *EngineAudio) Set(rate, volume float64) {
	if a == nil {
		return
	}
	a.loop.Set(rate, volume)
}

// Close stops playback
func (a *EngineAudio) Close() error {
	if a == nil {
		return nil
	}
	return a.player.Close()
}
