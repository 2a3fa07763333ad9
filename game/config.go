package game

import "chargeracer/scene"

// Config holds the host settings around the scene
type Config struct {
	// Scene is the simulation and layout tuning
	Scene scene.Config

	// WindowScale shrinks the portrait screen to fit a desktop window
	WindowScale float64

	// ProfileDir enables frame-drop profiling into this directory
	ProfileDir string

	// FPSDropThreshold is the TPS below which a profile is captured
	FPSDropThreshold float64

	// Mute disables the engine sound
	Mute bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Scene:            scene.DefaultConfig(),
		WindowScale:      0.5,
		FPSDropThreshold: 50,
	}
}

// WindowSize returns the desktop window size in pixels
func (c Config) WindowSize() (int, int) {
	scale := c.WindowScale
	if scale <= 0 {
		scale = 1
	}
	return int(float64(c.Scene.ScreenWidth) * scale), int(float64(c.Scene.ScreenHeight) * scale)
}
