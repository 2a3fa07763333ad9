package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"chargeracer/game"
	"chargeracer/perf"
	"chargeracer/scene"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to tuning.yaml (defaults are used when empty)")
	profileDir := flag.String("profile-dir", "", "Capture CPU profiles and traces into this directory on frame drops")
	mute := flag.Bool("mute", false, "Disable the engine sound")
	scale := flag.Float64("scale", 0.5, "Window scale relative to the 720x1280 screen")
	flag.Parse()

	sceneConfig, err := scene.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	config := game.DefaultConfig()
	config.Scene = sceneConfig
	config.WindowScale = *scale
	config.ProfileDir = *profileDir
	config.Mute = *mute

	g := game.NewGame(config)

	if !config.Mute {
		audio, err := game.NewEngineAudio(sceneConfig.Sound)
		if err != nil {
			log.Printf("engine sound disabled: %v", err)
		} else {
			defer audio.Close()
			g.SetAudio(audio)
		}
	}

	if config.ProfileDir != "" {
		recorder, err := perf.NewRecorder(config.ProfileDir, 5*time.Second)
		if err != nil {
			log.Fatalf("profiler: %v", err)
		}
		g.SetRecorder(recorder)
		log.Printf("Frame-drop profiling enabled, writing to %s", config.ProfileDir)
	}

	w, h := config.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Charge Racer")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(sceneConfig.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
