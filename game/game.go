package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chargeracer/perf"
	"chargeracer/scene"
)

// cameraSmoothing is the fraction of the distance to the chassis the camera
// covers each tick
const cameraSmoothing = 0.1

// Game hosts the scene inside ebiten
type Game struct {
	config   Config
	scene    *scene.Scene
	renderer *Renderer
	camera   *Camera
	dust     *DustSystem
	input    *PlayerInput
	audio    *EngineAudio
	monitor  *perf.FrameMonitor
	recorder *perf.Recorder

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance
func NewGame(config Config) *Game {
	sc := scene.New(config.Scene)

	// The world view occupies the top half of the screen
	camera := NewCamera(float64(config.Scene.ScreenWidth), float64(config.Scene.ScreenHeight)/2)
	chassis := sc.Vehicle.Poses().Chassis.Position
	camera.X, camera.Y = cameraTarget(chassis.X, chassis.Y)

	dust := NewDustSystem(time.Now().UnixNano())
	now := time.Now()
	return &Game{
		config:         config,
		scene:          sc,
		renderer:       NewRenderer(camera, dust),
		camera:         camera,
		dust:           dust,
		input:          NewPlayerInput(),
		monitor:        perf.NewFrameMonitor(config.FPSDropThreshold, now),
		lastUpdateTime: now,
	}
}

// cameraTarget keeps the vehicle left of centre and slightly low in view
func cameraTarget(x, y float64) (float64, float64) {
	return x + 150, y - 80
}

// SetAudio attaches the engine sound. A nil audio keeps the game silent.
func (g *Game) SetAudio(a *EngineAudio) {
	g.audio = a
}

// SetRecorder enables profile capture on frame drops
func (g *Game) SetRecorder(r *perf.Recorder) {
	g.recorder = r
}

// Scene returns the hosted scene
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Update advances the scene by one tick
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		GetDebugState().Toggle()
	}

	if g.monitor.Observe(now, deltaTime) && g.recorder != nil && !g.recorder.Busy() {
		g.captureDrop(now)
	}

	// The simulation itself always steps by the fixed tick
	g.scene.Tick(g.input.Read())

	tone := g.scene.Tone
	g.audio.Set(tone.Rate, tone.Volume)

	g.updateDust()

	chassis := g.scene.Vehicle.Poses().Chassis.Position
	tx, ty := cameraTarget(chassis.X, chassis.Y)
	g.camera.Follow(tx, ty, cameraSmoothing)
	return nil
}

// groundSlack is how far above the ground a wheel may float and still count
// as touching it
const groundSlack = 3.0

func (g *Game) updateDust() {
	v := g.scene.Vehicle
	cfg := v.Config()
	rear := v.Poses().Rear.Position
	grounded := rear.Y+cfg.WheelRadius >= g.scene.World.GroundY(rear.X)-groundSlack

	ratio := 0.0
	if cfg.MaxSpeed > 0 {
		ratio = v.WheelSpeed() / cfg.MaxSpeed
	}
	g.dust.Update(g.scene.Dt(), rear, cfg.WheelRadius, ratio, grounded)
}

func (g *Game) captureDrop(now time.Time) {
	d := perf.Drop{
		At:        now,
		FPS:       g.monitor.FPS(),
		Tick:      g.scene.Ticks(),
		Batteries: len(g.scene.Board.Placed()),
		Charge:    g.scene.Station.Meter().Current,
		VehicleX:  g.scene.Vehicle.Poses().Chassis.Position.X,
	}
	log.Printf("Frame drop at %s, recording profile...", d)
	if err := g.recorder.Capture(d); err != nil {
		log.Printf("profile: %v", err)
	}
}

// Draw draws the game screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.scene, g.monitor.FPS())
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Scene.ScreenWidth, g.config.Scene.ScreenHeight
}
