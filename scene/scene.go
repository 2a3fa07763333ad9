package scene

import (
	"errors"
	"log"

	"chargeracer/charging"
	"chargeracer/clock"
	"chargeracer/event"
	"chargeracer/merge"
	"chargeracer/physics"
	"chargeracer/vehicle"
)

// Button identifies a HUD control
type Button int

const (
	ButtonNone Button = iota
	ButtonSpawn
	ButtonUpgrade
)

// Input is one tick of player intent, already mapped to screen space
type Input struct {
	Pointer     merge.Point
	PointerDown bool
	Throttle    vehicle.Throttle
	Buy         bool
	Upgrade     bool
}

// TokenView is a token as the renderer should draw it
type TokenView struct {
	Token    *merge.Token
	Center   merge.Point
	Dragging bool
}

// Scene wires the merge board, the charging station and the vehicle to one
// simulation clock and advances them in fixed ticks
type Scene struct {
	cfg Config
	dt  float64

	Clock   *clock.Sim
	Board   *merge.Board
	Station *charging.Station
	World   *physics.World
	Vehicle *vehicle.Vehicle
	Tone    *vehicle.Tone
	Effects *Effects

	events      *event.Queue
	drag        *DragTracker
	pointerDown bool
	pressed     Button
	ticks       uint64
}

// New builds the scene described by cfg
func New(cfg Config) *Scene {
	cfg.Normalize()

	clk := clock.NewSim()
	q := event.NewQueue()

	board := merge.NewBoard(cfg.Merge, clk, q)
	station := charging.NewStation(cfg.Charging, clk, q)
	board.Attach(station)

	world := physics.New(cfg.Physics)
	spawn := cfg.Vehicle.SpawnPoint(world.GroundY(cfg.Vehicle.StartX))
	v := vehicle.New(world, cfg.Vehicle, spawn)
	world.SpawnBox(cfg.Vehicle.StartX + cfg.Physics.Box.OffsetX)

	s := &Scene{
		cfg:     cfg,
		dt:      1 / float64(cfg.TPS),
		Clock:   clk,
		Board:   board,
		Station: station,
		World:   world,
		Vehicle: v,
		Tone:    vehicle.NewTone(cfg.Tone),
		Effects: NewEffects(cfg.HUD),
		events:  q,
		drag:    NewDragTracker(board),
	}

	if cfg.StarterLevel > 0 {
		if _, err := board.Spawn(0, 0, cfg.StarterLevel); err != nil {
			log.Printf("starter battery: %v", err)
		}
	}
	q.Drain()
	return s
}

// Config returns the scene tuning
func (s *Scene) Config() Config { return s.cfg }

// Dt returns the fixed tick length in seconds
func (s *Scene) Dt() float64 { return s.dt }

// Ticks returns the number of ticks run
func (s *Scene) Ticks() uint64 { return s.ticks }

// Drag returns the pointer drag tracker
func (s *Scene) Drag() *DragTracker { return s.drag }

// Tick advances the scene by one fixed step
func (s *Scene) Tick(in Input) {
	s.ticks++
	s.Clock.Advance(clock.Seconds(s.dt))

	s.Pointer(in.Pointer, in.PointerDown)
	if in.Buy {
		s.buy()
	}
	if in.Upgrade {
		s.upgrade()
	}

	s.Board.Update()
	s.Station.Update()

	s.Vehicle.Tick(in.Throttle)
	s.World.Step(s.dt)
	s.Tone.Update(s.Vehicle.WheelSpeed(), s.Vehicle.Throttle())

	s.Effects.Apply(s.events.Drain())
	s.Effects.Update(s.dt)
}

// Pointer applies one pointer sample without advancing time. Hosts that
// receive several press or release edges between ticks feed each one here.
func (s *Scene) Pointer(p merge.Point, down bool) {
	switch {
	case down && !s.pointerDown:
		s.pressed = s.ButtonAt(p)
		if s.pressed == ButtonNone {
			s.drag.Begin(p)
		}
	case down:
		s.drag.Move(p)
	case s.pointerDown:
		if s.pressed != ButtonNone && s.ButtonAt(p) == s.pressed {
			s.click(s.pressed)
		}
		s.pressed = ButtonNone
		s.drag.End(p)
	}
	s.pointerDown = down
}

// ButtonAt returns the active HUD button under p
func (s *Scene) ButtonAt(p merge.Point) Button {
	switch {
	case s.cfg.HUD.SpawnButton.Contains(p):
		return ButtonSpawn
	case s.cfg.HUD.UpgradeButton.Contains(p) && s.Board.Upgrade().Available():
		return ButtonUpgrade
	}
	return ButtonNone
}

func (s *Scene) click(b Button) {
	switch b {
	case ButtonSpawn:
		s.buy()
	case ButtonUpgrade:
		s.upgrade()
	}
}

func (s *Scene) buy() {
	_, err := s.Board.Buy()
	switch {
	case errors.Is(err, merge.ErrInsufficientFunds):
		s.Effects.Toast("Not enough coins")
	case errors.Is(err, merge.ErrGridFull):
		s.Effects.Toast("Grid is full")
	}
}

func (s *Scene) upgrade() {
	if _, err := s.Board.UpgradeAll(); errors.Is(err, merge.ErrUpgradeUnavailable) {
		s.Effects.Toast("No free upgrade yet")
	}
}

// Tokens returns every placed token with its draw position. The held token
// follows the pointer.
func (s *Scene) Tokens() []TokenView {
	held := s.drag.Token()
	placed := s.Board.Placed()
	out := make([]TokenView, 0, len(placed))
	for _, tok := range placed {
		home := s.Board.Home(tok)
		if home == nil {
			continue
		}
		v := TokenView{Token: tok, Center: home.Bounds().Center()}
		if tok == held {
			v.Center = s.drag.Position()
			v.Dragging = true
		}
		out = append(out, v)
	}
	return out
}
