package scene

import (
	"testing"

	"chargeracer/merge"
	"chargeracer/vehicle"
)

func newTestScene(t *testing.T, mutate func(*Config)) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg)
}

// press and release the pointer at p over two ticks
func tap(s *Scene, p merge.Point) {
	s.Tick(Input{Pointer: p, PointerDown: true})
	s.Tick(Input{Pointer: p})
}

func dragTo(s *Scene, from, to merge.Point) {
	s.Tick(Input{Pointer: from, PointerDown: true})
	s.Tick(Input{Pointer: to, PointerDown: true})
	s.Tick(Input{Pointer: to})
}

func TestNewPlacesStarter(t *testing.T) {
	s := newTestScene(t, nil)
	tok := s.Board.Grid().At(0, 0)
	if tok == nil || tok.Level() != 1 {
		t.Fatalf("expected a level 1 starter at (0,0)")
	}
	if s.Board.Started() {
		t.Errorf("play should not start before the first interaction")
	}

	s = newTestScene(t, func(c *Config) { c.StarterLevel = 0 })
	if s.Board.Grid().Count() != 0 {
		t.Errorf("starter disabled, grid should be empty")
	}
}

func TestSpawnButton(t *testing.T) {
	s := newTestScene(t, nil)
	tap(s, s.cfg.HUD.SpawnButton.Center())

	if s.Board.Economy().Coins != 990 {
		t.Errorf("coins %d, want 990", s.Board.Economy().Coins)
	}
	if s.Board.Grid().At(0, 1) == nil {
		t.Errorf("bought battery should land in (0,1)")
	}
	if !s.Board.Started() {
		t.Errorf("buying starts play")
	}
}

func TestPointerEdgesBetweenTicks(t *testing.T) {
	s := newTestScene(t, nil)
	p := s.cfg.HUD.SpawnButton.Center()
	s.Pointer(p, true)
	s.Pointer(p, false)
	if s.Ticks() != 0 {
		t.Errorf("pointer samples should not advance time")
	}
	s.Tick(Input{Pointer: p})

	if s.Board.Economy().Coins != 990 {
		t.Errorf("coins %d, want 990", s.Board.Economy().Coins)
	}
}

func TestButtonReleasedElsewhereDoesNothing(t *testing.T) {
	s := newTestScene(t, nil)
	s.Tick(Input{Pointer: s.cfg.HUD.SpawnButton.Center(), PointerDown: true})
	s.Tick(Input{Pointer: merge.Point{X: 5, Y: 5}})

	if s.Board.Economy().Coins != 1000 {
		t.Errorf("release outside the button should not buy")
	}
}

func TestUpgradeButtonHiddenUntilAvailable(t *testing.T) {
	s := newTestScene(t, nil)
	up := s.cfg.HUD.UpgradeButton.Center()
	if s.ButtonAt(up) != ButtonNone {
		t.Fatalf("upgrade button should be inactive before play")
	}

	tap(s, s.cfg.HUD.SpawnButton.Center())
	for i := 0; i < 21*s.cfg.TPS; i++ {
		s.Tick(Input{})
	}
	if s.ButtonAt(up) != ButtonUpgrade {
		t.Fatalf("upgrade should be available after the first wait")
	}

	tap(s, up)
	if lvl := s.Board.Grid().At(0, 0).Level(); lvl != 2 {
		t.Errorf("starter level %d, want 2 after upgrade", lvl)
	}
	if s.Board.Upgrade().Available() {
		t.Errorf("upgrade should hide after use")
	}
}

func TestKeyboardFailuresToast(t *testing.T) {
	s := newTestScene(t, func(c *Config) { c.Merge.StartCoins = 0 })
	s.Tick(Input{Buy: true, Upgrade: true})

	texts := map[string]bool{}
	for _, toast := range s.Effects.Toasts {
		texts[toast.Text] = true
	}
	if !texts["Not enough coins"] || !texts["No free upgrade yet"] {
		t.Errorf("expected failure toasts, got %+v", s.Effects.Toasts)
	}
}

func TestDragIntoSlotCharges(t *testing.T) {
	s := newTestScene(t, nil)
	from := s.Board.Grid().Cell(0, 0).Bounds().Center()
	to := s.Station.Slot(1).Bounds().Center()

	dragTo(s, from, to)
	if s.Station.Slot(1).Occupant() == nil {
		t.Fatalf("starter should be in slot 1")
	}
	if s.Board.Grid().Count() != 0 {
		t.Errorf("grid should be empty")
	}

	for i := 0; i < 2*s.cfg.TPS+5; i++ {
		s.Tick(Input{})
	}
	m := s.Station.Meter()
	want := 2 * 5.0 / 60
	if m.Current < want-1e-9 || m.Current > want+1e-9 {
		t.Errorf("meter %v, want %v after two accruals", m.Current, want)
	}
}

func TestTokensFollowDrag(t *testing.T) {
	s := newTestScene(t, nil)
	from := s.Board.Grid().Cell(0, 0).Bounds().Center()
	s.Tick(Input{Pointer: from, PointerDown: true})
	s.Tick(Input{Pointer: merge.Point{X: from.X + 40, Y: from.Y - 30}, PointerDown: true})

	views := s.Tokens()
	if len(views) != 1 || !views[0].Dragging {
		t.Fatalf("expected one held token, got %+v", views)
	}
	if views[0].Center != (merge.Point{X: from.X + 40, Y: from.Y - 30}) {
		t.Errorf("held token at %v", views[0].Center)
	}
}

func TestVehicleAutoDrives(t *testing.T) {
	s := newTestScene(t, nil)
	start := s.Vehicle.Poses().Chassis.Position.X
	for i := 0; i < 3*s.cfg.TPS; i++ {
		s.Tick(Input{})
	}
	if s.Vehicle.Throttle() != vehicle.Forward {
		t.Errorf("auto throttle should drive forward")
	}
	if x := s.Vehicle.Poses().Chassis.Position.X; x <= start+50 {
		t.Errorf("vehicle should move right, from %v to %v", start, x)
	}
	if s.Tone.Rate <= s.cfg.Tone.IdleRate {
		t.Errorf("engine tone should rise with speed, rate %v", s.Tone.Rate)
	}
}
