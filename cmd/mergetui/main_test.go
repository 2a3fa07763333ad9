package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"chargeracer/merge"
	"chargeracer/scene"
)

func newTestApp() *app {
	cfg := scene.DefaultConfig()
	cfg.Vehicle.AutoThrottle = true
	return &app{scene: scene.New(cfg)}
}

func TestClickBetweenTicksBuys(t *testing.T) {
	a := newTestApp()
	x, y := toTerm(a.scene.Config().HUD.SpawnButton.Center())

	a.handleInput(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	a.handleInput(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	a.tick()

	if got := a.scene.Board.Economy().Coins; got != 990 {
		t.Errorf("coins %d, want 990", got)
	}
	if a.scene.Board.Grid().At(0, 1) == nil {
		t.Errorf("bought battery should land in (0,1)")
	}
	if len(a.pending) != 0 {
		t.Errorf("%d pointer samples left after tick", len(a.pending))
	}

	// the next tick sees no new edges
	a.tick()
	if got := a.scene.Board.Economy().Coins; got != 990 {
		t.Errorf("coins %d after idle tick, want 990", got)
	}
}

func TestDragWithinOneTick(t *testing.T) {
	a := newTestApp()
	from := a.scene.Board.Grid().Cell(0, 0).Bounds().Center()
	to := a.scene.Board.Grid().Cell(2, 2).Bounds().Center()
	fx, fy := toTerm(from)
	tx, ty := toTerm(to)

	a.handleInput(tcell.NewEventMouse(fx, fy, tcell.Button1, tcell.ModNone))
	a.handleInput(tcell.NewEventMouse(tx, ty, tcell.Button1, tcell.ModNone))
	a.handleInput(tcell.NewEventMouse(tx, ty, tcell.ButtonNone, tcell.ModNone))
	a.tick()

	grid := a.scene.Board.Grid()
	if grid.At(0, 0) != nil || grid.At(2, 2) == nil {
		t.Errorf("starter should have moved to (2,2)")
	}
}

func TestToHostRoundTrip(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {24, 25}, {63, 10}} {
		x, y := toTerm(toHost(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("cell %v maps back to (%d,%d)", c, x, y)
		}
	}
	p := toHost(0, 0)
	if p != (merge.Point{X: 5, Y: viewTop + 12.5}) {
		t.Errorf("cell (0,0) centre %v", p)
	}
}
