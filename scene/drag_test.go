package scene

import (
	"testing"

	"chargeracer/clock"
	"chargeracer/merge"
)

func TestDragTrackerLifecycle(t *testing.T) {
	board := merge.NewBoard(merge.DefaultConfig(), clock.NewSim(), nil)
	tok, _ := board.Spawn(0, 0, 1)
	d := NewDragTracker(board)

	home := board.Grid().Cell(0, 0).Bounds().Center()
	if d.Begin(merge.Point{X: 0, Y: 0}) {
		t.Fatalf("nothing to pick up at the origin")
	}

	grab := merge.Point{X: home.X + 10, Y: home.Y + 5}
	if !d.Begin(grab) || d.Token() != tok {
		t.Fatalf("expected to pick up the token")
	}
	if board.Dragging() != tok {
		t.Errorf("board should know the token is held")
	}
	if d.Position() != home {
		t.Errorf("held token should not jump to the pointer, at %v", d.Position())
	}

	target := board.Grid().Cell(2, 2).Bounds().Center()
	d.Move(target)
	if d.OverHome() {
		t.Errorf("pointer left the home cell")
	}
	if board.Grid().At(0, 0) != tok {
		t.Errorf("moving must not change the board")
	}

	action, ok := d.End(target)
	if !ok || action != merge.Move {
		t.Fatalf("expected move, got %v %v", action, ok)
	}
	if d.Token() != nil || board.Grid().At(2, 2) != tok {
		t.Errorf("drop not applied")
	}

	if _, ok := d.End(target); ok {
		t.Errorf("second release should do nothing")
	}
}

func TestDragTrackerAbandonReturnsHome(t *testing.T) {
	board := merge.NewBoard(merge.DefaultConfig(), clock.NewSim(), nil)
	tok, _ := board.Spawn(1, 1, 4)
	d := NewDragTracker(board)

	d.Begin(board.Grid().Cell(1, 1).Bounds().Center())
	action, _ := d.End(merge.Point{X: -500, Y: -500})
	if action != merge.Return || board.Grid().At(1, 1) != tok {
		t.Errorf("abandoned drag should leave the token home, got %v", action)
	}
}
