package clock

import (
	"testing"
	"time"
)

func TestSimAdvance(t *testing.T) {
	c := NewSim()
	if c.Now() != 0 {
		t.Fatalf("new clock should start at 0, got %v", c.Now())
	}

	c.Advance(400 * time.Millisecond)
	c.Advance(600 * time.Millisecond)
	if got := c.Now(); got != time.Second {
		t.Errorf("expected 1s, got %v", got)
	}

	// Negative steps never move time backwards
	c.Advance(-time.Second)
	if got := c.Now(); got != time.Second {
		t.Errorf("clock went backwards: %v", got)
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(1.5); got != 1500*time.Millisecond {
		t.Errorf("Seconds(1.5) = %v", got)
	}
}
