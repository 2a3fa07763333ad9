package scene

import (
	"testing"

	"chargeracer/event"
)

func TestEffectsFromEvents(t *testing.T) {
	e := NewEffects(DefaultConfig().HUD)
	e.Apply([]event.Event{
		{Kind: event.TokenMerged, X: 10, Y: 20, Level: 3},
		{Kind: event.ChargeAccrued, Amount: 0.5},
		{Kind: event.UpgradeAvailable},
		{Kind: event.TokenMoved},
	})

	if len(e.Flashes) != 1 || e.Flashes[0].Level != 3 {
		t.Fatalf("expected one level 3 flash, got %+v", e.Flashes)
	}
	if e.Pulse != 1 {
		t.Errorf("charge pulse %v, want 1", e.Pulse)
	}
	if len(e.Toasts) != 1 || e.Toasts[0].Text != "Free upgrade ready!" {
		t.Errorf("unexpected toasts %+v", e.Toasts)
	}
}

func TestEffectsExpire(t *testing.T) {
	hud := DefaultConfig().HUD
	e := NewEffects(hud)
	e.Apply([]event.Event{{Kind: event.TokenMerged}, {Kind: event.ChargeAccrued}})
	e.Toast("hello")

	e.Update(hud.FlashTTL / 2)
	if len(e.Flashes) != 1 {
		t.Fatalf("flash expired too early")
	}
	if p := e.FlashProgress(e.Flashes[0]); p <= 0 || p >= 1 {
		t.Errorf("flash progress %v out of range", p)
	}

	e.Update(hud.FlashTTL)
	if len(e.Flashes) != 0 {
		t.Errorf("flash should be gone")
	}
	if e.Pulse != 0 {
		t.Errorf("pulse should decay to 0, got %v", e.Pulse)
	}
	if len(e.Toasts) != 1 {
		t.Errorf("toast should outlive the flash")
	}

	e.Update(hud.ToastTTL)
	if len(e.Toasts) != 0 {
		t.Errorf("toast should be gone")
	}
}
