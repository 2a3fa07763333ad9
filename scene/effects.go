package scene

import (
	"fmt"

	"chargeracer/event"
)

// Flash is a short burst drawn where two tokens merged
type Flash struct {
	X, Y  float64
	Level int
	Age   float64
}

// Toast is a transient message line
type Toast struct {
	Text string
	Age  float64
}

// Effects turns model events into cosmetic state. Nothing here feeds back
// into the models.
type Effects struct {
	flashTTL float64
	toastTTL float64

	Flashes []Flash
	Toasts  []Toast
	// Pulse is 1 right after a charge accrual and decays to 0
	Pulse float64
}

// NewEffects creates an empty effect set
func NewEffects(hud HUDConfig) *Effects {
	return &Effects{flashTTL: hud.FlashTTL, toastTTL: hud.ToastTTL}
}

// Apply consumes a batch of drained events
func (e *Effects) Apply(events []event.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case event.TokenMerged:
			e.Flashes = append(e.Flashes, Flash{X: ev.X, Y: ev.Y, Level: ev.Level})
		case event.ChargeAccrued:
			e.Pulse = 1
		case event.SpawnTierRaised:
			e.Toast(fmt.Sprintf("Batteries now spawn at L%d for %.0f", ev.Level, ev.Amount))
		case event.UpgradeAvailable:
			e.Toast("Free upgrade ready!")
		case event.UpgradeExpired:
			e.Toast("Free upgrade expired")
		case event.UpgradeAllApplied:
			e.Toast(fmt.Sprintf("Upgraded %d batteries", ev.Level))
		}
	}
}

// Toast queues a message
func (e *Effects) Toast(text string) {
	e.Toasts = append(e.Toasts, Toast{Text: text})
}

// Update ages effects by dt seconds and drops expired ones
func (e *Effects) Update(dt float64) {
	flashes := e.Flashes[:0]
	for _, f := range e.Flashes {
		f.Age += dt
		if f.Age < e.flashTTL {
			flashes = append(flashes, f)
		}
	}
	e.Flashes = flashes

	toasts := e.Toasts[:0]
	for _, t := range e.Toasts {
		t.Age += dt
		if t.Age < e.toastTTL {
			toasts = append(toasts, t)
		}
	}
	e.Toasts = toasts

	e.Pulse -= dt * 2
	if e.Pulse < 0 {
		e.Pulse = 0
	}
}

// FlashProgress returns how far f is through its lifetime, 0 to 1
func (e *Effects) FlashProgress(f Flash) float64 {
	if e.flashTTL <= 0 {
		return 1
	}
	return f.Age / e.flashTTL
}
