package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chargeracer/merge"
	"chargeracer/scene"
	"chargeracer/vehicle"
)

// ThrottleSource provides the drive input for a tick
type ThrottleSource interface {
	Throttle() vehicle.Throttle
}

// KeyboardThrottle drives with the arrow keys or A/D
type KeyboardThrottle struct{}

// Throttle returns Forward for right, Reverse for left, Coast otherwise
func (KeyboardThrottle) Throttle() vehicle.Throttle {
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	switch {
	case right && !left:
		return vehicle.Forward
	case left && !right:
		return vehicle.Reverse
	}
	return vehicle.Coast
}

// PointerSource reports the primary pointer in screen pixels
type PointerSource interface {
	Pointer() (p merge.Point, down bool)
}

// MouseTouchPointer follows the first touch, or the left mouse button when
// nothing touches the screen
type MouseTouchPointer struct {
	touches []ebiten.TouchID
	touchID ebiten.TouchID
	touched bool
	last    merge.Point
}

// Pointer implements PointerSource. A lifted touch reports its last position.
func (m *MouseTouchPointer) Pointer() (merge.Point, bool) {
	if m.touched && !inpututil.IsTouchJustReleased(m.touchID) {
		x, y := ebiten.TouchPosition(m.touchID)
		m.last = merge.Point{X: float64(x), Y: float64(y)}
		return m.last, true
	}
	if m.touched {
		m.touched = false
		return m.last, false
	}

	m.touches = ebiten.AppendTouchIDs(m.touches[:0])
	if len(m.touches) > 0 {
		m.touchID = m.touches[0]
		m.touched = true
		x, y := ebiten.TouchPosition(m.touchID)
		m.last = merge.Point{X: float64(x), Y: float64(y)}
		return m.last, true
	}

	x, y := ebiten.CursorPosition()
	m.last = merge.Point{X: float64(x), Y: float64(y)}
	return m.last, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// PlayerInput gathers one tick of player intent for the scene
type PlayerInput struct {
	throttle ThrottleSource
	pointer  PointerSource
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{
		throttle: KeyboardThrottle{},
		pointer:  &MouseTouchPointer{},
	}
}

// Read samples the devices. B buys a battery, U uses the free upgrade.
func (p *PlayerInput) Read() scene.Input {
	pt, down := p.pointer.Pointer()
	return scene.Input{
		Pointer:     pt,
		PointerDown: down,
		Throttle:    p.throttle.Throttle(),
		Buy:         inpututil.IsKeyJustPressed(ebiten.KeyB),
		Upgrade:     inpututil.IsKeyJustPressed(ebiten.KeyU),
	}
}
