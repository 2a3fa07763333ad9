package physics

import (
	"github.com/jakecoffman/cp"

	"chargeracer/vehicle"
)

// Body wraps a dynamic cp body as a vehicle.Body
type Body struct {
	world  *World
	body   *cp.Body
	shape  *cp.Shape
	params vehicle.BodyParams

	// servo holds the angular velocity set for the next step, nil until the
	// body is first driven
	servo *cp.Constraint
}

func (b *Body) Position() vehicle.Vec {
	return fromCP(b.body.Position())
}

func (b *Body) Angle() float64 {
	return b.body.Angle()
}

func (b *Body) AngularVelocity() float64 {
	return b.body.AngularVelocity()
}

// SetAngularVelocity sets ω and holds it through the next Step against
// ground friction, up to the world's drive torque
func (b *Body) SetAngularVelocity(w float64) {
	b.body.SetAngularVelocity(w)
	b.world.hold(b, w)
}

// Velocity returns the linear velocity
func (b *Body) Velocity() vehicle.Vec {
	return fromCP(b.body.Velocity())
}

// Mass returns the density-derived mass
func (b *Body) Mass() float64 {
	return b.body.Mass()
}

// Params returns the parameters the body was created with
func (b *Body) Params() vehicle.BodyParams {
	return b.params
}

// Spring is a damped spring between two bodies
type Spring struct {
	constraint *cp.Constraint
	a, b       *cp.Body
	anchorA    cp.Vector
	anchorB    cp.Vector
}

// WorldAnchors implements vehicle.Constraint
func (s *Spring) WorldAnchors() (vehicle.Vec, vehicle.Vec) {
	return fromCP(s.a.LocalToWorld(s.anchorA)), fromCP(s.b.LocalToWorld(s.anchorB))
}

// Stretch returns the current distance between the anchors
func (s *Spring) Stretch() float64 {
	a, b := s.WorldAnchors()
	return b.Sub(a).Len()
}

func toCP(v vehicle.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) vehicle.Vec {
	return vehicle.Vec{X: v.X, Y: v.Y}
}
