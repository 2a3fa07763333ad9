package vehicle

import "math"

// Vec is a 2D point or offset in world units (screen orientation, y down)
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Rotate turns v by angle radians around the origin
func (v Vec) Rotate(angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Len returns the length of v
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// PoseReadable exposes where a body is
type PoseReadable interface {
	Position() Vec
	Angle() float64
}

// AngularDrivable exposes the spin of a body. Positive angular velocity
// rolls a grounded wheel towards +X.
type AngularDrivable interface {
	AngularVelocity() float64
	SetAngularVelocity(w float64)
}

// Body is a rigid body owned by the host physics engine
type Body interface {
	PoseReadable
	AngularDrivable
}

// Shape selects the collision shape of a new body
type Shape int

const (
	ShapeBox Shape = iota
	ShapeCircle
)

// BodyParams describes a body for Host.CreateBody
type BodyParams struct {
	Shape    Shape
	Position Vec
	Width    float64 // ShapeBox
	Height   float64 // ShapeBox
	Radius   float64 // ShapeCircle
	Density  float64
	Friction float64
	// Bodies sharing a non-zero Group never collide with each other
	Group uint
	// Ghost bodies collide with nothing
	Ghost bool
}

// ConstraintParams describes a compliant point-to-point link between an
// anchor on A and an anchor on B, both in body-local coordinates
type ConstraintParams struct {
	A, B       Body
	AnchorA    Vec
	AnchorB    Vec
	RestLength float64
	Stiffness  float64
	Damping    float64
}

// Constraint is a host-owned link between two bodies
type Constraint interface {
	// WorldAnchors returns both anchor points in world coordinates
	WorldAnchors() (a, b Vec)
}

// Host creates bodies and constraints in a physics engine. Created objects
// live as long as the host.
type Host interface {
	CreateBody(p BodyParams) Body
	CreateConstraint(p ConstraintParams) Constraint
}
