package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"chargeracer/vehicle"
)

// Segment is one static ground piece, top surface from A to B
type Segment struct {
	A, B vehicle.Vec
}

// World is the physics host: a cp space with static terrain
type World struct {
	cfg     Config
	space   *cp.Space
	ground  []Segment
	bodies  []*Body
	springs []*Spring
	servos  []*cp.Constraint
	box     *Body
}

// New creates a world with gravity and terrain
func New(cfg Config) *World {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}

	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	w := &World{cfg: cfg, space: space}
	w.buildTerrain()
	return w
}

func (w *World) buildTerrain() {
	t := w.cfg.Terrain
	top := math.Min(t.FlatY, t.PlatformY) - t.WallHeight

	w.addGround(vehicle.Vec{X: 0, Y: t.FlatY}, vehicle.Vec{X: t.SlopeStartX, Y: t.FlatY})
	w.addGround(vehicle.Vec{X: t.SlopeStartX, Y: t.FlatY}, vehicle.Vec{X: t.SlopeEndX, Y: t.SlopeTopY})
	w.addGround(vehicle.Vec{X: t.PlatformX, Y: t.PlatformY}, vehicle.Vec{X: t.End(), Y: t.PlatformY})
	w.addGround(vehicle.Vec{X: 0, Y: top}, vehicle.Vec{X: 0, Y: t.FlatY})
	w.addGround(vehicle.Vec{X: t.End(), Y: t.PlatformY}, vehicle.Vec{X: t.End(), Y: top})
}

// addGround adds a static segment whose surface runs along a-b
func (w *World) addGround(a, b vehicle.Vec) {
	r := w.cfg.Terrain.Thickness / 2
	off := cp.Vector{X: 0, Y: r}
	if a.X == b.X {
		off = cp.Vector{X: -r, Y: 0}
		if a.X > 0 {
			off.X = r
		}
	}
	seg := cp.NewSegment(w.space.StaticBody, toCP(a).Add(off), toCP(b).Add(off), r)
	seg.SetFriction(w.cfg.Terrain.Friction)
	w.space.AddShape(seg)
	w.ground = append(w.ground, Segment{A: a, B: b})
}

// Ground returns the static terrain for drawing
func (w *World) Ground() []Segment {
	return w.ground
}

// Config returns the world settings
func (w *World) Config() Config {
	return w.cfg
}

// GroundY returns the terrain surface height at x
func (w *World) GroundY(x float64) float64 {
	t := w.cfg.Terrain
	switch {
	case x < t.SlopeStartX:
		return t.FlatY
	case x < t.SlopeEndX:
		f := (x - t.SlopeStartX) / (t.SlopeEndX - t.SlopeStartX)
		return t.FlatY + (t.SlopeTopY-t.FlatY)*f
	default:
		return t.PlatformY
	}
}

// CreateBody implements vehicle.Host. Mass and moment derive from density.
func (w *World) CreateBody(p vehicle.BodyParams) vehicle.Body {
	return w.createBody(p)
}

func (w *World) createBody(p vehicle.BodyParams) *Body {
	var mass, moment float64
	switch p.Shape {
	case vehicle.ShapeBox:
		mass = p.Density * p.Width * p.Height
		moment = cp.MomentForBox(mass, p.Width, p.Height)
	case vehicle.ShapeCircle:
		mass = p.Density * cp.AreaForCircle(0, p.Radius)
		moment = cp.MomentForCircle(mass, 0, p.Radius, cp.Vector{})
	default:
		panic(fmt.Sprintf("physics: unknown shape %d", p.Shape))
	}
	if mass <= 0 || moment <= 0 {
		panic(fmt.Sprintf("physics: zero inertia for %+v", p))
	}

	body := w.space.AddBody(cp.NewBody(mass, moment))
	body.SetPosition(toCP(p.Position))

	var shape *cp.Shape
	if p.Shape == vehicle.ShapeBox {
		shape = cp.NewBox(body, p.Width, p.Height, 0)
	} else {
		shape = cp.NewCircle(body, p.Radius, cp.Vector{})
	}
	shape.SetFriction(p.Friction)
	mask := cp.ALL_CATEGORIES
	if p.Ghost {
		mask = 0
	}
	shape.SetFilter(cp.NewShapeFilter(p.Group, cp.ALL_CATEGORIES, mask))
	w.space.AddShape(shape)

	b := &Body{world: w, body: body, shape: shape, params: p}
	w.bodies = append(w.bodies, b)
	return b
}

// CreateConstraint implements vehicle.Host with a damped spring
func (w *World) CreateConstraint(p vehicle.ConstraintParams) vehicle.Constraint {
	a, ok := p.A.(*Body)
	b, ok2 := p.B.(*Body)
	if !ok || !ok2 {
		panic("physics: constraint between bodies from another host")
	}
	anchorA, anchorB := toCP(p.AnchorA), toCP(p.AnchorB)
	c := cp.NewDampedSpring(a.body, b.body, anchorA, anchorB, p.RestLength, p.Stiffness, p.Damping)
	w.space.AddConstraint(c)

	s := &Spring{constraint: c, a: a.body, b: b.body, anchorA: anchorA, anchorB: anchorB}
	w.springs = append(w.springs, s)
	return s
}

// SpawnBox drops the pushable crate resting on the ground at x. Returns nil
// when the box is disabled.
func (w *World) SpawnBox(x float64) *Body {
	bc := w.cfg.Box
	if !bc.Enabled {
		return nil
	}
	w.box = w.createBody(vehicle.BodyParams{
		Shape:    vehicle.ShapeBox,
		Position: vehicle.Vec{X: x, Y: w.GroundY(x) - bc.Height/2},
		Width:    bc.Width,
		Height:   bc.Height,
		Density:  bc.Density,
		Friction: bc.Friction,
	})
	return w.box
}

// Box returns the crate, or nil
func (w *World) Box() *Body {
	return w.box
}

// Bodies returns every dynamic body created in the world
func (w *World) Bodies() []*Body {
	return w.bodies
}

// hold arms a motor against the static body so b keeps angular velocity
// omega for the next Step
func (w *World) hold(b *Body, omega float64) {
	if w.cfg.DriveTorque <= 0 {
		return
	}
	if b.servo == nil {
		b.servo = w.space.AddConstraint(cp.NewSimpleMotor(w.space.StaticBody, b.body, 0))
		w.servos = append(w.servos, b.servo)
	}
	// the motor solves b.w - static.w + Rate = 0
	b.servo.Class.(*cp.SimpleMotor).Rate = -omega
	b.servo.SetMaxForce(w.cfg.DriveTorque)
}

// Step advances the simulation by dt seconds in fixed substeps. Angular
// velocities set since the last Step are held for this one only.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	h := dt / float64(w.cfg.Substeps)
	for i := 0; i < w.cfg.Substeps; i++ {
		w.space.Step(h)
	}
	for _, s := range w.servos {
		s.SetMaxForce(0)
	}
}
