package vehicle

import "fmt"

// Throttle is the driver input for one tick
type Throttle int

const (
	Coast Throttle = iota
	Forward
	Reverse
)

func (t Throttle) String() string {
	switch t {
	case Coast:
		return "coast"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return "unknown"
}

// Pose is a body position and rotation
type Pose struct {
	Position Vec
	Angle    float64
}

func poseOf(b PoseReadable) Pose {
	return Pose{Position: b.Position(), Angle: b.Angle()}
}

// Poses is everything a renderer needs to draw the vehicle
type Poses struct {
	Chassis Pose
	Rear    Pose
	Front   Pose
}

// Vehicle is a chassis on two wheels held by compliant axles
type Vehicle struct {
	cfg Config

	Chassis    Body
	RearWheel  Body
	FrontWheel Body
	RearAxle   Constraint
	FrontAxle  Constraint

	throttle Throttle
}

// New builds the vehicle in host with the chassis centred on spawn. Invalid
// geometry is a programming error and panics.
func New(host Host, cfg Config, spawn Vec) *Vehicle {
	if host == nil {
		panic("vehicle: nil host")
	}
	if err := cfg.check(); err != nil {
		panic(err)
	}

	v := &Vehicle{cfg: cfg}

	v.Chassis = host.CreateBody(BodyParams{
		Shape:    ShapeBox,
		Position: spawn,
		Width:    cfg.ChassisWidth,
		Height:   cfg.ChassisHeight,
		Density:  cfg.ChassisDensity,
		Group:    cfg.Group,
		Ghost:    true,
	})
	v.RearWheel = v.wheel(host, spawn.Add(cfg.RearOffset))
	v.FrontWheel = v.wheel(host, spawn.Add(cfg.FrontOffset))

	v.RearAxle = v.axle(host, v.RearWheel, cfg.RearOffset)
	v.FrontAxle = v.axle(host, v.FrontWheel, cfg.FrontOffset)
	return v
}

func (v *Vehicle) wheel(host Host, at Vec) Body {
	return host.CreateBody(BodyParams{
		Shape:    ShapeCircle,
		Position: at,
		Radius:   v.cfg.WheelRadius,
		Density:  v.cfg.WheelDensity,
		Friction: v.cfg.WheelFriction,
		Group:    v.cfg.Group,
	})
}

func (v *Vehicle) axle(host Host, wheel Body, anchor Vec) Constraint {
	return host.CreateConstraint(ConstraintParams{
		A:          v.Chassis,
		B:          wheel,
		AnchorA:    anchor,
		AnchorB:    Vec{},
		RestLength: v.cfg.Axle.RestLength,
		Stiffness:  v.cfg.Axle.Stiffness,
		Damping:    v.cfg.Axle.Damping,
	})
}

func (c Config) check() error {
	switch {
	case c.ChassisWidth <= 0 || c.ChassisHeight <= 0:
		return fmt.Errorf("vehicle: chassis size %vx%v", c.ChassisWidth, c.ChassisHeight)
	case c.ChassisDensity <= 0:
		return fmt.Errorf("vehicle: chassis density %v gives zero inertia", c.ChassisDensity)
	case c.WheelRadius <= 0:
		return fmt.Errorf("vehicle: wheel radius %v gives zero inertia", c.WheelRadius)
	case c.WheelDensity <= 0:
		return fmt.Errorf("vehicle: wheel density %v gives zero inertia", c.WheelDensity)
	case c.Axle.Stiffness < 0 || c.Axle.Damping < 0 || c.Axle.RestLength < 0:
		return fmt.Errorf("vehicle: negative axle compliance %+v", c.Axle)
	}
	return nil
}

// Config returns the vehicle tuning
func (v *Vehicle) Config() Config { return v.cfg }

// Throttle returns the input applied on the last tick
func (v *Vehicle) Throttle() Throttle { return v.throttle }

// Tick applies the ramped-velocity drive law once. The rear wheel's spin is
// the reference; the result is written to every driven wheel. Coast leaves
// the wheels to the host's friction.
func (v *Vehicle) Tick(t Throttle) {
	if v.cfg.AutoThrottle && t == Coast {
		t = Forward
	}
	v.throttle = t

	w := v.RearWheel.AngularVelocity()
	switch t {
	case Forward:
		w = v.accelerate(w)
	case Reverse:
		w = v.reverse(w)
	default:
		return
	}

	v.RearWheel.SetAngularVelocity(w)
	if v.cfg.Drive == DriveBoth {
		v.FrontWheel.SetAngularVelocity(w)
	}
}

func (v *Vehicle) accelerate(w float64) float64 {
	if w <= 0 && v.cfg.LaunchSpeed > 0 {
		w = v.cfg.LaunchSpeed
	} else {
		w += v.cfg.Acceleration
	}
	if w > v.cfg.MaxSpeed {
		w = v.cfg.MaxSpeed
	}
	return w
}

func (v *Vehicle) reverse(w float64) float64 {
	w -= v.cfg.AccelerationBackwards
	if w < -v.cfg.MaxSpeedBackwards {
		w = -v.cfg.MaxSpeedBackwards
	}
	return w
}

// Poses returns the current chassis and wheel poses
func (v *Vehicle) Poses() Poses {
	return Poses{
		Chassis: poseOf(v.Chassis),
		Rear:    poseOf(v.RearWheel),
		Front:   poseOf(v.FrontWheel),
	}
}

// WheelSpeed returns the signed angular velocity of the rear wheel
func (v *Vehicle) WheelSpeed() float64 {
	return v.RearWheel.AngularVelocity()
}

// Axles returns the chassis-side and wheel-side anchors of both axles
func (v *Vehicle) Axles() [2][2]Vec {
	var out [2][2]Vec
	out[0][0], out[0][1] = v.RearAxle.WorldAnchors()
	out[1][0], out[1][1] = v.FrontAxle.WorldAnchors()
	return out
}
