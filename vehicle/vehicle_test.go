package vehicle

import (
	"math"
	"testing"
)

type fakeBody struct {
	params BodyParams
	pos    Vec
	angle  float64
	w      float64
	sets   int
}

func (b *fakeBody) Position() Vec                { return b.pos }
func (b *fakeBody) Angle() float64               { return b.angle }
func (b *fakeBody) AngularVelocity() float64     { return b.w }
func (b *fakeBody) SetAngularVelocity(w float64) { b.w = w; b.sets++ }

type fakeConstraint struct {
	params ConstraintParams
}

func (c *fakeConstraint) WorldAnchors() (Vec, Vec) {
	a := c.params.A.(*fakeBody)
	b := c.params.B.(*fakeBody)
	return a.pos.Add(c.params.AnchorA.Rotate(a.angle)), b.pos.Add(c.params.AnchorB.Rotate(b.angle))
}

type fakeHost struct {
	bodies      []*fakeBody
	constraints []*fakeConstraint
}

func (h *fakeHost) CreateBody(p BodyParams) Body {
	b := &fakeBody{params: p, pos: p.Position}
	h.bodies = append(h.bodies, b)
	return b
}

func (h *fakeHost) CreateConstraint(p ConstraintParams) Constraint {
	c := &fakeConstraint{params: p}
	h.constraints = append(h.constraints, c)
	return c
}

func newTestVehicle(t *testing.T, mutate func(*Config)) (*Vehicle, *fakeHost) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.AutoThrottle = false
	if mutate != nil {
		mutate(&cfg)
	}
	host := &fakeHost{}
	return New(host, cfg, Vec{X: 200, Y: 770}), host
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewBuildsThreeBodiesAndTwoAxles(t *testing.T) {
	v, host := newTestVehicle(t, nil)

	if len(host.bodies) != 3 || len(host.constraints) != 2 {
		t.Fatalf("expected 3 bodies and 2 constraints, got %d and %d", len(host.bodies), len(host.constraints))
	}

	chassis, rear, front := host.bodies[0], host.bodies[1], host.bodies[2]
	if chassis.params.Shape != ShapeBox || !chassis.params.Ghost {
		t.Errorf("chassis should be a ghost box, got %+v", chassis.params)
	}
	if rear.pos != (Vec{X: 162, Y: 795}) || front.pos != (Vec{X: 238, Y: 795}) {
		t.Errorf("wheel spawn positions wrong: rear %v front %v", rear.pos, front.pos)
	}
	for _, b := range host.bodies {
		if b.params.Group == 0 || b.params.Group != chassis.params.Group {
			t.Errorf("bodies must share a non-zero collision group, got %d", b.params.Group)
		}
	}
	if rear.params.Shape != ShapeCircle || rear.params.Radius != 15 {
		t.Errorf("rear wheel params wrong: %+v", rear.params)
	}

	axle := host.constraints[0].params
	if axle.A != v.Chassis || axle.B != v.RearWheel {
		t.Errorf("rear axle should link chassis to rear wheel")
	}
	if axle.AnchorA != v.cfg.RearOffset || axle.AnchorB != (Vec{}) {
		t.Errorf("rear axle anchors wrong: %v %v", axle.AnchorA, axle.AnchorB)
	}
	if axle.Stiffness != v.cfg.Axle.Stiffness || axle.RestLength != 0 {
		t.Errorf("axle compliance not passed through: %+v", axle)
	}

	// at spawn the wheel centres sit exactly on the chassis anchors
	for i, pair := range v.Axles() {
		if pair[0].Sub(pair[1]).Len() > 1e-9 {
			t.Errorf("axle %d anchors apart at spawn: %v", i, pair)
		}
	}
}

func TestNewPanicsOnZeroInertia(t *testing.T) {
	cases := map[string]func(*Config){
		"wheel radius":    func(c *Config) { c.WheelRadius = 0 },
		"wheel density":   func(c *Config) { c.WheelDensity = 0 },
		"chassis density": func(c *Config) { c.ChassisDensity = -1 },
		"chassis size":    func(c *Config) { c.ChassisWidth = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			newTestVehicle(t, mutate)
		})
	}
}

func TestForwardRampsAndClamps(t *testing.T) {
	v, _ := newTestVehicle(t, nil)
	cfg := v.Config()

	v.Tick(Forward)
	if !near(v.WheelSpeed(), cfg.LaunchSpeed) {
		t.Fatalf("first forward tick should launch at %v, got %v", cfg.LaunchSpeed, v.WheelSpeed())
	}
	v.Tick(Forward)
	if !near(v.WheelSpeed(), cfg.LaunchSpeed+cfg.Acceleration) {
		t.Fatalf("second tick should add acceleration, got %v", v.WheelSpeed())
	}

	for i := 0; i < 1000; i++ {
		v.Tick(Forward)
		if v.WheelSpeed() > cfg.MaxSpeed {
			t.Fatalf("speed %v exceeded max %v", v.WheelSpeed(), cfg.MaxSpeed)
		}
	}
	if !near(v.WheelSpeed(), cfg.MaxSpeed) {
		t.Errorf("expected to settle at max speed, got %v", v.WheelSpeed())
	}
	if v.FrontWheel.AngularVelocity() != v.RearWheel.AngularVelocity() {
		t.Errorf("both wheels should be driven")
	}
}

func TestForwardWithoutLaunch(t *testing.T) {
	v, _ := newTestVehicle(t, func(c *Config) { c.LaunchSpeed = 0 })
	v.Tick(Forward)
	if !near(v.WheelSpeed(), v.Config().Acceleration) {
		t.Errorf("expected plain acceleration step, got %v", v.WheelSpeed())
	}
}

func TestReverseClamps(t *testing.T) {
	v, _ := newTestVehicle(t, nil)
	cfg := v.Config()

	v.Tick(Reverse)
	if !near(v.WheelSpeed(), -cfg.AccelerationBackwards) {
		t.Fatalf("expected %v, got %v", -cfg.AccelerationBackwards, v.WheelSpeed())
	}
	for i := 0; i < 1000; i++ {
		v.Tick(Reverse)
	}
	if !near(v.WheelSpeed(), -cfg.MaxSpeedBackwards) {
		t.Errorf("expected to settle at %v, got %v", -cfg.MaxSpeedBackwards, v.WheelSpeed())
	}

	// forward out of a reverse roll relaunches
	v.Tick(Forward)
	if !near(v.WheelSpeed(), cfg.LaunchSpeed) {
		t.Errorf("expected relaunch at %v, got %v", cfg.LaunchSpeed, v.WheelSpeed())
	}
}

func TestCoastLeavesWheelsAlone(t *testing.T) {
	v, host := newTestVehicle(t, nil)
	rear := host.bodies[1]
	rear.w = 4.2

	v.Tick(Coast)
	if rear.sets != 0 || rear.w != 4.2 {
		t.Errorf("coast must not write angular velocity")
	}
	if v.Throttle() != Coast {
		t.Errorf("throttle %v, want coast", v.Throttle())
	}
}

func TestAutoThrottle(t *testing.T) {
	v, _ := newTestVehicle(t, func(c *Config) { c.AutoThrottle = true })

	v.Tick(Coast)
	if v.Throttle() != Forward || v.WheelSpeed() <= 0 {
		t.Errorf("auto throttle should drive forward, got %v at %v", v.Throttle(), v.WheelSpeed())
	}
	v.Tick(Reverse)
	if v.Throttle() != Reverse {
		t.Errorf("explicit reverse should override auto throttle")
	}
}

func TestDriveRear(t *testing.T) {
	v, host := newTestVehicle(t, func(c *Config) { c.Drive = DriveRear })
	v.Tick(Forward)
	if host.bodies[2].sets != 0 {
		t.Errorf("front wheel should not be driven")
	}
	if host.bodies[1].sets != 1 {
		t.Errorf("rear wheel should be driven once, got %d", host.bodies[1].sets)
	}
}

func TestPoses(t *testing.T) {
	v, host := newTestVehicle(t, nil)
	host.bodies[0].angle = 0.25
	host.bodies[0].pos = Vec{X: 10, Y: 20}

	p := v.Poses()
	if p.Chassis.Angle != 0.25 || p.Chassis.Position != (Vec{X: 10, Y: 20}) {
		t.Errorf("chassis pose wrong: %+v", p.Chassis)
	}
	if p.Front.Position != host.bodies[2].pos {
		t.Errorf("front pose wrong: %+v", p.Front)
	}
}
