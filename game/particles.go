package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chargeracer/vehicle"
)

// Particle is one speck of dust thrown up by a wheel
type Particle struct {
	pos      vehicle.Vec // world position
	vel      vehicle.Vec // velocity vector
	age      float64     // age in seconds
	lifetime float64     // total lifetime in seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// DustSystem emits dust behind a spinning wheel that touches the ground
type DustSystem struct {
	particles      []Particle
	maxParticles   int
	maxRate        float64 // particles per second at full wheel speed
	emissionTimer  float64
	gravity        float64
	velocityMin    float64
	velocityMax    float64
	spreadAngle    float64 // half-angle in radians
	lifetimeMin    float64
	lifetimeMax    float64
	sizeMin        float64
	sizeMax        float64
	colorBase      color.NRGBA
	colorVariation color.NRGBA
	rng            *rand.Rand
}

// NewDustSystem creates the rear-wheel dust emitter
func NewDustSystem(seed int64) *DustSystem {
	return &DustSystem{
		maxParticles:   80,
		maxRate:        50,
		gravity:        400,
		velocityMin:    40,
		velocityMax:    110,
		spreadAngle:    math.Pi / 6,
		lifetimeMin:    0.3,
		lifetimeMax:    0.7,
		sizeMin:        1.5,
		sizeMax:        3.5,
		colorBase:      color.NRGBA{R: 150, G: 120, B: 80, A: 255},
		colorVariation: color.NRGBA{R: 30, G: 25, B: 20},
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// Update emits at the contact point of a wheel centred at hub and ages the
// existing particles. speedRatio is the signed wheel speed over max speed;
// nothing is emitted while the wheel is airborne.
func (ds *DustSystem) Update(dt float64, hub vehicle.Vec, radius, speedRatio float64, grounded bool) {
	if grounded && speedRatio != 0 {
		rate := ds.maxRate * math.Min(1, math.Abs(speedRatio))
		ds.emissionTimer += dt
		n := int(rate * ds.emissionTimer)
		if n > 0 {
			ds.emissionTimer -= float64(n) / rate
			contact := vehicle.Vec{X: hub.X, Y: hub.Y + radius}
			for i := 0; i < n && len(ds.particles) < ds.maxParticles; i++ {
				ds.emit(contact, speedRatio > 0)
			}
		}
	} else {
		ds.emissionTimer = 0
	}

	for i := len(ds.particles) - 1; i >= 0; i-- {
		p := &ds.particles[i]
		p.age += dt
		p.vel.Y += ds.gravity * dt
		p.pos = p.pos.Add(vehicle.Vec{X: p.vel.X * dt, Y: p.vel.Y * dt})

		// Remove dead particles
		if !p.IsAlive() {
			ds.particles = append(ds.particles[:i], ds.particles[i+1:]...)
		}
	}
}

func (ds *DustSystem) emit(at vehicle.Vec, forward bool) {
	// Kick back and up, away from the direction of travel
	base := -3 * math.Pi / 4
	if !forward {
		base = -math.Pi / 4
	}
	angle := base + (ds.rng.Float64()-0.5)*ds.spreadAngle*2
	speed := ds.velocityMin + ds.rng.Float64()*(ds.velocityMax-ds.velocityMin)

	vary := func(c, spread uint8) uint8 {
		v := float64(c) + (ds.rng.Float64()*2-1)*float64(spread)
		return uint8(math.Max(0, math.Min(255, v)))
	}

	ds.particles = append(ds.particles, Particle{
		pos:      at,
		vel:      vehicle.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		lifetime: ds.lifetimeMin + ds.rng.Float64()*(ds.lifetimeMax-ds.lifetimeMin),
		size:     ds.sizeMin + ds.rng.Float64()*(ds.sizeMax-ds.sizeMin),
		color: color.NRGBA{
			R: vary(ds.colorBase.R, ds.colorVariation.R),
			G: vary(ds.colorBase.G, ds.colorVariation.G),
			B: vary(ds.colorBase.B, ds.colorVariation.B),
			A: ds.colorBase.A,
		},
	})
}

// Len returns the number of live particles
func (ds *DustSystem) Len() int {
	return len(ds.particles)
}

// Draw renders all particles through the camera
func (ds *DustSystem) Draw(dst *ebiten.Image, camera *Camera) {
	for _, p := range ds.particles {
		sx, sy := camera.WorldToScreen(p.pos.X, p.pos.Y)

		// Fade with age from a half-transparent start
		alpha := 0.5 * math.Max(0, math.Min(1, 1-p.age/p.lifetime))
		c := p.color
		c.A = uint8(float64(c.A) * alpha)
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(p.size*camera.Zoom), c, true)
	}
}
