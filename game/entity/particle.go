package entity

import (
	"math"

	"golang.org/x/exp/rand"
)

// ParticlesPerBurst is the number of particles spawned when food is eaten
const ParticlesPerBurst = 20

// Particle is a purely visual spark, positioned in pixels
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // Alpha, 1 when spawned
	Decay  float64
	Color  Color
}

func NewParticle(x, y float64, color Color, rng *rand.Rand) Particle {
	angle := rng.Float64() * math.Pi * 2
	speed := rng.Float64()*5 + 2
	return Particle{
		X:     x,
		Y:     y,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Life:  1.0,
		Decay: rng.Float64()*0.03 + 0.02,
		Color: color,
	}
}

// Update moves the particle one frame and fades it
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= p.Decay
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}
