package entity

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestParticleRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		p := NewParticle(100, 50, FoodCyan, rng)
		speed := math.Hypot(p.VX, p.VY)
		if speed < 2-1e-9 || speed > 7+1e-9 {
			t.Fatalf("Speed %f outside [2,7]", speed)
		}
		if p.Decay < 0.02 || p.Decay > 0.05 {
			t.Fatalf("Decay %f outside [0.02,0.05]", p.Decay)
		}
		if p.Life != 1.0 || p.Color != FoodCyan {
			t.Fatalf("Unexpected initial particle %+v", p)
		}
	}
}

func TestParticleFadesOut(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := NewParticle(0, 0, FoodMagenta, rng)
	frames := 0
	for p.Alive() {
		p.Update()
		frames++
		if frames > 100 {
			t.Fatal("Particle never faded")
		}
	}
	// life 1.0 with decay in [0.02, 0.05] lasts roughly 20..50 frames
	if frames < 20 || frames > 51 {
		t.Errorf("Particle lived %d frames", frames)
	}
}
