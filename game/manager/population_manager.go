package manager

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// PopulationManager keeps the live particle population of eat explosions
type PopulationManager struct {
	particles []entity.Particle
	rng       *rand.Rand
}

func NewPopulationManager(rng *rand.Rand) *PopulationManager {
	return &PopulationManager{
		particles: make([]entity.Particle, 0, entity.ParticlesPerBurst),
		rng:       rng,
	}
}

// Burst spawns a ring of particles centred on the given cell
func (pm *PopulationManager) Burst(cell types.Point, color entity.Color) {
	x := float64(cell.X*types.TileSize) + types.TileSize/2
	y := float64(cell.Y*types.TileSize) + types.TileSize/2
	for i := 0; i < entity.ParticlesPerBurst; i++ {
		pm.particles = append(pm.particles, entity.NewParticle(x, y, color, pm.rng))
	}
}

// Update advances every particle one frame and drops the faded ones
func (pm *PopulationManager) Update() {
	alive := pm.particles[:0]
	for _, p := range pm.particles {
		p.Update()
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	pm.particles = alive
}

func (pm *PopulationManager) GetParticles() []entity.Particle {
	out := make([]entity.Particle, len(pm.particles))
	copy(out, pm.particles)
	return out
}

func (pm *PopulationManager) Len() int {
	return len(pm.particles)
}

func (pm *PopulationManager) Clear() {
	pm.particles = pm.particles[:0]
}
