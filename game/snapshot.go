package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Snapshot is a read-only copy of everything a renderer draws
type Snapshot struct {
	Session       string
	State         State
	Grid          types.Grid
	Body          []types.Point
	Direction     types.Point
	Food          entity.Food
	HasFood       bool
	Particles     []entity.Particle
	Score         int
	HighScore     int
	LastCollision types.CollisionType
	Elapsed       time.Duration
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Session:       g.UUID,
		State:         g.state,
		Grid:          g.Grid,
		Particles:     g.particles.GetParticles(),
		Score:         g.stateMgr.GetScore(),
		HighScore:     g.stateMgr.GetHighScore(),
		LastCollision: g.lastCollision,
		Elapsed:       g.ElapsedTime(),
	}
	if g.snake != nil {
		snap.Body = g.snake.Segments()
		snap.Direction = g.snake.Direction
		snap.Food = *g.foodMgr.GetFood()
		snap.HasFood = true
	}
	return snap
}
