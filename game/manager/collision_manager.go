package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the collision of the snake's current head.
// Must run after Advance and before the food check.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	if snake == nil {
		return types.NoCollision
	}
	return snake.Collision(cm.grid)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food != nil && pos == food.Position
}
