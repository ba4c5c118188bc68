package manager

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// FoodManager owns the single food item and the RNG used to place it
type FoodManager struct {
	grid types.Grid
	food *entity.Food
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		food: entity.NewFood(),
		rng:  rng,
	}
}

// GenerateFood relocates the food off the snake's body
func (fm *FoodManager) GenerateFood(snake *entity.Snake) error {
	var occupied []types.Point
	if snake != nil {
		occupied = snake.Body
	}
	return fm.food.Respawn(fm.grid, occupied, fm.rng)
}

func (fm *FoodManager) GetFood() *entity.Food {
	return fm.food
}
