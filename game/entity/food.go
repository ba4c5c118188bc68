package entity

import (
	"errors"

	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// MaxSpawnAttempts bounds rejection sampling before falling back to a free-cell scan
const MaxSpawnAttempts = 64

// ErrGridFull is returned when no free cell is left for the food
var ErrGridFull = errors.New("no free cell for food")

var (
	FoodMagenta = Color{R: 255, G: 0, B: 255}
	FoodCyan    = Color{R: 0, G: 255, B: 255}
)

// Food is the single pickup on the grid. Color is a presentation tag only.
type Food struct {
	Position types.Point
	Color    Color
}

func NewFood() *Food {
	return &Food{Position: types.Point{X: 5, Y: 5}, Color: FoodMagenta}
}

// Respawn moves the food to a uniformly random cell outside occupied.
// On ErrGridFull the food is left where it was.
func (f *Food) Respawn(grid types.Grid, occupied []types.Point, rng *rand.Rand) error {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if grid.Contains(p) {
			taken[p] = struct{}{}
		}
	}
	if len(taken) >= grid.Cells() {
		return ErrGridFull
	}

	pos, ok := sampleFree(grid, taken, rng)
	if !ok {
		pos, ok = scanFree(grid, taken, rng)
		if !ok {
			return ErrGridFull
		}
	}

	f.Position = pos
	if rng.Float64() > 0.5 {
		f.Color = FoodMagenta
	} else {
		f.Color = FoodCyan
	}
	return nil
}

func sampleFree(grid types.Grid, taken map[types.Point]struct{}, rng *rand.Rand) (types.Point, bool) {
	for i := 0; i < MaxSpawnAttempts; i++ {
		p := types.Point{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if _, hit := taken[p]; !hit {
			return p, true
		}
	}
	return types.Point{}, false
}

// scanFree picks uniformly among the remaining free cells
func scanFree(grid types.Grid, taken map[types.Point]struct{}, rng *rand.Rand) (types.Point, bool) {
	free := make([]types.Point, 0, grid.Cells()-len(taken))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, hit := taken[p]; !hit {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
