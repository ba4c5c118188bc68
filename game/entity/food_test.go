package entity

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

func fill(grid types.Grid, skip map[types.Point]bool) []types.Point {
	var out []types.Point
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !skip[p] {
				out = append(out, p)
			}
		}
	}
	return out
}

func TestRespawnAvoidsSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := types.Grid{Width: 30, Height: 20}
	snake := NewSnake()
	food := NewFood()

	for i := 0; i < 2000; i++ {
		if err := food.Respawn(grid, snake.Body, rng); err != nil {
			t.Fatalf("Respawn failed: %v", err)
		}
		if snake.Occupies(food.Position) {
			t.Fatalf("Food spawned on snake at %v", food.Position)
		}
		if !grid.Contains(food.Position) {
			t.Fatalf("Food spawned outside grid at %v", food.Position)
		}
	}
}

func TestRespawnNearFullGridUsesFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := types.Grid{Width: 40, Height: 40}
	free := types.Point{X: 17, Y: 33}
	occupied := fill(grid, map[types.Point]bool{free: true})

	food := NewFood()
	for i := 0; i < 20; i++ {
		if err := food.Respawn(grid, occupied, rng); err != nil {
			t.Fatalf("Respawn failed with one free cell: %v", err)
		}
		if food.Position != free {
			t.Fatalf("Expected the only free cell %v, got %v", free, food.Position)
		}
	}
}

func TestRespawnFullGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := types.Grid{Width: 3, Height: 2}
	food := NewFood()
	before := food.Position

	err := food.Respawn(grid, fill(grid, nil), rng)
	if !errors.Is(err, ErrGridFull) {
		t.Fatalf("Expected ErrGridFull, got %v", err)
	}
	if food.Position != before {
		t.Errorf("Food moved on failure: %v", food.Position)
	}
}

func TestRespawnIgnoresOutOfBoundsSegments(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grid := types.Grid{Width: 1, Height: 1}
	food := NewFood()

	// A dead snake's head may sit outside the grid; it must not count as occupancy
	if err := food.Respawn(grid, []types.Point{{X: 1, Y: 0}}, rng); err != nil {
		t.Fatalf("Respawn failed: %v", err)
	}
	if food.Position != (types.Point{}) {
		t.Errorf("Expected (0,0), got %v", food.Position)
	}
}

func TestRespawnColorTag(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	grid := types.Grid{Width: 10, Height: 10}
	food := NewFood()

	seen := map[Color]int{}
	for i := 0; i < 200; i++ {
		if err := food.Respawn(grid, nil, rng); err != nil {
			t.Fatal(err)
		}
		if food.Color != FoodMagenta && food.Color != FoodCyan {
			t.Fatalf("Unexpected food colour %v", food.Color)
		}
		seen[food.Color]++
	}
	if seen[FoodMagenta] == 0 || seen[FoodCyan] == 0 {
		t.Errorf("Expected both colours over 200 spawns, got %v", seen)
	}
}

func TestRespawnIsUniformOverFreeCells(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	grid := types.Grid{Width: 2, Height: 2}
	occupied := []types.Point{{X: 0, Y: 0}}
	food := NewFood()

	counts := map[types.Point]int{}
	const n = 3000
	for i := 0; i < n; i++ {
		if err := food.Respawn(grid, occupied, rng); err != nil {
			t.Fatal(err)
		}
		counts[food.Position]++
	}
	if len(counts) != 3 {
		t.Fatalf("Expected 3 distinct free cells, got %v", counts)
	}
	for p, c := range counts {
		if c < n/3-200 || c > n/3+200 {
			t.Errorf("Cell %v drawn %d times out of %d", p, c, n)
		}
	}
}
