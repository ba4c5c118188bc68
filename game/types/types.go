package types

import "time"

// Point is a cell on the grid: X is the column, Y the row
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Opposite reports whether d points exactly the other way
func (p Point) Opposite(d Point) bool {
	return p.X+d.X == 0 && p.Y+d.Y == 0
}

// IsUnit reports whether p is one of the four cardinal unit vectors
func (p Point) IsUnit() bool {
	return (p.X == 0) != (p.Y == 0) && abs(p.X)+abs(p.Y) == 1
}

// Cardinal directions, Y grows downwards
var (
	Right = Point{X: 1, Y: 0}
	Left  = Point{X: -1, Y: 0}
	Down  = Point{X: 0, Y: 1}
	Up    = Point{X: 0, Y: -1}
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0, Width) x [0, Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// GridFromViewport truncates a pixel viewport to whole tiles.
// Both dimensions are clamped to at least one tile.
func GridFromViewport(pixelWidth, pixelHeight, tileSize int) Grid {
	if tileSize < 1 {
		tileSize = TileSize
	}
	g := Grid{Width: pixelWidth / tileSize, Height: pixelHeight / tileSize}
	if g.Width < 1 {
		g.Width = 1
	}
	if g.Height < 1 {
		g.Height = 1
	}
	return g
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	GridFull // Nowhere left to place food
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case GridFull:
		return "grid full"
	default:
		return "none"
	}
}

// Game constants
const (
	TileSize      = 20                     // Pixels per grid cell
	TickInterval  = 100 * time.Millisecond // Simulation step
	FoodReward    = 10                     // Score per food eaten
	HighScoreKey  = "snakeHighScore"       // Persistence slot for the best score
	SwipeDistance = 30                     // Minimum swipe length in pixels
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
