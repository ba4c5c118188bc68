// Package input turns raw keyboard and touch events into directional intents.
package input

import "snake-arcade/game/types"

// Intent is a single directional request from the player
type Intent int

const (
	None  Intent = iota // 0
	Up                  // 1
	Right               // 2
	Down                // 3
	Left                // 4
)

// Vector converts an Intent into a unit movement vector. None maps to the zero
// vector, which the snake ignores.
func (i Intent) Vector() types.Point {
	switch i {
	case Up:
		return types.Up
	case Right:
		return types.Right
	case Down:
		return types.Down
	case Left:
		return types.Left
	default:
		return types.Point{}
	}
}

func (i Intent) String() string {
	switch i {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// FromRune maps the WASD letters, in either case
func FromRune(r rune) Intent {
	switch r {
	case 'w', 'W':
		return Up
	case 's', 'S':
		return Down
	case 'a', 'A':
		return Left
	case 'd', 'D':
		return Right
	default:
		return None
	}
}
