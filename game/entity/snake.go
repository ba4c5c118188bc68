package entity

import (
	"snake-arcade/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake is the player's body. Body[0] is the head, the last element the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	pending   types.Point
	growth    int
}

// NewSnake returns the three segment snake every game starts with, moving right
func NewSnake() *Snake {
	return &Snake{
		Body: []types.Point{
			{X: 10, Y: 10},
			{X: 9, Y: 10},
			{X: 8, Y: 10},
		},
		Direction: types.Right,
		pending:   types.Right,
	}
}

// GetHead returns the first segment
func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Len is the number of segments
func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// Occupies reports whether any segment is on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// PendingDirection is the direction the next Advance will take
func (s *Snake) PendingDirection() types.Point {
	return s.pending
}

// GrowthCredits counts the advances that will keep the tail
func (s *Snake) GrowthCredits() int {
	return s.growth
}

// SetDirection buffers the direction for the next Advance.
// Several calls between two ticks collapse to the last accepted one.
func (s *Snake) SetDirection(dir types.Point) {
	if !dir.IsUnit() {
		return
	}
	// Prevent 180-degree turns
	if dir.Opposite(s.Direction) {
		return
	}
	s.pending = dir
}

// Advance moves the snake one cell and returns the new head
func (s *Snake) Advance() types.Point {
	s.Direction = s.pending
	newHead := s.GetHead().Add(s.Direction)

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	if s.growth > 0 {
		s.growth--
	} else {
		s.removeTail()
	}
	return newHead
}

func (s *Snake) removeTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow keeps the tail on the next n advances
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.growth += n
	}
}

// CheckCollision reports a wall or self collision of the current head
func (s *Snake) CheckCollision(grid types.Grid) bool {
	return s.Collision(grid) != types.NoCollision
}

func (s *Snake) Collision(grid types.Grid) types.CollisionType {
	if len(s.Body) == 0 {
		return types.NoCollision
	}
	head := s.GetHead()
	if !grid.Contains(head) {
		return types.WallCollision
	}

	// Check self collision
	for _, part := range s.Body[1:] {
		if part == head {
			return types.SelfCollision
		}
	}
	return types.NoCollision
}
