package input

import (
	"testing"

	"snake-arcade/game/types"
)

func TestFromRune(t *testing.T) {
	tests := map[rune]Intent{
		'w': Up, 'W': Up,
		's': Down, 'S': Down,
		'a': Left, 'A': Left,
		'd': Right, 'D': Right,
		'q': None, ' ': None,
	}
	for r, want := range tests {
		if got := FromRune(r); got != want {
			t.Errorf("FromRune(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestVector(t *testing.T) {
	tests := map[Intent]types.Point{
		Up:    types.Up,
		Down:  types.Down,
		Left:  types.Left,
		Right: types.Right,
		None:  {},
	}
	for i, want := range tests {
		if got := i.Vector(); got != want {
			t.Errorf("%v.Vector() = %v, want %v", i, got, want)
		}
	}
}

func TestFromSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Intent
	}{
		{"right", 80, 10, Right},
		{"left", -45, 20, Left},
		{"down", 5, 31, Down},
		{"up", -10, -90, Up},
		{"too short", 30, 0, None},
		{"too short vertical", 0, -29, None},
		{"tie goes vertical", 40, 40, Down},
		{"no movement", 0, 0, None},
	}
	for _, tt := range tests {
		if got := FromSwipe(tt.dx, tt.dy, types.SwipeDistance); got != tt.want {
			t.Errorf("%s: FromSwipe(%v, %v) = %v, want %v", tt.name, tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestSwipeGesture(t *testing.T) {
	s := NewSwipe()
	if got := s.End(100, 100); got != None {
		t.Errorf("End without Begin = %v", got)
	}

	s.Begin(200, 300)
	if got := s.End(140, 310); got != Left {
		t.Errorf("Expected left swipe, got %v", got)
	}
	if got := s.End(0, 0); got != None {
		t.Errorf("Second End should be ignored, got %v", got)
	}
}
