package types

import "testing"

func TestGridContains(t *testing.T) {
	g := Grid{Width: 30, Height: 20}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 0, Y: 0}, true},
		{Point{X: 29, Y: 19}, true},
		{Point{X: 30, Y: 5}, false},
		{Point{X: 5, Y: 20}, false},
		{Point{X: -1, Y: 0}, false},
		{Point{X: 0, Y: -1}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGridFromViewport(t *testing.T) {
	tests := []struct {
		w, h, tile int
		want       Grid
	}{
		{600, 400, 20, Grid{Width: 30, Height: 20}},
		{619, 419, 20, Grid{Width: 30, Height: 20}},
		{5, 5, 20, Grid{Width: 1, Height: 1}},
		{100, 60, 0, Grid{Width: 5, Height: 3}},
	}
	for _, tt := range tests {
		if got := GridFromViewport(tt.w, tt.h, tt.tile); got != tt.want {
			t.Errorf("GridFromViewport(%d, %d, %d) = %v, want %v", tt.w, tt.h, tt.tile, got, tt.want)
		}
	}
}

func TestDirections(t *testing.T) {
	for _, d := range []Point{Right, Left, Up, Down} {
		if !d.IsUnit() {
			t.Errorf("%v should be a unit vector", d)
		}
	}
	for _, d := range []Point{{}, {X: 1, Y: 1}, {X: -2, Y: 0}} {
		if d.IsUnit() {
			t.Errorf("%v should not be a unit vector", d)
		}
	}
	if !Right.Opposite(Left) || !Up.Opposite(Down) {
		t.Error("Expected opposite directions")
	}
	if Right.Opposite(Up) {
		t.Error("Right and up are not opposite")
	}
	if got := (Point{X: 10, Y: 10}).Add(Right); got != (Point{X: 11, Y: 10}) {
		t.Errorf("Add = %v", got)
	}
}
