package input

import "snake-arcade/game/types"

// Swipe tracks one touch gesture from press to release
type Swipe struct {
	Threshold float64
	startX    float64
	startY    float64
	active    bool
}

func NewSwipe() *Swipe {
	return &Swipe{Threshold: types.SwipeDistance}
}

// Begin records where the touch started
func (s *Swipe) Begin(x, y float64) {
	s.startX, s.startY = x, y
	s.active = true
}

// End classifies the gesture; a release without Begin yields None
func (s *Swipe) End(x, y float64) Intent {
	if !s.active {
		return None
	}
	s.active = false
	return FromSwipe(x-s.startX, y-s.startY, s.Threshold)
}

// FromSwipe classifies a drag by its dominant axis. The drag must be strictly
// longer than threshold on that axis; ties go to the vertical axis.
func FromSwipe(dx, dy, threshold float64) Intent {
	if abs(dx) > abs(dy) {
		if abs(dx) <= threshold {
			return None
		}
		if dx > 0 {
			return Right
		}
		return Left
	}
	if abs(dy) <= threshold {
		return None
	}
	if dy > 0 {
		return Down
	}
	return Up
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
