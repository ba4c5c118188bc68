package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/input"
)

// Window is the raylib frame loop. It implements game.Scheduler.
type Window struct {
	frames   []func(time.Time)
	swipe    *input.Swipe
	renderer *Renderer
	tileSize int
}

func NewWindow(width, height, tileSize int, title string) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)

	return &Window{
		swipe:    input.NewSwipe(),
		renderer: NewRenderer(tileSize),
		tileSize: tileSize,
	}
}

func (w *Window) Now() time.Time {
	return time.Now()
}

func (w *Window) OnFrame(fn func(now time.Time)) {
	w.frames = append(w.frames, fn)
}

// Grid returns the grid that fits the current window
func (w *Window) Grid() types.Grid {
	pw, ph := w.renderer.PlayArea()
	return types.GridFromViewport(pw, ph, w.tileSize)
}

// Run drives g until the window is closed. onKey receives keys that are not
// directions, e.g. to toggle sound.
func (w *Window) Run(g *game.Game, onKey func(key int32)) {
	g.Attach(w)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			g.Resize(w.Grid())
		}

		w.handleInput(g, onKey)

		now := w.Now()
		for _, fn := range w.frames {
			fn(now)
		}
		w.renderer.Draw(g.Snapshot(), g.Stats())
	}
}

func (w *Window) handleInput(g *game.Game, onKey func(key int32)) {
	startPressed := rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace)

	// Touch is reported as the left mouse button
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		w.swipe.Begin(float64(pos.X), float64(pos.Y))
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if intent := w.swipe.End(float64(pos.X), float64(pos.Y)); intent != input.None {
			g.SetDirection(intent.Vector())
		} else if g.State() != game.StatePlaying {
			startPressed = true
		}
	}

	if startPressed {
		switch g.State() {
		case game.StateMenu:
			g.Start()
		case game.StateGameOver:
			g.Restart()
		}
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if intent := KeyIntent(key); intent != input.None {
			g.SetDirection(intent.Vector())
			continue
		}
		if onKey != nil {
			onKey(key)
		}
	}
}

// KeyIntent maps raylib arrow and WASD keys to an intent
func KeyIntent(key int32) input.Intent {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return input.Up
	case rl.KeyDown, rl.KeyS:
		return input.Down
	case rl.KeyLeft, rl.KeyA:
		return input.Left
	case rl.KeyRight, rl.KeyD:
		return input.Right
	default:
		return input.None
	}
}

func (w *Window) Close() {
	rl.CloseWindow()
}
