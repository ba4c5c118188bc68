// Package tui is the terminal frontend, drawn with tcell.
// One grid cell takes two terminal columns so cells look roughly square.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
	"snake-arcade/input"
)

const (
	cellWidth     = 2
	hudRows       = 1
	frameInterval = 16 * time.Millisecond // ~60 FPS
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(5, 5, 5))
	styleSnake      = styleBackground.Foreground(tcell.NewRGBColor(0, 255, 0))
	styleHead       = styleBackground.Foreground(tcell.ColorYellow)
	styleHUD        = styleBackground.Foreground(tcell.ColorWhite)
	styleHigh       = styleBackground.Foreground(tcell.NewRGBColor(0, 255, 0))
	styleTitle      = styleBackground.Foreground(tcell.NewRGBColor(0, 255, 0)).Bold(true)
)

// GridForScreen returns the grid that fits a terminal of cols x rows
func GridForScreen(cols, rows int) types.Grid {
	return types.GridFromViewport(cols/cellWidth, rows-hudRows, 1)
}

// Frontend drives a game from a tcell screen. It implements game.Scheduler.
type Frontend struct {
	screen tcell.Screen
	game   *game.Game
	frames []func(time.Time)
	onRune func(r rune)
}

// New attaches g to the frontend. onRune receives runes that are not game
// controls; it may be nil.
func New(screen tcell.Screen, g *game.Game, onRune func(r rune)) *Frontend {
	f := &Frontend{screen: screen, game: g, onRune: onRune}
	g.Attach(f)
	return f
}

func (f *Frontend) Now() time.Time {
	return time.Now()
}

func (f *Frontend) OnFrame(fn func(now time.Time)) {
	f.frames = append(f.frames, fn)
}

// Run polls terminal events and renders frames until quit or ctx is done
func (f *Frontend) Run(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !f.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			f.Frame(now)
		}
	}
}

// Frame runs every frame callback and redraws
func (f *Frontend) Frame(now time.Time) {
	for _, fn := range f.frames {
		fn(now)
	}
	f.Draw()
}

// HandleEvent returns false when the user asked to quit
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		f.HandleResize()
	}
	return true
}

// HandleKey maps a key press to a game action. It returns false on quit.
func (f *Frontend) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		f.startOrRestart()
		return true
	case tcell.KeyUp:
		f.game.SetDirection(types.Up)
		return true
	case tcell.KeyDown:
		f.game.SetDirection(types.Down)
		return true
	case tcell.KeyLeft:
		f.game.SetDirection(types.Left)
		return true
	case tcell.KeyRight:
		f.game.SetDirection(types.Right)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		f.startOrRestart()
		return true
	}
	if intent := input.FromRune(r); intent != input.None {
		f.game.SetDirection(intent.Vector())
		return true
	}
	if f.onRune != nil {
		f.onRune(r)
	}
	return true
}

func (f *Frontend) startOrRestart() {
	switch f.game.State() {
	case game.StateMenu:
		f.game.Start()
	case game.StateGameOver:
		f.game.Restart()
	}
}

// HandleResize queues the grid for the new terminal size
func (f *Frontend) HandleResize() {
	cols, rows := f.screen.Size()
	f.game.Resize(GridForScreen(cols, rows))
	f.screen.Sync()
}

// Draw renders the current snapshot
func (f *Frontend) Draw() {
	snap := f.game.Snapshot()

	f.screen.SetStyle(styleBackground)
	f.screen.Clear()

	f.drawHUD(snap)
	for i, p := range snap.Body {
		style := styleSnake
		if i == 0 {
			style = styleHead
		}
		f.setCell(snap.Grid, p, '█', '█', style)
	}
	if snap.HasFood {
		f.setCell(snap.Grid, snap.Food.Position, '●', ' ', styleBackground.Foreground(toColor(snap.Food.Color, 1)))
	}
	f.drawParticles(snap)

	switch snap.State {
	case game.StateMenu:
		f.drawModal("NEON SNAKE", "Press ENTER to start")
	case game.StateGameOver:
		f.drawModal(
			fmt.Sprintf("GAME OVER - %d", snap.Score),
			fmt.Sprintf("Hit: %s. Press ENTER to restart", snap.LastCollision))
	}

	f.screen.Show()
}

func (f *Frontend) setCell(grid types.Grid, p types.Point, left, right rune, style tcell.Style) {
	if !grid.Contains(p) {
		return
	}
	x, y := p.X*cellWidth, p.Y+hudRows
	f.screen.SetContent(x, y, left, nil, style)
	f.screen.SetContent(x+1, y, right, nil, style)
}

func (f *Frontend) drawHUD(snap game.Snapshot) {
	f.drawText(0, 0, fmt.Sprintf("Score: %d  Time: %ds", snap.Score, int(snap.Elapsed.Seconds())), styleHUD)

	high := fmt.Sprintf("High Score: %d", snap.HighScore)
	cols, _ := f.screen.Size()
	f.drawText(cols-len(high), 0, high, styleHigh)
}

// drawParticles maps particle pixels back onto grid cells
func (f *Frontend) drawParticles(snap game.Snapshot) {
	for _, p := range snap.Particles {
		cell := types.Point{X: int(p.X) / types.TileSize, Y: int(p.Y) / types.TileSize}
		if p.X < 0 || p.Y < 0 || !snap.Grid.Contains(cell) {
			continue
		}
		x := cell.X*cellWidth + int(p.X)%types.TileSize*cellWidth/types.TileSize
		f.screen.SetContent(x, cell.Y+hudRows, '·', nil, styleBackground.Foreground(toColor(p.Color, p.Life)))
	}
}

func (f *Frontend) drawModal(title, hint string) {
	cols, rows := f.screen.Size()
	mid := rows / 2
	f.drawText((cols-len(title))/2, mid-1, title, styleTitle)
	f.drawText((cols-len(hint))/2, mid+1, hint, styleHUD)
}

func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// toColor scales c towards black by alpha
func toColor(c entity.Color, alpha float64) tcell.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return tcell.NewRGBColor(
		int32(float64(c.R)*alpha),
		int32(float64(c.G)*alpha),
		int32(float64(c.B)*alpha),
	)
}
