package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 40 // Score bar above the grid
)

var (
	colorBackground = rl.Color{R: 5, G: 5, B: 5, A: 255}
	colorGridLine   = rl.Color{R: 255, G: 255, B: 255, A: 8}
	colorSnake      = rl.Color{R: 0, G: 255, B: 0, A: 255}
	colorSnakeGlow  = rl.Color{R: 0, G: 255, B: 0, A: 50}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
	pulse           float64
}

func NewRenderer(tileSize int) *Renderer {
	r := &Renderer{cellSize: int32(tileSize)}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// PlayArea is the part of the window available to the grid, in pixels
func (r *Renderer) PlayArea() (width, height int) {
	r.UpdateDimensions()
	return int(r.screenWidth - borderPadding*2), int(r.screenHeight - hudHeight - borderPadding*2)
}

func (r *Renderer) Draw(snap game.Snapshot, stats *manager.StatsManager) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	fontSize := min(r.screenHeight/30, 24)

	// Centre the grid below the score bar
	r.totalGridWidth = r.cellSize * int32(snap.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(snap.Grid.Height)
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = hudHeight + (r.screenHeight-hudHeight-r.totalGridHeight)/2

	r.drawGrid(snap.Grid)
	r.drawSnake(snap.Body, snap.Direction)
	if snap.HasFood {
		r.drawFood(snap.Food)
	}
	r.drawParticles(snap.Particles)
	r.drawHUD(snap, fontSize)

	switch snap.State {
	case game.StateMenu:
		r.drawModal("NEON SNAKE", "Press ENTER or tap to start", fontSize)
	case game.StateGameOver:
		r.drawModal(
			fmt.Sprintf("GAME OVER - %d", snap.Score),
			"Press ENTER or tap to restart",
			fontSize)
		r.drawStats(stats, fontSize)
	}

	rl.EndDrawing()
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) drawGrid(grid types.Grid) {
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, colorBackground)

	for x := 0; x <= grid.Width; x++ {
		px := r.offsetX + int32(x)*r.cellSize
		rl.DrawLine(px, r.offsetY, px, r.offsetY+r.totalGridHeight, colorGridLine)
	}
	for y := 0; y <= grid.Height; y++ {
		py := r.offsetY + int32(y)*r.cellSize
		rl.DrawLine(r.offsetX, py, r.offsetX+r.totalGridWidth, py, colorGridLine)
	}
}

func (r *Renderer) drawSnake(body []types.Point, direction types.Point) {
	halfCell := r.cellSize / 2
	for j, p := range body {
		x, y := r.cell(p)
		// Faint wider pass for the glow
		rl.DrawRectangle(x-2, y-2, r.cellSize+4, r.cellSize+4, colorSnakeGlow)
		rl.DrawRectangle(x+2, y+2, r.cellSize-4, r.cellSize-4, colorSnake)

		if j != 0 {
			continue
		}
		// Direction indicator on the head
		var a, b, c rl.Vector2
		switch direction {
		case types.Right:
			a = rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + halfCell)}
			b = rl.Vector2{X: float32(x + halfCell), Y: float32(y)}
			c = rl.Vector2{X: float32(x + halfCell), Y: float32(y + r.cellSize)}
		case types.Left:
			a = rl.Vector2{X: float32(x), Y: float32(y + halfCell)}
			b = rl.Vector2{X: float32(x + halfCell), Y: float32(y + r.cellSize)}
			c = rl.Vector2{X: float32(x + halfCell), Y: float32(y)}
		case types.Down:
			a = rl.Vector2{X: float32(x + halfCell), Y: float32(y + r.cellSize)}
			b = rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + halfCell)}
			c = rl.Vector2{X: float32(x), Y: float32(y + halfCell)}
		default:
			a = rl.Vector2{X: float32(x + halfCell), Y: float32(y)}
			b = rl.Vector2{X: float32(x), Y: float32(y + halfCell)}
			c = rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + halfCell)}
		}
		rl.DrawTriangle(a, b, c, rl.Yellow)
	}
}

func (r *Renderer) drawFood(food entity.Food) {
	r.pulse += 0.1
	glow := float32(10 + math.Sin(r.pulse)*5)

	x, y := r.cell(food.Position)
	cx, cy := x+r.cellSize/2, y+r.cellSize/2
	color := toColor(food.Color)

	rl.DrawCircle(cx, cy, float32(r.cellSize)/2-2+glow/2, rl.Fade(color, 0.15))
	rl.DrawCircle(cx, cy, float32(r.cellSize)/2-2, color)
}

// drawParticles maps particle pixels (laid out on TileSize cells) onto the current cell size
func (r *Renderer) drawParticles(particles []entity.Particle) {
	scale := float64(r.cellSize) / types.TileSize
	for _, p := range particles {
		x := r.offsetX + int32(p.X*scale)
		y := r.offsetY + int32(p.Y*scale)
		rl.DrawCircle(x, y, 3, rl.Fade(toColor(p.Color), float32(p.Life)))
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot, fontSize int32) {
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), borderPadding, borderPadding, fontSize, rl.White)

	elapsed := fmt.Sprintf("Time: %ds", int(snap.Elapsed.Seconds()))
	ew := rl.MeasureText(elapsed, fontSize)
	rl.DrawText(elapsed, (r.screenWidth-ew)/2, borderPadding, fontSize, rl.LightGray)

	high := fmt.Sprintf("High Score: %d", snap.HighScore)
	w := rl.MeasureText(high, fontSize)
	rl.DrawText(high, r.screenWidth-w-borderPadding, borderPadding, fontSize, rl.Green)
}

func (r *Renderer) drawModal(title, hint string, fontSize int32) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 0.6))

	titleSize := fontSize * 2
	tw := rl.MeasureText(title, titleSize)
	rl.DrawText(title, (r.screenWidth-tw)/2, r.screenHeight/2-titleSize, titleSize, colorSnake)

	hw := rl.MeasureText(hint, fontSize)
	rl.DrawText(hint, (r.screenWidth-hw)/2, r.screenHeight/2+fontSize/2, fontSize, rl.White)
}

func (r *Renderer) drawStats(stats *manager.StatsManager, fontSize int32) {
	if stats == nil || stats.GetGamesPlayed() == 0 {
		return
	}
	small := fontSize * 3 / 4
	line := fmt.Sprintf("Games: %d   Avg Score: %.1f   Max Score: %d   Avg Duration: %.1fs",
		stats.GetGamesPlayed(),
		stats.GetAverageScore(),
		stats.GetMaxScore(),
		stats.GetAverageDuration())
	w := rl.MeasureText(line, small)
	rl.DrawText(line, (r.screenWidth-w)/2, r.screenHeight/2+fontSize*2, small, rl.Purple)
}

func toColor(c entity.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
