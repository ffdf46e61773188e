package ui

import (
	"fmt"
	"time"

	"diplopod/game"
	"diplopod/game/entity"
	"diplopod/game/types"
	"diplopod/ui/overlay"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 200 // Maximum number of scores to show in graph
	borderPadding = 10
)

var (
	wallColor      = rl.Color{R: 90, G: 90, B: 100, A: 255}
	bodyColor      = rl.Color{R: 110, G: 190, B: 60, A: 255}
	immuneColor    = rl.Color{R: 230, G: 220, B: 90, A: 255}
	foodColor      = rl.Color{R: 60, G: 200, B: 90, A: 255}
	superFoodColor = rl.Color{R: 250, G: 150, B: 40, A: 255}
	antiDoteColor  = rl.Color{R: 240, G: 240, B: 240, A: 255}
	poisonColor    = rl.Color{R: 170, G: 50, B: 200, A: 255}
)

type Renderer struct {
	cellSize        int32 // fine cell, in pixels
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
	startTime       time.Time
}

func NewRenderer() *Renderer {
	r := &Renderer{startTime: time.Now()}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 5
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func kindColor(k entity.Kind) rl.Color {
	switch k {
	case entity.Food:
		return foodColor
	case entity.SuperFood:
		return superFoodColor
	case entity.AntiDote:
		return antiDoteColor
	default:
		return poisonColor
	}
}

// Draw renders one frame from a snapshot plus the live floating messages.
func (r *Renderer) Draw(s game.Snapshot, messages []overlay.Message) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/40, r.statsPanel/12)
	lineHeight := min(r.screenHeight/30, r.statsPanel/9)

	// the board is the wall ring plus the grid, on the fine grid
	fineW := int32((s.Width + 1) * s.Scale)
	fineH := int32((s.Height + 1) * s.Scale)
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.gameHeight - borderPadding*2
	r.cellSize = min(availableWidth/fineW, availableHeight/fineH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.totalGridWidth = r.cellSize * fineW
	r.totalGridHeight = r.cellSize * fineH
	r.offsetX = borderPadding + (availableWidth-r.totalGridWidth)/2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	if s.Phase == types.Game || s.Phase == types.Highscore {
		coarse := r.cellSize * int32(s.Scale)
		for _, w := range s.Walls {
			r.drawCell(w, coarse, wallColor)
		}
		for _, c := range s.Consumables {
			r.drawCell(c.Cell, coarse, kindColor(c.Kind))
		}
		r.drawDiplopod(s)
		r.drawMessages(messages, fontSize)
	}

	switch {
	case s.Phase == types.Menu:
		r.drawCentered("DIPLOPOD", fontSize*3, -fontSize*3, rl.Green)
		r.drawCentered("Enter to play, A for autopilot, Esc to quit", fontSize, fontSize, rl.White)
	case s.Phase == types.Highscore:
		r.drawCentered(fmt.Sprintf("Game over! Score %d", s.LastScore), fontSize*2, -fontSize*2, rl.White)
		r.drawCentered(fmt.Sprintf("High score %d", s.HighScore), fontSize, fontSize, rl.Yellow)
		r.drawCentered("Enter to play again, M for menu", fontSize, fontSize*3, rl.LightGray)
	case s.Paused:
		r.drawCentered("PAUSED", fontSize*2, 0, rl.White)
	}

	r.drawStatsPanel(s, fontSize, lineHeight)
	rl.EndDrawing()
}

func (r *Renderer) drawCell(c types.Cell, size int32, color rl.Color) {
	rl.DrawRectangle(r.offsetX+int32(c.X)*size, r.offsetY+int32(c.Y)*size, size, size, color)
}

func (r *Renderer) drawDiplopod(s game.Snapshot) {
	if s.ImmunityEnding() && int(rl.GetTime()*4)%2 == 0 {
		return
	}
	color := bodyColor
	if s.Immunity > 0 {
		color = immuneColor
	}

	for j := len(s.Segments) - 1; j >= 0; j-- {
		p := s.Segments[j]
		x := r.offsetX + int32(p.X)*r.cellSize
		y := r.offsetY + int32(p.Y)*r.cellSize
		c := color
		if j == 0 {
			c = rl.Color{
				R: uint8(min(int32(float32(color.R)*1.3), 255)),
				G: uint8(min(int32(float32(color.G)*1.3), 255)),
				B: uint8(min(int32(float32(color.B)*1.3), 255)),
				A: 255,
			}
		}
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, c)
		if j == 0 {
			r.drawHeading(x, y, s.Direction)
		}
	}
}

// drawHeading marks the head with a triangle pointing where it goes.
func (r *Renderer) drawHeading(headX, headY int32, direction types.Point) {
	halfCell := r.cellSize / 2
	switch {
	case direction.X > 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case direction.X < 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case direction.Y > 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	case direction.Y < 0:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawMessages(messages []overlay.Message, fontSize int32) {
	size := fontSize * 2
	for _, m := range messages {
		x := r.offsetX + int32(m.Position.X)*r.cellSize
		y := r.offsetY + int32(m.Position.Y)*r.cellSize - size
		w := rl.MeasureText(m.Text, size)
		rl.DrawText(m.Text, x-w/2, y, size, rl.Fade(rl.White, float32(m.Alpha())))
	}
}

func (r *Renderer) drawCentered(text string, fontSize, dy int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-w)/2,
		r.offsetY+r.totalGridHeight/2+dy,
		fontSize, color)
}

func (r *Renderer) drawStatsPanel(s game.Snapshot, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []struct {
		text  string
		color rl.Color
	}{
		{fmt.Sprintf("Score: %d", s.Score), rl.White},
		{fmt.Sprintf("High score: %d", s.HighScore), rl.Yellow},
		{fmt.Sprintf("Last: %d", s.LastScore), rl.LightGray},
		{fmt.Sprintf("Immunity: %d", s.Immunity), immuneColor},
		{"", rl.White},
		{"Rounds:", rl.White},
		{fmt.Sprintf("Played: %d", s.Played), rl.LightGray},
		{fmt.Sprintf("Avg: %.2f", s.Average), rl.LightGray},
		{fmt.Sprintf("Median: %.1f", s.Median), rl.LightGray},
	}
	for _, l := range lines {
		if l.text != "" {
			rl.DrawText(l.text, statsX, statsY, fontSize, l.color)
		}
		statsY += lineHeight
	}

	r.drawPerformanceGraph(s, statsX, fontSize)
}

func (r *Renderer) drawPerformanceGraph(s game.Snapshot, statsX, fontSize int32) {
	graphX := statsX
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	duration := time.Since(r.startTime)
	timeText := fmt.Sprintf("%02d:%02d:%02d - Rounds: %d",
		int(duration.Hours()), int(duration.Minutes())%60, int(duration.Seconds())%60, s.Played)
	rl.DrawText(timeText, graphX, r.screenHeight-fontSize-5, fontSize, rl.White)

	scores := s.History
	if len(scores) < 2 {
		return
	}

	maxScore := 1
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}

	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(maxScores))
		y1 := graphY + graphHeight - int32(float32(graphHeight)*float32(scores[j-1])/float32(maxScore))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(maxScores))
		y2 := graphY + graphHeight - int32(float32(graphHeight)*float32(scores[j])/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, bodyColor)
	}

	avgY := graphY + graphHeight - int32(float32(graphHeight)*float32(s.Average)/float32(maxScore))
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Yellow)
	}
}
