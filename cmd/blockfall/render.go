package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

const (
	cellSize   = 30
	boardLeft  = 40
	boardTop   = 40
	panelWidth = 200
)

var kindColors = map[piece.Kind]color.RGBA{
	piece.I: {0, 255, 255, 255},
	piece.J: {0, 0, 255, 255},
	piece.L: {255, 165, 0, 255},
	piece.O: {255, 255, 0, 255},
	piece.S: {0, 255, 0, 255},
	piece.T: {255, 0, 255, 255},
	piece.Z: {255, 0, 0, 255},
}

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	gridColor       = color.RGBA{40, 40, 40, 255}
	borderColor     = color.RGBA{128, 128, 128, 255}
	ghostColor      = color.RGBA{255, 255, 255, 60}
	overlayColor    = color.RGBA{0, 0, 0, 180}
)

func screenSize(ctrl *game.Controller) (int, int) {
	return boardLeft*2 + ctrl.Width()*cellSize + panelWidth, boardTop*2 + ctrl.Height()*cellSize
}

func drawGame(screen *ebiten.Image, ctrl *game.Controller) {
	screen.Fill(backgroundColor)

	w := float32(ctrl.Width() * cellSize)
	h := float32(ctrl.Height() * cellSize)
	vector.StrokeRect(screen, boardLeft-2, boardTop-2, w+4, h+4, 2, borderColor, false)

	for p, k := range ctrl.Cells() {
		if k == piece.None {
			x, y := cellOrigin(p)
			vector.StrokeRect(screen, x, y, cellSize, cellSize, 1, gridColor, false)
			continue
		}
		drawCell(screen, p, kindColors[k])
	}

	if ghost, ok := ctrl.GhostCells(); ok {
		for _, p := range ghost {
			if p.Y >= 0 {
				drawCell(screen, p, ghostColor)
			}
		}
	}

	if active, ok := ctrl.ActiveCells(); ok {
		c := kindColors[ctrl.ActiveKind()]
		for _, p := range active {
			if p.Y >= 0 {
				drawCell(screen, p, c)
			}
		}
	}

	drawPanel(screen, ctrl)

	switch ctrl.State() {
	case game.Paused:
		drawOverlay(screen, ctrl, "PAUSED", "Press P to resume")
	case game.GameOver:
		drawOverlay(screen, ctrl, "GAME OVER", "Press R to restart")
	}
}

func cellOrigin(p piece.Point) (float32, float32) {
	return float32(boardLeft + p.X*cellSize), float32(boardTop + p.Y*cellSize)
}

func drawCell(screen *ebiten.Image, p piece.Point, c color.Color) {
	x, y := cellOrigin(p)
	vector.DrawFilledRect(screen, x, y, cellSize, cellSize, c, false)
	vector.StrokeRect(screen, x, y, cellSize, cellSize, 1, backgroundColor, false)
}

func drawPanel(screen *ebiten.Image, ctrl *game.Controller) {
	left := boardLeft + ctrl.Width()*cellSize + 30
	top := boardTop

	ebitenutil.DebugPrintAt(screen, "NEXT", left, top)
	if shape, ok := ctrl.NextShape(); ok {
		c := kindColors[ctrl.NextKind()]
		const preview = cellSize / 2
		for _, off := range shape {
			x := float32(left + 2*preview + off.DX*preview)
			y := float32(top + 3*preview + off.DY*preview)
			vector.DrawFilledRect(screen, x, y, preview, preview, c, false)
		}
	}

	snap := ctrl.Snapshot()
	lines := []string{
		fmt.Sprintf("SCORE  %d", snap.Score),
		fmt.Sprintf("LEVEL  %d", snap.Level),
		fmt.Sprintf("LINES  %d", snap.Lines),
		"",
		"Left/Right  move",
		"Down        soft drop",
		"Up/Z        rotate",
		"X           rotate back",
		"Space       hard drop",
		"P           pause",
		"R           restart",
		"Esc/Q       quit",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, left, top+130+i*18)
	}
}

func drawOverlay(screen *ebiten.Image, ctrl *game.Controller, title, hint string) {
	w := float32(ctrl.Width() * cellSize)
	h := float32(ctrl.Height() * cellSize)
	vector.DrawFilledRect(screen, boardLeft, boardTop, w, h, overlayColor, false)

	midY := boardTop + ctrl.Height()*cellSize/2
	ebitenutil.DebugPrintAt(screen, title, boardLeft+20, midY-20)
	ebitenutil.DebugPrintAt(screen, hint, boardLeft+20, midY)
}
