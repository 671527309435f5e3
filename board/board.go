// Package board holds the playfield grid together with the active and next
// pieces. Every position-changing operation applies the change tentatively,
// validates it, and rolls back on failure, so the active piece is always in
// a valid position between calls.
package board

import (
	"fmt"
	"iter"

	"github.com/plus3/blockfall/piece"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is a fixed-size grid of cells. Row 0 is the top (spawn) row.
type Board struct {
	width  int
	height int
	grid   [][]piece.Kind

	active *piece.Piece
	next   *piece.Piece
}

// New creates an empty width x height board. It panics on non-positive sizes.
func New(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}

	b := &Board{width: width, height: height}
	b.grid = make([][]piece.Kind, height)
	for y := range b.grid {
		b.grid[y] = make([]piece.Kind, width)
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Reset empties the grid and discards the active and next pieces.
func (b *Board) Reset() {
	for y := range b.grid {
		clear(b.grid[y])
	}
	b.active = nil
	b.next = nil
}

// SpawnPoint is the origin every new piece starts from.
func (b *Board) SpawnPoint() piece.Point {
	return piece.Point{X: b.width / 2, Y: 0}
}

// Active returns a copy of the active piece, or nil if there is none.
func (b *Board) Active() *piece.Piece {
	if b.active == nil {
		return nil
	}
	return b.active.Clone()
}

// Next returns a copy of the lookahead piece, or nil if there is none.
func (b *Board) Next() *piece.Piece {
	if b.next == nil {
		return nil
	}
	return b.next.Clone()
}

// SetNext replaces the lookahead piece with a fresh piece of kind k at the
// spawn point.
func (b *Board) SetNext(k piece.Kind) {
	sp := b.SpawnPoint()
	b.next = piece.New(k, sp.X, sp.Y)
}

// Spawn promotes the lookahead piece to active and draws a new lookahead of
// kind k. If there was no lookahead, a piece of kind k becomes active and the
// lookahead stays empty until the next SetNext or Spawn. When the promoted
// piece collides, it is discarded, the board is left without an active piece
// and Spawn reports false.
func (b *Board) Spawn(k piece.Kind) bool {
	if b.next == nil {
		b.SetNext(k)
		b.active, b.next = b.next, nil
	} else {
		b.active = b.next
		b.SetNext(k)
	}

	if !b.IsValidPosition(b.active) {
		b.active = nil
		return false
	}
	return true
}

// IsValidPosition reports whether p fits on the board: every cell inside the
// side walls, above the floor, and not on a locked cell. Cells above row 0
// are allowed.
func (b *Board) IsValidPosition(p *piece.Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
		if c.Y >= 0 && b.grid[c.Y][c.X] != piece.None {
			return false
		}
	}
	return true
}

// MoveActive shifts the active piece by (dx, dy). It reports false and leaves
// the piece untouched if there is no active piece or the target collides.
func (b *Board) MoveActive(dx, dy int) bool {
	if b.active == nil {
		return false
	}

	b.active.Translate(dx, dy)
	if !b.IsValidPosition(b.active) {
		b.active.Translate(-dx, -dy)
		return false
	}
	return true
}

// RotateActive turns the active piece one step in dir. A colliding rotation
// is rejected outright; no alternative positions are tried.
func (b *Board) RotateActive(dir piece.Direction) bool {
	if b.active == nil {
		return false
	}

	prev := b.active.Rotation
	b.active.Rotate(dir)
	if !b.IsValidPosition(b.active) {
		b.active.Rotation = prev
		return false
	}
	return true
}

// DropDistance returns how many rows the active piece can fall before
// resting, or 0 without an active piece.
func (b *Board) DropDistance() int {
	if b.active == nil {
		return 0
	}

	probe := b.active.Clone()
	n := 0
	for {
		probe.Translate(0, 1)
		if !b.IsValidPosition(probe) {
			return n
		}
		n++
	}
}

// LockActive drops the active piece to its resting row, stamps it into the
// grid and removes it. Without an active piece it reports false.
func (b *Board) LockActive() bool {
	if b.active == nil {
		return false
	}

	for b.MoveActive(0, 1) {
	}

	b.Stamp(b.active)
	b.active = nil
	return true
}

// Stamp writes p's in-bounds cells into the grid with p's kind.
func (b *Board) Stamp(p *piece.Piece) {
	for _, c := range p.Cells() {
		if b.inBounds(c.X, c.Y) {
			b.grid[c.Y][c.X] = p.Kind
		}
	}
}

// SetCell overwrites a single grid cell; out-of-bounds writes are ignored.
// It is meant for building positions, not for gameplay.
func (b *Board) SetCell(x, y int, k piece.Kind) {
	if b.inBounds(x, y) {
		b.grid[y][x] = k
	}
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	y := b.height - 1
	for y >= 0 {
		if !b.rowFull(y) {
			y--
			continue
		}

		// Reuse the removed row's storage as the new empty top row. The scan
		// stays on y, which now holds the row that was above.
		row := b.grid[y]
		copy(b.grid[1:y+1], b.grid[:y])
		clear(row)
		b.grid[0] = row
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, cell := range b.grid[y] {
		if cell == piece.None {
			return false
		}
	}
	return true
}

// IsGameOver reports whether any locked cell sits in the top row.
func (b *Board) IsGameOver() bool {
	for _, cell := range b.grid[0] {
		if cell != piece.None {
			return true
		}
	}
	return false
}

// CellAt returns the locked cell at (x, y), or None when out of bounds.
func (b *Board) CellAt(x, y int) piece.Kind {
	if !b.inBounds(x, y) {
		return piece.None
	}
	return b.grid[y][x]
}

// Occupied returns the coordinates of every locked cell, top row first.
func (b *Board) Occupied() []piece.Point {
	var points []piece.Point
	for p, k := range b.Cells() {
		if k != piece.None {
			points = append(points, p)
		}
	}
	return points
}

// Cells iterates every grid cell in row-major order.
func (b *Board) Cells() iter.Seq2[piece.Point, piece.Kind] {
	return func(yield func(piece.Point, piece.Kind) bool) {
		for y, row := range b.grid {
			for x, k := range row {
				if !yield(piece.Point{X: x, Y: y}, k) {
					return
				}
			}
		}
	}
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
