package game

import (
	"iter"

	"github.com/plus3/blockfall/piece"
)

// Read-only accessors for renderers. None of them change game state.

func (c *Controller) Width() int  { return c.board.Width() }
func (c *Controller) Height() int { return c.board.Height() }

// CellAt returns the locked cell at (x, y); None when empty or out of bounds.
func (c *Controller) CellAt(x, y int) piece.Kind {
	return c.board.CellAt(x, y)
}

// Cells iterates every locked-grid cell in row-major order.
func (c *Controller) Cells() iter.Seq2[piece.Point, piece.Kind] {
	return c.board.Cells()
}

// ActiveKind returns the active piece's kind, or None without one.
func (c *Controller) ActiveKind() piece.Kind {
	if p := c.board.Active(); p != nil {
		return p.Kind
	}
	return piece.None
}

// ActiveCells returns the active piece's cells; ok is false without one.
func (c *Controller) ActiveCells() (cells [4]piece.Point, ok bool) {
	p := c.board.Active()
	if p == nil {
		return cells, false
	}
	return p.Cells(), true
}

// GhostCells returns where the active piece would land on a hard drop.
func (c *Controller) GhostCells() (cells [4]piece.Point, ok bool) {
	p := c.board.Active()
	if p == nil {
		return cells, false
	}
	p.Translate(0, c.board.DropDistance())
	return p.Cells(), true
}

// NextKind returns the lookahead piece's kind, or None without one.
func (c *Controller) NextKind() piece.Kind {
	if p := c.board.Next(); p != nil {
		return p.Kind
	}
	return piece.None
}

// NextShape returns the lookahead piece's offsets in its spawn rotation.
func (c *Controller) NextShape() (piece.Shape, bool) {
	p := c.board.Next()
	if p == nil {
		return piece.Shape{}, false
	}
	return p.Shape(), true
}
