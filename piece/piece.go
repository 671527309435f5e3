package piece

// Direction selects which way Rotate turns a piece.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Point is an absolute board coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Piece is a mutable piece instance: its kind, rotation state and origin.
// Rotate and Translate never check for collisions; that is up to the board.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// New creates a piece of kind k at origin (x, y) in rotation state 0.
func New(k Kind, x, y int) *Piece {
	return &Piece{Kind: k, X: x, Y: y}
}

// Rotate advances the rotation index by one step in dir, modulo RotationCount.
func (p *Piece) Rotate(dir Direction) {
	p.Rotation = normalizeRotation(p.Rotation + int(dir))
}

// Translate moves the origin by (dx, dy).
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Shape returns the offsets of the current rotation state.
func (p *Piece) Shape() Shape {
	return Offsets(p.Kind, p.Rotation)
}

// Cells returns the four absolute cells the piece occupies.
func (p *Piece) Cells() [4]Point {
	var cells [4]Point
	for i, off := range p.Shape() {
		cells[i] = Point{X: p.X + off.DX, Y: p.Y + off.DY}
	}
	return cells
}

// Clone returns an independent copy of p.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}
