// Package piece defines the seven block shapes, their rotation states and
// the mutable piece instances that move across a board.
package piece

// Kind identifies a piece shape. The zero value None doubles as the empty
// cell marker on a board.
type Kind uint8

const (
	None Kind = iota
	I
	J
	L
	O
	S
	T
	Z

	kindCount = int(Z) + 1
)

// RotationCount is the number of rotation states every kind has.
const RotationCount = 4

// Kinds lists every playable kind in catalog order.
var Kinds = [...]Kind{I, J, L, O, S, T, Z}

var kindNames = [kindCount]string{
	None: ".",
	I:    "I",
	J:    "J",
	L:    "L",
	O:    "O",
	S:    "S",
	T:    "T",
	Z:    "Z",
}

func (k Kind) String() string {
	if int(k) >= kindCount {
		return "?"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k > None && int(k) < kindCount
}

// Offset is a cell position relative to a piece's origin.
type Offset struct {
	DX, DY int
}

// Shape is one rotation state: exactly four offsets.
type Shape [4]Offset

// catalog is indexed by Kind then rotation. Arrays are copied on read so the
// table cannot be mutated through the returned values.
var catalog = [kindCount][RotationCount]Shape{
	I: {
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	},
	J: {
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, 1}},
		{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	},
	L: {
		{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {-1, -1}},
		{{0, -1}, {0, 0}, {0, 1}, {1, -1}},
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	},
	O: {
		{{-1, 0}, {0, 0}, {-1, 1}, {0, 1}},
		{{-1, 0}, {0, 0}, {-1, 1}, {0, 1}},
		{{-1, 0}, {0, 0}, {-1, 1}, {0, 1}},
		{{-1, 0}, {0, 0}, {-1, 1}, {0, 1}},
	},
	S: {
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{1, 0}, {0, 0}, {0, 1}, {-1, 1}},
	},
	T: {
		{{0, -1}, {0, 0}, {0, 1}, {1, 0}},
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
		{{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
	},
	Z: {
		{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
		{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
		{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
	},
}

// Offsets returns the four offsets of kind k in the given rotation state.
// The rotation is taken modulo RotationCount.
func Offsets(k Kind, rotation int) Shape {
	return catalog[k][normalizeRotation(rotation)]
}

func normalizeRotation(r int) int {
	return ((r % RotationCount) + RotationCount) % RotationCount
}
