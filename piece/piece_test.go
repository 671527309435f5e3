package piece_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/assert"
)

func TestCatalogIsTotal(t *testing.T) {
	for _, k := range piece.Kinds {
		for r := 0; r < piece.RotationCount; r++ {
			t.Run(fmt.Sprintf("%s/%d", k, r), func(t *testing.T) {
				shape := piece.Offsets(k, r)
				seen := make(map[piece.Offset]bool)
				for _, off := range shape {
					assert.False(t, seen[off], "duplicate offset %v", off)
					seen[off] = true
				}
				assert.Len(t, seen, 4)
			})
		}
	}
}

func TestOffsetsNormalizeRotation(t *testing.T) {
	assert.Equal(t, piece.Offsets(piece.T, 3), piece.Offsets(piece.T, -1))
	assert.Equal(t, piece.Offsets(piece.T, 1), piece.Offsets(piece.T, 5))
	assert.Equal(t, piece.Offsets(piece.J, 0), piece.Offsets(piece.J, 8))
}

func TestSquareRotationsAreIdentical(t *testing.T) {
	base := piece.Offsets(piece.O, 0)
	for r := 1; r < piece.RotationCount; r++ {
		assert.Equal(t, base, piece.Offsets(piece.O, r))
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "I", piece.I.String())
	assert.Equal(t, "Z", piece.Z.String())
	assert.Equal(t, ".", piece.None.String())
	assert.False(t, piece.None.Valid())
	assert.True(t, piece.L.Valid())
}

func TestNewPiece(t *testing.T) {
	p := piece.New(piece.I, 5, 0)
	assert.Equal(t, piece.I, p.Kind)
	assert.Equal(t, 0, p.Rotation)
	assert.Equal(t, 5, p.X)
	assert.Equal(t, 0, p.Y)
}

func TestRotate(t *testing.T) {
	p := piece.New(piece.I, 5, 0)

	p.Rotate(piece.Clockwise)
	assert.Equal(t, 1, p.Rotation)

	p.Rotate(piece.Clockwise)
	assert.Equal(t, 2, p.Rotation)

	p.Rotate(piece.CounterClockwise)
	assert.Equal(t, 1, p.Rotation)

	p.Rotate(piece.Clockwise)
	p.Rotate(piece.Clockwise)
	p.Rotate(piece.Clockwise)
	assert.Equal(t, 0, p.Rotation)

	p.Rotate(piece.CounterClockwise)
	assert.Equal(t, 3, p.Rotation)
}

func TestRotateFullTurnRestoresCells(t *testing.T) {
	for _, k := range piece.Kinds {
		p := piece.New(k, 5, 0)
		before := p.Cells()
		for i := 0; i < piece.RotationCount; i++ {
			p.Rotate(piece.Clockwise)
		}
		assert.Equal(t, 0, p.Rotation, "kind %s", k)
		assert.Equal(t, before, p.Cells(), "kind %s", k)
	}
}

func TestCells(t *testing.T) {
	p := piece.New(piece.I, 5, 5)
	assert.Equal(t, [4]piece.Point{{5, 4}, {5, 5}, {5, 6}, {5, 7}}, p.Cells())

	p.Rotate(piece.Clockwise)
	assert.Equal(t, [4]piece.Point{{4, 5}, {5, 5}, {6, 5}, {7, 5}}, p.Cells())
}

func TestTranslate(t *testing.T) {
	p := piece.New(piece.O, 5, 0)
	p.Translate(-2, 3)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 3, p.Y)
	assert.Equal(t, [4]piece.Point{{2, 3}, {3, 3}, {2, 4}, {3, 4}}, p.Cells())
}

func TestClone(t *testing.T) {
	p := piece.New(piece.S, 2, 2)
	c := p.Clone()
	c.Translate(1, 1)
	c.Rotate(piece.Clockwise)

	assert.Equal(t, 2, p.X)
	assert.Equal(t, 0, p.Rotation)
	assert.Equal(t, 3, c.X)
}

func ExamplePiece_Cells() {
	p := piece.New(piece.T, 5, 0)
	fmt.Println(p.Cells())

	p.Rotate(piece.Clockwise)
	fmt.Println(p.Cells())

	// Output:
	// [{5 -1} {5 0} {5 1} {6 0}]
	// [{4 0} {5 0} {6 0} {5 1}]
}
