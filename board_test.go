package wfc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func duoCatalog(t *testing.T) *Catalog {
	// two uniform tiles that never match each other
	c, err := BuildCatalog(&Set{
		Name:     "duo",
		NoDerive: true,
		Tiles: []TileDef{
			{Name: "g", Edges: "GGGGGGGG"},
			{Name: "b", Edges: "BBBBBBBB"},
		},
	})
	assert.Nil(t, err)
	return c
}

func TestBoardStartsEmpty(t *testing.T) {
	b := NewBoard(3, 2, duoCatalog(t))

	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, 0, b.Placed())

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			_, ok := b.At(x, y)
			assert.False(t, ok)
		}
	}
}

func TestPlacedCountTracksOccupancy(t *testing.T) {
	b := NewBoard(3, 3, duoCatalog(t))

	assert.Nil(t, b.Set(0, 0, 0))
	assert.Nil(t, b.Set(1, 1, 1))
	assert.Equal(t, 2, b.Placed())

	// overwriting is not a new placement
	assert.Nil(t, b.Set(1, 1, 0))
	assert.Equal(t, 2, b.Placed())

	b.Remove(0, 0)
	assert.Equal(t, 1, b.Placed())

	// removing an empty cell is a no-op
	b.Remove(0, 0)
	assert.Equal(t, 1, b.Placed())

	id, ok := b.At(1, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestAtOutOfRangeReadsEmpty(t *testing.T) {
	b := NewBoard(2, 2, duoCatalog(t))
	assert.Nil(t, b.Set(0, 1, 0))

	// (2,0) would alias (0,1) on the flat slice without a bounds check
	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {2, 2}} {
		_, ok := b.At(p.X, p.Y)
		assert.False(t, ok, "cell %s", p)
	}
}

func TestSetRejectsInvalidTileID(t *testing.T) {
	b := NewBoard(2, 2, duoCatalog(t))

	err := b.Set(0, 0, -1)
	assert.True(t, errors.Is(err, ErrInvalidTile))

	err = b.Set(0, 0, 2)
	assert.True(t, errors.Is(err, ErrInvalidTile))

	assert.Equal(t, 0, b.Placed())
}

func TestResetEmptiesEverything(t *testing.T) {
	b := NewBoard(2, 2, duoCatalog(t))
	assert.Nil(t, b.Set(0, 0, 0))
	assert.Nil(t, b.Set(1, 1, 1))

	b.Reset()

	assert.Equal(t, 0, b.Placed())
	_, ok := b.At(0, 0)
	assert.False(t, ok)
}

func TestMiddle(t *testing.T) {
	c := duoCatalog(t)

	assert.Equal(t, Point{2, 2}, NewBoard(5, 5, c).Middle())
	assert.Equal(t, Point{0, 0}, NewBoard(1, 1, c).Middle())
	assert.Equal(t, Point{2, 1}, NewBoard(4, 3, c).Middle())
}

func TestNeighbourQueries(t *testing.T) {
	b := NewBoard(3, 3, duoCatalog(t))

	assert.Equal(t, 2, len(b.neighbours(Point{0, 0})))
	assert.Equal(t, 3, len(b.neighbours(Point{1, 0})))
	assert.Equal(t, 4, len(b.neighbours(Point{1, 1})))

	assert.Nil(t, b.Set(1, 1, 0))
	assert.True(t, b.hasEmptyNeighbour(Point{1, 1}))
	assert.Equal(t, []Point{{1, 1}}, b.occupiedNeighbours(Point{1, 0}))

	// box the centre in
	for _, p := range b.neighbours(Point{1, 1}) {
		assert.Nil(t, b.Set(p.X, p.Y, 0))
	}
	assert.False(t, b.hasEmptyNeighbour(Point{1, 1}))
}
