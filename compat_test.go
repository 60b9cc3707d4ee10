package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSidesMatchIsSymmetric(t *testing.T) {
	c, err := BuildCatalog(mustSet(t, "circuit"))
	assert.Nil(t, err)

	for a := 0; a < c.Len(); a++ {
		for b := 0; b < c.Len(); b++ {
			for _, d := range directions {
				assert.Equal(t,
					c.SidesMatch(a, b, d),
					c.SidesMatch(b, a, d.Opposite()),
					"tiles %d,%d dir %s", a, b, d)
			}
		}
	}
}

func TestSidesMatchUniformTiles(t *testing.T) {
	c := duoCatalog(t)

	for _, d := range directions {
		assert.True(t, c.SidesMatch(0, 0, d))
		assert.True(t, c.SidesMatch(1, 1, d))
		assert.False(t, c.SidesMatch(0, 1, d))
	}
}

func TestPlaceableEmptyNeighbourhood(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(3, 3, c)

	// no neighbours, no constraints
	assert.True(t, c.Placeable(b, 1, 1, 0))
	assert.True(t, c.Placeable(b, 1, 1, 1))
}

func TestPlaceableChecksEveryNeighbour(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(2, 2, c)

	// (1,0) touches g on the left and b below: nothing fits even
	// though each candidate matches one of the two neighbours
	assert.Nil(t, b.Set(0, 0, 0))
	assert.Nil(t, b.Set(1, 1, 1))

	assert.False(t, c.Placeable(b, 1, 0, 0))
	assert.False(t, c.Placeable(b, 1, 0, 1))

	// with a matching neighbour on both sides it fits again
	b.Remove(1, 1)
	assert.Nil(t, b.Set(1, 1, 0))
	assert.True(t, c.Placeable(b, 1, 0, 0))
	assert.False(t, c.Placeable(b, 1, 0, 1))
}

func TestPlaceableSuppressesSameFamily(t *testing.T) {
	c, err := BuildCatalog(&Set{
		Name:     "shy",
		NoDerive: true,
		Tiles: []TileDef{
			{Name: "g", Edges: "GGGGGGGG", NoSameFamily: true},
			{Name: "twin", Edges: "GGGGGGGG"},
		},
	})
	assert.Nil(t, err)

	b := NewBoard(2, 1, c)
	assert.Nil(t, b.Set(0, 0, 0))

	// sides match perfectly, family still forbids it
	assert.False(t, c.Placeable(b, 1, 0, 0))

	// a different family with the same sides is fine
	assert.True(t, c.Placeable(b, 1, 0, 1))
}

func TestCandidatesEnumeratesEmptyDirections(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(3, 3, c)
	assert.Nil(t, b.Set(1, 1, 0))

	cands := c.Candidates(b, 1, 1)

	// only the g tile fits, once per empty direction
	assert.Equal(t, 4, len(cands))
	dirs := map[Direction]bool{}
	for _, cd := range cands {
		assert.Equal(t, 0, cd.Tile)
		dirs[cd.Dir] = true
	}
	assert.Equal(t, 4, len(dirs))
}

func TestCandidatesRespectsBoardEdges(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(2, 2, c)
	assert.Nil(t, b.Set(0, 0, 0))

	cands := c.Candidates(b, 0, 0)
	assert.Equal(t, 2, len(cands)) // only down & right exist
}

func TestCandidatesAppliesFullNeighbourCheck(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(3, 1, c)

	// anchor g at (0,0), b at (2,0): cell (1,0) matches the anchor's
	// side but fails against the far neighbour, so no candidates
	assert.Nil(t, b.Set(0, 0, 0))
	assert.Nil(t, b.Set(2, 0, 1))

	assert.Equal(t, 0, len(c.Candidates(b, 0, 0)))
}

func TestCandidatesOfEmptyCell(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(3, 3, c)

	assert.Equal(t, 0, len(c.Candidates(b, 1, 1)))
}

func TestCandidateTarget(t *testing.T) {
	cd := Candidate{Tile: 3, Dir: Down}
	assert.Equal(t, Point{1, 2}, cd.Target(Point{1, 1}))
}

func TestImpossibleNear(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(3, 1, c)

	assert.Nil(t, b.Set(0, 0, 0))
	assert.Nil(t, b.Set(2, 0, 1))

	// (1,0) borders both families; nothing in the catalog fits there
	imp, ok := c.impossibleNear(b, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, Point{1, 0}, imp)

	// from the other side too
	imp, ok = c.impossibleNear(b, 2, 0)
	assert.True(t, ok)
	assert.Equal(t, Point{1, 0}, imp)
}

func TestImpossibleNearFindsNothingWhenGrowable(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(3, 3, c)
	assert.Nil(t, b.Set(1, 1, 0))

	_, ok := c.impossibleNear(b, 1, 1)
	assert.False(t, ok)
}

func TestPlaceableAt(t *testing.T) {
	c := duoCatalog(t)
	b := NewBoard(2, 1, c)
	assert.Nil(t, b.Set(0, 0, 0))

	assert.Equal(t, []int{0}, c.placeableAt(b, 1, 0))

	// occupied cells admit nothing
	assert.Equal(t, []int{}, c.placeableAt(b, 0, 0))
}
