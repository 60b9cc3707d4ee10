package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideExtraction(t *testing.T) {
	tl, err := newTile("x", "12345678", false, false)

	assert.Nil(t, err)
	assert.Equal(t, Side{'1', '2', '3'}, tl.Side(Up))
	assert.Equal(t, Side{'3', '4', '5'}, tl.Side(Right))
	assert.Equal(t, Side{'7', '6', '5'}, tl.Side(Down))
	assert.Equal(t, Side{'1', '8', '7'}, tl.Side(Left))
}

func TestBadEdgeString(t *testing.T) {
	_, err := newTile("x", "1234567", false, false)
	assert.NotNil(t, err)

	_, err = newTile("x", "123456789", false, false)
	assert.NotNil(t, err)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, edges := range []string{"12345678", "GBGWGBGW", "GGGGGGDG"} {
		out := edges
		for i := 0; i < 4; i++ {
			out = Rotate90.apply(out)
		}
		assert.Equal(t, edges, out)
	}
}

func TestMirrorsAreInvolutions(t *testing.T) {
	for _, edges := range []string{"12345678", "GBGWGBGW", "WWWCWCWC"} {
		assert.Equal(t, edges, MirrorH.apply(MirrorH.apply(edges)))
		assert.Equal(t, edges, MirrorV.apply(MirrorV.apply(edges)))
	}
}

func TestRotationsCompose(t *testing.T) {
	edges := "12345678"
	assert.Equal(t, Rotate180.apply(edges), Rotate90.apply(Rotate90.apply(edges)))
	assert.Equal(t, Rotate270.apply(edges), Rotate90.apply(Rotate180.apply(edges)))
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
}

func TestStepGeometry(t *testing.T) {
	p := Point{3, 3}

	assert.Equal(t, Point{3, 2}, Up.Step(p))
	assert.Equal(t, Point{3, 4}, Down.Step(p))
	assert.Equal(t, Point{2, 3}, Left.Step(p))
	assert.Equal(t, Point{4, 3}, Right.Step(p))

	// stepping back returns home
	for _, d := range directions {
		assert.Equal(t, p, d.Opposite().Step(d.Step(p)))
	}
}

// a mirrored tile placed beside the original shares the mirror axis
// edge, so the pair must always match horizontally
func TestMirrorMatchesOriginal(t *testing.T) {
	a, err := newTile("x", "12345678", false, false)
	assert.Nil(t, err)

	b := a.derive(MirrorH.apply(a.Edges))
	assert.Equal(t, a.Side(Right), b.Side(Left))
}
