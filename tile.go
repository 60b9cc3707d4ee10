/* this file holds the tile value type & the pure string operations
used to derive symmetric variants of an 8-symbol edge description.

An edge description reads clockwise from the top left corner:
  top contributes symbols 0,1,2
  right contributes 3,4 (sharing corner 2)
  bottom contributes 5,6 (sharing corner 4)
  left contributes 7 (sharing corners 6 and 0)
*/
package wfc

import (
	"fmt"
)

// Direction is one of the four orthogonal neighbour directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directions in board scan order
var directions = []Direction{Up, Down, Right, Left}

// Opposite returns the facing direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Step returns the point one cell away from p in this direction.
func (d Direction) Step(p Point) Point {
	switch d {
	case Up:
		return Point{p.X, p.Y - 1}
	case Down:
		return Point{p.X, p.Y + 1}
	case Left:
		return Point{p.X - 1, p.Y}
	default:
		return Point{p.X + 1, p.Y}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Point is a board coordinate.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Side is the 3 zone symbols along one tile edge.
// Sides are stored pre-oriented: a side equals the facing side of a
// valid neighbour elementwise, no reversing at compare time.
type Side [3]byte

// Tile is an immutable catalog entry. A tile never learns about the
// board; it's edge data plus flags.
type Tile struct {
	// ID is the tile's index within its catalog, set at build time.
	ID int

	// Family is shared by a base tile and all its derived variants.
	Family string

	// Edges is the 8-symbol clockwise edge description.
	Edges string

	// NoSameFamily rejects placement next to any tile of the same
	// family even when the sides agree.
	NoSameFamily bool

	// ForceMirror generates a horizontally mirrored duplicate even if
	// an identical edge description already exists (visually distinct
	// but structurally symmetric art).
	ForceMirror bool

	top    Side
	right  Side
	bottom Side
	left   Side
}

func newTile(family, edges string, forceMirror, noSameFamily bool) (*Tile, error) {
	if len(edges) != 8 {
		return nil, fmt.Errorf("tile %q: edge description must have exactly 8 symbols, got %q", family, edges)
	}
	t := &Tile{
		Family:       family,
		Edges:        edges,
		NoSameFamily: noSameFamily,
		ForceMirror:  forceMirror,
	}

	// bottom & left are stored reversed so that equality against the
	// touching side of a neighbour is the compatibility test
	t.top = Side{edges[0], edges[1], edges[2]}
	t.right = Side{edges[2], edges[3], edges[4]}
	t.bottom = Side{edges[6], edges[5], edges[4]}
	t.left = Side{edges[0], edges[7], edges[6]}
	return t, nil
}

// Side returns the pre-oriented zone triple facing the given direction.
func (t *Tile) Side(d Direction) Side {
	switch d {
	case Up:
		return t.top
	case Down:
		return t.bottom
	case Left:
		return t.left
	default:
		return t.right
	}
}

// derive makes a variant of this tile with a transformed edge string.
// Variants keep the family & NoSameFamily flag but never re-force
// mirroring themselves.
func (t *Tile) derive(edges string) *Tile {
	nt, _ := newTile(t.Family, edges, false, t.NoSameFamily)
	return nt
}

// Transform is one of the symmetric operations applied during catalog
// derivation.
type Transform int

const (
	MirrorH Transform = iota
	MirrorV
	Rotate90
	Rotate180
	Rotate270
)

var transforms = []Transform{MirrorH, MirrorV, Rotate90, Rotate180, Rotate270}

func (tr Transform) String() string {
	switch tr {
	case MirrorH:
		return "mirror-h"
	case MirrorV:
		return "mirror-v"
	case Rotate90:
		return "rotate-90"
	case Rotate180:
		return "rotate-180"
	default:
		return "rotate-270"
	}
}

// apply returns the edge description of a tile transformed by tr.
func (tr Transform) apply(edges string) string {
	switch tr {
	case MirrorH:
		return permute(edges, mirrorHPerm)
	case MirrorV:
		return permute(edges, mirrorVPerm)
	case Rotate90:
		return rotate(edges, 1)
	case Rotate180:
		return rotate(edges, 2)
	default:
		return rotate(edges, 3)
	}
}

// index permutations for mirroring; symbol i of the result is symbol
// perm[i] of the input
var (
	mirrorHPerm = [8]int{2, 1, 0, 7, 6, 5, 4, 3}
	mirrorVPerm = [8]int{6, 5, 4, 3, 2, 1, 0, 7}
)

func permute(edges string, perm [8]int) string {
	out := make([]byte, 8)
	for i, j := range perm {
		out[i] = edges[j]
	}
	return string(out)
}

// rotate shifts the clockwise description by 2 symbols per quarter
// turn: the left side symbols become the new top.
func rotate(edges string, quarters int) string {
	for i := 0; i < quarters; i++ {
		edges = edges[6:] + edges[:6]
	}
	return edges
}
