/* compatibility oracle: all the rules about which tiles may touch.

The board stays dumb; these checks take a catalog + board pair.
*/
package wfc

// SidesMatch reports whether tile b may sit in direction d from tile
// a, ie. the two facing zone triples are elementwise equal.
// SidesMatch(a,b,d) == SidesMatch(b,a,d.Opposite()).
func (c *Catalog) SidesMatch(a, b int, d Direction) bool {
	ta, tb := c.Tile(a), c.Tile(b)
	if ta == nil || tb == nil {
		return false
	}
	return ta.Side(d) == tb.Side(d.Opposite())
}

// Placeable reports whether the candidate tile may occupy (x,y): its
// sides must agree with every occupied orthogonal neighbour, and a
// same-family neighbour rejects a NoSameFamily candidate outright.
// A cell with no occupied neighbours is always placeable.
func (c *Catalog) Placeable(b *Board, x, y, id int) bool {
	t := c.Tile(id)
	if t == nil {
		return false
	}

	p := Point{x, y}
	for _, d := range directions {
		n := d.Step(p)
		if !b.contains(n) {
			continue
		}
		nid, ok := b.At(n.X, n.Y)
		if !ok {
			continue
		}

		nt := c.Tile(nid)
		if nt.Family == t.Family && t.NoSameFamily {
			return false
		}
		if t.Side(d) != nt.Side(d.Opposite()) {
			return false
		}
	}
	return true
}

// Candidate pairs a tile id with the direction (from its anchor) it
// would be placed in.
type Candidate struct {
	Tile int
	Dir  Direction
}

// Target returns the cell this candidate occupies given its anchor.
func (cd Candidate) Target(anchor Point) Point {
	return cd.Dir.Step(anchor)
}

// Candidates enumerates every (tile, direction) placement around the
// occupied anchor cell: for each empty orthogonal direction, every
// catalog tile whose facing side matches the anchor AND that passes
// the full-neighbour Placeable check at the target cell. Order is
// deterministic; callers shuffle.
func (c *Catalog) Candidates(b *Board, x, y int) []Candidate {
	out := []Candidate{}

	aid, ok := b.At(x, y)
	if !ok {
		return out
	}
	anchor := c.Tile(aid)
	p := Point{x, y}

	for _, d := range directions {
		n := d.Step(p)
		if !b.contains(n) {
			continue
		}
		if _, occupied := b.At(n.X, n.Y); occupied {
			continue
		}

		for id, t := range c.tiles {
			if anchor.Side(d) != t.Side(d.Opposite()) {
				continue
			}
			if !c.Placeable(b, n.X, n.Y, id) {
				continue
			}
			out = append(out, Candidate{Tile: id, Dir: d})
		}
	}
	return out
}

// placeableAt returns every catalog tile placeable on the empty cell
// (x,y). An occupied cell yields nothing.
func (c *Catalog) placeableAt(b *Board, x, y int) []int {
	out := []int{}
	if _, occupied := b.At(x, y); occupied {
		return out
	}
	for id := range c.tiles {
		if c.Placeable(b, x, y, id) {
			out = append(out, id)
		}
	}
	return out
}

// impossibleNear searches the anchor's orthogonal neighbours for an
// empty cell that borders at least one tile yet admits zero catalog
// tiles: the contradiction the relaxation heuristic will break.
func (c *Catalog) impossibleNear(b *Board, x, y int) (Point, bool) {
	for _, n := range b.neighbours(Point{x, y}) {
		if _, occupied := b.At(n.X, n.Y); occupied {
			continue
		}
		if len(b.occupiedNeighbours(n)) == 0 {
			continue
		}
		if len(c.placeableAt(b, n.X, n.Y)) == 0 {
			return n, true
		}
	}
	return Point{}, false
}
