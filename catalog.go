package wfc

import (
	"fmt"
)

// Catalog is the ordered list of tiles (base + derived variants) for
// one active tile set. Cleared & rebuilt whenever the set changes.
type Catalog struct {
	set   *Set
	tiles []*Tile
}

// BuildCatalog expands a set's base tiles into a full catalog by
// deriving mirrored & rotated variants to a fixed point.
//
// Each pass re-scans the entire current list, previously derived tiles
// included: rotating or mirroring a derived tile can reach edge
// combinations a single pass over base tiles cannot.
func BuildCatalog(set *Set) (*Catalog, error) {
	if len(set.Tiles) == 0 {
		return nil, fmt.Errorf("tile set %q has no tiles", set.Name)
	}
	c := &Catalog{set: set, tiles: []*Tile{}}

	for _, def := range set.Tiles {
		t, err := newTile(def.Name, def.Edges, def.ForceMirror, def.NoSameFamily)
		if err != nil {
			return nil, err
		}
		c.tiles = append(c.tiles, t)
	}

	if !set.NoDerive {
		for c.derivePass() {
		}
	}

	for i, t := range c.tiles {
		t.ID = i
	}
	return c, nil
}

// derivePass applies every transform to every current tile, inserting
// unseen variants. Returns whether anything new was added; forced
// mirror duplicates don't count as new, else no fixed point.
func (c *Catalog) derivePass() bool {
	scan := make([]*Tile, len(c.tiles))
	copy(scan, c.tiles)

	added := false
	for _, t := range scan {
		for _, tr := range transforms {
			edges := tr.apply(t.Edges)
			exists := c.hasVariant(t.Family, edges)
			if exists && !(t.ForceMirror && tr == MirrorH) {
				continue
			}
			c.insertAfterFamily(t.derive(edges))
			added = added || !exists
		}
	}
	return added
}

// hasVariant reports whether the family already holds this exact edge
// description.
func (c *Catalog) hasVariant(family, edges string) bool {
	for _, t := range c.tiles {
		if t.Family == family && t.Edges == edges {
			return true
		}
	}
	return false
}

// insertAfterFamily places nt immediately after the last tile sharing
// its family, keeping variants grouped for deterministic iteration.
func (c *Catalog) insertAfterFamily(nt *Tile) {
	at := 0
	for i := len(c.tiles) - 1; i >= 0; i-- {
		if c.tiles[i].Family == nt.Family {
			at = i + 1
			break
		}
	}

	c.tiles = append(c.tiles, nil)
	copy(c.tiles[at+1:], c.tiles[at:])
	c.tiles[at] = nt
}

// Set returns the tile set this catalog was built from.
func (c *Catalog) Set() *Set {
	return c.set
}

// Len returns the number of tiles, base & derived.
func (c *Catalog) Len() int {
	return len(c.tiles)
}

// Tile returns the tile with the given id, or nil if out of range.
func (c *Catalog) Tile(id int) *Tile {
	if id < 0 || id >= len(c.tiles) {
		return nil
	}
	return c.tiles[id]
}

// Tiles returns the catalog contents in order.
func (c *Catalog) Tiles() []*Tile {
	return c.tiles
}
