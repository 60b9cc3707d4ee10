package wfc

import (
	"errors"
	"fmt"
)

// ErrInvalidTile flags an out-of-range tile id passed to Board.Set.
// This is a programmer error, never an expected runtime condition.
var ErrInvalidTile = errors.New("invalid tile id")

const emptyCell = -1

// Board is a dumb width x height grid of optional tile ids plus a
// placed counter. No compatibility rules live here.
type Board struct {
	width  int
	height int
	tiles  int // catalog size, for id range checks
	cells  []int
	placed int
}

// NewBoard returns an empty board sized in tiles, validating ids
// against the given catalog.
func NewBoard(width, height int, c *Catalog) *Board {
	b := &Board{
		width:  width,
		height: height,
		tiles:  c.Len(),
		cells:  make([]int, width*height),
	}
	b.Reset()
	return b
}

// Reset empties every cell and zeroes the placed counter.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = emptyCell
	}
	b.placed = 0
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Placed returns the number of occupied cells.
func (b *Board) Placed() int {
	return b.placed
}

// Middle returns the board's centre cell, where runs are seeded.
func (b *Board) Middle() Point {
	return Point{b.width / 2, b.height / 2}
}

func (b *Board) contains(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// At returns the tile id at (x,y) and whether the cell is occupied.
// Out-of-range coordinates read as empty.
func (b *Board) At(x, y int) (int, bool) {
	if !b.contains(Point{x, y}) {
		return 0, false
	}
	id := b.cells[y*b.width+x]
	return id, id != emptyCell
}

// Set places a tile id at (x,y); coordinates must be in range. The
// counter bumps only when the cell was empty; overwriting an occupied
// cell is allowed.
func (b *Board) Set(x, y, id int) error {
	if id < 0 || id >= b.tiles {
		return fmt.Errorf("%w: %d (catalog holds %d)", ErrInvalidTile, id, b.tiles)
	}
	i := y*b.width + x
	if b.cells[i] == emptyCell {
		b.placed++
	}
	b.cells[i] = id
	return nil
}

// Remove empties (x,y); coordinates must be in range. A no-op
// counter-wise if already empty.
func (b *Board) Remove(x, y int) {
	i := y*b.width + x
	if b.cells[i] != emptyCell {
		b.placed--
	}
	b.cells[i] = emptyCell
}

// neighbours returns the in-bounds orthogonal neighbours of p.
func (b *Board) neighbours(p Point) []Point {
	ns := []Point{}
	for _, d := range directions {
		n := d.Step(p)
		if b.contains(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// hasEmptyNeighbour reports whether p borders at least one empty cell,
// ie. whether p is on the growth frontier.
func (b *Board) hasEmptyNeighbour(p Point) bool {
	for _, n := range b.neighbours(p) {
		if _, ok := b.At(n.X, n.Y); !ok {
			return true
		}
	}
	return false
}

// occupiedNeighbours returns the occupied orthogonal neighbours of p.
func (b *Board) occupiedNeighbours(p Point) []Point {
	ns := []Point{}
	for _, n := range b.neighbours(p) {
		if _, ok := b.At(n.X, n.Y); ok {
			ns = append(ns, n)
		}
	}
	return ns
}
