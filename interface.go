package wfc

// Grid is a read-only view of a tiled surface; renderers, exporters
// and the archive consume boards through it.
type Grid interface {
	Width() int
	Height() int

	// At returns the tile id at x,y and whether the cell is occupied
	At(x, y int) (int, bool)
}

// Op is a board mutation kind.
type Op int

const (
	OpPlace Op = iota
	OpRemove
)

func (o Op) String() string {
	if o == OpRemove {
		return "remove"
	}
	return "place"
}

// Event is one discrete board mutation made by the solver. Events are
// emitted in mutation order and are not reorderable: a remove is only
// meaningful after its matching place.
type Event struct {
	Op Op
	X  int
	Y  int
}

// Observer receives solver events as they happen, on the solver's
// goroutine. The placed tile is resolvable via Board.At until the
// next event lands.
type Observer func(Event)
