/* the growth solver: repeatedly extend the board outward from a seed
tile, backtracking through a bounded stack of attempts on dead ends.

This is a heuristic repair loop, not a constraint propagator: it
neither guarantees a contradiction-free final board nor promises to
find a solution when one exists.
*/
package wfc

import (
	"context"
	"math/rand"
	"time"
)

// Outcome is a terminal solver state.
type Outcome int

const (
	// Complete: every cell holds a tile, or no frontier remains.
	Complete Outcome = iota

	// Failed: the backtracking stack was exhausted with no resumable
	// candidate. Expected; restart with a fresh seed to retry.
	Failed

	// Stopped: the run was cancelled between iterations. The board
	// keeps its partial state.
	Stopped
)

func (o Outcome) String() string {
	switch o {
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return "stopped"
	}
}

// frame is one backtracking stack entry: an attempted placement at an
// anchor, with the shuffled candidates still untried.
type frame struct {
	anchor  Point
	options []Candidate
	next    int

	placed    Point
	hasPlaced bool
}

// nextOption advances the candidate cursor.
func (f *frame) nextOption() (Candidate, bool) {
	if f.next >= len(f.options) {
		return Candidate{}, false
	}
	cd := f.options[f.next]
	f.next++
	return cd, true
}

// Solver grows a tiling over a board, one placement per iteration.
// A solver is single-use per run and must only be driven by one
// goroutine; Board & Catalog are mutated exclusively by it while
// running.
type Solver struct {
	catalog *Catalog
	board   *Board

	rng     *rand.Rand
	seed    int64
	observe Observer

	bound int
	delay time.Duration
	stack []*frame
}

// NewSolver wires a solver over the given catalog & board. A nil cfg
// gets defaults.
func NewSolver(c *Catalog, b *Board, cfg *Config) *Solver {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bound := cfg.StackBound
	if bound <= 0 {
		bound = DefaultConfig().StackBound
	}

	return &Solver{
		catalog: c,
		board:   b,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		bound:   bound,
		delay:   cfg.StepDelay,
		stack:   []*frame{},
	}
}

// Seed returns the seed the solver's random source was built with.
func (s *Solver) Seed() int64 {
	return s.seed
}

// Observe registers a callback for place / remove events. Must be set
// before Run.
func (s *Solver) Observe(fn Observer) {
	s.observe = fn
}

func (s *Solver) emit(e Event) {
	if s.observe != nil {
		s.observe(e)
	}
}

func (s *Solver) place(p Point, id int) error {
	if err := s.board.Set(p.X, p.Y, id); err != nil {
		return err
	}
	s.emit(Event{Op: OpPlace, X: p.X, Y: p.Y})
	return nil
}

func (s *Solver) remove(p Point) {
	s.board.Remove(p.X, p.Y)
	s.emit(Event{Op: OpRemove, X: p.X, Y: p.Y})
}

// PlaceSeed places one random tile at the board's centre. Call once
// before Run.
func (s *Solver) PlaceSeed() error {
	return s.place(s.board.Middle(), s.rng.Intn(s.catalog.Len()))
}

// bestAnchor scans placed cells bordering empty space and returns the
// one admitting the fewest candidate placements. Ties fall to scan
// order, a committed heuristic. ok is false when the board is
// saturated (no frontier at all).
func (s *Solver) bestAnchor() (Point, bool) {
	var best Point
	found := false
	min := int(^uint(0) >> 1)

	for x := 0; x < s.board.Width(); x++ {
		for y := 0; y < s.board.Height(); y++ {
			p := Point{x, y}
			if _, occupied := s.board.At(x, y); !occupied {
				continue
			}
			if !s.board.hasEmptyNeighbour(p) {
				continue
			}

			n := len(s.catalog.Candidates(s.board, x, y))
			if n < min {
				min = n
				best = p
				found = true
			}
		}
	}
	return best, found
}

// relax breaks a detected contradiction: find an impossible empty
// cell next to the anchor & remove one of its neighbours at random.
// Not guaranteed minimal or even correct, just enough disturbance for
// the backtracker to regrow differently.
func (s *Solver) relax(anchor Point) {
	imp, ok := s.catalog.impossibleNear(s.board, anchor.X, anchor.Y)
	if !ok {
		return
	}
	ns := s.board.occupiedNeighbours(imp)
	if len(ns) == 0 {
		return
	}
	s.remove(ns[s.rng.Intn(len(ns))])
}

// backtrack pops stack entries, undoing their placements, until one
// yields an untried candidate to place. Reports whether growth can
// resume.
func (s *Solver) backtrack() (bool, error) {
	for len(s.stack) > 0 {
		f := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if f.hasPlaced {
			s.remove(f.placed)
			f.hasPlaced = false
		}

		cd, ok := f.nextOption()
		if !ok {
			continue
		}

		target := cd.Target(f.anchor)
		if err := s.place(target, cd.Tile); err != nil {
			return false, err
		}
		f.placed = target
		f.hasPlaced = true
		s.stack = append(s.stack, f)
		return true, nil
	}
	return false, nil
}

// push adds a frame, evicting the oldest entry when the stack is at
// its bound. Evicted placements are never undone by backtracking.
func (s *Solver) push(f *frame) {
	if len(s.stack) >= s.bound {
		s.stack = s.stack[1:]
	}
	s.stack = append(s.stack, f)
}

// Run drives the growth loop until the board completes, the stack is
// exhausted, or ctx is cancelled. Cancellation is checked once per
// iteration; no single operation spans iterations.
//
// The only error Run returns is ErrInvalidTile, which means a bug.
func (s *Solver) Run(ctx context.Context) (Outcome, error) {
	for {
		select {
		case <-ctx.Done():
			return Stopped, nil
		default:
		}

		anchor, ok := s.bestAnchor()
		if !ok {
			// nothing left to grow from
			return Complete, nil
		}

		options := s.catalog.Candidates(s.board, anchor.X, anchor.Y)
		s.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		if len(options) == 0 {
			s.relax(anchor)

			resumed, err := s.backtrack()
			if err != nil {
				return Failed, err
			}
			if !resumed {
				return Failed, nil
			}
		} else {
			f := &frame{anchor: anchor, options: options}
			cd, _ := f.nextOption()

			target := cd.Target(anchor)
			if err := s.place(target, cd.Tile); err != nil {
				return Failed, err
			}
			f.placed = target
			f.hasPlaced = true
			s.push(f)

			if s.board.Placed() == s.board.Width()*s.board.Height() {
				return Complete, nil
			}
		}

		if s.delay > 0 {
			select {
			case <-ctx.Done():
				return Stopped, nil
			case <-time.After(s.delay):
			}
		}
	}
}
