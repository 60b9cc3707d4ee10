package wfc

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlInsertRun       = `INSERT INTO runs (id, tileset, width, height, outcome, seed, created) VALUES (:id, :tileset, :width, :height, :outcome, :seed, :created);`
	sqlInsertPlacement = `INSERT INTO placements (run_id, x, y, tile) VALUES (:run_id, :x, :y, :tile) ON CONFLICT (run_id, x, y) DO UPDATE SET tile=EXCLUDED.tile;`
)

// Archive is a sqlite-backed record of solver runs: metadata plus the
// final board placements, reloadable for re-rendering or export.
type Archive struct {
	filename string
	db       *sqlx.DB
}

// NewArchive creates an archive under a random name in the os tempdir.
func NewArchive() (*Archive, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fname := filepath.Join(os.TempDir(), fmt.Sprintf("wfc.%d.sqlite", rng.Intn(1000000)))
	return OpenArchive(fname)
}

// OpenArchive opens (or creates) the archive at the given file.
func OpenArchive(fname string) (*Archive, error) {
	if dir := filepath.Dir(fname); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	a := &Archive{db: db, filename: fname}
	return a, a.init()
}

// Filename returns the path to the archive database on disk.
func (a *Archive) Filename() string {
	return a.filename
}

// Close the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// RunMeta describes one archived run.
type RunMeta struct {
	ID      string `db:"id"`
	Set     string `db:"tileset"`
	Width   int    `db:"width"`
	Height  int    `db:"height"`
	Outcome string `db:"outcome"`
	Seed    int64  `db:"seed"`
	Created int64  `db:"created"`
}

// dbPlacement encodes a single placed tile of a run.
type dbPlacement struct {
	RunID string `db:"run_id"`
	X     int    `db:"x"`
	Y     int    `db:"y"`
	Tile  int    `db:"tile"`
}

// SaveRun records the board's current placements under a fresh run id
// and returns it. Partial (failed / stopped) boards archive fine.
func (a *Archive) SaveRun(g Grid, c *Catalog, outcome Outcome, seed int64) (string, error) {
	now := time.Now()
	id := fmt.Sprintf("%s-%d", c.Set().Name, now.UnixNano())

	meta := RunMeta{
		ID:      id,
		Set:     c.Set().Name,
		Width:   g.Width(),
		Height:  g.Height(),
		Outcome: outcome.String(),
		Seed:    seed,
		Created: now.Unix(),
	}

	placements := []dbPlacement{}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tid, ok := g.At(x, y)
			if !ok {
				continue
			}
			placements = append(placements, dbPlacement{RunID: id, X: x, Y: y, Tile: tid})
		}
	}

	txn, err := a.db.Beginx()
	if err != nil {
		return "", err
	}

	_, err = txn.NamedExec(sqlInsertRun, meta)
	if err != nil {
		txn.Rollback()
		return "", err
	}

	if len(placements) > 0 {
		_, err = txn.NamedExec(sqlInsertPlacement, placements)
		if err != nil {
			txn.Rollback()
			return "", err
		}
	}

	return id, txn.Commit()
}

// Runs lists archived runs, newest first.
func (a *Archive) Runs() ([]*RunMeta, error) {
	rows, err := a.db.Queryx(`SELECT id, tileset, width, height, outcome, seed, created FROM runs ORDER BY created DESC, id DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*RunMeta{}
	for rows.Next() {
		m := &RunMeta{}
		if err := rows.StructScan(m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Run returns the metadata for a single run id.
func (a *Archive) Run(id string) (*RunMeta, error) {
	rows, err := a.db.NamedQuery(
		`SELECT id, tileset, width, height, outcome, seed, created FROM runs WHERE id=:id LIMIT 1;`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() { // at most one due to LIMIT 1
		m := &RunMeta{}
		if err := rows.StructScan(m); err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("run %q not found", id)
}

// Board rebuilds a run's board against the given catalog, which must
// be built from the same tile set the run used (tile ids are catalog
// indices).
func (a *Archive) Board(id string, c *Catalog) (*Board, error) {
	meta, err := a.Run(id)
	if err != nil {
		return nil, err
	}
	if meta.Set != c.Set().Name {
		return nil, fmt.Errorf("run %q used set %q, catalog holds %q", id, meta.Set, c.Set().Name)
	}

	b := NewBoard(meta.Width, meta.Height, c)

	rows, err := a.db.NamedQuery(
		`SELECT run_id, x, y, tile FROM placements WHERE run_id=:id;`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p := dbPlacement{}
	for rows.Next() {
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		if err := b.Set(p.X, p.Y, p.Tile); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// init creates our tables if they don't exist
func (a *Archive) init() error {
	createRuns := `CREATE TABLE IF NOT EXISTS runs(
		id TEXT PRIMARY KEY,
		tileset TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		seed INTEGER NOT NULL,
		created INTEGER NOT NULL
	    );`
	_, err := a.db.Exec(createRuns)
	if err != nil {
		return err
	}

	createPlacements := `CREATE TABLE IF NOT EXISTS placements(
		run_id TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		tile INTEGER NOT NULL,
		PRIMARY KEY (run_id, x, y)
	    );`
	_, err = a.db.Exec(createPlacements)
	return err
}
