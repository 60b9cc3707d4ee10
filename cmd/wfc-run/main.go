package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"github.com/voidshard/wfc"
)

const desc = `Grows an edge-matched tiling and writes it out as png and/or tmx.

The board is seeded with one random tile at its centre and grown outward one
placement at a time; dead ends are repaired by removing a blocking tile and
backtracking through a bounded stack of recent attempts. Runs can fail: the
stack only remembers the most recent attempts, so restart with another seed.`

var cli struct {
	Set  string `short:"s" default:"circuit" help:"tile set to solve with"`
	Sets string `help:"yaml file of extra tile set definitions"`
	List bool   `short:"l" help:"list known tile sets & exit"`

	// canvas size in px; board dimensions are canvas / (tile size * pixel size)
	Width     int `default:"800" help:"canvas width in px"`
	Height    int `default:"800" help:"canvas height in px"`
	PixelSize int `default:"4" help:"px per tile zone"`

	Seed       int64         `help:"random seed (0 = time based)"`
	StackBound int           `default:"100" help:"how many recent placements the solver can undo"`
	Delay      time.Duration `help:"pause between placements (animation pacing)"`
	Timeout    time.Duration `help:"give up after this long (0 = no limit)"`

	Out     string `short:"o" help:"output png. Defaults to <set>.png"`
	Tmx     string `help:"also write a .tmx map here"`
	Archive string `help:"sqlite archive to record the run ('none' to skip). Defaults to ~/.wfc/archive.sqlite"`
}

func main() {
	kong.Parse(&cli, kong.Name("wfc-run"), kong.Description(desc))

	sets := wfc.BuiltinSets()
	if cli.Sets != "" {
		extra, err := wfc.LoadSets(cli.Sets)
		if err != nil {
			panic(err)
		}
		sets = append(sets, extra...)
	}

	if cli.List {
		for _, s := range sets {
			fmt.Printf("%s (%d base tiles)\n", s.Name, len(s.Tiles))
		}
		return
	}

	var set *wfc.Set
	for _, s := range sets {
		if s.Name == cli.Set {
			set = s
			break
		}
	}
	if set == nil {
		panic(fmt.Sprintf("unknown tile set: %s", cli.Set))
	}

	catalog, err := wfc.BuildCatalog(set)
	if err != nil {
		panic(err)
	}

	boardW := cli.Width / (set.TileSize * cli.PixelSize)
	boardH := cli.Height / (set.TileSize * cli.PixelSize)
	if boardW < 1 || boardH < 1 {
		panic("canvas too small for one tile")
	}

	board := wfc.NewBoard(boardW, boardH, catalog)
	solver := wfc.NewSolver(catalog, board, &wfc.Config{
		StackBound: cli.StackBound,
		StepDelay:  cli.Delay,
		Seed:       cli.Seed,
	})

	placed, removed := 0, 0
	solver.Observe(func(e wfc.Event) {
		if e.Op == wfc.OpPlace {
			placed++
		} else {
			removed++
		}
	})

	if err := solver.PlaceSeed(); err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if cli.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cli.Timeout)
	}
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	outcome, err := solver.Run(ctx)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s: %dx%d board, %d tiles in catalog, seed %d\n", set.Name, boardW, boardH, catalog.Len(), solver.Seed())
	fmt.Printf("%s: %d placed, %d removed, %d/%d cells filled\n", outcome, placed, removed, board.Placed(), boardW*boardH)

	out := cli.Out
	if out == "" {
		out = fmt.Sprintf("%s.png", set.Name)
	}
	r := wfc.NewRenderer(cli.PixelSize * set.TileSize / 3)
	err = r.WritePNG(out, board, catalog, uint(cli.Width), uint(cli.Height))
	if err != nil {
		panic(err)
	}
	fmt.Println("wrote", out)

	if cli.Tmx != "" {
		err = wfc.WriteTMXFile(cli.Tmx, board, catalog)
		if err != nil {
			panic(err)
		}
		fmt.Println("wrote", cli.Tmx)
	}

	if cli.Archive != "none" {
		fname := cli.Archive
		if fname == "" {
			home, err := homedir.Dir()
			if err != nil {
				panic(err)
			}
			fname = filepath.Join(home, ".wfc", "archive.sqlite")
		}

		arc, err := wfc.OpenArchive(fname)
		if err != nil {
			panic(err)
		}
		defer arc.Close()

		id, err := arc.SaveRun(board, catalog, outcome, solver.Seed())
		if err != nil {
			panic(err)
		}
		fmt.Printf("archived run %s in %s\n", id, fname)
	}
}
