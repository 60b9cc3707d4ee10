package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"github.com/voidshard/wfc"
)

const desc = `Re-renders an archived solver run to png and/or tmx.

Without --run the archive's runs are listed instead.`

var cli struct {
	Archive string `short:"a" help:"sqlite archive to read. Defaults to ~/.wfc/archive.sqlite"`
	Run     string `short:"r" help:"run id to render (see the listing)"`
	Sets    string `help:"yaml file of extra tile set definitions (for runs over custom sets)"`

	PixelSize int    `default:"4" help:"px per tile zone"`
	Out       string `short:"o" help:"output png. Defaults to <run id>.png"`
	Tmx       string `help:"also write a .tmx map here"`
}

func main() {
	kong.Parse(&cli, kong.Name("wfc-render"), kong.Description(desc))

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

	if cli.Run == "" {
		runs, err := arc.Runs()
		if err != nil {
			panic(err)
		}
		for _, m := range runs {
			fmt.Printf("%s  %s  %dx%d  %s  seed=%d  %s\n",
				m.ID, m.Set, m.Width, m.Height, m.Outcome, m.Seed,
				time.Unix(m.Created, 0).Format(time.RFC3339))
		}
		if len(runs) == 0 {
			fmt.Println("archive holds no runs")
		}
		return
	}

	meta, err := arc.Run(cli.Run)
	if err != nil {
		panic(err)
	}

	set, err := lookupSet(meta.Set)
	if err != nil {
		panic(err)
	}

	catalog, err := wfc.BuildCatalog(set)
	if err != nil {
		panic(err)
	}

	board, err := arc.Board(cli.Run, catalog)
	if err != nil {
		panic(err)
	}

	out := cli.Out
	if out == "" {
		out = fmt.Sprintf("%s.png", cli.Run)
	}

	r := wfc.NewRenderer(cli.PixelSize)
	err = r.WritePNG(out, board, catalog, 0, 0)
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
}

// lookupSet checks builtins, then any --sets file
func lookupSet(name string) (*wfc.Set, error) {
	set, err := wfc.LookupSet(name)
	if err == nil {
		return set, nil
	}
	if cli.Sets == "" {
		return nil, err
	}

	extra, err := wfc.LoadSets(cli.Sets)
	if err != nil {
		return nil, err
	}
	for _, s := range extra {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown tile set %q", name)
}
