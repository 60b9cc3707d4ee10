package wfc

import (
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/go-yaml/yaml"
)

// TileDef is a hand-specified base tile within a set.
type TileDef struct {
	Name  string `yaml:"name"`
	Edges string `yaml:"edges"`

	// add a mirrored duplicate even when side-identical
	ForceMirror bool `yaml:"force_mirror"`

	// never place next to another tile of the same family
	NoSameFamily bool `yaml:"no_same_family"`
}

// Set names a group of base tiles from which a catalog is built.
type Set struct {
	Name string `yaml:"name"`

	// TileSize is the pixel footprint of one tile's art; board
	// dimensions are derived from canvas size / (TileSize * pixel size)
	TileSize int `yaml:"tile_size"`

	// NoDerive skips symmetric derivation, for sets whose variants
	// are already spelled out tile by tile
	NoDerive bool `yaml:"no_derive"`

	Tiles []TileDef `yaml:"tiles"`
}

// builtin sets; edge symbols are compatibility colours
// (G green, B blue, W white, D dark, Y yellow, C cord, L line, M mixed, S step)
var builtinSets = []*Set{
	{
		Name:     "circuit",
		TileSize: 14,
		Tiles: []TileDef{
			{Name: "bridge", Edges: "GBGWGBGW"},
			{Name: "component", Edges: "DDDDDDDD"},
			{Name: "connection", Edges: "GBGGDDDG"},
			{Name: "corner", Edges: "GGGGGGDG"},
			{Name: "dskew", Edges: "GBGBGBGB", ForceMirror: true},
			{Name: "ecomponent", Edges: "GGGGDDDG"},
			{Name: "skew", Edges: "GBGBGGGG"},
			{Name: "substrate", Edges: "GGGGGGGG"},
			{Name: "t", Edges: "GGGBGBGB"},
			{Name: "track", Edges: "GBGGGBGG"},
			{Name: "transition", Edges: "GWGGGBGG"},
			{Name: "turn", Edges: "GBGBGGGG"},
			{Name: "viad", Edges: "GGGBGGGB"},
			{Name: "vias", Edges: "GBGGGGGG"},
			{Name: "wire", Edges: "GGGWGGGW"},
		},
	},
	{
		Name:     "castle",
		TileSize: 7,
		Tiles: []TileDef{
			{Name: "bridge", Edges: "GBGYGBGY"},
			{Name: "ground", Edges: "GGGGGGGG"},
			{Name: "river", Edges: "GBGGGBGG"},
			{Name: "riverturn", Edges: "GBGBGGGG"},
			{Name: "road", Edges: "GYGGGYGG"},
			{Name: "roadturn", Edges: "GYGYGGGG"},
			{Name: "t", Edges: "GGGYGYGY"},
			{Name: "tower", Edges: "GWGWGGGG", NoSameFamily: true},
			{Name: "wall", Edges: "GWGGGWGG"},
			{Name: "wallriver", Edges: "GWGBGWGB"},
			{Name: "wallroad", Edges: "GWGYGWGY"},
		},
	},
	{
		Name:     "knots",
		TileSize: 10,
		Tiles: []TileDef{
			{Name: "corner", Edges: "WCWCWWWW"},
			{Name: "cross", Edges: "WCWCWCWC"},
			{Name: "empty", Edges: "WWWWWWWW"},
			{Name: "line", Edges: "WWWCWWWC"},
			{Name: "t", Edges: "WWWCWCWC"},
		},
	},
	{
		Name:     "simple",
		TileSize: 3,
		Tiles: []TileDef{
			{Name: "corner", Edges: "WCWCWWWW"},
			{Name: "cross", Edges: "WCWCWCWC"},
			{Name: "blank", Edges: "WWWWWWWW"},
			{Name: "line", Edges: "WWWCWWWC"},
			{Name: "t", Edges: "WWWCWCWC"},
		},
	},
	{
		Name:     "floorplan",
		TileSize: 9,
		Tiles: []TileDef{
			{Name: "div", Edges: "GGGLGGGL"},
			{Name: "divt", Edges: "GGGLGLGL"},
			{Name: "divturn", Edges: "GLGLGGGG"},
			{Name: "door", Edges: "GGGLGGGL"},
			{Name: "empty", Edges: "WWWWWWWW"},
			{Name: "floor", Edges: "GGGGGGGG"},
			{Name: "glass", Edges: "GGGMWWWM"},
			{Name: "halfglass", Edges: "GGGMWWWD"},
			{Name: "in", Edges: "GGGGGDWD"},
			{Name: "out", Edges: "WDGDWWWW"},
			{Name: "stairs", Edges: "GGGLGSGL"},
			{Name: "table", Edges: "GGGGGGGG", NoSameFamily: true},
			{Name: "vent", Edges: "WWWWWWWW", NoSameFamily: true},
			{Name: "w", Edges: "GGGDWWWD", NoSameFamily: true},
			{Name: "wall", Edges: "GGGDWWWD"},
			{Name: "walldiv", Edges: "GLGDWWWD"},
			{Name: "window", Edges: "GGGDWWWD", NoSameFamily: true},
		},
	},
	{
		Name:     "rooms",
		TileSize: 3,
		Tiles: []TileDef{
			{Name: "bend", Edges: "WBBBWWWW"},
			{Name: "corner", Edges: "BBWBBBBB"},
			{Name: "corridor", Edges: "BWBBBWBB"},
			{Name: "door", Edges: "WWWBBWBB"},
			{Name: "empty", Edges: "WWWWWWWW"},
			{Name: "side", Edges: "BBBBWWWB"},
			{Name: "t", Edges: "BBBWBWBW"},
			{Name: "turn", Edges: "BWBWBBBB"},
			{Name: "wall", Edges: "BBBBBBBB"},
		},
	},
	{
		Name:     "circles",
		TileSize: 32,
		Tiles: []TileDef{
			{Name: "b", Edges: "WBWBWBWB"},
			{Name: "w", Edges: "BWBWBWBW"},
			{Name: "b_half", Edges: "WBWWWWWW"},
			{Name: "w_half", Edges: "BWBBBBBB"},
			{Name: "b_i", Edges: "WBWWWBWW"},
			{Name: "w_i", Edges: "BWBBBWBB"},
			{Name: "b_quarter", Edges: "WBWBWWWW"},
			{Name: "w_quarter", Edges: "BWBWBBBB"},
		},
	},
}

// BuiltinSets returns the compiled-in tile sets.
func BuiltinSets() []*Set {
	return builtinSets
}

// SetNames returns the names of the builtin sets, sorted.
func SetNames() []string {
	names := []string{}
	for _, s := range builtinSets {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

// LookupSet finds a builtin set by name.
func LookupSet(name string) (*Set, error) {
	for _, s := range builtinSets {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown tile set %q", name)
}

// ParseSets reads tile set definitions from YAML.
func ParseSets(data []byte) ([]*Set, error) {
	sets := []*Set{}
	err := yaml.Unmarshal(data, &sets)
	if err != nil {
		return nil, err
	}

	for _, s := range sets {
		if s.Name == "" {
			return nil, fmt.Errorf("tile set with no name")
		}
		if len(s.Tiles) == 0 {
			return nil, fmt.Errorf("tile set %q has no tiles", s.Name)
		}
		if s.TileSize <= 0 {
			s.TileSize = 16
		}
	}

	return sets, nil
}

// LoadSets reads tile set definitions from a YAML file.
func LoadSets(fname string) ([]*Set, error) {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return ParseSets(data)
}
