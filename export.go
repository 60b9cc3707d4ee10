/* this file writes finished (or partial) boards out as Tiled TMX
maps (doc.mapeditor.org/en/stable/) so external renderers can draw
them. We emit a tiny subset of TMX:
 - one tileset, one tile per catalog entry actually placed
 - one CSV-encoded tile layer, no compression
 - the 'orthogonal' orientation
Tile metadata (family, edges, flags) rides along as tile properties.
*/
package wfc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"
)

// property types understood by Tiled
const (
	propString = "string"
	propInt    = "int"
	propBool   = "bool"
)

type tmxMap struct {
	XMLName     xml.Name       `xml:"map"`
	Orientation string         `xml:"orientation,attr"`
	Width       int            `xml:"width,attr"`  // in tiles
	Height      int            `xml:"height,attr"` // in tiles
	TileWidth   int            `xml:"tilewidth,attr"`
	TileHeight  int            `xml:"tileheight,attr"`
	Properties  []*tmxProperty `xml:"properties>property"`
	Tileset     *tmxTileset    `xml:"tileset"`
	Layer       *tmxLayer      `xml:"layer"`
}

type tmxTileset struct {
	FirstGID uint       `xml:"firstgid,attr"`
	Name     string     `xml:"name,attr"`
	Tiles    []*tmxTile `xml:"tile"`
}

type tmxTile struct {
	ID         uint           `xml:"id,attr"`
	Image      *tmxImage      `xml:"image"`
	Properties []*tmxProperty `xml:"properties>property"`
}

type tmxImage struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

type tmxLayer struct {
	ID     uint    `xml:"id,attr"`
	Name   string  `xml:"name,attr"`
	Width  int     `xml:"width,attr"`
	Height int     `xml:"height,attr"`
	Data   tmxData `xml:"data"`
}

type tmxData struct {
	Encoding string `xml:"encoding,attr"`
	RawData  []byte `xml:",innerxml"`
}

type tmxProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Type  string `xml:"type,attr"`
}

func stringProp(name, value string) *tmxProperty {
	return &tmxProperty{Name: name, Value: value, Type: propString}
}

func intProp(name string, value int) *tmxProperty {
	return &tmxProperty{Name: name, Value: strconv.Itoa(value), Type: propInt}
}

func boolProp(name string, value bool) *tmxProperty {
	return &tmxProperty{Name: name, Value: fmt.Sprintf("%v", value), Type: propBool}
}

// encodeCSV turns layer gids into Tiled's csv data block
func encodeCSV(width, height int, in []uint) []byte {
	values := make([]string, height)

	for row := 0; row < height; row++ {
		csvrow := make([]string, width)
		for col := 0; col < width; col++ {
			csvrow[col] = strconv.Itoa(int(in[row*width+col]))
		}
		values[row] = strings.Join(csvrow, ",")
	}

	return []byte("\n" + strings.Join(values, ",\n") + "\n")
}

// ExportTMX writes the grid as a TMX map. Tile ids become gids offset
// by 1 (gid 0 is Tiled's nil tile, which empty cells map to). Image
// sources are synthesised from the set & family names; the solver
// never inspects them.
func ExportTMX(w io.Writer, g Grid, c *Catalog) error {
	set := c.Set()
	px := set.TileSize
	if px <= 0 {
		px = 16
	}

	m := &tmxMap{
		Orientation: "orthogonal",
		Width:       g.Width(),
		Height:      g.Height(),
		TileWidth:   px,
		TileHeight:  px,
		Properties: []*tmxProperty{
			stringProp("tileset", set.Name),
			intProp("catalog_size", c.Len()),
		},
		Tileset: &tmxTileset{FirstGID: 1, Name: set.Name, Tiles: []*tmxTile{}},
		Layer: &tmxLayer{
			ID:     1,
			Name:   "0",
			Width:  g.Width(),
			Height: g.Height(),
		},
	}

	// only placed tiles earn a tileset entry
	used := map[int]bool{}
	gids := make([]uint, g.Width()*g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			id, ok := g.At(x, y)
			if !ok {
				continue
			}
			used[id] = true
			gids[y*g.Width()+x] = uint(id) + m.Tileset.FirstGID
		}
	}

	for _, t := range c.Tiles() {
		if !used[t.ID] {
			continue
		}
		m.Tileset.Tiles = append(m.Tileset.Tiles, &tmxTile{
			ID: uint(t.ID),
			Image: &tmxImage{
				Source: fmt.Sprintf("%s/%s.%d.png", set.Name, t.Family, t.ID),
				Width:  px,
				Height: px,
			},
			Properties: []*tmxProperty{
				stringProp("family", t.Family),
				stringProp("edges", t.Edges),
				boolProp("no_same_family", t.NoSameFamily),
			},
		})
	}

	m.Layer.Data = tmxData{
		Encoding: "csv",
		RawData:  encodeCSV(g.Width(), g.Height(), gids),
	}

	return xml.NewEncoder(w).Encode(m)
}

// WriteTMXFile exports the grid to a .tmx file on disk.
func WriteTMXFile(fname string, g Grid, c *Catalog) error {
	buff := bytes.Buffer{}
	if err := ExportTMX(&buff, g, c); err != nil {
		return err
	}
	return ioutil.WriteFile(fname, buff.Bytes(), 0644)
}
