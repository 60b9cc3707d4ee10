/* board rendering is a collaborator, not part of the solver: the core
never inspects images, it only exposes the grid + catalog for us to
paint. Each cell is drawn as its 3x3 zone colours, which is exactly
the data the compatibility rules run on.
*/
package wfc

import (
	"bytes"
	"image"
	"image/png"
	"io/ioutil"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// zone colours by edge symbol
var palette = map[byte][3]float64{
	'G': {0.30, 0.62, 0.33}, // green
	'B': {0.23, 0.43, 0.78}, // blue
	'W': {0.96, 0.96, 0.96}, // white
	'D': {0.13, 0.13, 0.15}, // dark
	'Y': {0.87, 0.74, 0.25}, // yellow
	'C': {0.78, 0.26, 0.33},
	'L': {0.62, 0.47, 0.74},
	'M': {0.44, 0.72, 0.78},
	'S': {0.58, 0.44, 0.30},
}

// zoneColour maps a symbol to a colour, hashing unknown symbols to a
// stable grey-ish tone so custom YAML sets still render.
func zoneColour(sym byte) (float64, float64, float64) {
	c, ok := palette[sym]
	if ok {
		return c[0], c[1], c[2]
	}
	v := float64(sym%64)/128.0 + 0.25
	return v, v, 1 - v
}

// zoneAt maps a 3x3 in-cell position to its edge string index.
// The 8 perimeter zones follow the clockwise description; -1 marks
// the centre.
var zoneAt = [3][3]int{
	{0, 7, 6},
	{1, -1, 5},
	{2, 3, 4},
}

// Renderer draws grids as images.
type Renderer struct {
	// pixels per zone; a cell is 3 zones square
	pixelSize int

	background [3]float64
}

// NewRenderer returns a renderer drawing each zone pixelSize px wide.
func NewRenderer(pixelSize int) *Renderer {
	if pixelSize < 1 {
		pixelSize = 1
	}
	return &Renderer{
		pixelSize:  pixelSize,
		background: [3]float64{0.83, 0.83, 0.83},
	}
}

// CellSize returns the rendered width/height of one cell in pixels.
func (r *Renderer) CellSize() int {
	return r.pixelSize * 3
}

// Image paints the grid onto a fresh image; empty cells keep the
// background colour.
func (r *Renderer) Image(g Grid, c *Catalog) image.Image {
	cell := r.CellSize()
	dc := gg.NewContext(g.Width()*cell, g.Height()*cell)

	dc.SetRGB(r.background[0], r.background[1], r.background[2])
	dc.Clear()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			id, ok := g.At(x, y)
			if !ok {
				continue
			}
			t := c.Tile(id)
			if t == nil {
				continue
			}
			r.drawTile(dc, t, x*cell, y*cell)
		}
	}

	return dc.Image()
}

// drawTile paints one tile's 9 zones at pixel offset (ox,oy). The
// centre takes the tile's most frequent edge symbol.
func (r *Renderer) drawTile(dc *gg.Context, t *Tile, ox, oy int) {
	centre := dominantSymbol(t.Edges)

	for zy := 0; zy < 3; zy++ {
		for zx := 0; zx < 3; zx++ {
			sym := centre
			if i := zoneAt[zx][zy]; i >= 0 {
				sym = t.Edges[i]
			}

			cr, cg, cb := zoneColour(sym)
			dc.SetRGB(cr, cg, cb)
			dc.DrawRectangle(
				float64(ox+zx*r.pixelSize),
				float64(oy+zy*r.pixelSize),
				float64(r.pixelSize),
				float64(r.pixelSize),
			)
			dc.Fill()
		}
	}
}

// dominantSymbol returns the most frequent symbol of an edge string,
// earliest first on ties.
func dominantSymbol(edges string) byte {
	best := edges[0]
	n := 0
	for i := 0; i < len(edges); i++ {
		count := 0
		for j := 0; j < len(edges); j++ {
			if edges[j] == edges[i] {
				count++
			}
		}
		if count > n {
			n = count
			best = edges[i]
		}
	}
	return best
}

// WritePNG renders the grid and writes it to fname. If canvasW and
// canvasH are non-zero the image is resized (Lanczos3) to fit them.
func (r *Renderer) WritePNG(fname string, g Grid, c *Catalog, canvasW, canvasH uint) error {
	img := r.Image(g, c)

	if canvasW > 0 && canvasH > 0 {
		img = resize.Resize(canvasW, canvasH, img, resize.Lanczos3)
	}

	return savePng(fname, img)
}

// savePng to disk
func savePng(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}
