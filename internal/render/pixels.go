package render

import (
	"image/color"

	"mazewalk/internal/core"
)

// TerrainGrid is the read-only grid view the renderers draw from.
type TerrainGrid interface {
	Size() core.Size
	MustTerrainAt(c core.Coord) core.Terrain
}

// Palette maps each terrain kind and the agent marker to a colour. Gap is
// drawn in the 1px seam between tiles.
type Palette struct {
	Open  color.RGBA
	Wall  color.RGBA
	Goal  color.RGBA
	Agent color.RGBA
	Gap   color.RGBA
}

// DefaultPalette returns white corridors, green walls, a yellow goal and a red
// agent on black.
func DefaultPalette() Palette {
	return Palette{
		Open:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Wall:  color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Goal:  color.RGBA{R: 255, G: 255, B: 0, A: 255},
		Agent: color.RGBA{R: 255, G: 0, B: 0, A: 255},
		Gap:   color.RGBA{A: 255},
	}
}

// Color returns the fill colour for t.
func (p Palette) Color(t core.Terrain) color.RGBA {
	switch t {
	case core.TerrainOpen:
		return p.Open
	case core.TerrainGoal:
		return p.Goal
	default:
		return p.Wall
	}
}

// fillTerrainRGBA paints every cell as a (tile-1)-pixel square followed by a
// one pixel gap on its right and bottom edges. buf must hold
// 4 * (W*tile) * (H*tile) bytes.
func fillTerrainRGBA(buf []byte, grid TerrainGrid, palette Palette, tile int) {
	size := grid.Size()
	stride := size.W * tile
	for py := 0; py < size.H*tile; py++ {
		cy, iy := py/tile, py%tile
		for px := 0; px < stride; px++ {
			cx, ix := px/tile, px%tile
			col := palette.Gap
			if ix < tile-1 && iy < tile-1 {
				col = palette.Color(grid.MustTerrainAt(core.Coord{X: cx, Y: cy}))
			}
			base := (py*stride + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
