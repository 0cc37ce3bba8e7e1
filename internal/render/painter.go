//go:build ebiten

package render

import (
	"mazewalk/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter rasterizes a finished grid once and blits it every frame. The
// grid must not change after the painter is built.
type GridPainter struct {
	tile    int
	palette Palette
	img     *ebiten.Image
}

// NewGridPainter uploads grid into an image of W*tile x H*tile pixels.
func NewGridPainter(grid TerrainGrid, palette Palette, tile int) *GridPainter {
	if tile <= 0 {
		tile = 1
	}
	size := grid.Size()
	w, h := size.W*tile, size.H*tile
	buf := make([]byte, 4*w*h)
	fillTerrainRGBA(buf, grid, palette, tile)

	gp := &GridPainter{tile: tile, palette: palette, img: ebiten.NewImage(w, h)}
	gp.img.WritePixels(buf)
	return gp
}

// Draw blits the maze image onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// DrawAgent paints the agent marker over the tile at pos.
func (gp *GridPainter) DrawAgent(dst *ebiten.Image, pos core.Coord) {
	side := float32(gp.tile - 1)
	if side < 1 {
		side = 1
	}
	x := float32(pos.X * gp.tile)
	y := float32(pos.Y * gp.tile)
	vector.DrawFilledRect(dst, x, y, side, side, gp.palette.Agent, false)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) {
	b := gp.img.Bounds()
	return b.Dx(), b.Dy()
}
