//go:build ebiten

package ui

import (
	"image/color"

	"mazewalk/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional visual aids on top of the maze. Key 1 toggles an
// outline around the start cell.
type Overlay struct {
	start     core.Coord
	tile      int
	showStart bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(start core.Coord, tile int) *Overlay {
	if tile <= 0 {
		tile = 1
	}
	return &Overlay{start: start, tile: tile}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStart = !o.showStart
	}
}

// Draw renders the enabled aids onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showStart {
		return
	}
	x := float32(o.start.X * o.tile)
	y := float32(o.start.Y * o.tile)
	side := float32(o.tile - 1)
	stroke := float32(o.tile) / 8
	if stroke < 1 {
		stroke = 1
	}
	vector.StrokeRect(screen, x, y, side, side, stroke, color.RGBA{R: 64, G: 128, B: 255, A: 255}, false)
}
