//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// PanelHeight is the height in pixels of the status strip under the maze.
const PanelHeight = 20

const panelPadding = 6

// StatusProvider exposes what the HUD reports each frame.
type StatusProvider interface {
	Moves() int
	HasReachedGoal() bool
}

// HUD renders the status strip below the maze view.
type HUD struct {
	status StatusProvider
	width  int
	panel  *ebiten.Image
	line   string
}

// NewHUD constructs a HUD for the provided status source and panel width.
func NewHUD(status StatusProvider, width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{status: status, width: width, panel: ebiten.NewImage(width, PanelHeight)}
}

// Update refreshes the cached status line.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.line = StatusText(h.status.Moves(), h.status.HasReachedGoal())
}

// Draw paints the strip with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	if h.status.HasReachedGoal() {
		fg = color.RGBA{R: 255, G: 215, B: 64, A: 255}
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, h.line)
	y := (PanelHeight-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(h.panel, h.line, face, panelPadding, y, fg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
