//go:build ebiten

package app

import (
	"mazewalk/internal/agent"
	"mazewalk/internal/core"
	"mazewalk/internal/maze"
	"mazewalk/internal/render"
	"mazewalk/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var moveKeys = []struct {
	key ebiten.Key
	dir core.Direction
}{
	{ebiten.KeyW, core.Up},
	{ebiten.KeyArrowUp, core.Up},
	{ebiten.KeyS, core.Down},
	{ebiten.KeyArrowDown, core.Down},
	{ebiten.KeyA, core.Left},
	{ebiten.KeyArrowLeft, core.Left},
	{ebiten.KeyD, core.Right},
	{ebiten.KeyArrowRight, core.Right},
}

// Game adapts a maze session to the ebiten.Game interface.
type Game struct {
	agent   *agent.Agent
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	tile    int
	reached bool
	onGoal  func(moves int)
}

// New constructs a Game for the provided maze. onGoal, when non-nil, is
// called once the first time the agent steps onto the goal.
func New(m *maze.Maze, tile int, onGoal func(moves int)) *Game {
	a := agent.New(m.Grid, m.Start)
	gp := render.NewGridPainter(m.Grid, render.DefaultPalette(), tile)
	w, _ := gp.Size()
	return &Game{
		agent:   a,
		painter: gp,
		hud:     ui.NewHUD(a, w),
		overlay: ui.NewOverlay(m.Start, tile),
		tile:    tile,
		reached: a.HasReachedGoal(),
		onGoal:  onGoal,
	}
}

// Update polls the keyboard and applies at most one move per key press.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, mk := range moveKeys {
		if inpututil.IsKeyJustPressed(mk.key) {
			g.agent.AttemptMove(mk.dir)
		}
	}
	if !g.reached && g.agent.HasReachedGoal() {
		g.reached = true
		if g.onGoal != nil {
			g.onGoal(g.agent.Moves())
		}
	}

	g.overlay.Update()
	g.hud.Update()
	return nil
}

// Draw renders the maze, the agent and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.painter.DrawAgent(screen, g.agent.Position())
	g.overlay.Draw(screen)
	_, h := g.painter.Size()
	g.hud.Draw(screen, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w, h + ui.PanelHeight
}
