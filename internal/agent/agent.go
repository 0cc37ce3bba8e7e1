// Package agent tracks the single player walking a generated maze.
package agent

import "mazewalk/internal/core"

// Grid is the read-only view of the maze an Agent needs.
type Grid interface {
	InBounds(c core.Coord) bool
	TerrainAt(c core.Coord) (core.Terrain, error)
}

// Agent holds a logical position on a grid. It knows nothing about drawing.
type Agent struct {
	grid  Grid
	pos   core.Coord
	moves int
}

// New places an agent at start.
func New(grid Grid, start core.Coord) *Agent {
	return &Agent{grid: grid, pos: start}
}

// Position returns the current cell.
func (a *Agent) Position() core.Coord { return a.pos }

// Moves returns how many moves have been committed.
func (a *Agent) Moves() int { return a.moves }

// AttemptMove steps one cell along d when the target is in bounds and
// passable. Anything else leaves the agent where it is. It reports whether
// the move was committed.
func (a *Agent) AttemptMove(d core.Direction) bool {
	if !d.IsCardinal() {
		return false
	}
	target := a.pos.Add(d)
	if !a.grid.InBounds(target) {
		return false
	}
	terrain, err := a.grid.TerrainAt(target)
	if err != nil || !terrain.Passable() {
		return false
	}
	a.pos = target
	a.moves++
	return true
}

// HasReachedGoal reports whether the agent stands on the goal cell.
func (a *Agent) HasReachedGoal() bool {
	terrain, err := a.grid.TerrainAt(a.pos)
	return err == nil && terrain == core.TerrainGoal
}
