// Package maze builds perfect mazes on a tile grid.
//
// Carving happens on the sub-lattice of cells whose coordinates are both even.
// Odd rows and columns hold the walls between those rooms and are opened only
// when two rooms are joined, so corridors are one tile wide and the outer
// border is never touched. Every carve opens a previously walled room, which
// keeps the open cells a tree: there is exactly one simple path between any
// two of them.
package maze

import "mazewalk/internal/core"

// Source supplies the randomness used during generation. Both *rand.Rand from
// math/rand/v2 and *core.RNG satisfy it.
type Source interface {
	IntN(n int) int
}

// Maze is a generated grid together with its start and goal cells.
type Maze struct {
	Grid  *Grid
	Start core.Coord
	Goal  core.Coord
}

// New allocates a w x h grid and carves a maze into it.
func New(w, h int, src Source) *Maze {
	g := NewGrid(w, h)
	start, goal := Generate(g, src)
	return &Maze{Grid: g, Start: start, Goal: goal}
}

// Generate resets g to walls and carves a randomized frontier-growth maze.
// The goal is the last room carved. When the grid has no even interior cell
// the maze degenerates to a single goal cell at the grid centre and
// start == goal.
func Generate(g *Grid, src Source) (start, goal core.Coord) {
	g.fill(core.TerrainWall)

	roomsX := (g.w - 2) / 2
	roomsY := (g.h - 2) / 2
	if roomsX <= 0 || roomsY <= 0 {
		start = core.Coord{X: g.w / 2, Y: g.h / 2}
		g.setTerrain(start, core.TerrainGoal)
		return start, start
	}

	start = core.Coord{
		X: 2 + 2*src.IntN(roomsX),
		Y: 2 + 2*src.IntN(roomsY),
	}
	g.setTerrain(start, core.TerrainOpen)

	frontier := []core.Coord{start}
	last := start
	for len(frontier) > 0 {
		i := src.IntN(len(frontier))
		current := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, d := range core.Cardinals {
			neighbor := current.Step(d, 2)
			if !g.Interior(neighbor) || g.cells[g.index(neighbor)] != core.TerrainWall {
				continue
			}
			between := current.Add(d)
			if g.cells[g.index(between)] != core.TerrainWall {
				continue
			}
			g.setTerrain(between, core.TerrainOpen)
			g.setTerrain(neighbor, core.TerrainOpen)
			frontier = append(frontier, neighbor)
			last = neighbor
		}
	}

	g.setTerrain(last, core.TerrainGoal)
	return start, last
}
