package maze

import "mazewalk/internal/core"

// Stats summarizes the structure of a carved grid.
type Stats struct {
	Open        int // Open and Goal cells
	Goals       int
	Edges       int // adjacent passable pairs
	DeadEnds    int // passable cells with exactly one passable neighbour
	BorderWalls bool
}

// Perfect reports a single goal, an intact border and exactly open-1 edges.
// Connectivity is not checked here; Maze.Verify adds it.
func (s Stats) Perfect() bool {
	return s.Goals == 1 && s.BorderWalls && s.Open > 0 && s.Edges == s.Open-1
}

// Analyze walks every cell of g once.
func Analyze(g *Grid) Stats {
	s := Stats{BorderWalls: true}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := core.Coord{X: x, Y: y}
			t := g.cells[g.index(c)]
			onBorder := x == 0 || y == 0 || x == g.w-1 || y == g.h-1
			if onBorder && t != core.TerrainWall {
				s.BorderWalls = false
			}
			if !t.Passable() {
				continue
			}
			s.Open++
			if t == core.TerrainGoal {
				s.Goals++
			}
			if g.passable(c.Add(core.Right)) {
				s.Edges++
			}
			if g.passable(c.Add(core.Down)) {
				s.Edges++
			}
			degree := 0
			for _, d := range core.Cardinals {
				if g.passable(c.Add(d)) {
					degree++
				}
			}
			if degree == 1 {
				s.DeadEnds++
			}
		}
	}
	return s
}

func (g *Grid) passable(c core.Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)].Passable()
}
