package render

import (
	"strings"

	"mazewalk/internal/core"
)

// Text draws the grid one line per row: '#' wall, ' ' open, 'G' goal and '@'
// for the agent at pos. Pass a coordinate outside the grid to omit the agent.
func Text(grid TerrainGrid, pos core.Coord) string {
	size := grid.Size()
	var b strings.Builder
	b.Grow((size.W + 1) * size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := core.Coord{X: x, Y: y}
			if c == pos {
				b.WriteByte('@')
				continue
			}
			switch grid.MustTerrainAt(c) {
			case core.TerrainOpen:
				b.WriteByte(' ')
			case core.TerrainGoal:
				b.WriteByte('G')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
