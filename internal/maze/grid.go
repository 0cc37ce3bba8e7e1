package maze

import (
	"errors"
	"fmt"

	"mazewalk/internal/core"
)

// ErrOutOfBounds reports a coordinate outside the grid dimensions.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid stores the terrain of every cell in row-major order. Dimensions are
// fixed at construction.
type Grid struct {
	w, h  int
	cells []core.Terrain
}

// NewGrid allocates an all-wall grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{w: w, h: h, cells: make([]core.Terrain, w*h)}
	g.fill(core.TerrainWall)
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// InBounds reports whether c lies inside [0,w) x [0,h).
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Interior reports whether c lies strictly inside the outer border.
func (g *Grid) Interior(c core.Coord) bool {
	return c.X > 0 && c.X < g.w-1 && c.Y > 0 && c.Y < g.h-1
}

// TerrainAt returns the terrain at c, or an error wrapping ErrOutOfBounds.
func (g *Grid) TerrainAt(c core.Coord) (core.Terrain, error) {
	if !g.InBounds(c) {
		return core.TerrainWall, fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, c, g.w, g.h)
	}
	return g.cells[g.index(c)], nil
}

// MustTerrainAt is like TerrainAt but panics when c is out of bounds. Callers
// iterating the declared size use it; a panic means the caller is broken.
func (g *Grid) MustTerrainAt(c core.Coord) core.Terrain {
	t, err := g.TerrainAt(c)
	if err != nil {
		panic(err)
	}
	return t
}

// Count returns how many cells hold terrain t.
func (g *Grid) Count(t core.Terrain) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

func (g *Grid) index(c core.Coord) int { return c.Y*g.w + c.X }

// setTerrain is reserved for the generator.
func (g *Grid) setTerrain(c core.Coord, t core.Terrain) {
	g.cells[g.index(c)] = t
}

func (g *Grid) fill(t core.Terrain) {
	for i := range g.cells {
		g.cells[i] = t
	}
}
