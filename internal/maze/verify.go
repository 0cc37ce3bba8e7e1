package maze

import (
	"errors"
	"fmt"

	"mazewalk/internal/core"

	"github.com/zyedidia/generic/mapset"
)

// ErrNotPerfect is wrapped by Verify when a structural invariant fails.
var ErrNotPerfect = errors.New("maze is not perfect")

// Reachable flood-fills passable cells from `from`, which is included when
// passable.
func Reachable(g *Grid, from core.Coord) mapset.Set[core.Coord] {
	visited := mapset.New[core.Coord]()
	queue := []core.Coord{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) || !g.passable(current) {
			continue
		}
		visited.Put(current)
		for _, d := range core.Cardinals {
			queue = append(queue, current.Add(d))
		}
	}
	return visited
}

// Verify checks the tree, border, single-goal and reachability invariants.
func (m *Maze) Verify() error {
	s := Analyze(m.Grid)
	switch {
	case !s.BorderWalls:
		return fmt.Errorf("%w: border carved", ErrNotPerfect)
	case s.Goals != 1:
		return fmt.Errorf("%w: %d goal cells", ErrNotPerfect, s.Goals)
	case s.Edges != s.Open-1:
		return fmt.Errorf("%w: %d open cells joined by %d edges", ErrNotPerfect, s.Open, s.Edges)
	}
	if t, err := m.Grid.TerrainAt(m.Goal); err != nil || t != core.TerrainGoal {
		return fmt.Errorf("%w: goal %v not marked", ErrNotPerfect, m.Goal)
	}
	seen := Reachable(m.Grid, m.Start)
	if seen.Size() != s.Open {
		return fmt.Errorf("%w: %d of %d open cells reachable from start", ErrNotPerfect, seen.Size(), s.Open)
	}
	return nil
}
