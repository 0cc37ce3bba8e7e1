package core

// Terrain enumerates what occupies a grid cell.
type Terrain uint8

const (
	TerrainOpen Terrain = iota
	TerrainWall
	TerrainGoal
)

// Passable reports whether an agent may stand on the terrain.
func (t Terrain) Passable() bool {
	return t == TerrainOpen || t == TerrainGoal
}

func (t Terrain) String() string {
	switch t {
	case TerrainOpen:
		return "open"
	case TerrainWall:
		return "wall"
	case TerrainGoal:
		return "goal"
	default:
		return "unknown"
	}
}
