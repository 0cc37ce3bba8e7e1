package core

import "testing"

func TestCoordStep(t *testing.T) {
	c := Coord{X: 4, Y: 6}
	if got := c.Add(Up); got != (Coord{X: 4, Y: 5}) {
		t.Fatalf("Add(Up) = %v", got)
	}
	if got := c.Step(Left, 2); got != (Coord{X: 2, Y: 6}) {
		t.Fatalf("Step(Left, 2) = %v", got)
	}
	if got := c.Step(Down, 2).Step(Down, -1); got != (Coord{X: 4, Y: 7}) {
		t.Fatalf("Step(Down) round trip = %v", got)
	}
}

func TestIsCardinal(t *testing.T) {
	for _, d := range Cardinals {
		if !d.IsCardinal() {
			t.Fatalf("%v should be cardinal", d)
		}
	}
	for _, d := range []Direction{{}, {DX: 1, DY: 1}, {DX: 2, DY: 0}, {DX: 0, DY: -2}} {
		if d.IsCardinal() {
			t.Fatalf("%v should not be cardinal", d)
		}
	}
}

func TestTerrainPassable(t *testing.T) {
	if !TerrainOpen.Passable() || !TerrainGoal.Passable() {
		t.Fatal("open and goal must be passable")
	}
	if TerrainWall.Passable() {
		t.Fatal("wall must not be passable")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		x, y := a.IntN(1000), b.IntN(1000)
		if x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
	if got := a.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}
