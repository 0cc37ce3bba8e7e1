//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"mazewalk/internal/render"
)

func main() {
	s := newSession()
	fmt.Print(render.Text(s.maze.Grid, s.maze.Start))
	fmt.Fprintln(os.Stderr, "Headless build: printed the maze only. Re-run with `go run -tags ebiten ./cmd/maze` to play.")
}
