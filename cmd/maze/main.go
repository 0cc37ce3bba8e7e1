//go:build ebiten

package main

import (
	"errors"
	"log"

	"mazewalk/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	s := newSession()

	game := app.New(s.maze, s.cfg.TileSize, func(moves int) {
		log.Printf("session %s: goal reached in %d moves", s.id, moves)
	})
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(s.cfg.Title)
	ebiten.SetTPS(s.cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
