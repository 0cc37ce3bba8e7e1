package main

import (
	"flag"
	"log"
	"time"

	"mazewalk/internal/config"
	"mazewalk/internal/core"
	"mazewalk/internal/maze"

	"github.com/google/uuid"
)

// session is one generated maze plus the settings and id it was built with.
type session struct {
	id   uuid.UUID
	cfg  *config.Config
	maze *maze.Maze
}

// newSession layers .env, environment and flags, then generates the maze.
func newSession() *session {
	cfg := config.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	size := cfg.GridSize()
	s := &session{
		id:   uuid.New(),
		cfg:  cfg,
		maze: maze.New(size.W, size.H, core.NewRNG(cfg.Seed)),
	}
	log.Printf("session %s: seed=%d grid=%dx%d start=%v goal=%v",
		s.id, cfg.Seed, size.W, size.H, s.maze.Start, s.maze.Goal)
	return s
}
