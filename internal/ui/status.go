package ui

import "fmt"

// StatusText is the one-line session summary shown in the HUD and printed by
// headless builds.
func StatusText(moves int, reached bool) string {
	if reached {
		return fmt.Sprintf("goal reached in %d moves", moves)
	}
	return fmt.Sprintf("moves: %d  (WASD / arrows, Q quits)", moves)
}
