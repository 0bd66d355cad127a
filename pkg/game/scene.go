package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen driven by the game loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the fixed tick length in seconds.
	// A non-nil error stops the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	// Draw must not change simulation state.
	Draw(screen *ebiten.Image)
}
