package server

import (
	"time"

	"github.com/lab1702/cellspread/game"
)

// Config holds the tunables of a sandbox simulation.
type Config struct {
	// TickInterval is the wall-clock duration of one tick in live mode
	TickInterval time.Duration

	// GridCellSize is the bucket size of the spatial index in world units.
	// Should be at least as large as the largest warhead spread.
	GridCellSize int

	// OverlayTTL is how many ticks an impact stays on the debug overlay
	OverlayTTL int

	// CombatGeometry feeds every impact to the debug overlay
	CombatGeometry bool
}

// NewConfig returns the default configuration.
func NewConfig() Config {
	return Config{
		TickInterval:   50 * time.Millisecond, // 20 ticks per second
		GridCellSize:   4 * game.CellSize,
		OverlayTTL:     40,
		CombatGeometry: false,
	}
}
