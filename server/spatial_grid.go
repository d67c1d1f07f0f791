package server

import (
	"github.com/lab1702/cellspread/game"
)

// SpatialGrid provides O(1) average case lookup for nearby actors
// using a grid-based spatial hash over the bounds of the map.
// Positions outside the bounds are clamped into the border buckets.
type SpatialGrid struct {
	cellSize int
	cols     int
	rows     int
	cells    [][]game.ActorID
}

// NewSpatialGrid creates a grid covering width x height world units.
func NewSpatialGrid(width, height, cellSize int) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = game.CellSize
	}
	cols := max(1, (width+cellSize-1)/cellSize)
	rows := max(1, (height+cellSize-1)/cellSize)

	cells := make([][]game.ActorID, cols*rows)
	for i := range cells {
		cells[i] = make([]game.ActorID, 0, 4) // Pre-allocate small capacity
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear resets the grid for re-indexing
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0] // Reuse underlying array
	}
}

// bucket returns the clamped column and row for a position
func (g *SpatialGrid) bucket(x, y int) (col, row int) {
	return clampIndex(x/g.cellSize, g.cols), clampIndex(y/g.cellSize, g.rows)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Insert adds an actor to the grid
func (g *SpatialGrid) Insert(id game.ActorID, pos game.WPos) {
	col, row := g.bucket(pos.X, pos.Y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], id)
}

// GetNearby returns actors in every bucket overlapping the square of
// half-size r around pos. The caller must still perform exact distance
// checks. Each actor appears at most once.
func (g *SpatialGrid) GetNearby(pos game.WPos, r int) []game.ActorID {
	minCol, minRow := g.bucket(pos.X-r, pos.Y-r)
	maxCol, maxRow := g.bucket(pos.X+r, pos.Y+r)

	var result []game.ActorID
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			result = append(result, g.cells[row*g.cols+col]...)
		}
	}
	return result
}
