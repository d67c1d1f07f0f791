package server

// Test helpers to expose private methods for testing purposes
// This file should only be used for testing and not in production

// Step exposes the private step method for testing
func (s *Server) Step() {
	s.step()
}

// Grid exposes the world's spatial index for testing
func (w *World) Grid() *SpatialGrid {
	return w.grid
}

// MaxReach exposes the query padding for testing
func (w *World) MaxReach() int {
	return w.maxReach
}
