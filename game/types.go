package game

import (
	"fmt"
	"strconv"
	"strings"
)

// World geometry constants
const (
	// CellSize is the number of world units spanned by one map cell
	CellSize = 1024

	// HalfCell is the offset from a cell's corner to its centre
	HalfCell = CellSize / 2
)

// ActorID identifies an actor inside a simulation world. IDs are assigned
// by the world and never reused within a single run.
type ActorID uint64

// NoActor is the zero ActorID; worlds never hand it out.
const NoActor ActorID = 0

// WPos is an absolute position in world units.
type WPos struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// WVec is a displacement between two world positions.
type WVec struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// CPos addresses a single map cell.
type CPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WDist is a non-directional length in world units.
type WDist struct {
	Length int `json:"length"`
}

// Common distances
var (
	ZeroDist = WDist{}
	MaxDist  = WDist{Length: int(^uint(0) >> 1)}
)

// Sub returns the vector from o to p.
func (p WPos) Sub(o WPos) WVec {
	return WVec{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Add offsets p by v.
func (p WPos) Add(v WVec) WPos {
	return WPos{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

func (p WPos) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// LengthSquared returns the squared 3D length using 64-bit intermediates.
func (v WVec) LengthSquared() int64 {
	x, y, z := int64(v.X), int64(v.Y), int64(v.Z)
	return x*x + y*y + z*z
}

// HorizontalLengthSquared ignores the Z component.
func (v WVec) HorizontalLengthSquared() int64 {
	x, y := int64(v.X), int64(v.Y)
	return x*x + y*y
}

// Length returns the truncated 3D length.
func (v WVec) Length() int {
	return int(ISqrt(uint64(v.LengthSquared())))
}

// HorizontalLength returns the truncated length on the XY plane.
func (v WVec) HorizontalLength() int {
	return int(ISqrt(uint64(v.HorizontalLengthSquared())))
}

// Dot returns the dot product of two vectors.
func (v WVec) Dot(o WVec) int64 {
	return int64(v.X)*int64(o.X) + int64(v.Y)*int64(o.Y) + int64(v.Z)*int64(o.Z)
}

// Distance returns the truncated 3D distance between two positions.
func Distance(a, b WPos) WDist {
	return WDist{Length: a.Sub(b).Length()}
}

// Center returns the world position at the middle of the cell floor.
func (c CPos) Center() WPos {
	return WPos{X: c.X*CellSize + HalfCell, Y: c.Y*CellSize + HalfCell}
}

// CellContaining returns the cell p lies in.
func CellContaining(p WPos) CPos {
	return CPos{X: floorDiv(p.X, CellSize), Y: floorDiv(p.Y, CellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FromCells converts a whole number of cells to a distance.
func FromCells(cells int) WDist {
	return WDist{Length: cells * CellSize}
}

func (d WDist) String() string {
	if d.Length%CellSize == 0 {
		return strconv.Itoa(d.Length/CellSize) + "c0"
	}
	return strconv.Itoa(d.Length/CellSize) + "c" + strconv.Itoa(d.Length%CellSize)
}

// ParseWDist accepts either a plain number of world units ("1536") or the
// cell notation "<cells>c<units>" ("1c512" == 1536).
func ParseWDist(s string) (WDist, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroDist, fmt.Errorf("parse distance: empty value")
	}

	cells, units, found := strings.Cut(s, "c")
	if !found {
		n, err := strconv.Atoi(s)
		if err != nil {
			return ZeroDist, fmt.Errorf("parse distance %q: %w", s, err)
		}
		return WDist{Length: n}, nil
	}

	c, err := strconv.Atoi(cells)
	if err != nil {
		return ZeroDist, fmt.Errorf("parse distance %q: cells: %w", s, err)
	}
	u := 0
	if units != "" {
		if u, err = strconv.Atoi(units); err != nil {
			return ZeroDist, fmt.Errorf("parse distance %q: units: %w", s, err)
		}
	}
	if c < 0 || u < 0 {
		return ZeroDist, fmt.Errorf("parse distance %q: negative component", s)
	}
	return WDist{Length: c*CellSize + u}, nil
}

// ISqrt returns floor(sqrt(n)) computed digit by digit so the result is
// identical on every platform.
func ISqrt(n uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
