// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the simulation pure and testable.
package core

// Point represents a cell on the integer grid.
type Point struct {
	X, Y int
}

// Add returns the point translated by the given direction.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Wrap maps the point onto a toroidal grid of the given dimensions.
// Handles coordinates at most one grid-size out of bounds, which is all
// single-step movement can produce.
func (p Point) Wrap(w, h int) Point {
	return Point{
		X: ((p.X % w) + w) % w,
		Y: ((p.Y % h) + h) % h,
	}
}

// In reports whether the point lies inside a w×h grid.
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Direction is a unit vector along one of the four grid axes.
type Direction struct {
	DX, DY int
}

// The four cardinal directions.
var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Perp returns a direction orthogonal to d. For axis-aligned unit
// vectors swapping the components is enough; callers that need the other
// sense negate the result.
func (d Direction) Perp() Direction {
	return Direction{DX: d.DY, DY: d.DX}
}

// IsZero reports whether the direction carries no movement.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp64 restricts an int64 value to be within [min, max].
func Clamp64(val, min, max int64) int64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Max64 returns the larger of two int64 values.
func Max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
