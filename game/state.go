// Package game defines the core state types and transitions for the snake game.
//
// The grid owns a single snake and a single food cell. Everything here is
// deterministic given a seeded random source, so ticks can be replayed in tests.
package game

import "fmt"

// Point is a grid coordinate or a direction vector.
// Coordinates are (row, col) with (0,0) at the top-left.
type Point struct {
	Row int
	Col int
}

// Unit direction vectors.
var (
	Up    = Point{Row: -1, Col: 0}
	Down  = Point{Row: 1, Col: 0}
	Left  = Point{Row: 0, Col: -1}
	Right = Point{Row: 0, Col: 1}
)

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

func (p Point) Equal(q Point) bool {
	return p == q
}

// Reverse returns the opposite vector.
func (p Point) Reverse() Point {
	return Point{Row: -p.Row, Col: -p.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Bounds is the playable area: rows [0,Height) and cols [0,Width).
type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.Height && p.Col >= 0 && p.Col < b.Width
}

// Cells is the total number of cells in the area.
func (b Bounds) Cells() int {
	return b.Width * b.Height
}
