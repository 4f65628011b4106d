// Package geometry implements the 10x10 lattice and its symmetry group
// used by the LITS board: points, orthogonal adjacency, and the eight
// transforms of the dihedral group of the square.
package geometry

import (
	"fmt"
	"strconv"
)

// BoardSize is the width and height of the LITS board.
const BoardSize = 10

// Point is a coordinate on the 10x10 board. X and Y each range 0..9.
type Point struct {
	X, Y int
}

// NewPoint builds a point from raw coordinates, without bounds checking.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// InBounds reports whether the point lies on the board.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Notate renders the point as a zero-padded two-digit string, "xy".
func (p Point) Notate() string {
	return fmt.Sprintf("%d%d", p.X, p.Y)
}

// String implements fmt.Stringer via Notate.
func (p Point) String() string {
	return p.Notate()
}

// ParsePoint parses a point from its two-digit notation.
func ParsePoint(s string) (Point, error) {
	if len(s) != 2 {
		return Point{}, fmt.Errorf("point %q: want exactly 2 digits", s)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	if v < 0 || v > 99 {
		return Point{}, fmt.Errorf("point %q: out of range", s)
	}
	return Point{X: v / 10, Y: v % 10}, nil
}

// Neighbours returns the four orthogonal neighbours of p, without regard
// to board bounds.
func (p Point) Neighbours() [4]Point {
	return [4]Point{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
}

// NeighboursOnBoard returns the orthogonal neighbours of p that lie on
// the board.
func (p Point) NeighboursOnBoard() []Point {
	all := p.Neighbours()
	out := make([]Point, 0, 4)
	for _, n := range all {
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}

// PotentialAnchors returns every point that could be the anchor of a
// tetromino covering p, given the reference shapes never extend more
// than 3 cells away from their anchor in either axis. The region is
// triangular: x ranges 0..3 and, for each x, y ranges 0..(3-x).
func (p Point) PotentialAnchors() []Point {
	out := make([]Point, 0, 10)
	for x := 0; x <= 3; x++ {
		for y := 0; y <= 3-x; y++ {
			anchor := Point{X: -x, Y: -y}.Add(p)
			if anchor.InBounds() {
				out = append(out, anchor)
			}
		}
	}
	return out
}
