package game

import (
	"fmt"
	"math"
)

// Grid is a toroidal board: leaving one edge re-enters on the opposite edge.
type Grid struct {
	Width  int
	Height int
}

func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", g.Width, g.Height)
	}
	return nil
}

func (g Grid) Area() int { return g.Width * g.Height }

func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Normalize folds any point back onto the board.
func (g Grid) Normalize(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

// Move steps one cell in d, wrapping around the edges.
// Decrements are done as (v + dim - 1) % dim so nothing ever goes negative.
func (g Grid) Move(p Point, d Direction) Point {
	p = g.Normalize(p)
	dx, dy := d.Delta()
	switch {
	case dx > 0:
		p.X = (p.X + 1) % g.Width
	case dx < 0:
		p.X = (p.X + g.Width - 1) % g.Width
	}
	switch {
	case dy > 0:
		p.Y = (p.Y + 1) % g.Height
	case dy < 0:
		p.Y = (p.Y + g.Height - 1) % g.Height
	}
	return p
}

func wrap(v, dim int) int {
	v %= dim
	if v < 0 {
		v += dim
	}
	return v
}

// Metric measures the distance between two cells.
type Metric func(a, b Point) float64

// EuclideanDistance ignores wrapping.
func EuclideanDistance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// ToroidalDistance is the straight-line distance going the short way around
// each axis. Deltas are normalised by the board size before the 0.5
// reflection and scaled back afterwards.
func (g Grid) ToroidalDistance(a, b Point) float64 {
	dx := reflect(math.Abs(float64(a.X-b.X)), float64(g.Width))
	dy := reflect(math.Abs(float64(a.Y-b.Y)), float64(g.Height))
	return math.Hypot(dx, dy)
}

func reflect(delta, span float64) float64 {
	n := delta / span
	if n > 0.5 {
		n = 1 - n
	}
	return n * span
}

// LegacyToroidalDistance applies the 0.5 reflection to the raw cell delta,
// which only wraps correctly on a 1x1 board. Kept so old runs can be replayed
// with the same greedy choices.
func LegacyToroidalDistance(a, b Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if dx > 0.5 {
		dx = 1 - dx
	}
	if dy > 0.5 {
		dy = 1 - dy
	}
	return math.Hypot(dx, dy)
}

// Metric returns the toroidal metric for this board, or the legacy one.
func (g Grid) Metric(legacy bool) Metric {
	if legacy {
		return LegacyToroidalDistance
	}
	return g.ToroidalDistance
}
