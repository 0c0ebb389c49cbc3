package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_WrapsEveryEdge(t *testing.T) {
	grids := []Grid{{Width: 30, Height: 20}, {Width: 1, Height: 1}, {Width: 3, Height: 7}}
	for _, g := range grids {
		for y := 0; y < g.Height; y++ {
			assert.Equal(t, Point{X: 0, Y: y}, g.Move(Point{X: g.Width - 1, Y: y}, Right), "grid=%v", g)
			assert.Equal(t, Point{X: g.Width - 1, Y: y}, g.Move(Point{X: 0, Y: y}, Left), "grid=%v", g)
		}
		for x := 0; x < g.Width; x++ {
			assert.Equal(t, Point{X: x, Y: g.Height - 1}, g.Move(Point{X: x, Y: 0}, Up), "grid=%v", g)
			assert.Equal(t, Point{X: x, Y: 0}, g.Move(Point{X: x, Y: g.Height - 1}, Down), "grid=%v", g)
		}
	}
}

func TestMove_AlwaysInBounds(t *testing.T) {
	g := Grid{Width: 5, Height: 4}
	for y := -6; y < 10; y++ {
		for x := -6; x < 10; x++ {
			for _, d := range Directions {
				got := g.Move(Point{X: x, Y: y}, d)
				require.True(t, g.Contains(got), "move %v from (%d,%d) = %v", d, x, y, got)
			}
		}
	}
}

func TestMove_Interior(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	p := Point{X: 4, Y: 4}
	assert.Equal(t, Point{X: 4, Y: 3}, g.Move(p, Up))
	assert.Equal(t, Point{X: 4, Y: 5}, g.Move(p, Down))
	assert.Equal(t, Point{X: 3, Y: 4}, g.Move(p, Left))
	assert.Equal(t, Point{X: 5, Y: 4}, g.Move(p, Right))
}

func TestEuclideanDistance(t *testing.T) {
	assert.InDelta(t, 5.0, EuclideanDistance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}), 1e-9)
	assert.InDelta(t, 29.0, EuclideanDistance(Point{X: 0, Y: 0}, Point{X: 29, Y: 0}), 1e-9)
	assert.Zero(t, EuclideanDistance(Point{X: 7, Y: 2}, Point{X: 7, Y: 2}))
}

func TestToroidalDistance_ShortWayRound(t *testing.T) {
	g := Grid{Width: 30, Height: 20}

	assert.InDelta(t, 1.0, g.ToroidalDistance(Point{X: 0, Y: 0}, Point{X: 29, Y: 0}), 1e-9)
	assert.InDelta(t, 1.0, g.ToroidalDistance(Point{X: 0, Y: 0}, Point{X: 0, Y: 19}), 1e-9)
	assert.InDelta(t, math.Sqrt(2), g.ToroidalDistance(Point{X: 29, Y: 19}, Point{X: 0, Y: 0}), 1e-9)
	assert.InDelta(t, 5.0, g.ToroidalDistance(Point{X: 1, Y: 1}, Point{X: 4, Y: 5}), 1e-9)
	// Exactly half way is not reflected.
	assert.InDelta(t, 15.0, g.ToroidalDistance(Point{X: 0, Y: 0}, Point{X: 15, Y: 0}), 1e-9)
}

func TestToroidalDistance_NeverExceedsEuclidean(t *testing.T) {
	g := Grid{Width: 9, Height: 6}
	for ay := 0; ay < g.Height; ay++ {
		for ax := 0; ax < g.Width; ax++ {
			a := Point{X: ax, Y: ay}
			for by := 0; by < g.Height; by++ {
				for bx := 0; bx < g.Width; bx++ {
					b := Point{X: bx, Y: by}
					td := g.ToroidalDistance(a, b)
					require.LessOrEqual(t, td, EuclideanDistance(a, b)+1e-9)
					require.InDelta(t, td, g.ToroidalDistance(b, a), 1e-9)
				}
			}
		}
	}
}

func TestLegacyToroidalDistance(t *testing.T) {
	// Raw deltas of k >= 1 reflect to 1-k.
	assert.Zero(t, LegacyToroidalDistance(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}))
	assert.InDelta(t, 1.0, LegacyToroidalDistance(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}), 1e-9)
	assert.InDelta(t, math.Hypot(2, 3), LegacyToroidalDistance(Point{X: 5, Y: 1}, Point{X: 2, Y: 5}), 1e-9)
	assert.Zero(t, LegacyToroidalDistance(Point{X: 3, Y: 3}, Point{X: 3, Y: 3}))
}

func TestGridMetric(t *testing.T) {
	g := Grid{Width: 30, Height: 20}
	a, b := Point{X: 0, Y: 0}, Point{X: 29, Y: 0}
	assert.InDelta(t, 1.0, g.Metric(false)(a, b), 1e-9)
	assert.InDelta(t, 28.0, g.Metric(true)(a, b), 1e-9)
}

func TestGridValidate(t *testing.T) {
	assert.NoError(t, Grid{Width: 1, Height: 1}.Validate())
	assert.Error(t, Grid{Width: 0, Height: 5}.Validate())
	assert.Error(t, Grid{Width: 5, Height: -1}.Validate())
}
