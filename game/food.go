// food.go implements food placement.

package game

// FoodSettings controls where respawned food may land.
type FoodSettings struct {
	// ExcludeBody restricts the draw to cells the snake does not occupy.
	// Off by default: food is drawn uniformly over the whole board and may
	// land on the body.
	ExcludeBody bool
}

var DefaultFoodSettings = FoodSettings{}

// Food is the single piece of food on the board.
type Food struct {
	Pos Point
}

// Respawn moves the food to a random cell.
func (f *Food) Respawn(grid Grid, rng Rand, settings FoodSettings, body []Point) {
	if settings.ExcludeBody {
		if p, ok := freeCell(grid, rng, body); ok {
			f.Pos = p
			return
		}
		// Board is full; fall through to the unrestricted draw.
	}
	f.Pos = Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
}

func freeCell(grid Grid, rng Rand, body []Point) (Point, bool) {
	occupied := make(map[Point]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}

	available := make([]Point, 0, max(grid.Area()-len(occupied), 0))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := Point{X: x, Y: y}
			if _, ok := occupied[p]; ok {
				continue
			}
			available = append(available, p)
		}
	}
	if len(available) == 0 {
		return Point{}, false
	}
	return available[rng.Intn(len(available))], true
}
