// Package game defines the core state types for a single snake on a toroidal grid.
//
// These types hold the minimal state needed for rules evaluation and for the
// decision strategies. The state is designed to be cheaply clonable so
// strategies can simulate moves without touching the real state.
package game

import "fmt"

// InitialLength is the body length of a freshly created snake.
const InitialLength = 5

// Point is a grid coordinate.
// Coordinates are screen-style: (0,0) is top-left and y grows downward.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Snake is an ordered body, head first.
type Snake struct {
	Body []Point
}

// NewSnake lays out the initial body along the given row, head at x=4 facing right.
func NewSnake(row int, grid Grid) Snake {
	body := make([]Point, InitialLength)
	for i := range body {
		body[i] = grid.Normalize(Point{X: InitialLength - 1 - i, Y: row})
	}
	return Snake{Body: body}
}

func (s Snake) Head() Point { return s.Body[0] }
func (s Snake) Tail() Point { return s.Body[len(s.Body)-1] }
func (s Snake) Len() int    { return len(s.Body) }

// State is everything a tick needs: the grid, the snake and the food.
type State struct {
	Grid  Grid
	Snake Snake
	Food  Food
	Turn  int
}

// NewState builds the starting state. The caller validates the inputs.
func NewState(grid Grid, food Point, startRow int) *State {
	return &State{
		Grid:  grid,
		Snake: NewSnake(startRow, grid),
		Food:  Food{Pos: food},
	}
}

// Clone performs a deep copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	out := &State{
		Grid: s.Grid,
		Food: s.Food,
		Turn: s.Turn,
	}

	if len(s.Snake.Body) > 0 {
		out.Snake.Body = make([]Point, len(s.Snake.Body))
		copy(out.Snake.Body, s.Snake.Body)
	}

	return out
}
