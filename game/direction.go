package game

import (
	"fmt"
	"strings"
)

// Direction is one of the four moves. The numeric order is the canonical
// tie-breaking order used by the strategies.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every move in canonical order.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionDeltas = [4][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

var directionNames = [4]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Delta returns the axis offsets for one step in d.
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	delta := directionDeltas[d]
	return delta[0], delta[1]
}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the names produced by String, in any case.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if directionNames[d] == name {
			return d, nil
		}
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}
