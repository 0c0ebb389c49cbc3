package strategy

import "github.com/brensch/snekwrap/game"

// Angle goes Down when the head is in the food's column and Right otherwise.
// It never looks ahead and will happily run into itself.
type Angle struct{}

func (Angle) Name() string { return KindAngle.String() }

func (Angle) Decide(state *game.State, _ game.Rand) (game.Direction, error) {
	if state.Snake.Head().X == state.Food.Pos.X {
		return game.Down, nil
	}
	return game.Right, nil
}
