package strategy

import (
	"github.com/brensch/snekwrap/game"
	"github.com/brensch/snekwrap/rules"
)

// RandomWalk picks uniformly among the moves that survive one step.
type RandomWalk struct{}

func (RandomWalk) Name() string { return KindRandom.String() }

func (RandomWalk) Decide(state *game.State, rng game.Rand) (game.Direction, error) {
	moves := rules.Survivors(state)
	if len(moves) == 0 {
		return game.Up, ErrNoSafeMove
	}
	return moves[rng.Intn(len(moves))], nil
}
