package strategy

import (
	"github.com/brensch/snekwrap/game"
	"github.com/brensch/snekwrap/rules"
)

// Greedy picks the surviving move whose new head is closest to the food.
// Ties go to the earliest move in canonical order.
type Greedy struct {
	// Legacy selects game.LegacyToroidalDistance instead of the board's
	// toroidal metric.
	Legacy bool
}

func (g Greedy) Name() string {
	if g.Legacy {
		return KindGreedy.String() + "-legacy"
	}
	return KindGreedy.String()
}

func (g Greedy) Decide(state *game.State, _ game.Rand) (game.Direction, error) {
	moves, next := rules.SurvivorStates(state)
	if len(moves) == 0 {
		return game.Up, ErrNoSafeMove
	}

	metric := state.Grid.Metric(g.Legacy)
	// Measure against the food we can see now, not a hypothetical respawn.
	food := state.Food.Pos

	best := moves[0]
	bestDist := metric(next[0].Snake.Head(), food)
	for i := 1; i < len(moves); i++ {
		d := metric(next[i].Snake.Head(), food)
		if d < bestDist {
			best = moves[i]
			bestDist = d
		}
	}
	return best, nil
}
