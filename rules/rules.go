// Package rules implements the movement and collision rules for a single
// snake on a toroidal grid.
package rules

import (
	"github.com/brensch/snekwrap/game"
)

// Step advances the snake one cell in d, mutating state in place.
// Eating keeps the tail (net growth of one) and respawns the food; otherwise
// the tail is dropped. Returns whether food was eaten.
func Step(state *game.State, d game.Direction, rng game.Rand, settings game.FoodSettings) bool {
	state.Turn++

	newHead := state.Grid.Move(state.Snake.Head(), d)

	newBody := make([]game.Point, 0, len(state.Snake.Body)+1)
	newBody = append(newBody, newHead)
	newBody = append(newBody, state.Snake.Body...)

	ate := newHead == state.Food.Pos
	if !ate {
		newBody = newBody[:len(newBody)-1]
	}
	state.Snake.Body = newBody

	if ate {
		state.Food.Respawn(state.Grid, rng, settings, state.Snake.Body)
	}
	return ate
}

// CanEat reports whether the head is on the food.
func CanEat(snake game.Snake, food game.Food) bool {
	return len(snake.Body) > 0 && snake.Head() == food.Pos
}

// IsDead reports whether any two segments share a cell.
// Order of the body does not matter.
func IsDead(body []game.Point) bool {
	seen := make(map[game.Point]struct{}, len(body))
	for _, p := range body {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

// NextState returns the state after moving in d. The input is not modified.
func NextState(state *game.State, d game.Direction, rng game.Rand, settings game.FoodSettings) (*game.State, bool) {
	next := state.Clone()
	ate := Step(next, d, rng, settings)
	return next, ate
}

// Survivors returns, in canonical order, the moves that do not end in a
// self-collision one step ahead. Hypothetical food respawns draw from a
// throwaway source so the caller's generator is left untouched.
func Survivors(state *game.State) []game.Direction {
	return survivors(state, nil)
}

// SurvivorStates is like Survivors but also hands back each hypothetical state.
func SurvivorStates(state *game.State) ([]game.Direction, []*game.State) {
	states := make([]*game.State, 0, len(game.Directions))
	dirs := survivors(state, &states)
	return dirs, states
}

func survivors(state *game.State, keep *[]*game.State) []game.Direction {
	rng := game.LookaheadRand(state)
	moves := make([]game.Direction, 0, len(game.Directions))
	for _, d := range game.Directions {
		next, _ := NextState(state, d, rng, game.DefaultFoodSettings)
		if IsDead(next.Snake.Body) {
			continue
		}
		moves = append(moves, d)
		if keep != nil {
			*keep = append(*keep, next)
		}
	}
	return moves
}
