// Package strategy holds the move-selection policies.
//
// RandomWalk and Greedy look one step ahead and only consider moves that do
// not end in a self-collision. Angle is a fixed rule with no look-ahead.
package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brensch/snekwrap/game"
)

// ErrNoSafeMove is returned when every move ends in a self-collision. The
// accompanying direction is still a valid move; stepping with it kills the snake.
var ErrNoSafeMove = errors.New("no safe move")

// Strategy picks the next direction. Implementations only read state.
type Strategy interface {
	Name() string
	Decide(state *game.State, rng game.Rand) (game.Direction, error)
}

// Kind identifies a built-in strategy.
type Kind int

const (
	KindRandom Kind = iota
	KindGreedy
	KindAngle
)

var kindNames = map[Kind]string{
	KindRandom: "random",
	KindGreedy: "greedy",
	KindAngle:  "angle",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindRandom, fmt.Errorf("unknown strategy %q", s)
}

// Select maps the command-line switches to a strategy. Exactly one of greedy
// or angle picks that strategy; no switch, random, or any conflicting
// combination falls back to random.
func Select(random, greedy, angle bool) Kind {
	switch {
	case random:
		return KindRandom
	case greedy && !angle:
		return KindGreedy
	case angle && !greedy:
		return KindAngle
	default:
		return KindRandom
	}
}

// New builds the strategy for kind. legacyDistance only affects Greedy.
func New(kind Kind, legacyDistance bool) Strategy {
	switch kind {
	case KindGreedy:
		return Greedy{Legacy: legacyDistance}
	case KindAngle:
		return Angle{}
	default:
		return RandomWalk{}
	}
}
