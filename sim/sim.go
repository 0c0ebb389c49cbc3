// Package sim drives a single snake one tick at a time.
//
// A tick asks the strategy for a direction, applies it, then checks for
// death. Pacing, rendering and cancellation belong to the caller.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brensch/snekwrap/game"
	"github.com/brensch/snekwrap/rules"
	"github.com/brensch/snekwrap/strategy"
)

// TickResult reports what happened on one tick.
type TickResult struct {
	Turn      int
	Direction game.Direction
	Alive     bool
	AteFood   bool
	// NoSafeMove is set when the strategy had no surviving move; the snake
	// died on this tick.
	NoSafeMove bool
	// FinalLength is the body length at death. Zero while alive.
	FinalLength int
}

// Age is how much the snake grew before dying.
func (r TickResult) Age() int {
	if r.Alive {
		return 0
	}
	return r.FinalLength - game.InitialLength
}

type Simulation struct {
	cfg      Config
	state    *game.State
	strategy strategy.Strategy
	rng      game.Rand
	logger   *slog.Logger

	alive bool
	last  TickResult
}

func New(cfg Config, strat strategy.Strategy, rng game.Rand, logger *slog.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if strat == nil {
		return nil, errors.New("strategy is required")
	}
	if rng == nil {
		rng, _ = game.NewRand(cfg.Seed)
	}
	if logger == nil {
		logger = slog.Default()
	}

	state := game.NewState(cfg.Grid, cfg.InitialFood, cfg.StartRow)
	return &Simulation{
		cfg:      cfg,
		state:    state,
		strategy: strat,
		rng:      rng,
		logger:   logger.With("strategy", strat.Name()),
		alive:    true,
		last:     TickResult{Alive: true},
	}, nil
}

// Tick advances one step. Once the snake is dead it keeps returning the
// final result without touching the state.
func (s *Simulation) Tick() TickResult {
	if !s.alive {
		return s.last
	}

	d, err := s.strategy.Decide(s.state, s.rng)
	noSafeMove := errors.Is(err, strategy.ErrNoSafeMove)
	if err != nil && !noSafeMove {
		// Unknown strategy failure: treat like a boxed-in snake.
		s.logger.Error("strategy failed", "turn", s.state.Turn, "err", err)
		noSafeMove = true
	}
	if noSafeMove {
		s.logger.Warn("no safe move", "turn", s.state.Turn, "length", s.state.Snake.Len(), "forced", d.String())
	}

	ate := rules.Step(s.state, d, s.rng, s.cfg.Food)
	dead := rules.IsDead(s.state.Snake.Body)

	res := TickResult{
		Turn:       s.state.Turn,
		Direction:  d,
		Alive:      !dead,
		AteFood:    ate,
		NoSafeMove: noSafeMove,
	}
	if dead {
		s.alive = false
		res.FinalLength = s.state.Snake.Len()
		s.logger.Info("snake died",
			"turn", res.Turn,
			"length", res.FinalLength,
			"age", res.Age(),
			"no_safe_move", noSafeMove,
		)
	} else {
		s.logger.Debug("tick",
			"turn", res.Turn,
			"move", d.String(),
			"length", s.state.Snake.Len(),
			"ate", ate,
		)
	}

	s.last = res
	return res
}

// Run ticks until the snake dies, MaxTicks is reached, observe returns an
// error or ctx is done. The last result is always returned.
func (s *Simulation) Run(ctx context.Context, observe func(TickResult) error) (TickResult, error) {
	for ticks := 0; s.cfg.MaxTicks == 0 || ticks < s.cfg.MaxTicks; ticks++ {
		select {
		case <-ctx.Done():
			return s.last, ctx.Err()
		default:
		}

		res := s.Tick()
		if observe != nil {
			if err := observe(res); err != nil {
				return res, err
			}
		}
		if !res.Alive {
			return res, nil
		}
	}
	return s.last, nil
}

func (s *Simulation) Alive() bool                 { return s.alive }
func (s *Simulation) Turn() int                   { return s.state.Turn }
func (s *Simulation) Grid() game.Grid             { return s.state.Grid }
func (s *Simulation) Food() game.Point            { return s.state.Food.Pos }
func (s *Simulation) Strategy() strategy.Strategy { return s.strategy }
func (s *Simulation) Config() Config              { return s.cfg }
func (s *Simulation) Last() TickResult            { return s.last }

// Body returns a copy of the body, head first.
func (s *Simulation) Body() []game.Point {
	return append([]game.Point(nil), s.state.Snake.Body...)
}

// State returns a deep copy of the current state.
func (s *Simulation) State() *game.State {
	return s.state.Clone()
}
