// Command snekwrap runs one snake on a wrap-around grid, either in a terminal
// UI or headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/brensch/snekwrap/game"
	"github.com/brensch/snekwrap/logging"
	"github.com/brensch/snekwrap/render"
	"github.com/brensch/snekwrap/sim"
	"github.com/brensch/snekwrap/store"
	"github.com/brensch/snekwrap/strategy"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snekwrap: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "snekwrap: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, stdout io.Writer) error {
	logOut := io.Writer(os.Stderr)
	if !cfg.Headless {
		// The TUI owns the terminal, so logs go to a file.
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(logOut, cfg.LogFormat, level)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	rng, seed := game.NewRand(cfg.Seed)
	strat := strategy.New(cfg.strategyKind(), cfg.LegacyDistance)
	logger = logger.With("run_id", runID)

	s, err := sim.New(cfg.simConfig(), strat, rng, logger)
	if err != nil {
		return err
	}

	logger.Info("starting run",
		"strategy", strat.Name(),
		"seed", seed,
		"width", cfg.Width,
		"height", cfg.Height,
		"food", game.Point{X: cfg.FoodX, Y: cfg.FoodY}.String(),
		"headless", cfg.Headless,
	)

	rec, err := newRecorder(cfg.TraceDir, runID, strat.Name(), seed)
	if err != nil {
		return err
	}
	defer func() {
		path, rows, err := rec.finalize()
		switch {
		case err != nil:
			logger.Error("trace finalize failed", "err", err)
		case path != "":
			logger.Info("trace written", "path", path, "rows", rows)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var final sim.TickResult
	if cfg.Headless {
		final, err = runHeadless(ctx, s, cfg.Delay, cfg.Boards, rec, stdout)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		p := tea.NewProgram(newModel(s, cfg.Delay, rec.record), tea.WithAltScreen(), tea.WithContext(ctx))
		m, err := p.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run tui: %w", err)
		}
		if fm, ok := m.(model); ok && fm.err != nil {
			return fm.err
		}
		final = s.Last()
	}

	fmt.Fprintln(stdout, summary(s, final))
	logger.Info("run finished", "turn", s.Turn(), "alive", s.Alive(), "length", len(s.Body()))
	return nil
}

func runHeadless(ctx context.Context, s *sim.Simulation, delay time.Duration, boards bool, rec *recorder, out io.Writer) (sim.TickResult, error) {
	var timer *time.Timer
	if delay > 0 {
		timer = time.NewTimer(delay)
		defer timer.Stop()
	}

	return s.Run(ctx, func(res sim.TickResult) error {
		if err := rec.record(s, res); err != nil {
			return err
		}
		if boards {
			fmt.Fprintf(out, "turn %d move=%s len=%d\n%s\n", res.Turn, res.Direction, len(s.Body()), render.Board(s.State()))
		}
		if timer == nil || !res.Alive {
			return nil
		}
		timer.Reset(delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	})
}

func summary(s *sim.Simulation, res sim.TickResult) string {
	if !res.Alive {
		msg := fmt.Sprintf("snake died on turn %d: length %d, age %d", res.Turn, res.FinalLength, res.Age())
		if res.NoSafeMove {
			msg += " (boxed in)"
		}
		return msg
	}
	return fmt.Sprintf("stopped on turn %d: length %d, still alive", s.Turn(), len(s.Body()))
}

// recorder writes ticks to the optional parquet trace.
type recorder struct {
	w        *store.TraceWriter
	runID    string
	strategy string
	seed     int64
}

func newRecorder(dir, runID, stratName string, seed int64) (*recorder, error) {
	rec := &recorder{runID: runID, strategy: stratName, seed: seed}
	if dir == "" {
		return rec, nil
	}
	w, err := store.NewTraceWriter(dir, runID)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	rec.w = w
	return rec, nil
}

func (r *recorder) record(s *sim.Simulation, res sim.TickResult) error {
	if r == nil || r.w == nil {
		return nil
	}
	return r.w.Write(store.RowFromTick(r.runID, r.strategy, r.seed, s.State(), res))
}

func (r *recorder) finalize() (string, int, error) {
	if r == nil || r.w == nil {
		return "", 0, nil
	}
	return r.w.Finalize()
}
