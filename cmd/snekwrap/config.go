package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/brensch/snekwrap/game"
	"github.com/brensch/snekwrap/logging"
	"github.com/brensch/snekwrap/sim"
	"github.com/brensch/snekwrap/strategy"
)

type config struct {
	Width    int
	Height   int
	FoodX    int
	FoodY    int
	StartRow int
	Seed     int64
	MaxTicks int

	Random         bool
	Greedy         bool
	Angle          bool
	LegacyDistance bool
	ExcludeBody    bool

	Delay    time.Duration
	Headless bool
	Boards   bool
	TraceDir string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// parseConfig reads flags, falling back to SNEKWRAP_* environment variables
// for the defaults.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	defaults := sim.DefaultConfig()

	fs := flag.NewFlagSet("snekwrap", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c config
	fs.IntVar(&c.Width, "width", getEnvIntOrDefault("SNEKWRAP_WIDTH", defaults.Grid.Width), "Grid width")
	fs.IntVar(&c.Height, "height", getEnvIntOrDefault("SNEKWRAP_HEIGHT", defaults.Grid.Height), "Grid height")
	fs.IntVar(&c.FoodX, "food-x", getEnvIntOrDefault("SNEKWRAP_FOOD_X", defaults.InitialFood.X), "Initial food x")
	fs.IntVar(&c.FoodY, "food-y", getEnvIntOrDefault("SNEKWRAP_FOOD_Y", defaults.InitialFood.Y), "Initial food y")
	fs.IntVar(&c.StartRow, "start-row", getEnvIntOrDefault("SNEKWRAP_START_ROW", defaults.StartRow), "Row the snake starts on")
	fs.Int64Var(&c.Seed, "seed", getEnvInt64OrDefault("SNEKWRAP_SEED", 0), "Random seed (0 picks one from the clock)")
	fs.IntVar(&c.MaxTicks, "max-ticks", getEnvIntOrDefault("SNEKWRAP_MAX_TICKS", 0), "Stop after this many ticks (0 = until death)")

	fs.BoolVar(&c.Random, "random", false, "Random survivable walk (default)")
	fs.BoolVar(&c.Greedy, "greedy", false, "Greedy walk towards the food")
	fs.BoolVar(&c.Angle, "angle", false, "Fixed angle heuristic (down in the food's column, else right)")
	fs.BoolVar(&c.LegacyDistance, "legacy-distance", getEnvBoolOrDefault("SNEKWRAP_LEGACY_DISTANCE", false), "Greedy uses the unnormalised toroidal distance")
	fs.BoolVar(&c.ExcludeBody, "exclude-body", getEnvBoolOrDefault("SNEKWRAP_EXCLUDE_BODY", false), "Never respawn food on the snake")

	fs.DurationVar(&c.Delay, "delay", getEnvDurationOrDefault("SNEKWRAP_DELAY", 100*time.Millisecond), "Delay between ticks")
	fs.BoolVar(&c.Headless, "headless", getEnvBoolOrDefault("SNEKWRAP_HEADLESS", false), "Run without the TUI")
	fs.BoolVar(&c.Boards, "boards", false, "Headless: print the board after every tick")
	fs.StringVar(&c.TraceDir, "trace-dir", getEnvOrDefault("SNEKWRAP_TRACE_DIR", ""), "Write a parquet tick trace into this directory")

	fs.StringVar(&c.LogLevel, "log-level", getEnvOrDefault("SNEKWRAP_LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", getEnvOrDefault("SNEKWRAP_LOG_FORMAT", logging.FormatText), "text, json or pretty")
	fs.StringVar(&c.LogFile, "log-file", getEnvOrDefault("SNEKWRAP_LOG_FILE", "snekwrap.log"), "Log file used while the TUI owns the terminal")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := c.validate(); err != nil {
		return config{}, err
	}
	return c, nil
}

func (c config) validate() error {
	if err := c.simConfig().Validate(); err != nil {
		return err
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.New(io.Discard, c.LogFormat, slog.LevelInfo); err != nil {
		return err
	}
	return nil
}

func (c config) simConfig() sim.Config {
	return sim.Config{
		Grid:        game.Grid{Width: c.Width, Height: c.Height},
		InitialFood: game.Point{X: c.FoodX, Y: c.FoodY},
		StartRow:    c.StartRow,
		Seed:        c.Seed,
		Food:        game.FoodSettings{ExcludeBody: c.ExcludeBody},
		MaxTicks:    c.MaxTicks,
	}
}

func (c config) strategyKind() strategy.Kind {
	return strategy.Select(c.Random, c.Greedy, c.Angle)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64OrDefault(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
