package sim

import (
	"fmt"

	"github.com/brensch/snekwrap/game"
)

// Config is the startup configuration for a run.
type Config struct {
	Grid        game.Grid
	InitialFood game.Point
	StartRow    int
	Seed        int64
	Food        game.FoodSettings
	// MaxTicks stops Run after this many ticks. Zero means no limit.
	MaxTicks int
}

// DefaultConfig is a 30x20 board with the food at (10,15).
func DefaultConfig() Config {
	return Config{
		Grid:        game.Grid{Width: 30, Height: 20},
		InitialFood: game.Point{X: 10, Y: 15},
		Food:        game.DefaultFoodSettings,
	}
}

func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.Grid.Width < game.InitialLength {
		return fmt.Errorf("grid width %d is narrower than the initial snake (%d)", c.Grid.Width, game.InitialLength)
	}
	if !c.Grid.Contains(c.InitialFood) {
		return fmt.Errorf("initial food %v is outside the %dx%d grid", c.InitialFood, c.Grid.Width, c.Grid.Height)
	}
	if c.StartRow < 0 || c.StartRow >= c.Grid.Height {
		return fmt.Errorf("start row %d is outside the grid", c.StartRow)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max ticks must not be negative, got %d", c.MaxTicks)
	}
	return nil
}
