package main

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/snekwrap/game"
	"github.com/brensch/snekwrap/strategy"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, game.Point{X: 10, Y: 15}, cfg.simConfig().InitialFood)
	assert.Equal(t, 100*time.Millisecond, cfg.Delay)
	assert.Equal(t, strategy.KindRandom, cfg.strategyKind())
	assert.False(t, cfg.simConfig().Food.ExcludeBody)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-width", "12", "-height", "9", "-food-x", "3", "-food-y", "8",
		"-greedy", "-legacy-distance", "-exclude-body", "-seed", "42",
		"-max-ticks", "50", "-headless", "-delay", "0s", "-log-format", "pretty",
	}, io.Discard)
	require.NoError(t, err)

	sc := cfg.simConfig()
	assert.Equal(t, game.Grid{Width: 12, Height: 9}, sc.Grid)
	assert.Equal(t, game.Point{X: 3, Y: 8}, sc.InitialFood)
	assert.Equal(t, int64(42), sc.Seed)
	assert.Equal(t, 50, sc.MaxTicks)
	assert.True(t, sc.Food.ExcludeBody)
	assert.True(t, cfg.LegacyDistance)
	assert.True(t, cfg.Headless)
	assert.Equal(t, strategy.KindGreedy, cfg.strategyKind())
}

func TestParseConfig_ConflictingStrategiesFallBackToRandom(t *testing.T) {
	cfg, err := parseConfig([]string{"-greedy", "-angle"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, strategy.KindRandom, cfg.strategyKind())

	cfg, err = parseConfig([]string{"-angle"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, strategy.KindAngle, cfg.strategyKind())
}

func TestParseConfig_Env(t *testing.T) {
	t.Setenv("SNEKWRAP_WIDTH", "40")
	t.Setenv("SNEKWRAP_DELAY", "25ms")
	t.Setenv("SNEKWRAP_HEADLESS", "1")
	t.Setenv("SNEKWRAP_SEED", "not-a-number")

	cfg, err := parseConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 25*time.Millisecond, cfg.Delay)
	assert.True(t, cfg.Headless)
	assert.Zero(t, cfg.Seed)

	// Flags win over the environment.
	cfg, err = parseConfig([]string{"-width", "31"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.Width)
}

func TestParseConfig_Invalid(t *testing.T) {
	cases := [][]string{
		{"-width", "0"},
		{"-width", "4"},
		{"-food-x", "30"},
		{"-food-y", "-1"},
		{"-delay", "-1s"},
		{"-log-level", "chatty"},
		{"-log-format", "xml"},
		{"-max-ticks", "-3"},
		{"stray"},
		{"-nope"},
	}
	for _, args := range cases {
		_, err := parseConfig(args, io.Discard)
		assert.Error(t, err, "%v", args)
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
