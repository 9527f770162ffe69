package config

import (
	"os"
	"path/filepath"
	"testing"

	"hanabi/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hanabi.yaml")
		data := "players: [hat, hat, hat, hat]\ngame_type: purple\nrounds: 500\npolice: true\nseed: 7\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, []string{"hat", "hat", "hat", "hat"}, cfg.Players)
		require.Equal(t, "purple", cfg.GameType)
		require.Equal(t, 500, cfg.Rounds)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, Scores, cfg.Verbosity, "Missing keys keep their default")
		require.Equal(t, "zero", cfg.Loss)
		require.NoError(t, cfg.Validate())

		rules := cfg.Rules()
		require.Equal(t, game.VariantPurple, rules.Variant)
		require.Equal(t, game.LossZero, rules.Loss)
		require.True(t, rules.Strict)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rounds: [1, 2"), 0644))
		_, err := Load(path)
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Default()
		cfg.Players = []string{"basic", "basic"}
		return cfg
	}
	require.NoError(t, valid().Validate())

	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "one player", mutate: func(c *Config) { c.Players = c.Players[:1] }},
		{name: "six players", mutate: func(c *Config) { c.Players = []string{"a", "b", "c", "d", "e", "f"} }},
		{name: "unknown game type", mutate: func(c *Config) { c.GameType = "mauve" }},
		{name: "unknown loss policy", mutate: func(c *Config) { c.Loss = "half" }},
		{name: "unknown verbosity", mutate: func(c *Config) { c.Verbosity = "loud" }},
		{name: "no rounds", mutate: func(c *Config) { c.Rounds = 0 }},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), game.ErrConfiguration)
		})
	}
}

func TestVerbosity(t *testing.T) {
	cases := []struct {
		in     string
		level  zerolog.Level
		traces bool
	}{
		{in: "silent", level: zerolog.WarnLevel},
		{in: "scores", level: zerolog.InfoLevel},
		{in: "verbose", level: zerolog.DebugLevel, traces: true},
		{in: "log", level: zerolog.DebugLevel, traces: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseVerbosity(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.level, v.Level())
			require.Equal(t, tc.traces, v.Traces())
		})
	}
	_, err := ParseVerbosity("debug")
	require.ErrorIs(t, err, game.ErrConfiguration)
}
