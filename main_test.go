package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hanabi/config"
	"hanabi/game"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	var stderr strings.Builder

	t.Run("flags and players", func(t *testing.T) {
		cfg, err := parseConfig([]string{"-t", "black", "-n", "20", "-v", "silent", "-s", "9", "-p", "hat", "hat", "hat", "hat", "hat"}, &stderr)
		require.NoError(t, err)
		require.Equal(t, "black", cfg.GameType)
		require.Equal(t, 20, cfg.Rounds)
		require.Equal(t, config.Silent, cfg.Verbosity)
		require.Equal(t, uint64(9), cfg.Seed)
		require.True(t, cfg.Police)
		require.Len(t, cfg.Players, 5)
	})

	t.Run("flags override the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("players: [basic, basic, basic]\nrounds: 100\nloss: keep\n"), 0644))

		cfg, err := parseConfig([]string{"-c", path, "-n", "3"}, &stderr)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Rounds)
		require.Equal(t, "keep", cfg.Loss)
		require.Equal(t, []string{"basic", "basic", "basic"}, cfg.Players)
	})

	t.Run("bad values", func(t *testing.T) {
		for _, args := range [][]string{
			{"basic"},
			{"-t", "mauve", "basic", "basic"},
			{"-v", "loud", "basic", "basic"},
			{"-n", "0", "basic", "basic"},
		} {
			_, err := parseConfig(args, &stderr)
			require.ErrorIs(t, err, game.ErrConfiguration, "args %v", args)
		}
	})
}

func TestRun(t *testing.T) {
	color.NoColor = true

	t.Run("prints scores and summary", func(t *testing.T) {
		var stdout, stderr strings.Builder
		err := run(context.Background(), []string{"-n", "4", "-v", "scores", "basic", "basic", "basic"}, &stdout, &stderr)
		require.NoError(t, err)
		require.Equal(t, 4, strings.Count(stdout.String(), "score:"))
		require.Contains(t, stdout.String(), "Average score")
	})

	t.Run("writes outputs", func(t *testing.T) {
		var stdout, stderr strings.Builder
		dir := t.TempDir()
		err := run(context.Background(), []string{"-n", "2", "-v", "silent", "-o", dir, "hat", "hat", "hat", "hat"}, &stdout, &stderr)
		require.NoError(t, err)

		runs, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		for _, name := range []string{"setup.json", "rounds.csv", "summary.json", "trace_0.json", "trace_1.json"} {
			_, err := os.Stat(filepath.Join(dir, runs[0].Name(), name))
			require.NoError(t, err, name)
		}
	})

	t.Run("police rejects cheaters", func(t *testing.T) {
		var stdout, stderr strings.Builder
		err := run(context.Background(), []string{"-p", "cheater", "basic"}, &stdout, &stderr)
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}
