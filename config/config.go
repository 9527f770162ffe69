package config

import (
	"fmt"
	"os"

	"hanabi/game"
	"hanabi/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Verbosity controls how much of a run is printed.
type Verbosity string

const (
	Silent  Verbosity = "silent"  // the final statistics only
	Scores  Verbosity = "scores"  // one line per round
	Verbose Verbosity = "verbose" // play by play
	Log     Verbosity = "log"     // play by play, appended to the log file
)

func ParseVerbosity(s string) (Verbosity, error) {
	switch v := Verbosity(s); v {
	case Silent, Scores, Verbose, Log:
		return v, nil
	}
	return "", &game.ConfigurationError{Field: "verbosity", Reason: fmt.Sprintf("unknown verbosity %q (want silent, scores, verbose or log)", s)}
}

// Level is the lowest log level shown at this verbosity.
func (v Verbosity) Level() zerolog.Level {
	switch v {
	case Silent:
		return zerolog.WarnLevel
	case Scores:
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

// Traces reports whether rounds are printed turn by turn.
func (v Verbosity) Traces() bool {
	return v == Verbose || v == Log
}

type Config struct {
	Players   []string  `yaml:"players"`
	GameType  string    `yaml:"game_type"`
	Rounds    int       `yaml:"rounds"`
	Verbosity Verbosity `yaml:"verbosity"`
	Loss      string    `yaml:"loss"`
	Seed      uint64    `yaml:"seed"`
	Police    bool      `yaml:"police"`
	Output    string    `yaml:"output"`
	Workers   int       `yaml:"workers"`
}

func Default() Config {
	return Config{
		GameType:  meta.GAME_TYPE,
		Rounds:    meta.ROUNDS,
		Verbosity: meta.VERBOSITY,
		Loss:      meta.LOSS_POLICY,
		Seed:      meta.SEED,
		Workers:   meta.WORKERS,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &game.ConfigurationError{Field: "config file", Reason: err.Error()}
	}
	return cfg, nil
}

// Validate checks every field that does not depend on the agents. Agent
// names are checked by the simulator.
func (c Config) Validate() error {
	if n := len(c.Players); n < game.MinPlayers || n > game.MaxPlayers {
		return &game.ConfigurationError{Field: "players", Reason: fmt.Sprintf("need %d to %d players, got %d", game.MinPlayers, game.MaxPlayers, n)}
	}
	if _, err := game.ParseVariant(c.GameType); err != nil {
		return err
	}
	if _, err := game.ParseLossPolicy(c.Loss); err != nil {
		return err
	}
	if _, err := ParseVerbosity(string(c.Verbosity)); err != nil {
		return err
	}
	if c.Rounds < 1 {
		return &game.ConfigurationError{Field: "rounds", Reason: fmt.Sprintf("need at least one round, got %d", c.Rounds)}
	}
	if c.Workers < 0 {
		return &game.ConfigurationError{Field: "workers", Reason: fmt.Sprintf("cannot be negative, got %d", c.Workers)}
	}
	return nil
}

// Rules builds the game rules; the police flag makes them strict.
func (c Config) Rules() game.Rules {
	return game.Rules{
		Variant: game.Variant(c.GameType),
		Loss:    game.LossPolicy(c.Loss),
		Strict:  c.Police,
	}
}
