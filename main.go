package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"hanabi/agent"
	"hanabi/config"
	"hanabi/experiments"
	"hanabi/experiments/metrics"
	"hanabi/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errPoliceViolation = errors.New("police violation")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	out := stdout
	logOut := io.Writer(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly})
	if cfg.Verbosity == config.Log {
		f, err := os.OpenFile(meta.LOG_FILE, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
		logOut = f
		fmt.Fprintf(f, "%s NEW ROUNDSET %s\n", strings.Repeat("#", 22), strings.Repeat("#", 22))
		fmt.Fprintf(f, "%s ROUNDSET: %d round(s) of %s Hanabi\n", time.Now().UTC().Format(time.RFC1123Z), cfg.Rounds, cfg.GameType)
	}
	zerolog.SetGlobalLevel(cfg.Verbosity.Level())
	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()

	names := agent.DisplayNames(cfg.Players)
	simConfig := experiments.Config{
		Players: cfg.Players,
		Rules:   cfg.Rules(),
		Rounds:  cfg.Rounds,
		Seed:    cfg.Seed,
	}
	options := []experiments.Option{
		experiments.WithWorkers(cfg.Workers),
		experiments.WithMetrics(),
		experiments.WithObserver(func(record metrics.RoundRecord) {
			switch {
			case cfg.Verbosity.Traces():
				experiments.PrintTrace(out, names, record)
			case cfg.Verbosity == config.Scores:
				experiments.PrintScore(out, record)
			}
		}),
	}
	if cfg.Verbosity.Traces() || cfg.Output != "" {
		options = append(options, experiments.WithTraces())
	}

	simulator, err := experiments.NewSimulator(simConfig, options...)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	report, err := simulator.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	experiments.PrintSummary(out, names, simConfig.Rules, report.Summary)
	log.Info().Msgf("played %d round(s) in %s (%d turns)", report.Metric.Rounds, report.Metric.Duration, report.Metric.Turns)

	if cfg.Output != "" {
		writer, err := metrics.NewWriter(cfg.Output)
		if err != nil {
			return err
		}
		if err := experiments.Export(writer, simConfig, simulator.Workers(), startedAt, report); err != nil {
			return err
		}
		log.Info().Msgf("stored run %s in %s", writer.RunID(), writer.Dir())
	}

	if cfg.Police && report.Summary.Aborted > 0 {
		for _, record := range report.Records {
			if record.Err != nil {
				return fmt.Errorf("%w in round %d: %w", errPoliceViolation, record.Index, record.Err)
			}
		}
	}
	return nil
}

// parseConfig layers the config file, then explicit flags, then the
// positional player names over the defaults.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("hanabi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: hanabi [flags] player1 player2 [player3...]\nplayers: %s\n", strings.Join(agent.Names(), ", "))
		fs.PrintDefaults()
	}
	gameType := fs.String("t", meta.GAME_TYPE, "game type (vanilla, purple, black, rainbow)")
	rounds := fs.Int("n", meta.ROUNDS, "number of rounds")
	verbosity := fs.String("v", meta.VERBOSITY, "verbosity (silent, scores, verbose, log)")
	loss := fs.String("l", meta.LOSS_POLICY, "score of a round lost to strikes (zero, keep)")
	seed := fs.Uint64("s", meta.SEED, "seed of the first round")
	police := fs.Bool("p", false, "reject full-sight agents and illegal discards")
	output := fs.String("o", "", "directory for round records and traces")
	file := fs.String("c", "", "YAML config file; flags override it")
	workers := fs.Int("w", meta.WORKERS, "number of workers (0 uses one per CPU)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *file != "" {
		loaded, err := config.Load(*file)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	var verbosityErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.GameType = *gameType
		case "n":
			cfg.Rounds = *rounds
		case "v":
			cfg.Verbosity, verbosityErr = config.ParseVerbosity(*verbosity)
		case "l":
			cfg.Loss = *loss
		case "s":
			cfg.Seed = *seed
		case "p":
			cfg.Police = *police
		case "o":
			cfg.Output = *output
		case "w":
			cfg.Workers = *workers
		}
	})
	if verbosityErr != nil {
		return config.Config{}, verbosityErr
	}
	if fs.NArg() > 0 {
		cfg.Players = fs.Args()
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
