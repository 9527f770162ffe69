package experiments

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"hanabi/agent"
	"hanabi/engine"
	"hanabi/experiments/metrics"
	"hanabi/game"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Players []string
	Rules   game.Rules
	Rounds  int
	Seed    uint64
	// ExcludeAborted leaves aborted rounds out of the score statistics
	// instead of counting them as zero.
	ExcludeAborted bool
}

type Option func(s *Simulator)

func WithWorkers(workers int) Option {
	return func(s *Simulator) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithTraces keeps the full turn trace of every round.
func WithTraces() Option {
	return func(s *Simulator) {
		s.traces = true
	}
}

// WithObserver is called once per round, in round order, after the run.
func WithObserver(observe func(metrics.RoundRecord)) Option {
	return func(s *Simulator) {
		if observe != nil {
			s.observe = observe
		}
	}
}

func WithMetrics() Option {
	return func(s *Simulator) {
		s.metrics = metrics.NewCollector()
	}
}

// Simulator plays many independent rounds of one line-up.
type Simulator struct {
	config  Config
	workers int
	traces  bool
	observe func(metrics.RoundRecord)
	metrics metrics.Collector
}

// Report is the outcome of a run.
type Report struct {
	Records []metrics.RoundRecord
	Summary Summary
	Metric  metrics.RunMetric
}

// NewSimulator checks the configuration before any round is played.
func NewSimulator(config Config, options ...Option) (*Simulator, error) {
	if config.Rounds < 1 {
		return nil, &game.ConfigurationError{Field: "rounds", Reason: fmt.Sprintf("need at least one round, got %d", config.Rounds)}
	}
	if _, err := game.ParseVariant(string(config.Rules.Variant)); err != nil {
		return nil, err
	}
	if _, err := game.ParseLossPolicy(string(config.Rules.Loss)); err != nil {
		return nil, err
	}
	if err := agent.Validate(config.Players, config.Rules.Strict); err != nil {
		return nil, err
	}

	s := &Simulator{ // Default values
		config:  config,
		workers: runtime.NumCPU(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

func (s *Simulator) Workers() int {
	return s.workers
}

// Run plays every round on a pool of workers. Round i is dealt from seed
// Seed+i and its record stored at index i, so the report does not depend
// on scheduling. A cancelled context stops the run between rounds.
func (s *Simulator) Run(ctx context.Context) (Report, error) {
	records := make([]metrics.RoundRecord, s.config.Rounds)
	task := make(chan int, s.config.Rounds)
	for i := 0; i < s.config.Rounds; i++ {
		task <- i
	}
	close(task)

	log.Info().Msgf("starting %d round(s) of %s with %v on %d worker(s)...", s.config.Rounds, s.config.Rules.Variant, s.config.Players, s.workers)
	s.metrics.Start(s.workers)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				if ctx.Err() != nil {
					return
				}
				records[i] = s.runRound(i)
				s.metrics.AddRound(records[i].Result)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("simulation interrupted: %w", err)
	}

	for _, record := range records {
		if s.observe != nil {
			s.observe(record)
		}
	}

	report := Report{
		Records: records,
		Summary: Summarize(records, s.config.Rules.Variant.MaxScore(), s.config.ExcludeAborted),
		Metric:  s.metrics.Complete(),
	}
	log.Info().Msgf("completed %d round(s): mean %.3f, %d perfect, %d aborted", report.Summary.Rounds, report.Summary.Mean, report.Summary.Perfect, report.Summary.Aborted)
	return report, nil
}

func (s *Simulator) runRound(i int) metrics.RoundRecord {
	seed := s.config.Seed + uint64(i)
	record := metrics.RoundRecord{Index: i, Seed: seed}
	start := time.Now()

	round, err := game.NewShuffledRound(s.config.Rules, len(s.config.Players), seed)
	if err != nil {
		// Configuration was validated up front.
		panic(fmt.Sprintf("failed to deal round %d: %v", i, err))
	}
	team, err := agent.NewTeam(s.config.Players, s.config.Rules)
	if err != nil {
		panic(fmt.Sprintf("failed to seat players for round %d: %v", i, err))
	}

	result, err := engine.NewLocalEngine(round, team).Run()
	if err != nil {
		log.Warn().Err(err).Msgf("round %d (seed %d) aborted", i, seed)
		record.Err = err
	}
	if !s.traces {
		result.Trace = nil
	}
	record.Result = result
	record.Duration = time.Since(start)
	return record
}
