package experiments

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hanabi/engine"
	"hanabi/experiments/metrics"
	"hanabi/game"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func standardConfig(rounds int, players ...string) Config {
	return Config{
		Players: players,
		Rules:   game.NewStandardRules(),
		Rounds:  rounds,
		Seed:    42,
	}
}

func TestNewSimulator(t *testing.T) {
	cases := []struct {
		name   string
		config Config
	}{
		{name: "no rounds", config: standardConfig(0, "basic", "basic")},
		{name: "one player", config: standardConfig(10, "basic")},
		{name: "unknown strategy", config: standardConfig(10, "basic", "oracle")},
		{name: "hat with three players", config: standardConfig(10, "hat", "hat", "hat")},
		{name: "unknown variant", config: Config{Players: []string{"basic", "basic"}, Rules: game.Rules{Variant: "mauve", Loss: game.LossZero}, Rounds: 1}},
		{name: "unknown loss policy", config: Config{Players: []string{"basic", "basic"}, Rules: game.Rules{Variant: game.VariantVanilla, Loss: "half"}, Rounds: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSimulator(tc.config)
			require.ErrorIs(t, err, game.ErrConfiguration)
		})
	}

	t.Run("police rejects cheaters", func(t *testing.T) {
		config := standardConfig(10, "cheater", "cheater")
		config.Rules.Strict = true
		_, err := NewSimulator(config)
		require.ErrorIs(t, err, game.ErrConfiguration)
	})
}

func TestRunIsReproducible(t *testing.T) {
	lineups := map[string][]string{
		"basic and cheater": {"basic", "cheater", "basic"},
		"hat":               {"hat", "hat", "hat", "hat", "hat"},
	}
	for name, players := range lineups {
		t.Run(name, func(t *testing.T) {
			config := standardConfig(1000, players...)

			run := func(workers int) Report {
				s, err := NewSimulator(config, WithWorkers(workers))
				require.NoError(t, err)
				report, err := s.Run(context.Background())
				require.NoError(t, err)
				return report
			}

			sequential := run(1)
			parallel := run(8)
			require.Equal(t, sequential.Summary, parallel.Summary)
			require.Len(t, parallel.Records, 1000)
			for i := range sequential.Records {
				require.Equal(t, i, parallel.Records[i].Index)
				require.Equal(t, config.Seed+uint64(i), parallel.Records[i].Seed)
				require.Equal(t, sequential.Records[i].Result, parallel.Records[i].Result)
			}
		})
	}
}

func TestRunObserverAndMetrics(t *testing.T) {
	var seen []int
	s, err := NewSimulator(standardConfig(25, "hat", "hat", "hat", "hat"),
		WithWorkers(4),
		WithTraces(),
		WithMetrics(),
		WithObserver(func(r metrics.RoundRecord) { seen = append(seen, r.Index) }),
	)
	require.NoError(t, err)

	report, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, seen, 25)
	for i, index := range seen {
		require.Equal(t, i, index, "Rounds are observed in order")
	}
	for _, r := range report.Records {
		require.NotEmpty(t, r.Trace)
		require.Len(t, r.Trace, r.Turns)
		require.NoError(t, r.Err)
	}
	require.Equal(t, 25, report.Metric.Rounds)
	require.Equal(t, 4, report.Metric.Workers)
	require.Equal(t, report.Summary.Perfect, report.Metric.Perfect)
}

func TestRunCancelled(t *testing.T) {
	s, err := NewSimulator(standardConfig(50, "basic", "basic"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	record := func(score int, reason game.EndReason) metrics.RoundRecord {
		return metrics.RoundRecord{Result: engine.Result{Score: score, Reason: reason, Perfect: score == 25}}
	}
	records := []metrics.RoundRecord{
		record(20, game.Countdown),
		record(25, game.PerfectScore),
		record(0, game.Strikes),
		record(0, game.Aborted),
		record(15, game.Countdown),
	}

	t.Run("aborted rounds count as zero", func(t *testing.T) {
		s := Summarize(records, 25, false)
		require.Equal(t, 5, s.Rounds)
		require.Equal(t, 5, s.Counted)
		require.InDelta(t, 12.0, s.Mean, 1e-9)
		require.InDelta(t, 132.5, s.Variance, 1e-9)
		require.InDelta(t, 5.1478151, s.StdErr, 1e-6)
		require.Equal(t, 0, s.Min)
		require.Equal(t, 25, s.Max)
		require.Equal(t, 1, s.Perfect)
		require.InDelta(t, 0.2, s.PerfectRate, 1e-9)
		require.Equal(t, 1, s.Aborted)
		require.Equal(t, 2, s.Histogram[0])
		require.Equal(t, 1, s.Histogram[25])
	})

	t.Run("aborted rounds can be excluded", func(t *testing.T) {
		s := Summarize(records, 25, true)
		require.Equal(t, 5, s.Rounds)
		require.Equal(t, 4, s.Counted)
		require.InDelta(t, 15.0, s.Mean, 1e-9)
		require.Equal(t, 1, s.Aborted)
		require.Equal(t, 1, s.Histogram[0])
	})

	t.Run("single round has no spread", func(t *testing.T) {
		s := Summarize(records[:1], 25, false)
		require.InDelta(t, 20.0, s.Mean, 1e-9)
		require.Zero(t, s.Variance)
		require.Zero(t, s.StdErr)
	})

	t.Run("no rounds", func(t *testing.T) {
		s := Summarize(nil, 30, false)
		require.Zero(t, s.Counted)
		require.Len(t, s.Histogram, 31)
	})
}

func TestExport(t *testing.T) {
	config := standardConfig(3, "basic", "basic", "basic")
	s, err := NewSimulator(config, WithWorkers(2), WithTraces())
	require.NoError(t, err)
	report, err := s.Run(context.Background())
	require.NoError(t, err)

	writer, err := metrics.NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, Export(writer, config, 2, time.Now(), report))

	data, err := os.ReadFile(filepath.Join(writer.Dir(), "setup.json"))
	require.NoError(t, err)
	var setup metrics.Setup
	require.NoError(t, json.Unmarshal(data, &setup))
	require.Equal(t, writer.RunID(), setup.RunID)
	require.Equal(t, config.Players, setup.Players)
	require.Equal(t, "vanilla", setup.Variant)
	require.Equal(t, 2, setup.Workers)

	f, err := os.Open(filepath.Join(writer.Dir(), "rounds.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "A header and one row per round")
	require.Equal(t, "round", rows[0][0])

	for i := 0; i < 3; i++ {
		data, err := os.ReadFile(filepath.Join(writer.Dir(), fmt.Sprintf("trace_%d.json", i)))
		require.NoError(t, err)
		var trace struct {
			Round int               `json:"round"`
			Score int               `json:"score"`
			Turns []json.RawMessage `json:"turns"`
		}
		require.NoError(t, json.Unmarshal(data, &trace))
		require.Equal(t, i, trace.Round)
		require.Equal(t, report.Records[i].Score, trace.Score)
		require.Len(t, trace.Turns, report.Records[i].Turns)
	}

	_, err = os.Stat(filepath.Join(writer.Dir(), "summary.json"))
	require.NoError(t, err)
}

func TestPrint(t *testing.T) {
	color.NoColor = true
	config := standardConfig(2, "basic", "basic")
	s, err := NewSimulator(config, WithTraces())
	require.NoError(t, err)
	report, err := s.Run(context.Background())
	require.NoError(t, err)

	t.Run("summary table", func(t *testing.T) {
		var b strings.Builder
		PrintSummary(&b, config.Players, config.Rules, report.Summary)
		out := b.String()
		require.Contains(t, out, "Average score")
		require.Contains(t, out, "Perfect games")
		require.Contains(t, out, "vanilla Hanabi")
	})

	t.Run("trace", func(t *testing.T) {
		var b strings.Builder
		names := []string{"basic 1", "basic 2"}
		PrintTrace(&b, names, report.Records[0])
		out := b.String()
		require.Contains(t, out, "ROUND 0")
		require.Contains(t, out, "Round 0 score:")
		require.Equal(t, report.Records[0].Turns+3, strings.Count(out, "\n"))
	})
}
