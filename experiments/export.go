package experiments

import (
	"fmt"
	"time"

	"hanabi/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Export stores a finished run under the writer's directory: the setup,
// one CSV row per round, the summary and, when traces were kept, one JSON
// trace per round.
func Export(writer *metrics.Writer, config Config, workers int, startedAt time.Time, report Report) error {
	err := writer.WriteSetup(metrics.Setup{
		StartedAt: startedAt,
		Players:   config.Players,
		Variant:   string(config.Rules.Variant),
		Loss:      string(config.Rules.Loss),
		Police:    config.Rules.Strict,
		Rounds:    config.Rounds,
		Seed:      config.Seed,
		Workers:   workers,
	})
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}

	err = writer.WriteRoundRecords(report.Records)
	if err != nil {
		return fmt.Errorf("failed to write round records: %w", err)
	}
	log.Info().Msg("stored round records")

	err = writer.WriteSummary(report.Summary)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	traces := 0
	for _, record := range report.Records {
		if record.Trace == nil {
			continue
		}
		err = writer.WriteTrace(metrics.TraceRecord{
			Round:     record.Index,
			Seed:      record.Seed,
			Players:   config.Players,
			Variant:   string(config.Rules.Variant),
			Turns:     record.Trace,
			Score:     record.Score,
			EndReason: record.Reason,
		})
		if err != nil {
			return fmt.Errorf("failed to write trace of round %d: %w", record.Index, err)
		}
		traces++
	}
	if traces > 0 {
		log.Info().Msgf("stored %d trace(s)", traces)
	}
	return nil
}
