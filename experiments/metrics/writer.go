package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"hanabi/game"

	"github.com/google/uuid"
)

// Setup describes a run; it is stored next to the records.
type Setup struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Players   []string  `json:"players"`
	Variant   string    `json:"variant"`
	Loss      string    `json:"loss_policy"`
	Police    bool      `json:"police"`
	Rounds    int       `json:"rounds"`
	Seed      uint64    `json:"seed"`
	Workers   int       `json:"workers"`
}

// TraceRecord is the JSON export of one round.
type TraceRecord struct {
	Round     int            `json:"round"`
	Seed      uint64         `json:"seed"`
	Players   []string       `json:"players"`
	Variant   string         `json:"variant"`
	Turns     []game.Turn    `json:"turns"`
	Score     int            `json:"score"`
	EndReason game.EndReason `json:"end_reason"`
}

type Writer struct {
	runID   string
	baseDir string
}

// NewWriter creates a fresh directory for one run under root, named by the
// current time and a run id.
func NewWriter(root string) (*Writer, error) {
	runID := uuid.New().String()
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp+"_"+runID[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		runID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) RunID() string {
	return w.runID
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	setup.RunID = w.runID
	return w.writeJSON("setup.json", setup)
}

func (w *Writer) WriteSummary(summary any) error {
	return w.writeJSON("summary.json", summary)
}

func (w *Writer) WriteTrace(trace TraceRecord) error {
	return w.writeJSON(fmt.Sprintf("trace_%d.json", trace.Round), trace)
}

func (w *Writer) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, name), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "rounds.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create round records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"round", "seed", "score", "perfect", "end_reason", "turns", "strikes", "hints", "duration", "error"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write round records header: %w", err)
	}

	for _, record := range records {
		errText := ""
		if record.Err != nil {
			errText = record.Err.Error()
		}
		row := []string{
			strconv.Itoa(record.Index),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Score),
			strconv.FormatBool(record.Perfect),
			record.Reason.String(),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Strikes),
			strconv.Itoa(record.Hints),
			record.Duration.String(),
			errText,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write round record row: %w", err)
		}
	}

	return nil
}
