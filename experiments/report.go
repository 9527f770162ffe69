package experiments

import (
	"fmt"
	"io"
	"strings"

	"hanabi/experiments/metrics"
	"hanabi/game"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var suitColors = [game.NumSuits]*color.Color{
	game.Red:     color.New(color.FgRed),
	game.Yellow:  color.New(color.FgYellow),
	game.Green:   color.New(color.FgGreen),
	game.Blue:    color.New(color.FgBlue),
	game.White:   color.New(color.FgWhite, color.Bold),
	game.Purple:  color.New(color.FgMagenta),
	game.Black:   color.New(color.FgHiBlack),
	game.Rainbow: color.New(color.FgCyan, color.Underline),
}

func colorizeCard(c game.Card) string {
	return suitColors[c.Suit].Sprint(c.String())
}

func colorizeCards(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = colorizeCard(c)
	}
	return strings.Join(parts, " ")
}

func describe(names []string, turn game.Turn) string {
	a := turn.Action
	switch a.Type {
	case game.Play:
		if turn.Result.Outcome == game.OutcomeMisplayed {
			return fmt.Sprintf("misplays %s from slot %d", colorizeCard(turn.Result.Card), a.Slot)
		}
		return fmt.Sprintf("plays %s from slot %d", colorizeCard(turn.Result.Card), a.Slot)
	case game.Discard:
		return fmt.Sprintf("discards %s from slot %d", colorizeCard(turn.Result.Card), a.Slot)
	case game.Hint:
		value := a.Value.String()
		if a.Value.Kind == game.SuitHint {
			value = suitColors[a.Value.Suit].Sprint(value)
		}
		return fmt.Sprintf("tells %s about their %s cards (slots %v)", names[a.Target], value, turn.Result.Touched)
	}
	return a.String()
}

// PrintTrace writes the play by play of one round.
func PrintTrace(w io.Writer, names []string, record metrics.RoundRecord) {
	fmt.Fprintf(w, "\nROUND %d (seed %d):\n", record.Index, record.Seed)
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	for _, turn := range record.Trace {
		fmt.Fprintf(w, "%3d  %-*s  [%s]  %s  (hints %d, strikes %d)\n",
			turn.Number, width, names[turn.Player], colorizeCards(turn.HandBefore),
			describe(names, turn), turn.Result.Hints, turn.Result.Strikes)
	}
	PrintScore(w, record)
}

// PrintScore writes the one line result of a round.
func PrintScore(w io.Writer, record metrics.RoundRecord) {
	line := fmt.Sprintf("Round %d score: %d (%s)", record.Index, record.Score, record.Reason)
	switch {
	case record.Err != nil:
		line = color.New(color.FgRed).Sprint(line) + ": " + record.Err.Error()
	case record.Perfect:
		line = color.New(color.FgGreen).Sprint(line)
	}
	fmt.Fprintln(w, line)
}

// PrintSummary renders the statistics of a run as a table.
func PrintSummary(w io.Writer, names []string, rules game.Rules, s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s Hanabi: %s", rules.Variant, strings.Join(names, ", ")))
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"Rounds", s.Rounds},
		{"Average score (+/- 1 std. err.)", fmt.Sprintf("%.3f +/- %.3f", s.Mean, s.StdErr)},
		{"Variance", fmt.Sprintf("%.3f", s.Variance)},
		{"Min / Max", fmt.Sprintf("%d / %d", s.Min, s.Max)},
		{"Perfect games", fmt.Sprintf("%d (%.1f%%)", s.Perfect, 100*s.PerfectRate)},
		{"Aborted rounds", s.Aborted},
	})
	t.AppendSeparator()
	for score := len(s.Histogram) - 1; score >= 0; score-- {
		if s.Histogram[score] > 0 {
			t.AppendRow(table.Row{fmt.Sprintf("score %d", score), s.Histogram[score]})
		}
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}
