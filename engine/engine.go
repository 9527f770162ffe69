package engine

import (
	"errors"

	"hanabi/game"
)

// ErrRoundAborted wraps the error of an agent whose action was refused.
var ErrRoundAborted = errors.New("round aborted")

type Engine interface {
	// Run plays a round until it ends or the turn ceiling is reached
	Run() (Result, error)
}

// Result summarises a finished round.
type Result struct {
	Score   int            `json:"score"`
	Perfect bool           `json:"perfect"`
	Reason  game.EndReason `json:"end_reason"`
	Turns   int            `json:"turns"`
	Strikes int            `json:"strikes"`
	Hints   int            `json:"hints"`
	Trace   []game.Turn    `json:"-"`
}

func (r Result) Aborted() bool {
	return r.Reason == game.Aborted
}
