package engine

import (
	"fmt"

	"hanabi/agent"
	"hanabi/game"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	Round        *game.Round
	Agents       []agent.Agent
	capabilities []game.Capability
	maxTurns     int
	onTurn       func(game.Turn)
}

type Option func(e *LocalEngine)

// WithTurnHook calls hook after every applied turn, before observers run.
func WithTurnHook(hook func(game.Turn)) Option {
	return func(e *LocalEngine) {
		if hook != nil {
			e.onTurn = hook
		}
	}
}

// WithMaxTurns lowers or raises the turn ceiling of the round.
func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func NewLocalEngine(round *game.Round, agents []agent.Agent, options ...Option) *LocalEngine {
	if round.Players() != len(agents) {
		panic("number of players does not match number of agents")
	}
	e := &LocalEngine{
		Round:        round,
		Agents:       agents,
		capabilities: make([]game.Capability, len(agents)),
		maxTurns:     round.MaxTurns(),
	}
	for i, a := range agents {
		e.capabilities[i] = agent.CapabilityOf(a)
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) view(seat int) game.View {
	return game.NewView(e.Round, seat, e.capabilities[seat])
}

// Run executes the round loop. An illegal action aborts the round and
// returns an error wrapping ErrRoundAborted alongside the result.
func (e *LocalEngine) Run() (Result, error) {
	r := e.Round
	log.Debug().Msgf("player %d is starting", r.Current())

	for r.Status() != game.Ended {
		if r.Turns() >= e.maxTurns {
			r.Stop(game.Exhausted)
			log.Warn().Msgf("stopped after %d turns without an ending", r.Turns())
			break
		}

		seat := r.Current()
		action := e.Agents[seat].Decide(e.view(seat))
		turn, err := r.Apply(action)
		if err != nil {
			r.Stop(game.Aborted)
			log.Warn().Err(err).Msgf("aborting round at turn %d", r.Turns()+1)
			return e.result(), fmt.Errorf("%w: %w", ErrRoundAborted, err)
		}
		log.Debug().Msgf("turn %d: player %d %s -> %s", turn.Number, turn.Player, turn.Action, turn.Result.Outcome)

		if e.onTurn != nil {
			e.onTurn(turn)
		}
		e.notify(turn)
	}

	log.Debug().Msgf("round ended (%s) with score %d", r.EndReason(), r.Score())
	return e.result(), nil
}

func (e *LocalEngine) notify(turn game.Turn) {
	for i, a := range e.Agents {
		o, ok := a.(agent.Observer)
		if !ok {
			continue
		}
		seen := turn
		if turn.Player == i && e.capabilities[i] != game.FullSight {
			seen = turn.Public()
		}
		o.Observe(e.view(i), seen)
	}
}

func (e *LocalEngine) result() Result {
	r := e.Round
	return Result{
		Score:   r.Score(),
		Perfect: r.Perfect(),
		Reason:  r.EndReason(),
		Turns:   r.Turns(),
		Strikes: r.Strikes(),
		Hints:   r.Hints(),
		Trace:   r.Trace(),
	}
}
