package hat

import (
	"fmt"

	"hanabi/game"

	"github.com/rs/zerolog/log"
)

// ProtocolDesyncError is a decoded recommendation the seat cannot carry out.
// It never leaves the player: the fallback rules take over.
type ProtocolDesyncError struct {
	Seat   int
	Code   Code
	Reason string
}

func (e *ProtocolDesyncError) Error() string {
	return fmt.Sprintf("hat protocol desync at seat %d (%s): %s", e.Seat, e.Code, e.Reason)
}

// Player follows the hat convention. Its state is the latest
// recommendation decoded for its seat and the cards played since.
type Player struct {
	seat       int
	convention *Convention
	pending    Code
	playsSince int
	// played holds the cards played by others since the pending hint.
	played []game.Card
}

func NewPlayer(seat int, convention *Convention) *Player {
	return &Player{seat: seat, convention: convention}
}

// Pending returns the recommendation the player has not acted on yet.
func (p *Player) Pending() Code {
	return p.pending
}

func (p *Player) Decide(v game.View) game.Action {
	seen := game.SeenCards(v)
	handLen := v.HandLen(p.seat)
	for slot := handLen - 1; slot >= 0; slot-- {
		if game.ProvablyPlayable(v, seen, slot) {
			return game.PlayAction(slot)
		}
	}

	action, err := p.pendingAction(v)
	if err != nil {
		log.Debug().Err(err).Msg("falling back")
		p.pending = NoRecommendation
	}
	if err == nil && p.pending.IsPlay() {
		if p.playsSince == 0 || (p.playsSince == 1 && v.Strikes() < game.MaxStrikes-1) {
			return action
		}
	}

	if v.Hints() > 0 {
		plan, err := p.convention.Encode(v)
		if err == nil {
			if plan.Blocked() {
				log.Debug().Msgf("seat %d: value %d blocked, sending %d", p.seat, plan.Value, plan.Sent)
			}
			return plan.Action
		}
		log.Debug().Err(err).Msgf("seat %d cannot hint", p.seat)
	}

	if err == nil && p.pending.IsDiscard() && v.Legal(action) {
		return action
	}
	return game.DiscardAction(0)
}

func (p *Player) pendingAction(v game.View) (game.Action, error) {
	if p.pending == NoRecommendation {
		return game.Action{}, nil
	}
	action, ok := p.pending.Action(v.HandLen(p.seat))
	if !ok {
		return game.Action{}, &ProtocolDesyncError{Seat: p.seat, Code: p.pending, Reason: fmt.Sprintf("no such slot in a hand of %d", v.HandLen(p.seat))}
	}
	if p.pending.IsPlay() && !v.Legal(action) {
		return game.Action{}, &ProtocolDesyncError{Seat: p.seat, Code: p.pending, Reason: "the play is not legal"}
	}
	if p.pending.IsPlay() {
		if reason := p.stalePlay(v, action.Slot); reason != "" {
			return game.Action{}, &ProtocolDesyncError{Seat: p.seat, Code: p.pending, Reason: reason}
		}
	}
	return action, nil
}

// stalePlay explains why the card in slot may have stopped being playable
// since the hint. Another recipient of the same hint may have been told to
// play an identical card, and only the first of them succeeds.
func (p *Player) stalePlay(v game.View, slot int) string {
	seen := game.SeenCards(v)
	board := v.Board()
	k := v.Knowledge(p.seat, slot)
	for _, c := range p.played {
		if k.CanBe(c) && seen[c] < board.Variant.Copies(c) {
			return fmt.Sprintf("the slot may hold another %s, played since the hint", c)
		}
	}
	for _, c := range k.Candidates(board.Variant, seen) {
		if board.Playable(c) {
			return ""
		}
	}
	return "no card the slot can hold is playable"
}

func (p *Player) Observe(v game.View, turn game.Turn) {
	switch turn.Action.Type {
	case game.Play, game.Discard:
		if turn.Player == p.seat {
			p.pending = NoRecommendation
			p.playsSince = 0
			p.played = nil
		} else if turn.Action.Type == game.Play {
			p.playsSince++
			if turn.Result.Outcome == game.OutcomePlayed {
				p.played = append(p.played, turn.Result.Card)
			}
		}
	case game.Hint:
		if turn.Player == p.seat {
			return
		}
		value := p.convention.ValueOfTurn(v, turn)
		p.pending = p.convention.Decode(v, turn.Player, value)
		p.playsSince = 0
		p.played = nil
		log.Debug().Msgf("seat %d decoded %s from value %d", p.seat, p.pending, value)
	}
}
