package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Status int

const (
	InProgress Status = iota
	FinalRound        // deck empty, countdown running
	Ended
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case FinalRound:
		return "final round"
	case Ended:
		return "ended"
	}
	return "unknown"
}

type EndReason int

const (
	NotEnded EndReason = iota
	Strikes
	Countdown
	PerfectScore
	Exhausted // the turn ceiling was reached
	Aborted   // an agent proposed an illegal action
)

var endReasonNames = [...]string{"", "strikes", "countdown", "perfect", "exhausted", "aborted"}

func (r EndReason) String() string {
	if r < 0 || int(r) >= len(endReasonNames) {
		return "unknown"
	}
	return endReasonNames[r]
}

func (r EndReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Round is one game of Hanabi from the deal to the end. Apply is the only
// way to change it.
type Round struct {
	rules     Rules
	deck      *Deck
	hands     []Hand
	tableau   Tableau
	discards  DiscardPile
	hints     int
	strikes   int
	current   int
	turns     int
	countdown int
	status    Status
	reason    EndReason
	trace     []Turn
}

// NewRound deals the deck to players seats, one full hand at a time.
// The deck is consumed by the round.
func NewRound(rules Rules, players int, deck *Deck) (*Round, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, &ConfigurationError{Field: "players", Reason: fmt.Sprintf("need %d to %d players, got %d", MinPlayers, MaxPlayers, players)}
	}
	if _, err := ParseVariant(string(rules.Variant)); err != nil {
		return nil, err
	}
	if _, err := ParseLossPolicy(string(rules.Loss)); err != nil {
		return nil, err
	}

	r := &Round{
		rules: rules,
		deck:  deck,
		hands: make([]Hand, players),
		hints: MaxHints,
	}
	size := HandSize(players)
	for p := range r.hands {
		for i := 0; i < size; i++ {
			if !r.draw(p) {
				break
			}
		}
	}
	if r.deck.Len() == 0 {
		r.status = FinalRound
		r.countdown = players
	}
	return r, nil
}

// NewShuffledRound deals a full deck of the rules' variant shuffled with seed.
func NewShuffledRound(rules Rules, players int, seed uint64) (*Round, error) {
	deck := NewDeck(rules.Variant)
	deck.Shuffle(seed)
	return NewRound(rules, players, deck)
}

func (r *Round) draw(p int) bool {
	c, ok := r.deck.Draw()
	if !ok {
		return false
	}
	r.hands[p].add(c, newKnowledge(r.rules.Variant.Suits()))
	return true
}

// Apply validates a and, if legal, performs it for the current player.
// An illegal action returns an *IllegalActionError and leaves the round
// untouched.
func (r *Round) Apply(a Action) (Turn, error) {
	if err := r.validate(a); err != nil {
		return Turn{}, err
	}

	actor := r.current
	hand := &r.hands[actor]
	turn := Turn{
		Number:     r.turns + 1,
		Player:     actor,
		HandBefore: hand.Cards(),
		Action:     a,
	}

	var res Result
	switch a.Type {
	case Play:
		c := hand.remove(a.Slot)
		res.Card = c
		if r.tableau.play(c) {
			res.Outcome = OutcomePlayed
			if c.Rank == MaxRank && r.hints < MaxHints {
				r.hints++
			}
		} else {
			res.Outcome = OutcomeMisplayed
			r.strikes++
			r.discards.add(c, Misplayed)
		}
		res.Drew = r.draw(actor)
	case Discard:
		c := hand.remove(a.Slot)
		res.Card = c
		res.Outcome = OutcomeDiscarded
		r.discards.add(c, Discarded)
		if r.hints < MaxHints {
			r.hints++
		}
		res.Drew = r.draw(actor)
	case Hint:
		r.hints--
		res.Outcome = OutcomeHinted
		res.Touched = r.hands[a.Target].hint(a.Value)
	}
	res.Hints = r.hints
	res.Strikes = r.strikes
	turn.Result = res

	r.trace = append(r.trace, turn)
	r.current = (r.current + 1) % len(r.hands)
	r.turns++

	exhausted := res.Drew && r.deck.Len() == 0
	switch {
	case r.strikes >= MaxStrikes:
		r.end(Strikes)
	case r.tableau.Total() == r.rules.Variant.MaxScore():
		r.end(PerfectScore)
	case r.status == FinalRound:
		r.countdown--
		if r.countdown <= 0 {
			r.end(Countdown)
		}
	case exhausted:
		r.status = FinalRound
		r.countdown = len(r.hands)
	}
	return turn, nil
}

func (r *Round) validate(a Action) error {
	illegal := func(reason string) error {
		return &IllegalActionError{Player: r.current, Action: a, Reason: reason}
	}
	if r.status == Ended {
		return illegal("the round has ended")
	}
	hand := &r.hands[r.current]
	switch a.Type {
	case Play, Discard:
		if a.Slot < 0 || a.Slot >= hand.Len() {
			return illegal(fmt.Sprintf("slot %d out of range for a hand of %d", a.Slot, hand.Len()))
		}
		if a.Type == Discard && r.rules.Strict && r.hints == MaxHints {
			return illegal("cannot discard while all hint tokens are available")
		}
	case Hint:
		if r.hints == 0 {
			return illegal("no hint tokens left")
		}
		if a.Target < 0 || a.Target >= len(r.hands) {
			return illegal(fmt.Sprintf("no player %d", a.Target))
		}
		if a.Target == r.current {
			return illegal("cannot hint yourself")
		}
		if !r.validHintValue(a.Value) {
			return illegal(fmt.Sprintf("hint value %s is not part of this game", a.Value))
		}
		if !r.hands[a.Target].touches(a.Value) {
			return illegal("hint touches no card")
		}
	default:
		return illegal("unknown action type")
	}
	return nil
}

func (r *Round) validHintValue(v HintValue) bool {
	switch v.Kind {
	case RankHint:
		return v.Rank >= MinRank && v.Rank <= MaxRank
	case SuitHint:
		return slices.Contains(r.rules.Variant.HintSuits(), v.Suit)
	}
	return false
}

// Legal reports whether a would be accepted on the current turn.
func (r *Round) Legal(a Action) bool {
	return r.validate(a) == nil
}

func (r *Round) end(reason EndReason) {
	r.status = Ended
	r.reason = reason
}

// Stop ends the round from outside the rules, with Aborted or Exhausted.
func (r *Round) Stop(reason EndReason) {
	if r.status == Ended {
		return
	}
	r.end(reason)
}

// Score is the tableau sum, or 0 for a round lost on strikes under
// LossZero and for an aborted round.
func (r *Round) Score() int {
	switch {
	case r.reason == Aborted:
		return 0
	case r.reason == Strikes && r.rules.Loss == LossZero:
		return 0
	}
	return r.tableau.Total()
}

func (r *Round) Perfect() bool {
	return r.tableau.Total() == r.rules.Variant.MaxScore()
}

// MaxTurns bounds how long a round may run before it is cut off.
func (r *Round) MaxTurns() int {
	return 2*r.rules.Variant.DeckSize() + len(r.hands)
}

func (r *Round) Board() Board {
	return Board{
		Variant:   r.rules.Variant,
		Tableau:   r.tableau,
		Discarded: r.discards.Counts(),
	}
}

func (r *Round) Rules() Rules          { return r.rules }
func (r *Round) Players() int          { return len(r.hands) }
func (r *Round) Current() int          { return r.current }
func (r *Round) Turns() int            { return r.turns }
func (r *Round) Hints() int            { return r.hints }
func (r *Round) Strikes() int          { return r.strikes }
func (r *Round) Status() Status        { return r.status }
func (r *Round) EndReason() EndReason  { return r.reason }
func (r *Round) Countdown() int        { return r.countdown }
func (r *Round) DeckLen() int          { return r.deck.Len() }
func (r *Round) Tableau() Tableau      { return r.tableau }
func (r *Round) Discards() DiscardPile { return DiscardPile{entries: r.discards.Entries()} }

func (r *Round) Hand(p int) *Hand {
	return &r.hands[p]
}

// Trace returns every applied turn in order.
func (r *Round) Trace() []Turn {
	return slices.Clone(r.trace)
}
