package hat

import (
	"errors"
	"fmt"

	"hanabi/game"
	"hanabi/utils"
)

var ErrBlocked = errors.New("no hint realises any value")

// Convention maps hint values 0..8 to concrete hints and back. It depends
// only on the player count and is shared by every hat player of a round.
type Convention struct {
	players int
}

func NewConvention(players int) (*Convention, error) {
	if players != 4 && players != 5 {
		return nil, &game.ConfigurationError{
			Field:  "players",
			Reason: fmt.Sprintf("the hat strategy needs 4 or 5 players, got %d", players),
		}
	}
	return &Convention{players: players}, nil
}

func (c *Convention) Players() int {
	return c.players
}

// offset is the number of seats between hinter and target.
func (c *Convention) offset(hinter, target int) int {
	return ((target-hinter-1)%c.players + c.players) % c.players
}

// ValueOf reads the value a hint carries. touchedNewest tells whether the
// hint matched the target's newest card.
func (c *Convention) ValueOf(hinter, target int, kind game.HintKind, touchedNewest bool) int {
	x := 0
	switch {
	case !touchedNewest:
		x = 2
	case kind == game.SuitHint:
		x = 1
	}
	k := c.offset(hinter, target)
	if c.players == 4 {
		return 3*k + x
	}
	if x == 2 {
		return Codes - 1
	}
	return 2*k + x
}

// ValueOfTurn reads the value of an applied hint turn.
func (c *Convention) ValueOfTurn(v game.View, turn game.Turn) int {
	target := turn.Action.Target
	touched := utils.FindIndex(turn.Result.Touched, v.HandLen(target)-1) >= 0
	return c.ValueOf(turn.Player, target, turn.Action.Value.Kind, touched)
}

// Realize finds a hint from hinter that carries value. ok is false when the
// hands make the required kind of hint impossible.
func (c *Convention) Realize(v game.View, hinter, value int) (game.Action, bool) {
	if c.players == 5 && value == Codes-1 {
		for i := 1; i < c.players; i++ {
			target := (hinter + i) % c.players
			if a, ok := missNewest(v, target); ok {
				return a, true
			}
		}
		return game.Action{}, false
	}

	width := 2
	if c.players == 4 {
		width = 3
	}
	target := (hinter + 1 + value/width) % c.players
	n := v.HandLen(target)
	if n == 0 {
		return game.Action{}, false
	}
	newest, ok := v.Card(target, n-1)
	if !ok {
		return game.Action{}, false
	}
	switch value % width {
	case 0:
		return game.HintAction(target, game.RankValue(newest.Rank)), true
	case 1:
		return game.HintAction(target, v.Rules().Variant.SuitHint(newest)), true
	}
	return missNewest(v, target)
}

// missNewest finds a hint to target that touches some card but not the
// newest one.
func missNewest(v game.View, target int) (game.Action, bool) {
	n := v.HandLen(target)
	if n < 2 {
		return game.Action{}, false
	}
	newest, ok := v.Card(target, n-1)
	if !ok {
		return game.Action{}, false
	}
	misses := func(h game.HintValue) bool { return !h.Matches(newest) }
	for slot := 0; slot < n-1; slot++ {
		c, _ := v.Card(target, slot)
		if h := game.RankValue(c.Rank); misses(h) {
			return game.HintAction(target, h), true
		}
		for _, s := range v.Rules().Variant.HintSuits() {
			if h := game.SuitValue(s); h.Matches(c) && misses(h) {
				return game.HintAction(target, h), true
			}
		}
	}
	return game.Action{}, false
}

// Plan is the hint a hinter chose and the codes it meant to send.
type Plan struct {
	Hinter int
	// Codes holds each player's recommendation; the hinter's entry is unused.
	Codes []Code
	// Value is the sum of the codes, Sent the value the hint carries. They
	// differ when Value could not be realised.
	Value  int
	Sent   int
	Action game.Action
}

func (p Plan) Blocked() bool {
	return p.Value != p.Sent
}

// Encode computes every other player's recommendation from the hinter's
// view and the hint that carries their sum.
func (c *Convention) Encode(v game.View) (Plan, error) {
	hinter := v.Seat()
	board := v.Board()
	plan := Plan{Hinter: hinter, Codes: make([]Code, c.players)}
	hands := make([][]game.Card, c.players)
	for p := 0; p < c.players; p++ {
		if p == hinter {
			continue
		}
		hands[p] = visibleHand(v, p)
		plan.Codes[p] = Recommend(hands[p], board)
		plan.Value = (plan.Value + int(plan.Codes[p])) % Codes
	}

	if a, ok := c.Realize(v, hinter, plan.Value); ok {
		plan.Sent, plan.Action = plan.Value, a
		return plan, nil
	}

	best, bestHarm := -1, 0
	var bestAction game.Action
	for value := 0; value < Codes; value++ {
		a, ok := c.Realize(v, hinter, value)
		if !ok {
			continue
		}
		total := 0
		for p := 0; p < c.players; p++ {
			if p == hinter {
				continue
			}
			total += harm(plan.Codes[p].add(value-plan.Value), hands[p], board)
		}
		if best < 0 || total < bestHarm {
			best, bestHarm, bestAction = value, total, a
		}
	}
	if best < 0 {
		return plan, ErrBlocked
	}
	plan.Sent, plan.Action = best, bestAction
	return plan, nil
}

// Decode recovers the code meant for seat from a hint carrying value. Every
// other hand except the hinter's is read from the seat's view.
func (c *Convention) Decode(v game.View, hinter, value int) Code {
	board := v.Board()
	sum := 0
	for p := 0; p < c.players; p++ {
		if p == hinter || p == v.Seat() {
			continue
		}
		sum += int(Recommend(visibleHand(v, p), board))
	}
	return Code(0).add(value - sum)
}

func visibleHand(v game.View, p int) []game.Card {
	cards := make([]game.Card, v.HandLen(p))
	for slot := range cards {
		cards[slot], _ = v.Card(p, slot)
	}
	return cards
}
