package agent

import "hanabi/game"

// Basic plays only cards it can prove playable, hints playable cards to
// the others and otherwise discards its oldest unhinted card.
type Basic struct {
	seat int
}

func NewBasic(seat int) *Basic {
	return &Basic{seat: seat}
}

func (b *Basic) Decide(v game.View) game.Action {
	seen := game.SeenCards(v)
	for slot := v.HandLen(b.seat) - 1; slot >= 0; slot-- {
		if game.ProvablyPlayable(v, seen, slot) {
			return game.PlayAction(slot)
		}
	}

	if v.Hints() > 0 {
		if a, ok := b.playHint(v); ok {
			return a
		}
	}

	if v.Hints() == game.MaxHints {
		return b.anyHint(v)
	}
	return game.DiscardAction(b.chop(v))
}

// playHint tells the first player after this seat about a playable card
// they do not know is playable yet.
func (b *Basic) playHint(v game.View) (game.Action, bool) {
	board := v.Board()
	for i := 1; i < v.Players(); i++ {
		p := (b.seat + i) % v.Players()
		for slot := v.HandLen(p) - 1; slot >= 0; slot-- {
			c, _ := v.Card(p, slot)
			if !board.Playable(c) {
				continue
			}
			k := v.Knowledge(p, slot)
			if allPlayable(k, board) {
				continue
			}
			rank, suit := game.RankValue(c.Rank), board.Variant.SuitHint(c)
			_, suitKnown := k.KnownSuit()
			_, rankKnown := k.KnownRank()
			switch {
			case suitKnown:
				return game.HintAction(p, rank), true
			case rankKnown:
				return game.HintAction(p, suit), true
			case allPlayableAfter(k, rank, board):
				return game.HintAction(p, rank), true
			case allPlayableAfter(k, suit, board):
				return game.HintAction(p, suit), true
			}
			return game.HintAction(p, rank), true
		}
	}
	return game.Action{}, false
}

func allPlayable(k game.Knowledge, board game.Board) bool {
	for _, s := range board.Variant.Suits() {
		for r := game.MinRank; r <= game.MaxRank; r++ {
			c := game.Card{Suit: s, Rank: r}
			if k.CanBe(c) && !board.Playable(c) {
				return false
			}
		}
	}
	return true
}

// allPlayableAfter reports whether every card matching both k and the
// hint value would be playable.
func allPlayableAfter(k game.Knowledge, h game.HintValue, board game.Board) bool {
	for _, s := range board.Variant.Suits() {
		for r := game.MinRank; r <= game.MaxRank; r++ {
			c := game.Card{Suit: s, Rank: r}
			if k.CanBe(c) && h.Matches(c) && !board.Playable(c) {
				return false
			}
		}
	}
	return true
}

// chop is the oldest card no hint has touched, or the oldest card.
func (b *Basic) chop(v game.View) int {
	for slot := 0; slot < v.HandLen(b.seat); slot++ {
		if len(v.Knowledge(b.seat, slot).Positive) == 0 {
			return slot
		}
	}
	return 0
}

// anyHint gives the next player a hint about their newest card.
func (b *Basic) anyHint(v game.View) game.Action {
	target := (b.seat + 1) % v.Players()
	c, _ := v.Card(target, v.HandLen(target)-1)
	return game.HintAction(target, game.RankValue(c.Rank))
}
