package agent

import "hanabi/game"

// Cheater looks at its own cards. It plays whenever it can, hints when a
// teammate could act more usefully, and discards its least needed card.
type Cheater struct {
	seat int
}

func NewCheater(seat int) *Cheater {
	return &Cheater{seat: seat}
}

func (c *Cheater) Capability() game.Capability {
	return game.FullSight
}

func (c *Cheater) Decide(v game.View) game.Action {
	board := v.Board()
	cards := handOf(v, c.seat)

	if slot, ok := c.bestPlay(v, cards, board); ok {
		return game.PlayAction(slot)
	}
	if v.Hints() == game.MaxHints {
		return c.hint(v)
	}

	badness, slot := discardBadness(v, c.seat, cards, board)
	if v.Hints() == 0 || v.Hints()+badness < 10 {
		return game.DiscardAction(slot)
	}
	for i := 1; i <= v.Hints() && i < v.Players(); i++ {
		p := (c.seat + i) % v.Players()
		other := handOf(v, p)
		if hasPlayable(other, board) {
			return c.hint(v)
		}
		if b, _ := discardBadness(v, p, other, board); b < badness {
			return c.hint(v)
		}
	}
	return game.DiscardAction(slot)
}

// bestPlay prefers the lowest playable card, then a critical one, then one
// nobody else holds, then the newest.
func (c *Cheater) bestPlay(v game.View, cards []game.Card, board game.Board) (int, bool) {
	elsewhere := othersHold(v, c.seat)
	best := -1
	better := func(i int) bool {
		a, b := cards[i], cards[best]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if board.Critical(a) != board.Critical(b) {
			return board.Critical(a)
		}
		if elsewhere[a] != elsewhere[b] {
			return !elsewhere[a]
		}
		return i > best
	}
	for i, card := range cards {
		if board.Playable(card) && (best < 0 || better(i)) {
			best = i
		}
	}
	return best, best >= 0
}

// hint tells the next player the rank of their newest card.
func (c *Cheater) hint(v game.View) game.Action {
	target := (c.seat + 1) % v.Players()
	card, _ := v.Card(target, v.HandLen(target)-1)
	return game.HintAction(target, game.RankValue(card.Rank))
}

// discardBadness scores the least harmful discard from cards and returns its
// slot. Lower is safer: dead or duplicated cards score 1, cards held
// elsewhere a little more, first copies by rank, and critical cards 100+.
func discardBadness(v game.View, seat int, cards []game.Card, board game.Board) (int, int) {
	for i, card := range cards {
		if board.Dead(card) {
			return 1, i
		}
	}
	for i, card := range cards {
		for j, other := range cards {
			if i != j && card == other {
				return 1, i
			}
		}
	}
	elsewhere := othersHold(v, seat)
	lowest := -1
	for i, card := range cards {
		if elsewhere[card] && (lowest < 0 || card.Rank < cards[lowest].Rank) {
			lowest = i
		}
	}
	if lowest >= 0 {
		return 8 - v.Players(), lowest
	}
	highest := -1
	for i, card := range cards {
		if !board.Critical(card) && (highest < 0 || card.Rank > cards[highest].Rank) {
			highest = i
		}
	}
	if highest >= 0 {
		return 60 - 10*int(cards[highest].Rank), highest
	}
	highest = 0
	for i, card := range cards {
		if card.Rank > cards[highest].Rank {
			highest = i
		}
	}
	return 600 - 100*int(cards[highest].Rank), highest
}

func handOf(v game.View, p int) []game.Card {
	cards := make([]game.Card, v.HandLen(p))
	for slot := range cards {
		cards[slot], _ = v.Card(p, slot)
	}
	return cards
}

func hasPlayable(cards []game.Card, board game.Board) bool {
	for _, c := range cards {
		if board.Playable(c) {
			return true
		}
	}
	return false
}

func othersHold(v game.View, seat int) map[game.Card]bool {
	held := make(map[game.Card]bool)
	for p := 0; p < v.Players(); p++ {
		if p == seat {
			continue
		}
		for _, c := range handOf(v, p) {
			held[c] = true
		}
	}
	return held
}
