package hat

import (
	"fmt"

	"hanabi/game"
)

// Codes is the size of the alphabet a single hint carries.
const Codes = 9

// maxDepth is how far from the newest card a code can point.
const maxDepth = 4

// Code is one player's recommended action.
// 0 is no recommendation, 1..4 plays the k-th newest card and 5..8
// discards the (k-4)-th newest card.
type Code int

const NoRecommendation Code = 0

func PlayCode(k int) Code    { return Code(k) }
func DiscardCode(k int) Code { return Code(maxDepth + k) }

func (c Code) IsPlay() bool    { return c >= 1 && c <= maxDepth }
func (c Code) IsDiscard() bool { return c > maxDepth && c < Codes }

// Slot resolves the code against a hand of handLen cards. ok is false for
// NoRecommendation and for codes pointing past the oldest card.
func (c Code) Slot(handLen int) (slot int, ok bool) {
	var k int
	switch {
	case c.IsPlay():
		k = int(c)
	case c.IsDiscard():
		k = int(c) - maxDepth
	default:
		return 0, false
	}
	slot = handLen - k
	if slot < 0 {
		return 0, false
	}
	return slot, true
}

// Action turns the code into a game action for a hand of handLen cards.
func (c Code) Action(handLen int) (game.Action, bool) {
	slot, ok := c.Slot(handLen)
	if !ok {
		return game.Action{}, false
	}
	if c.IsPlay() {
		return game.PlayAction(slot), true
	}
	return game.DiscardAction(slot), true
}

func (c Code) String() string {
	switch {
	case c.IsPlay():
		return fmt.Sprintf("play %d-newest", int(c))
	case c.IsDiscard():
		return fmt.Sprintf("discard %d-newest", int(c)-maxDepth)
	}
	return "none"
}

// add shifts c by delta in the code ring.
func (c Code) add(delta int) Code {
	return Code(((int(c)+delta)%Codes + Codes) % Codes)
}

// Recommend picks the action the hinter wants the holder of cards to take.
// It depends only on the cards and the public board, so every player who
// can see the cards computes the same code.
func Recommend(cards []game.Card, board game.Board) Code {
	n := len(cards)
	depth := func(slot int) int { return n - slot }
	reachable := func(slot int) bool { return depth(slot) <= maxDepth }

	best := -1
	for i, c := range cards {
		if !reachable(i) || !board.Playable(c) {
			continue
		}
		if best < 0 || betterPlay(c, i, cards[best], best) {
			best = i
		}
	}
	if best >= 0 {
		return PlayCode(depth(best))
	}

	for i, c := range cards {
		if reachable(i) && board.Dead(c) {
			return DiscardCode(depth(i))
		}
	}

	for i, c := range cards {
		if !reachable(i) {
			continue
		}
		for _, other := range cards[i+1:] {
			if other == c {
				return DiscardCode(depth(i))
			}
		}
	}

	best = -1
	for i, c := range cards {
		if !reachable(i) || board.Critical(c) {
			continue
		}
		if best < 0 || c.Rank > cards[best].Rank {
			best = i
		}
	}
	if best >= 0 {
		return DiscardCode(depth(best))
	}
	return NoRecommendation
}

// betterPlay orders playable cards: fives first, then the lowest rank,
// then the newest.
func betterPlay(c game.Card, slot int, best game.Card, bestSlot int) bool {
	five, bestFive := c.Rank == game.MaxRank, best.Rank == game.MaxRank
	switch {
	case five != bestFive:
		return five
	case c.Rank != best.Rank:
		return c.Rank < best.Rank
	}
	return slot > bestSlot
}

// harm scores how bad it would be for the holder of cards to follow c.
func harm(c Code, cards []game.Card, board game.Board) int {
	slot, ok := c.Slot(len(cards))
	if !ok {
		return 0
	}
	card := cards[slot]
	switch {
	case c.IsPlay() && !board.Playable(card):
		return 2
	case c.IsDiscard() && board.Critical(card):
		return 1
	}
	return 0
}
