package game

import "golang.org/x/exp/slices"

// Hand holds a player's cards ordered oldest to newest, with the public
// knowledge about each one at the same index.
type Hand struct {
	cards     []Card
	knowledge []Knowledge
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Card(slot int) Card {
	return h.cards[slot]
}

func (h *Hand) Knowledge(slot int) Knowledge {
	return h.knowledge[slot].clone()
}

func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

func (h *Hand) add(c Card, k Knowledge) {
	h.cards = append(h.cards, c)
	h.knowledge = append(h.knowledge, k)
}

func (h *Hand) remove(slot int) Card {
	c := h.cards[slot]
	h.cards = slices.Delete(h.cards, slot, slot+1)
	h.knowledge = slices.Delete(h.knowledge, slot, slot+1)
	return c
}

// hint records h on every card and returns the touched slots.
func (h *Hand) hint(value HintValue) []int {
	var touched []int
	for i, c := range h.cards {
		match := value.Matches(c)
		h.knowledge[i].learn(value, match)
		if match {
			touched = append(touched, i)
		}
	}
	return touched
}

func (h *Hand) touches(value HintValue) bool {
	for _, c := range h.cards {
		if value.Matches(c) {
			return true
		}
	}
	return false
}
