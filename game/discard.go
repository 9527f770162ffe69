package game

import (
	"encoding/json"

	"golang.org/x/exp/slices"
)

type Reason uint8

const (
	Discarded Reason = iota
	Misplayed
)

func (r Reason) String() string {
	if r == Misplayed {
		return "misplayed"
	}
	return "discarded"
}

func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

type DiscardedCard struct {
	Card   Card   `json:"card"`
	Reason Reason `json:"reason"`
}

// DiscardPile is the append-only log of discarded and misplayed cards.
type DiscardPile struct {
	entries []DiscardedCard
}

func (p *DiscardPile) add(c Card, reason Reason) {
	p.entries = append(p.entries, DiscardedCard{Card: c, Reason: reason})
}

func (p *DiscardPile) Len() int {
	return len(p.entries)
}

func (p *DiscardPile) Entries() []DiscardedCard {
	return slices.Clone(p.entries)
}

func (p *DiscardPile) Count(c Card) int {
	n := 0
	for _, d := range p.entries {
		if d.Card == c {
			n++
		}
	}
	return n
}

// Counts returns the number of discarded copies of every card.
func (p *DiscardPile) Counts() map[Card]int {
	counts := make(map[Card]int)
	for _, d := range p.entries {
		counts[d.Card]++
	}
	return counts
}
