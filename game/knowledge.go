package game

import (
	"encoding/json"
	"fmt"
	"math/bits"

	"golang.org/x/exp/slices"
)

type HintKind uint8

const (
	RankHint HintKind = iota
	SuitHint
)

func (k HintKind) String() string {
	if k == SuitHint {
		return "suit"
	}
	return "rank"
}

func (k HintKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// HintValue is the information carried by a hint: one rank or one suit.
type HintValue struct {
	Kind HintKind `json:"kind"`
	Suit Suit     `json:"suit"`
	Rank Rank     `json:"rank"`
}

func RankValue(r Rank) HintValue {
	return HintValue{Kind: RankHint, Rank: r}
}

func SuitValue(s Suit) HintValue {
	return HintValue{Kind: SuitHint, Suit: s}
}

func (h HintValue) Matches(c Card) bool {
	if h.Kind == RankHint {
		return c.Rank == h.Rank
	}
	return c.Suit == h.Suit || c.Suit == Rainbow
}

func (h HintValue) MarshalJSON() ([]byte, error) {
	if h.Kind == RankHint {
		return json.Marshal(struct {
			Kind HintKind `json:"kind"`
			Rank Rank     `json:"rank"`
		}{h.Kind, h.Rank})
	}
	return json.Marshal(struct {
		Kind HintKind `json:"kind"`
		Suit Suit     `json:"suit"`
	}{h.Kind, h.Suit})
}

func (h HintValue) String() string {
	if h.Kind == RankHint {
		return fmt.Sprintf("%d", h.Rank)
	}
	return h.Suit.Name()
}

// SuitSet and RankSet are bitsets of candidates.
type SuitSet uint8

type RankSet uint8

func (s SuitSet) Has(suit Suit) bool { return s&(1<<suit) != 0 }
func (s SuitSet) Len() int           { return bits.OnesCount8(uint8(s)) }
func (r RankSet) Has(rank Rank) bool { return r&(1<<rank) != 0 }
func (r RankSet) Len() int           { return bits.OnesCount8(uint8(r)) }

// Knowledge is the public information about one held card: the suits and
// ranks it can still be, and the hints that touched it or passed it by.
type Knowledge struct {
	Suits    SuitSet     `json:"suits"`
	Ranks    RankSet     `json:"ranks"`
	Positive []HintValue `json:"positive,omitempty"`
	Negative []HintValue `json:"negative,omitempty"`
}

func newKnowledge(suits []Suit) Knowledge {
	var k Knowledge
	for _, s := range suits {
		k.Suits |= 1 << s
	}
	for r := MinRank; r <= MaxRank; r++ {
		k.Ranks |= 1 << r
	}
	return k
}

func (k *Knowledge) learn(h HintValue, match bool) {
	switch {
	case match && h.Kind == RankHint:
		k.Ranks &= 1 << h.Rank
	case match:
		k.Suits &= 1<<h.Suit | 1<<Rainbow
	case h.Kind == RankHint:
		k.Ranks &^= 1 << h.Rank
	default:
		k.Suits &^= 1<<h.Suit | 1<<Rainbow
	}
	if match {
		k.Positive = append(k.Positive, h)
	} else {
		k.Negative = append(k.Negative, h)
	}
}

func (k Knowledge) clone() Knowledge {
	k.Positive = slices.Clone(k.Positive)
	k.Negative = slices.Clone(k.Negative)
	return k
}

// CanBe reports whether c is consistent with every hint received.
func (k Knowledge) CanBe(c Card) bool {
	return k.Suits.Has(c.Suit) && k.Ranks.Has(c.Rank)
}

func (k Knowledge) KnownRank() (Rank, bool) {
	if k.Ranks.Len() != 1 {
		return 0, false
	}
	return Rank(bits.TrailingZeros8(uint8(k.Ranks))), true
}

func (k Knowledge) KnownSuit() (Suit, bool) {
	if k.Suits.Len() != 1 {
		return 0, false
	}
	return Suit(bits.TrailingZeros8(uint8(k.Suits))), true
}

// Known returns the card if hints alone pin down both suit and rank.
func (k Knowledge) Known() (Card, bool) {
	s, okSuit := k.KnownSuit()
	r, okRank := k.KnownRank()
	if !okSuit || !okRank {
		return Card{}, false
	}
	return Card{Suit: s, Rank: r}, true
}

// Candidates lists the cards this card may still be, dropping identities
// whose every copy is already accounted for in seen.
func (k Knowledge) Candidates(v Variant, seen map[Card]int) []Card {
	var out []Card
	for _, s := range v.Suits() {
		for r := MinRank; r <= MaxRank; r++ {
			c := Card{Suit: s, Rank: r}
			if k.CanBe(c) && seen[c] < v.Copies(c) {
				out = append(out, c)
			}
		}
	}
	return out
}
