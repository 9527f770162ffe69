package game

import (
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Deck is a draw-once sequence of cards, drawn from the front.
type Deck struct {
	cards []Card
}

// NewDeck returns the full, unshuffled deck of a variant.
func NewDeck(v Variant) *Deck {
	d := &Deck{}
	for _, s := range v.Suits() {
		for r := MinRank; r <= MaxRank; r++ {
			c := Card{Suit: s, Rank: r}
			for i := 0; i < v.Copies(c); i++ {
				d.cards = append(d.cards, c)
			}
		}
	}
	return d
}

// NewStackedDeck returns a deck that deals cards in exactly the given order.
func NewStackedDeck(cards []Card) *Deck {
	return &Deck{cards: slices.Clone(cards)}
}

// Shuffle reorders the deck with a generator seeded from seed, so equal
// seeds give equal decks.
func (d *Deck) Shuffle(seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}
