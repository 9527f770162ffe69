package game

import "fmt"

const (
	MaxHints   = 8
	MaxStrikes = 3
	MinPlayers = 2
	MaxPlayers = 5
)

// Variant is the game type; it fixes the suits in play and how many
// copies of each card exist.
type Variant string

const (
	VariantVanilla Variant = "vanilla" // five suits
	VariantPurple  Variant = "purple"  // a sixth regular suit
	VariantBlack   Variant = "black"   // a sixth suit with one copy of every rank
	VariantRainbow Variant = "rainbow" // a sixth suit that every suit hint touches
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantVanilla, VariantPurple, VariantBlack, VariantRainbow:
		return v, nil
	}
	return "", &ConfigurationError{Field: "game type", Reason: fmt.Sprintf("unknown game type %q (want vanilla, purple, black or rainbow)", s)}
}

func (v Variant) Suits() []Suit {
	suits := []Suit{Red, Yellow, Green, Blue, White}
	switch v {
	case VariantPurple:
		suits = append(suits, Purple)
	case VariantBlack:
		suits = append(suits, Black)
	case VariantRainbow:
		suits = append(suits, Rainbow)
	}
	return suits
}

// HintSuits are the suits a hint can name.
func (v Variant) HintSuits() []Suit {
	var suits []Suit
	for _, s := range v.Suits() {
		if s != Rainbow {
			suits = append(suits, s)
		}
	}
	return suits
}

// SuitHint is the suit hint that names c, or the first nameable suit for a
// rainbow card.
func (v Variant) SuitHint(c Card) HintValue {
	if c.Suit == Rainbow {
		return SuitValue(v.HintSuits()[0])
	}
	return SuitValue(c.Suit)
}

// Copies returns how many physical copies of c the deck holds.
func (v Variant) Copies(c Card) int {
	switch {
	case c.Suit == Black:
		return 1
	case c.Rank == 1:
		return 3
	case c.Rank == MaxRank:
		return 1
	}
	return 2
}

// DeckSize is the number of cards in a full deck of the variant.
func (v Variant) DeckSize() int {
	n := 0
	for _, s := range v.Suits() {
		for r := MinRank; r <= MaxRank; r++ {
			n += v.Copies(Card{Suit: s, Rank: r})
		}
	}
	return n
}

// MaxScore is the score of a perfect game.
func (v Variant) MaxScore() int {
	return len(v.Suits()) * int(MaxRank)
}

// LossPolicy decides the score of a round that ends on the third strike.
type LossPolicy string

const (
	LossZero LossPolicy = "zero" // the round scores nothing
	LossKeep LossPolicy = "keep" // the tableau at the third strike counts
)

func ParseLossPolicy(s string) (LossPolicy, error) {
	switch p := LossPolicy(s); p {
	case LossZero, LossKeep:
		return p, nil
	}
	return "", &ConfigurationError{Field: "loss policy", Reason: fmt.Sprintf("unknown loss policy %q (want zero or keep)", s)}
}

type Rules struct {
	Variant Variant
	Loss    LossPolicy
	// Strict rejects discarding while all hint tokens are available.
	Strict bool
}

func NewStandardRules() Rules {
	return Rules{
		Variant: VariantVanilla,
		Loss:    LossZero,
	}
}

// HandSize is the number of cards dealt to each player.
func HandSize(players int) int {
	if players <= 3 {
		return 5
	}
	return 4
}
