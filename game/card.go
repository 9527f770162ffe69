package game

import (
	"fmt"
	"strconv"
)

type Suit uint8

const (
	Red Suit = iota
	Yellow
	Green
	Blue
	White
	Purple
	Black
	// Rainbow is touched by every suit hint and cannot be named by one.
	Rainbow
)

// NumSuits is the number of suits any variant can draw from.
const NumSuits = 8

var suitLetters = [NumSuits]byte{'r', 'y', 'g', 'b', 'w', 'p', 'k', 'm'}

var suitNames = [NumSuits]string{"red", "yellow", "green", "blue", "white", "purple", "black", "rainbow"}

func (s Suit) String() string {
	if int(s) >= NumSuits {
		return "?"
	}
	return string(suitLetters[s])
}

// Name returns the long name of the suit, e.g. "yellow".
func (s Suit) Name() string {
	if int(s) >= NumSuits {
		return "unknown"
	}
	return suitNames[s]
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.Name()), nil
}

func ParseSuit(b byte) (Suit, error) {
	for i, l := range suitLetters {
		if l == b {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", b)
}

type Rank uint8

const (
	MinRank Rank = 1
	MaxRank Rank = 5
)

// Card is an immutable (suit, rank) pair. Two equal cards are
// interchangeable for the rules.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return strconv.Itoa(int(c.Rank)) + c.Suit.String()
}

// ParseCard parses the short form produced by String, e.g. "3b".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("malformed card %q", s)
	}
	r := Rank(s[0] - '0')
	if r < MinRank || r > MaxRank {
		return Card{}, fmt.Errorf("malformed card %q: rank out of range", s)
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, fmt.Errorf("malformed card %q: %w", s, err)
	}
	return Card{Suit: suit, Rank: r}, nil
}

// MustParseCards parses a space separated list of cards and panics on
// malformed input. Meant for scripted decks.
func MustParseCards(s string) []Card {
	var cards []Card
	start := -1
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if start >= 0 {
				c, err := ParseCard(s[start:i])
				if err != nil {
					panic(err)
				}
				cards = append(cards, c)
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	return cards
}

// MarshalText encodes the zero Card as an empty string.
func (c Card) MarshalText() ([]byte, error) {
	if c.Rank == 0 {
		return nil, nil
	}
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
