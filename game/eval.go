package game

// Board is the public part of a round that card evaluation depends on: the
// variant, the tableau and how many copies of each card were discarded.
type Board struct {
	Variant   Variant
	Tableau   Tableau
	Discarded map[Card]int
}

func (b Board) Copies(c Card) int {
	return b.Variant.Copies(c)
}

func (b Board) Playable(c Card) bool {
	return b.Tableau.Playable(c)
}

func (b Board) Played(c Card) bool {
	return b.Tableau.Played(c)
}

// Dead reports whether c can never be played: it is already on the tableau,
// or every copy of a lower rank of its suit has been discarded.
func (b Board) Dead(c Card) bool {
	if b.Played(c) {
		return true
	}
	for r := b.Tableau.Height(c.Suit) + 1; r < c.Rank; r++ {
		lower := Card{Suit: c.Suit, Rank: r}
		if b.Discarded[lower] >= b.Copies(lower) {
			return true
		}
	}
	return false
}

// Critical reports whether c is the last live copy of a card still needed.
func (b Board) Critical(c Card) bool {
	return !b.Dead(c) && b.Discarded[c]+1 >= b.Copies(c)
}

// Useful reports whether c can still contribute to the score.
func (b Board) Useful(c Card) bool {
	return !b.Dead(c)
}

// MaxReachable is the best score still achievable given the discards.
func (b Board) MaxReachable() int {
	total := 0
	for _, s := range b.Variant.Suits() {
		r := MinRank
		for ; r <= MaxRank; r++ {
			c := Card{Suit: s, Rank: r}
			if !b.Played(c) && b.Discarded[c] >= b.Copies(c) {
				break
			}
		}
		total += int(r - 1)
	}
	return total
}
