package game

// Tableau records the highest rank played on each suit; 0 means none.
type Tableau [NumSuits]Rank

func (t Tableau) Height(s Suit) Rank {
	return t[s]
}

// Playable reports whether c extends its stack by exactly one.
func (t Tableau) Playable(c Card) bool {
	return t[c.Suit]+1 == c.Rank
}

// Played reports whether c, or a card of the same suit above it, is
// already on the tableau.
func (t Tableau) Played(c Card) bool {
	return t[c.Suit] >= c.Rank
}

// Total is the number of cards on the tableau, which is also the score.
func (t Tableau) Total() int {
	n := 0
	for _, r := range t {
		n += int(r)
	}
	return n
}

// play puts c on its stack and reports whether it fit.
func (t *Tableau) play(c Card) bool {
	if !t.Playable(c) {
		return false
	}
	t[c.Suit] = c.Rank
	return true
}
