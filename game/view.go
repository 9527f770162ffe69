package game

// Capability is what a seat is allowed to see.
type Capability int

const (
	MaskedSight Capability = iota // everything except one's own cards
	FullSight                     // every card, including one's own
)

// View is a read-only window on a round from one seat. It is only valid
// for the duration of the call it was handed to.
type View interface {
	Seat() int
	Players() int
	Rules() Rules
	Current() int
	Turn() int
	Status() Status
	Hints() int
	Strikes() int
	DeckLen() int
	Tableau() Tableau
	Board() Board
	Discards() []DiscardedCard
	HandLen(p int) int
	Knowledge(p, slot int) Knowledge
	// Card returns the card in p's slot if this view may see it.
	Card(p, slot int) (Card, bool)
	History() []Turn
	Legal(a Action) bool
}

type baseView struct {
	round *Round
	seat  int
}

func (v baseView) Seat() int                 { return v.seat }
func (v baseView) Players() int              { return v.round.Players() }
func (v baseView) Rules() Rules              { return v.round.rules }
func (v baseView) Current() int              { return v.round.current }
func (v baseView) Turn() int                 { return v.round.turns }
func (v baseView) Status() Status            { return v.round.status }
func (v baseView) Hints() int                { return v.round.hints }
func (v baseView) Strikes() int              { return v.round.strikes }
func (v baseView) DeckLen() int              { return v.round.deck.Len() }
func (v baseView) Tableau() Tableau          { return v.round.tableau }
func (v baseView) Board() Board              { return v.round.Board() }
func (v baseView) Discards() []DiscardedCard { return v.round.discards.Entries() }
func (v baseView) HandLen(p int) int         { return v.round.hands[p].Len() }

func (v baseView) Knowledge(p, slot int) Knowledge {
	return v.round.hands[p].Knowledge(slot)
}

// Legal only answers for the seat whose turn it is.
func (v baseView) Legal(a Action) bool {
	return v.round.current == v.seat && v.round.Legal(a)
}

// MaskedView hides the seat's own cards, including in the history.
type MaskedView struct {
	baseView
}

func NewMaskedView(r *Round, seat int) *MaskedView {
	return &MaskedView{baseView{round: r, seat: seat}}
}

func (v *MaskedView) Card(p, slot int) (Card, bool) {
	if p == v.seat {
		return Card{}, false
	}
	return v.round.hands[p].Card(slot), true
}

func (v *MaskedView) History() []Turn {
	history := v.round.Trace()
	for i, t := range history {
		if t.Player == v.seat {
			history[i] = t.Public()
		}
	}
	return history
}

// FullView sees every card. Only agents that declare FullSight get one.
type FullView struct {
	baseView
}

func NewFullView(r *Round, seat int) *FullView {
	return &FullView{baseView{round: r, seat: seat}}
}

func (v *FullView) Card(p, slot int) (Card, bool) {
	return v.round.hands[p].Card(slot), true
}

func (v *FullView) History() []Turn {
	return v.round.Trace()
}

// NewView returns the view matching capability c.
func NewView(r *Round, seat int, c Capability) View {
	if c == FullSight {
		return NewFullView(r, seat)
	}
	return NewMaskedView(r, seat)
}

// SeenCards counts every copy the seat can account for: the tableau, the
// discard pile and the other players' hands.
func SeenCards(v View) map[Card]int {
	seen := make(map[Card]int)
	tableau := v.Tableau()
	for _, s := range v.Rules().Variant.Suits() {
		for r := MinRank; r <= tableau.Height(s); r++ {
			seen[Card{Suit: s, Rank: r}]++
		}
	}
	for _, d := range v.Discards() {
		seen[d.Card]++
	}
	for p := 0; p < v.Players(); p++ {
		if p == v.Seat() {
			continue
		}
		for slot := 0; slot < v.HandLen(p); slot++ {
			if c, ok := v.Card(p, slot); ok {
				seen[c]++
			}
		}
	}
	return seen
}

// ProvablyPlayable reports whether every card the seat's slot can still be
// is playable.
func ProvablyPlayable(v View, seen map[Card]int, slot int) bool {
	board := v.Board()
	candidates := v.Knowledge(v.Seat(), slot).Candidates(board.Variant, seen)
	if len(candidates) == 0 {
		return false
	}
	for _, c := range candidates {
		if !board.Playable(c) {
			return false
		}
	}
	return true
}
