package game

import (
	"encoding/json"

	"golang.org/x/exp/slices"
)

type Outcome int

const (
	OutcomePlayed Outcome = iota
	OutcomeMisplayed
	OutcomeDiscarded
	OutcomeHinted
)

var outcomeNames = [...]string{"played", "misplayed", "discarded", "hinted"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Result is the public effect of one applied action.
type Result struct {
	Outcome Outcome `json:"outcome"`
	// Card is the card that left the actor's hand, unset for hints.
	Card Card `json:"card"`
	// Touched lists the target's slots a hint matched.
	Touched []int `json:"touched,omitempty"`
	Drew    bool  `json:"drew"`
	Hints   int   `json:"hints"`
	Strikes int   `json:"strikes"`
}

// Turn is one entry of the round trace.
type Turn struct {
	Number     int    `json:"turn"`
	Player     int    `json:"player"`
	HandBefore []Card `json:"hand_before,omitempty"`
	Action     Action `json:"action"`
	Result     Result `json:"result"`
}

// Public strips what the actor could not see. Observers get this copy.
func (t Turn) Public() Turn {
	t.HandBefore = nil
	t.Result.Touched = slices.Clone(t.Result.Touched)
	return t
}
