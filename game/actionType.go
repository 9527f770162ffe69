package game

import (
	"encoding/json"
	"fmt"
)

// ActionType is the kind of move a player makes on their turn.
type ActionType int

const (
	Play ActionType = iota
	Discard
	Hint
)

var actionNames = [...]string{"play", "discard", "hint"}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[t]
}

func (t ActionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Action is a player's move. Slot is used by Play and Discard, Target and
// Value by Hint.
type Action struct {
	Type   ActionType `json:"type"`
	Slot   int        `json:"slot"`
	Target int        `json:"target"`
	Value  HintValue  `json:"value"`
}

func PlayAction(slot int) Action {
	return Action{Type: Play, Slot: slot}
}

func DiscardAction(slot int) Action {
	return Action{Type: Discard, Slot: slot}
}

func HintAction(target int, value HintValue) Action {
	return Action{Type: Hint, Target: target, Value: value}
}

func (a Action) String() string {
	switch a.Type {
	case Play, Discard:
		return fmt.Sprintf("%s slot %d", a.Type, a.Slot)
	case Hint:
		return fmt.Sprintf("hint %s to player %d", a.Value, a.Target)
	}
	return a.Type.String()
}
