package agent

import "hanabi/game"

type Agent interface {
	// Decide returns the action for the seat whose turn it is. It must not
	// keep the view past the call.
	Decide(view game.View) game.Action
}

// Observer is implemented by agents that track the round between turns.
// Every observer sees every applied turn through its own view.
type Observer interface {
	Observe(view game.View, turn game.Turn)
}

// Sighted is implemented by agents that need more than a masked view.
type Sighted interface {
	Capability() game.Capability
}

// CapabilityOf returns what a may see; MaskedSight unless it says otherwise.
func CapabilityOf(a Agent) game.Capability {
	if s, ok := a.(Sighted); ok {
		return s.Capability()
	}
	return game.MaskedSight
}
