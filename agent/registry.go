package agent

import (
	"fmt"
	"sort"
	"strings"

	"hanabi/agent/hat"
	"hanabi/game"
	"hanabi/utils"
)

// Seat is what a factory gets to build the agent for one seat of a round.
type Seat struct {
	Index   int
	Players int
	Rules   game.Rules
	shared  map[string]any
}

// Shared returns the value stored under key for this round, building it on
// first use. Agents of one strategy use it to share immutable state.
func (s Seat) Shared(key string, build func() any) any {
	if v, ok := s.shared[key]; ok {
		return v
	}
	v := build()
	s.shared[key] = v
	return v
}

type Entry struct {
	Name       string
	MinPlayers int
	MaxPlayers int
	// Homogeneous strategies only work when every seat runs them.
	Homogeneous bool
	Sight       game.Capability
	New         func(seat Seat) (Agent, error)
}

var registry = map[string]Entry{
	"basic": {
		Name:       "basic",
		MinPlayers: game.MinPlayers,
		MaxPlayers: game.MaxPlayers,
		New: func(seat Seat) (Agent, error) {
			return NewBasic(seat.Index), nil
		},
	},
	"cheater": {
		Name:       "cheater",
		MinPlayers: game.MinPlayers,
		MaxPlayers: game.MaxPlayers,
		Sight:      game.FullSight,
		New: func(seat Seat) (Agent, error) {
			return NewCheater(seat.Index), nil
		},
	},
	"hat": {
		Name:        "hat",
		MinPlayers:  4,
		MaxPlayers:  5,
		Homogeneous: true,
		New: func(seat Seat) (Agent, error) {
			shared := seat.Shared("hat", func() any {
				convention, err := hat.NewConvention(seat.Players)
				if err != nil {
					return err
				}
				return convention
			})
			switch v := shared.(type) {
			case error:
				return nil, v
			case *hat.Convention:
				return hat.NewPlayer(seat.Index, v), nil
			}
			return nil, fmt.Errorf("unexpected shared hat state %T", shared)
		},
	},
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (Entry, bool) {
	e, ok := registry[strings.ToLower(name)]
	return e, ok
}

// Validate checks a line-up before any round starts. police rejects
// agents that see their own cards.
func Validate(names []string, police bool) error {
	players := len(names)
	if players < game.MinPlayers || players > game.MaxPlayers {
		return &game.ConfigurationError{Field: "players", Reason: fmt.Sprintf("need %d to %d players, got %d", game.MinPlayers, game.MaxPlayers, players)}
	}
	for _, name := range names {
		e, ok := Lookup(name)
		if !ok {
			return &game.ConfigurationError{Field: "players", Reason: fmt.Sprintf("unknown player %q (want one of %s)", name, strings.Join(Names(), ", "))}
		}
		if players < e.MinPlayers || players > e.MaxPlayers {
			return &game.ConfigurationError{Field: "players", Reason: fmt.Sprintf("%s needs %d to %d players, got %d", e.Name, e.MinPlayers, e.MaxPlayers, players)}
		}
		if e.Homogeneous && utils.Count(names, func(n string) bool { return strings.EqualFold(n, e.Name) }) != players {
			return &game.ConfigurationError{Field: "players", Reason: fmt.Sprintf("every player must be %s when one is", e.Name)}
		}
		if police && e.Sight == game.FullSight {
			return &game.ConfigurationError{Field: "players", Reason: fmt.Sprintf("%s looks at its own cards, which police mode forbids", e.Name)}
		}
	}
	return nil
}

// NewTeam builds one agent per name for a single round.
func NewTeam(names []string, rules game.Rules) ([]Agent, error) {
	if err := Validate(names, rules.Strict); err != nil {
		return nil, err
	}
	shared := make(map[string]any)
	team := make([]Agent, len(names))
	for i, name := range names {
		e, _ := Lookup(name)
		a, err := e.New(Seat{Index: i, Players: len(names), Rules: rules, shared: shared})
		if err != nil {
			return nil, fmt.Errorf("failed to build %s for seat %d: %w", e.Name, i, err)
		}
		team[i] = a
	}
	return team, nil
}

// DisplayNames labels seats by strategy, numbering repeated strategies.
func DisplayNames(names []string) []string {
	labels := make([]string, len(names))
	for i, name := range names {
		label := strings.ToLower(name)
		if utils.Count(names, func(n string) bool { return strings.EqualFold(n, name) }) > 1 {
			label = fmt.Sprintf("%s %d", label, utils.Count(names[:i+1], func(n string) bool { return strings.EqualFold(n, name) }))
		}
		labels[i] = label
	}
	return labels
}
