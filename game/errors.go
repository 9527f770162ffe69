package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalAction matches every *IllegalActionError.
	ErrIllegalAction = errors.New("illegal action")
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")
)

// IllegalActionError reports an action that the round refused. The round
// state is left untouched.
type IllegalActionError struct {
	Player int
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s by player %d: %s", e.Action, e.Player, e.Reason)
}

func (e *IllegalActionError) Is(target error) bool {
	return target == ErrIllegalAction
}

// ConfigurationError is raised before any round starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration: " + e.Reason
	}
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
