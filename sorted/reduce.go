package sorted

import (
	nt "vista/entity"
)

// State is the active sort key and direction.
// An empty Key leaves records in source order.
type State struct {
	Key       string       `yaml:"key,omitempty"`
	Direction nt.Direction `yaml:"direction,omitempty"`
}

// ActionType names a sort state transition.
type ActionType string

const (
	SetSortKey      ActionType = "set-sort-key"
	ToggleSortKey   ActionType = "toggle-sort-key"
	SetDirection    ActionType = "set-direction"
	ToggleDirection ActionType = "toggle-direction"
)

// Action is a transition and its payload; Key or Direction as the type needs.
type Action struct {
	Type      ActionType
	Key       string
	Direction nt.Direction
}

var reducers = map[ActionType]func(State, Action) State{
	SetSortKey: func(_ State, act Action) State {
		return State{Key: act.Key, Direction: nt.Descending}
	},
	ToggleSortKey: func(state State, act Action) State {
		if state.Key != "" && state.Key == act.Key {
			return State{Direction: state.Direction.Flip()}
		}
		return State{Key: act.Key, Direction: nt.Descending}
	},
	SetDirection: func(state State, act Action) State {
		state.Direction = act.Direction
		return state
	},
	ToggleDirection: func(state State, _ Action) State {
		state.Direction = state.Direction.Flip()
		return state
	},
}

// Reduce returns the state following action.
// Unknown action types leave state unchanged.
func Reduce(state State, act Action) State {

	reducer, ok := reducers[act.Type]
	if !ok {
		return state
	}
	return reducer(state, act)
}
