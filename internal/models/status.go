package models

// Status is the lifecycle state of an occurrence.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "InProgress"
	StatusClosed     Status = "Closed"
	StatusCancelled  Status = "Cancelled"
)

// Statuses is the closed set of recognized lifecycle states. Anything
// outside this set is rejected before it reaches the store.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusClosed, StatusCancelled}

// Valid reports whether s is a recognized lifecycle state.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// TransitionPolicy decides whether an occurrence may move from one
// recognized state to another. Both arguments are already known to be valid.
type TransitionPolicy func(from, to Status) bool

// AllowAnyTransition permits every move between recognized states.
func AllowAnyTransition(from, to Status) bool {
	return true
}

// TableTransitionPolicy builds a policy from an adjacency table mapping a
// state to the set of states it may move to. States missing from the table
// allow no outgoing transitions.
func TableTransitionPolicy(table map[Status][]Status) TransitionPolicy {
	return func(from, to Status) bool {
		for _, next := range table[from] {
			if next == to {
				return true
			}
		}
		return false
	}
}
