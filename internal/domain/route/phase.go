package route

import "fmt"

// Phase represents the current state of the directions controller for one
// input tuple.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseAwaitingRoute Phase = "awaiting_route"
	PhaseRouteReady    Phase = "route_ready"
	PhaseRouteFailed   Phase = "route_failed"
)

// validTransitions defines the state machine for route acquisition. Ready and
// failed are terminal until the input tuple changes, which re-enters
// awaiting_route.
var validTransitions = map[Phase][]Phase{
	PhaseIdle:          {PhaseAwaitingRoute},
	PhaseAwaitingRoute: {PhaseRouteReady, PhaseRouteFailed, PhaseAwaitingRoute},
	PhaseRouteReady:    {PhaseAwaitingRoute},
	PhaseRouteFailed:   {PhaseAwaitingRoute},
}

// IsValid returns true if the phase is a recognized controller phase.
func (p Phase) IsValid() bool {
	_, exists := validTransitions[p]
	return exists
}

// CanTransitionTo returns true if a transition from this phase to the target
// is allowed.
func (p Phase) CanTransitionTo(target Phase) bool {
	allowed, exists := validTransitions[p]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsSettled returns true if the phase holds a final outcome for the current
// input tuple (ready or failed).
func (p Phase) IsSettled() bool {
	return p == PhaseRouteReady || p == PhaseRouteFailed
}

// String returns the string representation of the phase.
func (p Phase) String() string { return string(p) }

// ParsePhase converts a string to a Phase, returning an error if invalid.
func ParsePhase(s string) (Phase, error) {
	phase := Phase(s)
	if !phase.IsValid() {
		return "", fmt.Errorf("invalid route phase: %s", s)
	}
	return phase, nil
}
