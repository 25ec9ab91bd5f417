package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhdiapa/service-guide/internal/domain/route"
)

func TestPhaseTransitions(t *testing.T) {
	assert.True(t, route.PhaseIdle.CanTransitionTo(route.PhaseAwaitingRoute))
	assert.False(t, route.PhaseIdle.CanTransitionTo(route.PhaseRouteReady))

	assert.True(t, route.PhaseAwaitingRoute.CanTransitionTo(route.PhaseRouteReady))
	assert.True(t, route.PhaseAwaitingRoute.CanTransitionTo(route.PhaseRouteFailed))

	// Ready and failed only ever re-enter awaiting when the input changes.
	assert.True(t, route.PhaseRouteReady.CanTransitionTo(route.PhaseAwaitingRoute))
	assert.True(t, route.PhaseRouteFailed.CanTransitionTo(route.PhaseAwaitingRoute))
	assert.False(t, route.PhaseRouteFailed.CanTransitionTo(route.PhaseRouteReady))
	assert.False(t, route.PhaseRouteReady.CanTransitionTo(route.PhaseRouteFailed))
}

func TestPhaseIsSettled(t *testing.T) {
	assert.False(t, route.PhaseIdle.IsSettled())
	assert.False(t, route.PhaseAwaitingRoute.IsSettled())
	assert.True(t, route.PhaseRouteReady.IsSettled())
	assert.True(t, route.PhaseRouteFailed.IsSettled())
}

func TestParsePhase(t *testing.T) {
	phase, err := route.ParsePhase("route_ready")
	require.NoError(t, err)
	assert.Equal(t, route.PhaseRouteReady, phase)

	_, err = route.ParsePhase("finished")
	require.Error(t, err)
}
