package location_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/domain/route"
	"github.com/uhdiapa/service-guide/internal/location"
)

type failingSource struct{}

func (failingSource) Current(context.Context) (route.LocationPoint, error) {
	return route.LocationPoint{}, errors.New("position unavailable")
}

func TestParsePoint(t *testing.T) {
	pt, ok := location.ParsePoint("37.5665", "126.9780")
	require.True(t, ok)
	assert.Equal(t, 37.5665, pt.Latitude)
	assert.Equal(t, 126.978, pt.Longitude)

	_, ok = location.ParsePoint("", "126.9780")
	assert.False(t, ok)
	_, ok = location.ParsePoint("abc", "126.9780")
	assert.False(t, ok)
	_, ok = location.ParsePoint("NaN", "126.9780")
	assert.False(t, ok)
	_, ok = location.ParsePoint("37.5", "+Inf")
	assert.False(t, ok)
}

func TestResolvePrefersClientCoordinates(t *testing.T) {
	svc := location.NewService(location.FixedSource{
		Point: route.LocationPoint{Latitude: 1, Longitude: 2},
	}, time.Second, zap.NewNop())

	pt, degraded := svc.Resolve(context.Background(), "37.5", "127.0")
	assert.False(t, degraded)
	assert.Equal(t, route.LocationPoint{Latitude: 37.5, Longitude: 127.0}, pt)
}

func TestResolveFallsBackToSource(t *testing.T) {
	svc := location.NewService(location.FixedSource{
		Point: route.LocationPoint{Latitude: 1, Longitude: 2},
	}, time.Second, zap.NewNop())

	pt, degraded := svc.Resolve(context.Background(), "", "")
	assert.False(t, degraded)
	assert.Equal(t, route.LocationPoint{Latitude: 1, Longitude: 2}, pt)
}

func TestResolveSentinelOnFailure(t *testing.T) {
	svc := location.NewService(failingSource{}, time.Second, zap.NewNop())

	// The flow proceeds with the sentinel rather than blocking.
	pt, degraded := svc.Resolve(context.Background(), "", "")
	assert.True(t, degraded)
	assert.Equal(t, location.Sentinel, pt)
}

func TestWatchDeliversAndStopsOnCancel(t *testing.T) {
	svc := location.NewService(location.FixedSource{
		Point: route.LocationPoint{Latitude: 3, Longitude: 4},
	}, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	updates := svc.Watch(ctx)

	select {
	case pt, ok := <-updates:
		require.True(t, ok)
		assert.Equal(t, route.LocationPoint{Latitude: 3, Longitude: 4}, pt)
	case <-time.After(time.Second):
		t.Fatal("no position update received")
	}

	cancel()

	// The channel closes after cancellation; the subscription does not leak.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after cancel")
		}
	}
}
