package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhdiapa/service-guide/internal/domain/route"
)

func TestQueryKey(t *testing.T) {
	base := route.Query{
		Origin:      route.LocationPoint{Latitude: 37.5665, Longitude: 126.978},
		Destination: route.LocationPoint{Latitude: 37.58, Longitude: 127.0},
		Mode:        route.ModeDrive,
	}

	same := base
	assert.Equal(t, base.Key(), same.Key())

	modeChanged := base
	modeChanged.Mode = route.ModeTransit
	assert.NotEqual(t, base.Key(), modeChanged.Key())

	destChanged := base
	destChanged.Destination.Latitude += 0.001
	assert.NotEqual(t, base.Key(), destChanged.Key())
}

func TestParseTravelMode(t *testing.T) {
	tests := []struct {
		in      string
		want    route.TravelMode
		wantErr bool
	}{
		{in: "", want: route.ModeDrive},
		{in: "DRIVE", want: route.ModeDrive},
		{in: "TRANSIT", want: route.ModeTransit},
		{in: "DRIVING", want: route.ModeDrive},
		{in: "WALKING", want: route.ModeWalk},
		{in: "BICYCLING", want: route.ModeBicycle},
		{in: "TELEPORT", wantErr: true},
		{in: "drive", wantErr: true},
	}
	for _, tt := range tests {
		got, err := route.ParseTravelMode(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func transitStep(depName string, dep route.LocationPoint, arrName string, arr route.LocationPoint, lineShort, lineFull string) route.Step {
	return route.Step{
		Mode: route.ModeTransit,
		Transit: &route.TransitDetail{
			DepartureStop: route.Stop{Name: depName, Position: dep},
			ArrivalStop:   route.Stop{Name: arrName, Position: arr},
			LineShortName: lineShort,
			LineName:      lineFull,
		},
	}
}

func TestExtractTransitStops(t *testing.T) {
	cityHall := route.LocationPoint{Latitude: 37.5657, Longitude: 126.9769}
	jongno := route.LocationPoint{Latitude: 37.5704, Longitude: 126.9831}
	hyehwa := route.LocationPoint{Latitude: 37.5822, Longitude: 127.0019}

	result := &route.Result{
		Legs: []route.Leg{{
			Steps: []route.Step{
				{Mode: route.ModeWalk},
				transitStep("City Hall", cityHall, "Jongno 3-ga", jongno, "1", "Line 1"),
				{Mode: route.ModeWalk},
				transitStep("Jongno 3-ga", jongno, "Hyehwa", hyehwa, "", "Line 4"),
			},
		}},
	}

	stops := route.ExtractTransitStops(result)
	require.Len(t, stops, 4)

	// Traversal order: departure then arrival, per transit step.
	assert.Equal(t, "City Hall", stops[0].Name)
	assert.Equal(t, cityHall, stops[0].Position)
	assert.Equal(t, "Jongno 3-ga", stops[1].Name)
	assert.Equal(t, "Jongno 3-ga", stops[2].Name)
	assert.Equal(t, "Hyehwa", stops[3].Name)

	// Short name wins; full name is the fallback.
	assert.Equal(t, "1", stops[0].TransitLine)
	assert.Equal(t, "Line 4", stops[2].TransitLine)

	// Transfer detection is not implemented.
	for _, s := range stops {
		assert.False(t, s.IsTransfer)
	}
}

func TestExtractTransitStopsUnknownLine(t *testing.T) {
	result := &route.Result{
		Legs: []route.Leg{{
			Steps: []route.Step{
				transitStep("A", route.LocationPoint{}, "B", route.LocationPoint{}, "", ""),
			},
		}},
	}
	stops := route.ExtractTransitStops(result)
	require.Len(t, stops, 2)
	assert.Equal(t, "unknown", stops[0].TransitLine)
}

func TestExtractTransitStopsEmpty(t *testing.T) {
	assert.Nil(t, route.ExtractTransitStops(nil))
	assert.Nil(t, route.ExtractTransitStops(&route.Result{
		Legs: []route.Leg{{Steps: []route.Step{{Mode: route.ModeWalk}}}},
	}))
}

func TestBoundsOf(t *testing.T) {
	assert.Nil(t, route.BoundsOf(nil))

	path := []route.LocationPoint{
		{Latitude: 38.5, Longitude: -120.2},
		{Latitude: 40.7, Longitude: -120.95},
		{Latitude: 43.252, Longitude: -126.453},
	}
	b := route.BoundsOf(path)
	require.NotNil(t, b)
	assert.Equal(t, 43.252, b.North)
	assert.Equal(t, 38.5, b.South)
	assert.Equal(t, -120.2, b.East)
	assert.Equal(t, -126.453, b.West)
}
