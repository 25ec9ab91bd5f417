package route

import (
	"context"
	"fmt"
	"time"
)

// LocationPoint is an immutable latitude/longitude pair passed by value
// through query parameters and controller state.
type LocationPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Query is a one-shot route request, constructed fresh per request and never
// persisted.
type Query struct {
	Origin        LocationPoint
	Destination   LocationPoint
	Mode          TravelMode
	DepartureTime *time.Time
}

// Key returns a stable identity for the (origin, destination, mode) tuple.
// Coordinates are keyed at 1e-6 degree resolution, finer than the 1e-5
// polyline encoding precision.
func (q Query) Key() string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f|%s",
		q.Origin.Latitude, q.Origin.Longitude,
		q.Destination.Latitude, q.Destination.Longitude,
		q.Mode)
}

// Result is a computed route, derived entirely from the provider response and
// held only until the input tuple changes.
type Result struct {
	Path            []LocationPoint
	DistanceMeters  int
	DurationSeconds int
	Legs            []Leg
}

// Leg is a sub-segment of a route.
type Leg struct {
	Steps []Step
}

// Step is the smallest mode-homogeneous movement within a leg.
type Step struct {
	Mode    TravelMode
	Start   LocationPoint
	End     LocationPoint
	Transit *TransitDetail
}

// TransitDetail carries the transit-specific sub-object of a step.
type TransitDetail struct {
	DepartureStop Stop
	ArrivalStop   Stop
	LineName      string
	LineShortName string
}

// Stop is a named transit stop position.
type Stop struct {
	Name     string
	Position LocationPoint
}

// TransitStop is a display entity extracted from a transit route's steps.
type TransitStop struct {
	Position LocationPoint `json:"position"`
	Name     string        `json:"name"`
	// IsTransfer is carried for the client contract but transfer detection is
	// not implemented; it is always false.
	IsTransfer  bool   `json:"is_transfer"`
	TransitLine string `json:"transit_line,omitempty"`
}

// unknownLine is the placeholder when a transit line has no usable name.
const unknownLine = "unknown"

// ExtractTransitStops walks the route's legs and steps and emits a stop for
// the departure and arrival of every transit step, in traversal order.
// Non-transit routes yield nil.
func ExtractTransitStops(r *Result) []TransitStop {
	if r == nil {
		return nil
	}
	var stops []TransitStop
	for _, leg := range r.Legs {
		for _, step := range leg.Steps {
			if step.Mode != ModeTransit || step.Transit == nil {
				continue
			}
			line := step.Transit.LineShortName
			if line == "" {
				line = step.Transit.LineName
			}
			if line == "" {
				line = unknownLine
			}
			stops = append(stops,
				TransitStop{
					Position:    step.Transit.DepartureStop.Position,
					Name:        step.Transit.DepartureStop.Name,
					TransitLine: line,
				},
				TransitStop{
					Position:    step.Transit.ArrivalStop.Position,
					Name:        step.Transit.ArrivalStop.Name,
					TransitLine: line,
				})
		}
	}
	return stops
}

// Bounds is the bounding region of a path, used to fit the map viewport.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// BoundsOf computes the bounding region of an ordered path. It returns nil
// for an empty path.
func BoundsOf(path []LocationPoint) *Bounds {
	if len(path) == 0 {
		return nil
	}
	b := &Bounds{
		North: path[0].Latitude,
		South: path[0].Latitude,
		East:  path[0].Longitude,
		West:  path[0].Longitude,
	}
	for _, p := range path[1:] {
		if p.Latitude > b.North {
			b.North = p.Latitude
		}
		if p.Latitude < b.South {
			b.South = p.Latitude
		}
		if p.Longitude > b.East {
			b.East = p.Longitude
		}
		if p.Longitude < b.West {
			b.West = p.Longitude
		}
	}
	return b
}

// Provider computes a route for a query against an external routing service.
type Provider interface {
	ComputeRoute(ctx context.Context, q Query) (*Result, error)
}
