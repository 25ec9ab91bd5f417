package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/domain/apperr"
	"github.com/uhdiapa/service-guide/internal/domain/route"
)

// ProviderSource yields the routing provider once the map session has
// loaded. Satisfied by mapsession.Session.
type ProviderSource interface {
	Provider() (route.Provider, error)
}

// RouteInput is the directions view's input tuple. Origin and destination are
// nil until the corresponding query parameters parse.
type RouteInput struct {
	Origin          *route.LocationPoint
	Destination     *route.LocationPoint
	Mode            route.TravelMode
	DestinationName string
}

// query builds the provider query; valid only when both endpoints are set.
func (in RouteInput) query() route.Query {
	return route.Query{
		Origin:      *in.Origin,
		Destination: *in.Destination,
		Mode:        in.Mode,
	}
}

// complete reports whether both endpoints are present.
func (in RouteInput) complete() bool {
	return in.Origin != nil && in.Destination != nil
}

// RouteSummary is the normalized distance/duration presentation of a route.
type RouteSummary struct {
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
	DistanceText    string `json:"distance_text"`
	DurationText    string `json:"duration_text"`
}

// RouteSnapshot is the response representation of the controller state.
type RouteSnapshot struct {
	Phase           route.Phase           `json:"phase"`
	Mode            route.TravelMode      `json:"mode"`
	DestinationName string                `json:"destination_name"`
	Path            []route.LocationPoint `json:"path,omitempty"`
	Summary         *RouteSummary         `json:"summary,omitempty"`
	TransitStops    []route.TransitStop   `json:"transit_stops,omitempty"`
	Viewport        *route.Bounds         `json:"viewport,omitempty"`
	Message         string                `json:"message,omitempty"`
}

// DirectionsService acquires exactly one route per (origin, destination,
// travel mode) tuple and keeps the derived overlays (path, summary, transit
// stops, viewport) consistent with asynchronous provider responses.
//
// Guard discipline: `requested` is the single-flight flag for the current
// awaiting_route entry and resets only on a genuine transition into
// awaiting_route; `generation` increments on every such transition, and a
// response is applied only if the generation captured at issue time still
// matches, so a stale response can never clobber a fresh tuple's state.
type DirectionsService struct {
	session ProviderSource
	log     *zap.Logger

	mu         sync.Mutex
	phase      route.Phase
	key        string
	input      RouteInput
	generation uint64
	requested  bool
	result     *route.Result
	stops      []route.TransitStop
	viewport   *route.Bounds
	message    string
}

// NewDirectionsService creates a DirectionsService in the idle phase.
func NewDirectionsService(session ProviderSource, log *zap.Logger) *DirectionsService {
	return &DirectionsService{
		session: session,
		log:     log,
		phase:   route.PhaseIdle,
	}
}

// Resolve reconciles the controller with the given input and returns the
// resulting snapshot. An unchanged settled tuple is answered from state
// without touching the provider; a changed tuple discards previous results
// and issues exactly one new request. Failures are part of the snapshot, not
// an error: the view renders them, it does not bubble them.
func (s *DirectionsService) Resolve(ctx context.Context, input RouteInput) RouteSnapshot {
	s.mu.Lock()

	if !input.complete() {
		// No endpoints yet: reset to idle, dropping whatever tuple was live.
		if s.phase != route.PhaseIdle {
			s.reset(route.PhaseIdle, input, "")
		}
		s.input = input
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	key := input.query().Key()
	if key != s.key {
		// Genuine transition into awaiting_route: new search or mode change.
		s.reset(route.PhaseAwaitingRoute, input, key)
	}

	if s.phase.IsSettled() || s.requested {
		// Settled result for this tuple, or a request already in flight:
		// answer from state, never re-issue.
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	s.requested = true
	generation := s.generation
	q := input.query()
	s.mu.Unlock()

	result, err := s.fetch(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		// The tuple changed while the request was in flight; interest in this
		// response was cancelled.
		s.log.Debug("discarding stale route response",
			zap.Uint64("issued_generation", generation),
			zap.Uint64("current_generation", s.generation),
		)
		return s.snapshotLocked()
	}

	if err != nil {
		s.phase = route.PhaseRouteFailed
		s.message = failureMessage(err, q.Mode)
		s.result = nil
		s.stops = nil
		s.viewport = nil
		s.log.Warn("route request failed",
			zap.String("mode", q.Mode.String()),
			zap.Error(err),
		)
		return s.snapshotLocked()
	}

	s.phase = route.PhaseRouteReady
	s.result = result
	if q.Mode == route.ModeTransit {
		s.stops = route.ExtractTransitStops(result)
	}
	// Bounding region computed once per new result, not per read.
	s.viewport = route.BoundsOf(result.Path)
	s.log.Info("route ready",
		zap.String("mode", q.Mode.String()),
		zap.Int("points", len(result.Path)),
		zap.Int("distance_meters", result.DistanceMeters),
		zap.Int("duration_seconds", result.DurationSeconds),
	)
	return s.snapshotLocked()
}

// fetch obtains the provider and computes the route.
func (s *DirectionsService) fetch(ctx context.Context, q route.Query) (*route.Result, error) {
	provider, err := s.session.Provider()
	if err != nil {
		return nil, err
	}
	return provider.ComputeRoute(ctx, q)
}

// reset performs the transition into the given phase for a new input tuple,
// discarding derived state and re-arming the single-flight guard.
func (s *DirectionsService) reset(phase route.Phase, input RouteInput, key string) {
	s.phase = phase
	s.input = input
	s.key = key
	s.generation++
	s.requested = false
	s.result = nil
	s.stops = nil
	s.viewport = nil
	s.message = ""
}

func (s *DirectionsService) snapshotLocked() RouteSnapshot {
	snap := RouteSnapshot{
		Phase:           s.phase,
		Mode:            s.input.Mode,
		DestinationName: s.input.DestinationName,
		Message:         s.message,
	}
	if s.result != nil {
		snap.Path = s.result.Path
		snap.Summary = &RouteSummary{
			DistanceMeters:  s.result.DistanceMeters,
			DurationSeconds: s.result.DurationSeconds,
			DistanceText:    route.FormatDistanceKm(s.result.DistanceMeters),
			DurationText:    route.FormatDurationMinutes(s.result.DurationSeconds),
		}
		snap.TransitStops = s.stops
		snap.Viewport = s.viewport
	}
	return snap
}

// failureMessage words the user notification by error class; every class
// lands in the same terminal phase.
func failureMessage(err error, mode route.TravelMode) string {
	switch apperr.KindOf(err) {
	case apperr.KindNoResults:
		return fmt.Sprintf("선택하신 이동 수단(%s)에 대한 경로를 찾을 수 없습니다.", mode)
	case apperr.KindConfiguration:
		return "경로 서비스가 설정되지 않았습니다. 관리자에게 문의하세요."
	case apperr.KindUnavailable:
		return "지도를 불러오는 중입니다. 잠시 후 다시 시도해주세요."
	default:
		return fmt.Sprintf("경로 요청에 실패했습니다. (%v)", err)
	}
}
