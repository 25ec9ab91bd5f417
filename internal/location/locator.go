package location

import (
	"context"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/domain/route"
)

// Sentinel is the degraded-accuracy fallback position used when no location
// can be determined. The flow proceeds with it rather than blocking.
var Sentinel = route.LocationPoint{Latitude: 0, Longitude: 0}

// Source supplies the device position. Implementations may be a fixed
// configured center or a real positioning backend.
type Source interface {
	Current(ctx context.Context) (route.LocationPoint, error)
}

// FixedSource always reports one configured point.
type FixedSource struct {
	Point route.LocationPoint
}

func (f FixedSource) Current(context.Context) (route.LocationPoint, error) {
	return f.Point, nil
}

// Service resolves one-shot positions and runs continuous watches.
type Service struct {
	source   Source
	interval time.Duration
	log      *zap.Logger
}

// NewService creates a location service polling the source at the given
// interval for watches.
func NewService(source Source, interval time.Duration, log *zap.Logger) *Service {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Service{source: source, interval: interval, log: log}
}

// Resolve returns the position for a request. Client-supplied coordinate
// strings win when both parse; otherwise the source is asked once; if that
// also fails the sentinel is returned with degraded=true.
func (s *Service) Resolve(ctx context.Context, latStr, lngStr string) (pt route.LocationPoint, degraded bool) {
	if pt, ok := ParsePoint(latStr, lngStr); ok {
		return pt, false
	}

	pt, err := s.source.Current(ctx)
	if err != nil {
		s.log.Warn("location unavailable, using sentinel", zap.Error(err))
		return Sentinel, true
	}
	return pt, false
}

// Watch emits position updates until ctx is cancelled. The channel is closed
// on cancellation so subscribers never leak.
func (s *Service) Watch(ctx context.Context) <-chan route.LocationPoint {
	updates := make(chan route.LocationPoint, 1)

	go func() {
		defer close(updates)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		emit := func() {
			pt, err := s.source.Current(ctx)
			if err != nil {
				s.log.Warn("watch position failed", zap.Error(err))
				return
			}
			select {
			case updates <- pt:
			case <-ctx.Done():
			}
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				emit()
			}
		}
	}()

	return updates
}

// ParsePoint parses coordinate strings with NaN guarding. Both must parse to
// finite numbers for ok to be true.
func ParsePoint(latStr, lngStr string) (route.LocationPoint, bool) {
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil ||
		math.IsNaN(lat) || math.IsNaN(lng) ||
		math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return route.LocationPoint{}, false
	}
	return route.LocationPoint{Latitude: lat, Longitude: lng}, true
}
