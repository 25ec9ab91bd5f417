package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"github.com/uhdiapa/service-guide/internal/domain/apperr"
	"github.com/uhdiapa/service-guide/internal/domain/route"
)

// Config holds the immutable settings for the Routes API client.
type Config struct {
	Endpoint     string
	APIKey       string
	LanguageCode string
	Units        string
	Timeout      time.Duration
}

// Client calls the Routes API v2 computeRoutes endpoint. The field masks are
// decided at construction and never change afterwards.
type Client struct {
	cfg        Config
	httpClient *http.Client
	fieldMasks map[route.TravelMode]string
	log        *zap.Logger
}

// baseFieldMask covers the fields every travel mode needs.
const baseFieldMask = "routes.distanceMeters,routes.duration,routes.polyline.encodedPolyline"

// transitFieldMask widens the base mask with per-step transit detail, needed
// to extract transit stops.
const transitFieldMask = baseFieldMask +
	",routes.legs.steps.travelMode" +
	",routes.legs.steps.startLocation" +
	",routes.legs.steps.endLocation" +
	",routes.legs.steps.transitDetails"

// NewClient creates a Routes API client.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		fieldMasks: map[route.TravelMode]string{
			route.ModeDrive:   baseFieldMask,
			route.ModeWalk:    baseFieldMask,
			route.ModeBicycle: baseFieldMask,
			route.ModeTransit: transitFieldMask,
		},
		log: log,
	}
}

// --- wire types ---

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type apiLocation struct {
	LatLng latLng `json:"latLng"`
}

type waypoint struct {
	Location apiLocation `json:"location"`
}

type routeModifiers struct {
	AvoidTolls    bool `json:"avoidTolls"`
	AvoidHighways bool `json:"avoidHighways"`
	AvoidFerries  bool `json:"avoidFerries"`
}

type computeRoutesRequest struct {
	Origin                   waypoint        `json:"origin"`
	Destination              waypoint        `json:"destination"`
	TravelMode               string          `json:"travelMode"`
	RoutingPreference        string          `json:"routingPreference,omitempty"`
	RouteModifiers           *routeModifiers `json:"routeModifiers,omitempty"`
	DepartureTime            string          `json:"departureTime,omitempty"`
	ComputeAlternativeRoutes bool            `json:"computeAlternativeRoutes"`
	LanguageCode             string          `json:"languageCode,omitempty"`
	Units                    string          `json:"units,omitempty"`
}

type apiPolyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}

type apiStop struct {
	Name     string      `json:"name"`
	Location apiLocation `json:"location"`
}

type apiTransitDetails struct {
	StopDetails struct {
		ArrivalStop   apiStop `json:"arrivalStop"`
		DepartureStop apiStop `json:"departureStop"`
	} `json:"stopDetails"`
	TransitLine struct {
		Name      string `json:"name"`
		NameShort string `json:"nameShort"`
	} `json:"transitLine"`
}

type apiStep struct {
	TravelMode     string             `json:"travelMode"`
	StartLocation  *apiLocation       `json:"startLocation"`
	EndLocation    *apiLocation       `json:"endLocation"`
	TransitDetails *apiTransitDetails `json:"transitDetails"`
}

type apiLeg struct {
	Steps []apiStep `json:"steps"`
}

type apiRoute struct {
	DistanceMeters int          `json:"distanceMeters"`
	Duration       string       `json:"duration"`
	Polyline       *apiPolyline `json:"polyline"`
	Legs           []apiLeg     `json:"legs"`
}

type computeRoutesResponse struct {
	Routes []apiRoute `json:"routes"`
}

type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ComputeRoute requests a single route for the query and resolves the
// response into the canonical Result shape.
func (c *Client) ComputeRoute(ctx context.Context, q route.Query) (*route.Result, error) {
	if c.cfg.APIKey == "" {
		return nil, apperr.NewConfigurationError("routing provider API key is not configured")
	}

	body := computeRoutesRequest{
		Origin:       waypoint{Location: apiLocation{LatLng: latLng{q.Origin.Latitude, q.Origin.Longitude}}},
		Destination:  waypoint{Location: apiLocation{LatLng: latLng{q.Destination.Latitude, q.Destination.Longitude}}},
		TravelMode:   q.Mode.String(),
		LanguageCode: c.cfg.LanguageCode,
		Units:        c.cfg.Units,
	}
	switch q.Mode {
	case route.ModeDrive:
		body.RoutingPreference = "TRAFFIC_AWARE"
		body.RouteModifiers = &routeModifiers{}
		body.DepartureTime = departureTime(q)
	case route.ModeTransit:
		body.DepartureTime = departureTime(q)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode compute routes request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build compute routes request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.cfg.APIKey)
	req.Header.Set("X-Goog-FieldMask", c.fieldMasks[q.Mode])

	c.log.Debug("compute routes request",
		zap.String("mode", q.Mode.String()),
		zap.Float64("origin_lat", q.Origin.Latitude),
		zap.Float64("origin_lng", q.Origin.Longitude),
		zap.Float64("dest_lat", q.Destination.Latitude),
		zap.Float64("dest_lng", q.Destination.Longitude),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.NewUpstreamError("route request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NewUpstreamError("route response read failed", err)
	}

	if resp.StatusCode != http.StatusOK {
		var eb apiErrorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error.Message != "" {
			return nil, apperr.NewUpstreamError(
				fmt.Sprintf("route request rejected: %s (%s)", eb.Error.Message, eb.Error.Status), nil)
		}
		return nil, apperr.NewUpstreamError(fmt.Sprintf("route request rejected: %s", resp.Status), nil)
	}

	var decoded computeRoutesResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, apperr.NewUpstreamError("route response decode failed", err)
	}
	if len(decoded.Routes) == 0 {
		return nil, apperr.NewNoResultsError(
			fmt.Sprintf("no route found for travel mode %s", q.Mode))
	}

	return c.toResult(decoded.Routes[0], q.Mode)
}

// toResult resolves the provider route into the canonical shape. The path is
// a tagged union at the wire level: either an encoded polyline or structured
// step locations. It is resolved exactly once here; downstream code never
// branches on response shape again.
func (c *Client) toResult(r apiRoute, mode route.TravelMode) (*route.Result, error) {
	durationSeconds, err := route.ParseDurationSeconds(r.Duration)
	if err != nil {
		return nil, apperr.NewUpstreamError("route duration unreadable", err)
	}

	path, err := resolvePath(r)
	if err != nil {
		return nil, err
	}

	result := &route.Result{
		Path:            path,
		DistanceMeters:  r.DistanceMeters,
		DurationSeconds: durationSeconds,
	}
	for _, leg := range r.Legs {
		result.Legs = append(result.Legs, toLeg(leg))
	}
	return result, nil
}

// resolvePath prefers the encoded polyline and falls back to the structured
// step locations when no polyline was returned.
func resolvePath(r apiRoute) ([]route.LocationPoint, error) {
	if r.Polyline != nil && r.Polyline.EncodedPolyline != "" {
		decoded, err := maps.DecodePolyline(r.Polyline.EncodedPolyline)
		if err != nil {
			return nil, apperr.NewUpstreamError("route polyline decode failed", err)
		}
		path := make([]route.LocationPoint, 0, len(decoded))
		for _, p := range decoded {
			path = append(path, route.LocationPoint{Latitude: p.Lat, Longitude: p.Lng})
		}
		return path, nil
	}

	var path []route.LocationPoint
	for _, leg := range r.Legs {
		for _, step := range leg.Steps {
			if step.StartLocation != nil {
				path = append(path, toPoint(*step.StartLocation))
			}
			if step.EndLocation != nil {
				path = append(path, toPoint(*step.EndLocation))
			}
		}
	}
	if len(path) == 0 {
		return nil, apperr.NewUpstreamError("route carries neither polyline nor step locations", nil)
	}
	return path, nil
}

func toLeg(l apiLeg) route.Leg {
	var leg route.Leg
	for _, s := range l.Steps {
		step := route.Step{Mode: route.TravelMode(s.TravelMode)}
		if s.StartLocation != nil {
			step.Start = toPoint(*s.StartLocation)
		}
		if s.EndLocation != nil {
			step.End = toPoint(*s.EndLocation)
		}
		if s.TransitDetails != nil {
			step.Transit = &route.TransitDetail{
				DepartureStop: route.Stop{
					Name:     s.TransitDetails.StopDetails.DepartureStop.Name,
					Position: toPoint(s.TransitDetails.StopDetails.DepartureStop.Location),
				},
				ArrivalStop: route.Stop{
					Name:     s.TransitDetails.StopDetails.ArrivalStop.Name,
					Position: toPoint(s.TransitDetails.StopDetails.ArrivalStop.Location),
				},
				LineName:      s.TransitDetails.TransitLine.Name,
				LineShortName: s.TransitDetails.TransitLine.NameShort,
			}
		}
		leg.Steps = append(leg.Steps, step)
	}
	return leg
}

func toPoint(l apiLocation) route.LocationPoint {
	return route.LocationPoint{Latitude: l.LatLng.Latitude, Longitude: l.LatLng.Longitude}
}

func departureTime(q route.Query) string {
	t := time.Now().UTC()
	if q.DepartureTime != nil {
		t = q.DepartureTime.UTC()
	}
	return t.Format(time.RFC3339)
}
