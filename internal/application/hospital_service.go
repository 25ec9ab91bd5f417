package application

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/domain/hospital"
	"github.com/uhdiapa/service-guide/internal/domain/route"
	"github.com/uhdiapa/service-guide/internal/location"
	"github.com/uhdiapa/service-guide/internal/provider/recommend"
)

// defaultSymptom mirrors the client's placeholder when no symptom text made
// it through the query parameters.
const defaultSymptom = "No symptom information"

// defaultFirstAid is the fallback guideline shown while the backend returns
// none (tetanus/wound care, the flow's default scenario).
const defaultFirstAid = "상처를 깨끗한 물과 비누로 5분 이상 충분히 씻어내고 과산화수소, 베타딘 또는 알코올 소독제로 상처를 소독하세요."

// RecommendationDTO is the response representation of the hospital view data.
type RecommendationDTO struct {
	Symptom           string              `json:"symptom"`
	Location          route.LocationPoint `json:"location"`
	LocationDegraded  bool                `json:"location_degraded"`
	Hospitals         []hospital.Hospital `json:"hospitals"`
	FirstAidGuideline string              `json:"first_aid_guideline"`
}

// HospitalDetailDTO pairs a hospital detail with the directions parameters
// for the "get directions" action.
type HospitalDetailDTO struct {
	Detail     *hospital.Detail  `json:"detail"`
	Directions map[string]string `json:"directions_params"`
}

// HospitalService orchestrates the hospital recommendation view: one-shot
// location, a single recommendation request, and detail lookups.
type HospitalService struct {
	backend *recommend.Client
	locator *location.Service
	logger  *zap.Logger
}

// NewHospitalService creates a new HospitalService.
func NewHospitalService(backend *recommend.Client, locator *location.Service, logger *zap.Logger) *HospitalService {
	return &HospitalService{backend: backend, locator: locator, logger: logger}
}

// Recommend resolves the user's position (sentinel on failure, never
// blocking) and asks the backend for hospitals matching the symptom.
func (s *HospitalService) Recommend(ctx context.Context, symptom, latStr, lngStr string) (*RecommendationDTO, error) {
	symptom = strings.TrimSpace(symptom)
	if symptom == "" {
		symptom = defaultSymptom
	}

	at, degraded := s.locator.Resolve(ctx, latStr, lngStr)

	rec, err := s.backend.RecommendBySymptoms(ctx, symptom, at)
	if err != nil {
		s.logger.Error("hospital recommendation failed", zap.Error(err))
		return nil, err
	}

	guideline := rec.FirstAidGuideline
	if guideline == "" {
		guideline = defaultFirstAid
	}

	s.logger.Info("hospitals recommended",
		zap.String("symptom", symptom),
		zap.Int("count", len(rec.Hospitals)),
		zap.Bool("location_degraded", degraded),
	)

	return &RecommendationDTO{
		Symptom:           symptom,
		Location:          at,
		LocationDegraded:  degraded,
		Hospitals:         rec.Hospitals,
		FirstAidGuideline: guideline,
	}, nil
}

// Detail fetches the expanded projection for a hospital and the directions
// query parameters for navigating to it from the given position.
func (s *HospitalService) Detail(ctx context.Context, id int64, latStr, lngStr string) (*HospitalDetailDTO, error) {
	at, _ := s.locator.Resolve(ctx, latStr, lngStr)

	detail, err := s.backend.HospitalDetail(ctx, id, at)
	if err != nil {
		s.logger.Error("hospital detail lookup failed",
			zap.Int64("hospital_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	h := hospital.Hospital{
		ID:       detail.ID,
		Name:     detail.Name,
		Location: route.LocationPoint{Latitude: detail.Latitude, Longitude: detail.Longitude},
	}
	return &HospitalDetailDTO{
		Detail:     detail,
		Directions: h.DirectionsParams(at),
	}, nil
}

// DirectionsURL renders the directions navigation target for a selected
// hospital, matching the page contract the client follows.
func DirectionsURL(params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return "/directions?" + values.Encode()
}
