package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/domain/apperr"
	"github.com/uhdiapa/service-guide/internal/domain/hospital"
	"github.com/uhdiapa/service-guide/internal/domain/route"
)

// Config holds the recommendation backend settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the hospital recommendation backend.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a recommendation backend client.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// --- wire types (backend JSON is camelCased and slightly inconsistent) ---

type recommendRequest struct {
	Prompt    string  `json:"prompt"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type backendHospital struct {
	HospitalID    int64   `json:"hospitalId"`
	HospitalName  string  `json:"hospitalName"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Distance      float64 `json:"distance"`
	PhoneNumber   string  `json:"phoneNumber"`
	OperatingHour string  `json:"operatingHour"`
	IsEmergency   bool    `json:"isEmergency"`
}

type recommendResponse struct {
	Data struct {
		Hospitals         []backendHospital `json:"hospitals"`
		FirstAidGuideLine string            `json:"firstAidGuideLine"`
	} `json:"data"`
}

type backendDetail struct {
	HospitalID      int64    `json:"hospitalId"`
	HospitalName    string   `json:"hospitalName"`
	OperatingHours  string   `json:"operatingHours"`
	Address         string   `json:"address"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Distance        float64  `json:"distance"`
	IsEmergencyRoom bool     `json:"isEmergencyRoom"`
	Specialties     []string `json:"specialties"`
	PhoneNumber     string   `json:"phoneNumber"`
	HospitalImage   string   `json:"hospitalImage"`
}

type detailResponse struct {
	Data backendDetail `json:"data"`
}

// RecommendBySymptoms asks the backend for hospitals matching the symptom
// text near the given location.
func (c *Client) RecommendBySymptoms(ctx context.Context, prompt string, at route.LocationPoint) (*hospital.Recommendation, error) {
	if c.cfg.BaseURL == "" {
		return nil, apperr.NewConfigurationError("recommendation backend URL is not configured")
	}

	payload, err := json.Marshal(recommendRequest{
		Prompt:    prompt,
		Latitude:  at.Latitude,
		Longitude: at.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("encode recommendation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/hospitals/recommend/by-symptoms", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.NewUpstreamError("hospital recommendation request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.NewUpstreamError(
			fmt.Sprintf("hospital recommendation rejected: %s", resp.Status), nil)
	}

	var decoded recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperr.NewUpstreamError("hospital recommendation decode failed", err)
	}

	rec := &hospital.Recommendation{
		FirstAidGuideline: decoded.Data.FirstAidGuideLine,
	}
	for _, h := range decoded.Data.Hospitals {
		rec.Hospitals = append(rec.Hospitals, hospital.Hospital{
			ID:             h.HospitalID,
			Name:           h.HospitalName,
			Location:       route.LocationPoint{Latitude: h.Latitude, Longitude: h.Longitude},
			DistanceKm:     h.Distance,
			PhoneNumber:    h.PhoneNumber,
			OperatingHours: h.OperatingHour,
			IsEmergency:    h.IsEmergency,
		})
	}
	hospital.SortByDistance(rec.Hospitals)
	return rec, nil
}

// HospitalDetail fetches the expanded projection for one hospital.
func (c *Client) HospitalDetail(ctx context.Context, id int64, at route.LocationPoint) (*hospital.Detail, error) {
	if c.cfg.BaseURL == "" {
		return nil, apperr.NewConfigurationError("recommendation backend URL is not configured")
	}

	params := url.Values{}
	params.Set("hospital-id", strconv.FormatInt(id, 10))
	params.Set("latitude", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(at.Longitude, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/hospitals/details?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build hospital detail request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.NewUpstreamError("hospital detail request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NewNotFoundError("hospital", strconv.FormatInt(id, 10))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperr.NewUpstreamError(
			fmt.Sprintf("hospital detail rejected: %s", resp.Status), nil)
	}

	var decoded detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperr.NewUpstreamError("hospital detail decode failed", err)
	}

	d := decoded.Data
	image := d.HospitalImage
	if image == "0" { // backend sends "0" for no image
		image = ""
	}
	return &hospital.Detail{
		ID:             d.HospitalID,
		Name:           d.HospitalName,
		Address:        d.Address,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		DistanceKm:     d.Distance,
		PhoneNumber:    d.PhoneNumber,
		OperatingHours: d.OperatingHours,
		IsEmergency:    d.IsEmergencyRoom,
		Specialties:    d.Specialties,
		ImageURL:       image,
	}, nil
}
