//go:build integration

package main_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/application"
	"github.com/uhdiapa/service-guide/internal/domain/route"
	"github.com/uhdiapa/service-guide/internal/handler"
	"github.com/uhdiapa/service-guide/internal/location"
	"github.com/uhdiapa/service-guide/internal/middleware"
	"github.com/uhdiapa/service-guide/internal/provider/mapsession"
	"github.com/uhdiapa/service-guide/internal/provider/recommend"
	"github.com/uhdiapa/service-guide/internal/provider/routes"
)

// encodedFixture decodes to (38.5,-120.2) (40.7,-120.95) (43.252,-126.453).
const encodedFixture = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

// testStack is the fully wired service with fake upstreams.
type testStack struct {
	Router  *gin.Engine
	Session *mapsession.Session
}

// fakeRoutesAPI answers every compute request with one fixed route.
func fakeRoutesAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NotEmpty(t, r.Header.Get("X-Goog-Api-Key"))
		resp := map[string]any{
			"routes": []map[string]any{{
				"distanceMeters": 1234,
				"duration":       "600s",
				"polyline":       map[string]any{"encodedPolyline": encodedFixture},
			}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// fakeBackend answers recommendation and detail lookups with canned data.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/hospitals/recommend/by-symptoms", func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"data": map[string]any{
				"firstAidGuideLine": "지혈 후 상처 부위를 심장보다 높게 유지하세요.",
				"hospitals": []map[string]any{
					{"hospitalId": 1, "hospitalName": "A병원", "latitude": 37.50, "longitude": 127.00, "distance": 1.2, "operatingHour": "24시간", "isEmergency": true},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	mux.HandleFunc("/hospitals/details", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("hospital-id") != "1" {
			http.NotFound(w, r)
			return
		}
		resp := map[string]any{
			"data": map[string]any{
				"hospitalId":      1,
				"hospitalName":    "A병원",
				"operatingHours":  "24시간",
				"address":         "서울특별시 중구",
				"latitude":        37.50,
				"longitude":       127.00,
				"distance":        1.2,
				"isEmergencyRoom": true,
				"hospitalImage":   "0",
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// setupStack wires the full service against fake upstreams, mirroring the
// production assembly in cmd/server.
func setupStack(t *testing.T) *testStack {
	t.Helper()
	log := zap.NewNop()

	routesAPI := fakeRoutesAPI(t)
	backendAPI := fakeBackend(t)

	session := mapsession.New(routes.Config{
		Endpoint: routesAPI.URL,
		APIKey:   "integration-test-key",
		Timeout:  5 * time.Second,
	}, log)
	require.NoError(t, session.Load())

	backend := recommend.NewClient(recommend.Config{
		BaseURL: backendAPI.URL,
		Timeout: 5 * time.Second,
	}, log)

	locator := location.NewService(location.FixedSource{
		Point: route.LocationPoint{Latitude: 37.5665, Longitude: 126.978},
	}, time.Second, log)

	directionsService := application.NewDirectionsService(session, log)
	hospitalService := application.NewHospitalService(backend, locator, log)
	intakeService := application.NewIntakeService(log)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(
		middleware.RecoveryMiddleware(log),
		middleware.LoggerMiddleware(log),
		middleware.RequestIDMiddleware(),
		middleware.CORSMiddleware(),
		middleware.SecurityHeadersMiddleware(),
	)

	handler.NewHealthHandler("service-guide", session).RegisterRoutes(router)
	api := router.Group("")
	handler.NewIntakeHandler(intakeService).RegisterRoutes(api)
	handler.NewHospitalHandler(hospitalService).RegisterRoutes(api)
	handler.NewDirectionsHandler(directionsService).RegisterRoutes(api)
	handler.NewLocationHandler(locator).RegisterRoutes(api)

	return &testStack{Router: router, Session: session}
}

// doJSON performs a request against the stack and decodes the JSON body.
func doJSON(t *testing.T, router *gin.Engine, req *http.Request, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}
