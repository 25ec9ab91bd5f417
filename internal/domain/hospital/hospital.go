package hospital

import (
	"sort"
	"strconv"

	"github.com/uhdiapa/service-guide/internal/domain/route"
)

// Hospital is the summary read projection of a recommended hospital. Identity
// is the server-assigned ID; there is no local mutation.
type Hospital struct {
	ID             int64               `json:"hospital_id"`
	Name           string              `json:"name"`
	Location       route.LocationPoint `json:"location"`
	DistanceKm     float64             `json:"distance_km"`
	PhoneNumber    string              `json:"phone_number"`
	OperatingHours string              `json:"operating_hours"`
	IsEmergency    bool                `json:"is_emergency"`
}

// Detail is the expanded read projection shown for a selected hospital.
type Detail struct {
	ID             int64    `json:"hospital_id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	DistanceKm     float64  `json:"distance_km"`
	PhoneNumber    string   `json:"phone_number"`
	OperatingHours string   `json:"operating_hours"`
	IsEmergency    bool     `json:"is_emergency"`
	Specialties    []string `json:"specialties"`
	ImageURL       string   `json:"image_url,omitempty"`
}

// Recommendation pairs the hospital list with the generated first-aid
// guideline text.
type Recommendation struct {
	Hospitals         []Hospital `json:"hospitals"`
	FirstAidGuideline string     `json:"first_aid_guideline"`
}

// SortByDistance orders hospitals nearest-first, matching the list the client
// renders.
func SortByDistance(hospitals []Hospital) {
	sort.SliceStable(hospitals, func(i, j int) bool {
		return hospitals[i].DistanceKm < hospitals[j].DistanceKm
	})
}

// DirectionsParams builds the query-parameter contract the directions view
// consumes when this hospital is selected.
func (h Hospital) DirectionsParams(current route.LocationPoint) map[string]string {
	return map[string]string{
		"currentLat": formatCoord(current.Latitude),
		"currentLng": formatCoord(current.Longitude),
		"destLat":    formatCoord(h.Location.Latitude),
		"destLng":    formatCoord(h.Location.Longitude),
		"destName":   h.Name,
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
