package route

import "fmt"

// TravelMode is the enumerated transport method for a route request, using
// the Routes API vocabulary.
type TravelMode string

const (
	ModeDrive   TravelMode = "DRIVE"
	ModeWalk    TravelMode = "WALK"
	ModeTransit TravelMode = "TRANSIT"
	ModeBicycle TravelMode = "BICYCLE"
)

// IsValid returns true if the travel mode is recognized.
func (m TravelMode) IsValid() bool {
	switch m {
	case ModeDrive, ModeWalk, ModeTransit, ModeBicycle:
		return true
	}
	return false
}

// String returns the string representation of the travel mode.
func (m TravelMode) String() string { return string(m) }

// legacySpellings maps the older Directions-style mode names, which earlier
// client URLs still carry, onto the Routes API vocabulary.
var legacySpellings = map[string]TravelMode{
	"DRIVING":   ModeDrive,
	"WALKING":   ModeWalk,
	"TRANSIT":   ModeTransit,
	"BICYCLING": ModeBicycle,
}

// ParseTravelMode converts a string to a TravelMode, accepting both current
// and legacy spellings. The empty string defaults to DRIVE, matching the
// client's default selection.
func ParseTravelMode(s string) (TravelMode, error) {
	if s == "" {
		return ModeDrive, nil
	}
	mode := TravelMode(s)
	if mode.IsValid() {
		return mode, nil
	}
	if mode, ok := legacySpellings[s]; ok {
		return mode, nil
	}
	return "", fmt.Errorf("invalid travel mode: %s", s)
}
