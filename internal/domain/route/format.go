package route

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDurationSeconds normalizes a provider duration to whole seconds. The
// Routes API returns a suffixed seconds-string such as "3600s"; bare numeric
// strings are accepted as already-normalized values.
func ParseDurationSeconds(raw string) (int, error) {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "s")
	if s == "" {
		return 0, fmt.Errorf("empty duration %q", raw)
	}
	// Durations may carry fractional seconds; truncate to whole seconds.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return int(f), nil
}

// FormatDurationMinutes renders whole seconds as whole minutes, rounded.
func FormatDurationMinutes(seconds int) string {
	minutes := int(math.Round(float64(seconds) / 60.0))
	return fmt.Sprintf("%d min", minutes)
}

// FormatDistanceKm renders meters as kilometers with two decimal places.
func FormatDistanceKm(meters int) string {
	return fmt.Sprintf("%.2f km", float64(meters)/1000.0)
}
