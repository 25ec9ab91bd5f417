package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhdiapa/service-guide/internal/domain/route"
)

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "suffixed seconds", raw: "3600s", want: 3600},
		{name: "short trip", raw: "125s", want: 125},
		{name: "bare number", raw: "90", want: 90},
		{name: "fractional seconds truncate", raw: "59.9s", want: 59},
		{name: "whitespace tolerated", raw: " 60s ", want: 60},
		{name: "empty", raw: "", wantErr: true},
		{name: "suffix only", raw: "s", wantErr: true},
		{name: "garbage", raw: "abc", wantErr: true},
		{name: "negative", raw: "-5s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := route.ParseDurationSeconds(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDurationMinutes(t *testing.T) {
	assert.Equal(t, "2 min", route.FormatDurationMinutes(125))
	assert.Equal(t, "60 min", route.FormatDurationMinutes(3600))
	assert.Equal(t, "0 min", route.FormatDurationMinutes(0))
	// 90s rounds up to 2 minutes.
	assert.Equal(t, "2 min", route.FormatDurationMinutes(90))
}

func TestFormatDistanceKm(t *testing.T) {
	assert.Equal(t, "1.23 km", route.FormatDistanceKm(1234))
	assert.Equal(t, "0.00 km", route.FormatDistanceKm(0))
	assert.Equal(t, "12.00 km", route.FormatDistanceKm(12000))
}
