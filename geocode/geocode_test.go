package geocode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mulika/types"
)

func TestResolveFallsBackWithoutCredentials(t *testing.T) {
	t.Setenv("MAPS_CREDENTIALS", "")

	// every call must keep falling back, not just the one that hit the init
	for i := 0; i < 3; i++ {
		result, ok := Resolve(context.Background(), "Westlands, Nairobi")
		require.True(t, ok, "call %d", i+1)
		assert.Equal(t, types.AccuracyCounty, result.Accuracy, "call %d", i+1)
		assert.InDelta(t, -1.2921, result.Lat, 1e-6)
	}

	result, ok := Resolve(context.Background(), "nowhere recognizable")
	assert.False(t, ok)
	assert.Equal(t, Result{}, result)
}

func TestClassifyAccuracy(t *testing.T) {
	tests := []struct {
		name        string
		resultTypes []string
		want        types.LocationAccuracy
	}{
		{"route is exact", []string{"route"}, types.AccuracyExact},
		{"street address is exact", []string{"street_address"}, types.AccuracyExact},
		{"locality is approximate", []string{"locality", "political"}, types.AccuracyApproximate},
		{"exact beats approximate", []string{"locality", "premise"}, types.AccuracyExact},
		{"admin area is county", []string{"administrative_area_level_1", "political"}, types.AccuracyCounty},
		{"empty is county", nil, types.AccuracyCounty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyAccuracy(tc.resultTypes))
		})
	}
}

func TestFallbackCentroid(t *testing.T) {
	result, ok := fallbackCentroid("robbery near Westlands, Nairobi")
	require.True(t, ok)

	assert.InDelta(t, -1.2921, result.Lat, 1e-6)
	assert.InDelta(t, 36.8219, result.Long, 1e-6)
	assert.Equal(t, "Nairobi County, Kenya", result.Address)
	assert.Equal(t, types.AccuracyCounty, result.Accuracy)
}

func TestFallbackCentroidCaseInsensitive(t *testing.T) {
	result, ok := fallbackCentroid("FLOODING IN MOMBASA")
	require.True(t, ok)
	assert.InDelta(t, -4.0435, result.Lat, 1e-6)
}

func TestFallbackCentroidUnknown(t *testing.T) {
	result, ok := fallbackCentroid("somewhere out there")
	assert.False(t, ok)
	assert.Equal(t, Result{}, result)
}
