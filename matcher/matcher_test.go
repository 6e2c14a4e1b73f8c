package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-mulika/types"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func report(id string, incidentType types.IncidentType, lat, long float64, offset time.Duration) types.AutomatedReport {
	return types.AutomatedReport{
		ID:           id,
		IncidentType: incidentType,
		HasLocation:  true,
		Lat:          lat,
		Long:         long,
		ReportedAt:   baseTime.Add(offset),
	}
}

func TestSimilar(t *testing.T) {
	a := report("a", types.Crime, -1.2921, 36.8219, 0)
	b := report("b", types.Crime, -1.2950, 36.8250, 10*time.Minute)

	assert.True(t, Similar(a, b))
	assert.True(t, Similar(b, a), "similarity is symmetric")
}

func TestSimilarRejectsDifferentType(t *testing.T) {
	a := report("a", types.Crime, -1.2921, 36.8219, 0)
	b := report("b", types.Accident, -1.2921, 36.8219, 0)

	assert.False(t, Similar(a, b))
}

func TestSimilarRejectsDistance(t *testing.T) {
	// Nairobi CBD vs Thika town, ~40 km apart
	a := report("a", types.Crime, -1.2921, 36.8219, 0)
	b := report("b", types.Crime, -1.0333, 37.0693, 0)

	assert.False(t, Similar(a, b))
}

func TestSimilarRejectsTimeGap(t *testing.T) {
	a := report("a", types.Hazard, -1.2921, 36.8219, 0)
	b := report("b", types.Hazard, -1.2921, 36.8219, 3*time.Hour)

	assert.False(t, Similar(a, b))
}

func TestSimilarRejectsUnlocated(t *testing.T) {
	a := report("a", types.Crime, -1.2921, 36.8219, 0)
	b := report("b", types.Crime, 0, 0, 0)
	b.HasLocation = false

	assert.False(t, Similar(a, b))
	assert.False(t, Similar(b, b), "two unlocated reports never corroborate")
}

func TestSimilarSet(t *testing.T) {
	self := report("self", types.Crime, -1.2921, 36.8219, 0)
	candidates := []types.AutomatedReport{
		self, // the report itself must be excluded
		report("close", types.Crime, -1.2950, 36.8250, 30*time.Minute),
		report("far", types.Crime, -1.0333, 37.0693, 0),
		report("late", types.Crime, -1.2921, 36.8219, 5*time.Hour),
		report("othertype", types.Hazard, -1.2921, 36.8219, 0),
	}

	got := SimilarSet(self, candidates)
	assert.Len(t, got, 1)
	assert.Equal(t, "close", got[0].ID)
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0.0, Score(1))
	assert.InDelta(t, 0.2, Score(2), 1e-9)
	assert.InDelta(t, 0.8, Score(5), 1e-9)
	// deliberately uncapped past six members
	assert.InDelta(t, 1.2, Score(7), 1e-9)
	assert.Equal(t, 0.0, Score(0))
}

func TestHaversineKM(t *testing.T) {
	// same point
	assert.InDelta(t, 0.0, HaversineKM(-1.2921, 36.8219, -1.2921, 36.8219), 1e-9)

	// Nairobi to Mombasa, roughly 440 km
	d := HaversineKM(-1.2921, 36.8219, -4.0435, 39.6682)
	assert.InDelta(t, 440, d, 10)
}
