package matcher

import (
	"math"
	"time"

	"go-mulika/types"
)

const (
	// two reports describe the same event when they share a type and sit
	// within this spatial and temporal window
	maxDistanceKM = 5.0
	maxTimeGap    = 2 * time.Hour

	earthRadiusKM = 6371.0
)

// Similar is the cross-source similarity predicate: same incident type,
// reported within 2 hours, resolved locations within 5 km. Reports without a
// resolved location never match; unlocated text must not corroborate.
func Similar(a, b types.AutomatedReport) bool {
	if a.IncidentType != b.IncidentType {
		return false
	}
	if !a.HasLocation || !b.HasLocation {
		return false
	}

	gap := a.ReportedAt.Sub(b.ReportedAt)
	if gap < 0 {
		gap = -gap
	}
	if gap > maxTimeGap {
		return false
	}

	return HaversineKM(a.Lat, a.Long, b.Lat, b.Long) <= maxDistanceKM
}

// SimilarSet returns every candidate similar to the report, excluding the
// report itself.
func SimilarSet(report types.AutomatedReport, candidates []types.AutomatedReport) []types.AutomatedReport {
	var similar []types.AutomatedReport
	for _, candidate := range candidates {
		if candidate.ID == report.ID {
			continue
		}
		if Similar(report, candidate) {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// Score derives the match score from cluster size. Deliberately uncapped: six
// corroborating sources scoring past 1.0 reads as maximal signal downstream.
func Score(memberCount int) float64 {
	if memberCount < 1 {
		return 0
	}
	return 0.2 * float64(memberCount-1)
}

// HaversineKM calculates the great-circle distance between two points
// on the earth (specified in decimal degrees).
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	radLat1 := lat1 * math.Pi / 180
	radLon1 := lon1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180
	radLon2 := lon2 * math.Pi / 180

	deltaLat := radLat2 - radLat1
	deltaLon := radLon2 - radLon1

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}
