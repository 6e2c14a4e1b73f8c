package scoring

import (
	"time"

	"go-mulika/types"
)

// signal weights; they sum to 1.0
const (
	weightSourceReliability = 0.30
	weightCrossSource       = 0.25
	weightTemporalRecency   = 0.20
	weightLanguageCertainty = 0.15
	weightLocationAccuracy  = 0.10
)

// cross-source mentions saturate here
const mentionsCap = 5.0

// Signals are the plain per-report inputs to confidence aggregation. Callers
// read them off the report; nothing here touches shared state.
type Signals struct {
	SourceReliability   float64
	CrossSourceMentions int
	TemporalRecency     float64
	LanguageCertainty   float64
	LocationAccuracy    types.LocationAccuracy
}

// Confidence combines the weighted signals into one score in [0,1].
func Confidence(s Signals) float64 {
	mentions := float64(s.CrossSourceMentions) / mentionsCap
	if mentions > 1.0 {
		mentions = 1.0
	}

	score := weightSourceReliability*clamp01(s.SourceReliability) +
		weightCrossSource*mentions +
		weightTemporalRecency*clamp01(s.TemporalRecency) +
		weightLanguageCertainty*clamp01(s.LanguageCertainty) +
		weightLocationAccuracy*accuracyScore(s.LocationAccuracy)

	return clamp01(score)
}

// Level buckets a score into a confidence tier. Official sources override to
// verified no matter what the numbers say.
func Level(score float64, sourceType types.SourceType) types.ConfidenceLevel {
	if sourceType == types.Official {
		return types.ConfidenceVerified
	}
	switch {
	case score >= 0.8:
		return types.ConfidenceHigh
	case score >= 0.6:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// RecencyScore is a step function of report age.
func RecencyScore(reportedAt, now time.Time) float64 {
	hours := now.Sub(reportedAt).Hours()
	switch {
	case hours < 1:
		return 1.0
	case hours < 3:
		return 0.8
	case hours < 6:
		return 0.6
	case hours < 12:
		return 0.4
	case hours < 24:
		return 0.2
	default:
		return 0.1
	}
}

// accuracyScore weights the geocode tier. Unresolved is neutral rather than
// penalized: plenty of legitimate reports never geocode.
func accuracyScore(accuracy types.LocationAccuracy) float64 {
	switch accuracy {
	case types.AccuracyExact:
		return 1.0
	case types.AccuracyApproximate:
		return 0.7
	case types.AccuracyCounty:
		return 0.3
	default:
		return 0.5
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
