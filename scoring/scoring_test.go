package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-mulika/types"
)

func TestConfidenceBounds(t *testing.T) {
	best := Confidence(Signals{
		SourceReliability:   1.0,
		CrossSourceMentions: 10,
		TemporalRecency:     1.0,
		LanguageCertainty:   1.0,
		LocationAccuracy:    types.AccuracyExact,
	})
	assert.InDelta(t, 1.0, best, 1e-9)

	worst := Confidence(Signals{})
	assert.GreaterOrEqual(t, worst, 0.0)
	assert.LessOrEqual(t, worst, 1.0)
}

func TestConfidenceWeighting(t *testing.T) {
	// single mention, mid signals: .30*.8 + .25*(1/5) + .20*.6 + .15*.5 + .10*.7
	got := Confidence(Signals{
		SourceReliability:   0.8,
		CrossSourceMentions: 1,
		TemporalRecency:     0.6,
		LanguageCertainty:   0.5,
		LocationAccuracy:    types.AccuracyApproximate,
	})
	assert.InDelta(t, 0.555, got, 1e-9)
}

func TestConfidenceMonotonicInMentions(t *testing.T) {
	base := Signals{
		SourceReliability: 0.5,
		TemporalRecency:   0.5,
		LanguageCertainty: 0.5,
		LocationAccuracy:  types.AccuracyCounty,
	}

	prev := -1.0
	for mentions := 1; mentions <= 5; mentions++ {
		base.CrossSourceMentions = mentions
		score := Confidence(base)
		assert.Greater(t, score, prev, "mentions=%d", mentions)
		prev = score
	}

	// saturation: past the cap more mentions change nothing
	base.CrossSourceMentions = 6
	assert.InDelta(t, prev, Confidence(base), 1e-9)
}

func TestConfidenceUnresolvedLocationIsNeutral(t *testing.T) {
	unresolved := Confidence(Signals{LocationAccuracy: types.AccuracyUnresolved})
	county := Confidence(Signals{LocationAccuracy: types.AccuracyCounty})
	exact := Confidence(Signals{LocationAccuracy: types.AccuracyExact})

	assert.Greater(t, unresolved, county)
	assert.Less(t, unresolved, exact)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, types.ConfidenceHigh, Level(0.85, types.SocialMedia))
	assert.Equal(t, types.ConfidenceHigh, Level(0.8, types.News))
	assert.Equal(t, types.ConfidenceMedium, Level(0.7, types.SocialMedia))
	assert.Equal(t, types.ConfidenceLow, Level(0.59, types.Crowdsourced))
}

func TestLevelOfficialOverride(t *testing.T) {
	// official sources are verified regardless of score
	assert.Equal(t, types.ConfidenceVerified, Level(0.1, types.Official))
	assert.Equal(t, types.ConfidenceVerified, Level(0.95, types.Official))
}

func TestRecencyScore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		age  time.Duration
		want float64
	}{
		{30 * time.Minute, 1.0},
		{2 * time.Hour, 0.8},
		{5 * time.Hour, 0.6},
		{11 * time.Hour, 0.4},
		{23 * time.Hour, 0.2},
		{48 * time.Hour, 0.1},
	}

	for _, tc := range tests {
		got := RecencyScore(now.Add(-tc.age), now)
		assert.Equal(t, tc.want, got, "age %s", tc.age)
	}
}
