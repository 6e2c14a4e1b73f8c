package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mulika/types"
)

func TestNormalize(t *testing.T) {
	got := Normalize("BREAKING!!! Robbery @NPSOfficial along Thika Road #Nairobi https://t.co/abc123")
	assert.Equal(t, "breaking robbery along thika road", got)
}

func TestNormalizeKeepsSwahiliDiacritics(t *testing.T) {
	got := Normalize("Ajali mbaya barabarani, watu wamejeruhiwa")
	assert.Equal(t, "ajali mbaya barabarani watu wamejeruhiwa", got)
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Robbery reported NEAR Garden City!!! @user #crime",
		"   spaced    out\ttext\nwith lines   ",
		"already clean text",
		"see HTTPS://EXAMPLE.COM/alert for details",
		"HTTPFOO bar",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("!!! ??? ..."))
}

func TestDetectKeywords(t *testing.T) {
	table := []types.IncidentKeyword{
		{Keyword: "robbery", IncidentType: types.Crime, IsActive: true},
		{Keyword: "ajali", IncidentType: types.Accident, IsActive: true},
		{Keyword: "fire", IncidentType: types.Hazard, IsActive: false},
	}

	got := DetectKeywords("robbery and fire near town", table)
	require.Len(t, got, 1)
	assert.Equal(t, "robbery", got[0], "inactive keywords must not match")
}

func TestDetectKeywordsRegex(t *testing.T) {
	table := []types.IncidentKeyword{
		{Keyword: "gunshots", IsRegex: true, RegexPattern: `gun\s*shots?`, IsActive: true},
	}

	assert.Equal(t, []string{"gunshots"}, DetectKeywords("heard gun shots in kasarani", table))
	assert.Empty(t, DetectKeywords("nothing happening here", table))
}

func TestDetectKeywordsBadRegexIsolated(t *testing.T) {
	table := []types.IncidentKeyword{
		{Keyword: "broken", IsRegex: true, RegexPattern: `[unclosed`, IsActive: true},
		{Keyword: "robbery", IncidentType: types.Crime, IsActive: true},
	}

	// the malformed entry is skipped, the rest of the table still runs
	got := DetectKeywords("robbery in progress", table)
	assert.Equal(t, []string{"robbery"}, got)
}

func TestCalculateCertainty(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"an accident on mombasa road", 0.5},
		{"witnesses confirmed the robbery", 0.8},
		{"police confirm ongoing operation", 0.9},
		{"rumour of a fire in industrial area", 0.2},
		{"alleged shooting, unconfirmed", 0.3},
		{"reported by multiple witnesses", 0.8},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, CalculateCertainty(tc.text), 1e-9, "text %q", tc.text)
	}
}

func TestCalculateCertaintyClamped(t *testing.T) {
	high := CalculateCertainty("police confirm the verified incident, reported by multiple witnesses")
	assert.Equal(t, 1.0, high)

	low := CalculateCertainty("heard a rumour, alleged and unconfirmed")
	assert.Equal(t, 0.0, low)
}
