package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-mulika/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     types.IncidentType
	}{
		{"single crime keyword", []string{"robbery"}, types.Crime},
		{"swahili accident", []string{"ajali"}, types.Accident},
		{"majority wins", []string{"fire", "flood", "police"}, types.Hazard},
		{"no keywords", nil, types.OtherIncident},
		{"unknown keywords", []string{"birthday", "party"}, types.OtherIncident},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.keywords))
		})
	}
}

func TestClassifyTieGoesToPriority(t *testing.T) {
	// one crime mention vs one checkpoint mention: crime outranks
	assert.Equal(t, types.Crime, Classify([]string{"theft", "roadblock"}))

	// sos outranks everything at equal counts
	assert.Equal(t, types.SOS, Classify([]string{"emergency", "shooting"}))
}

func TestClassifyMatchesFragments(t *testing.T) {
	// labels from regex entries still carry their type fragment
	assert.Equal(t, types.Accident, Classify([]string{"head-on collision reported"}))
}

func TestLookupCategory(t *testing.T) {
	assert.Equal(t, "Road Accident", LookupCategory(types.Accident))
	assert.Equal(t, "Crime", LookupCategory(types.Crime))
	assert.Equal(t, "Public Hazard", LookupCategory(types.Hazard))
	assert.Equal(t, "", LookupCategory(types.Checkpoint))
	assert.Equal(t, "", LookupCategory(types.OtherIncident))
}

func TestSeverityFor(t *testing.T) {
	table := []types.IncidentKeyword{
		{Keyword: "shooting", SeverityWeight: 5},
		{Keyword: "robbery", SeverityWeight: 4},
		{Keyword: "theft", SeverityWeight: 3},
		{Keyword: "checkpoint", SeverityWeight: 1},
	}

	assert.Equal(t, types.Critical, SeverityFor([]string{"shooting"}, table))
	assert.Equal(t, types.High, SeverityFor([]string{"robbery", "theft"}, table))
	assert.Equal(t, types.Medium, SeverityFor([]string{"theft"}, table))
	assert.Equal(t, types.Low, SeverityFor([]string{"checkpoint"}, table))
	assert.Equal(t, types.Medium, SeverityFor(nil, table), "no keywords defaults to medium")
}
