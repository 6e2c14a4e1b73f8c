package classify

import (
	"strings"

	"go-mulika/types"
)

// keyword fragment -> incident type, English and Swahili terms together
var keywordMapping = map[string]types.IncidentType{
	"accident":   types.Accident,
	"ajali":      types.Accident,
	"crash":      types.Accident,
	"collision":  types.Accident,
	"robbery":    types.Crime,
	"wizi":       types.Crime,
	"theft":      types.Crime,
	"mugging":    types.Crime,
	"shooting":   types.Crime,
	"risasi":     types.Crime,
	"fire":       types.Hazard,
	"moto":       types.Hazard,
	"flood":      types.Hazard,
	"mafuriko":   types.Hazard,
	"police":     types.PoliceInteraction,
	"polisi":     types.PoliceInteraction,
	"checkpoint": types.Checkpoint,
	"roadblock":  types.Checkpoint,
	"kizuizi":    types.Checkpoint,
	"sos":        types.SOS,
	"emergency":  types.SOS,
	"dharura":    types.SOS,
}

// tiePriority breaks tallies that end level. The order is deliberate and must
// not depend on map iteration: an sos reading always beats everything else.
var tiePriority = []types.IncidentType{
	types.SOS,
	types.Crime,
	types.Accident,
	types.Hazard,
	types.PoliceInteraction,
	types.Checkpoint,
	types.OtherIncident,
}

// Classify maps detected keyword labels to one incident type by tallying
// matches per type; ties go to the highest-priority type. No match at all
// classifies as "other".
func Classify(keywords []string) types.IncidentType {
	counts := map[types.IncidentType]int{}

	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)
		for fragment, incidentType := range keywordMapping {
			if strings.Contains(lower, fragment) {
				counts[incidentType]++
			}
		}
	}

	if len(counts) == 0 {
		return types.OtherIncident
	}

	best := types.OtherIncident
	bestCount := 0
	for _, candidate := range tiePriority {
		if counts[candidate] > bestCount {
			best = candidate
			bestCount = counts[candidate]
		}
	}
	return best
}

// category display names by incident type; lookup misses just leave the
// category unset on the report
var categoryNames = map[types.IncidentType]string{
	types.Accident: "Road Accident",
	types.Crime:    "Crime",
	types.Hazard:   "Public Hazard",
}

// LookupCategory resolves an optional category name for an incident type.
// An empty result is a valid outcome, not an error.
func LookupCategory(incidentType types.IncidentType) string {
	return categoryNames[incidentType]
}

// SeverityFor derives a coarse severity from the keyword table's weights.
func SeverityFor(keywords []string, table []types.IncidentKeyword) types.Severity {
	maxWeight := 0
	for _, keyword := range keywords {
		for _, kw := range table {
			if strings.EqualFold(kw.Keyword, keyword) && kw.SeverityWeight > maxWeight {
				maxWeight = kw.SeverityWeight
			}
		}
	}

	switch {
	case maxWeight >= 5:
		return types.Critical
	case maxWeight >= 4:
		return types.High
	case maxWeight == 1:
		return types.Low
	default:
		// weight 2-3, or no table hit at all: the model default
		return types.Medium
	}
}
