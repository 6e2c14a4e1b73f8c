package types

// IncidentKeyword is one entry of the active keyword table (English &
// Swahili). Regex entries hold a pattern instead of a literal.
type IncidentKeyword struct {
	ID             string       `firestore:"-"`
	Keyword        string       `firestore:"keyword"`
	Language       string       `firestore:"language"` // en | sw | both
	IncidentType   IncidentType `firestore:"incidentType"`
	SeverityWeight int          `firestore:"severityWeight"` // 1-5
	IsRegex        bool         `firestore:"isRegex"`
	RegexPattern   string       `firestore:"regexPattern,omitempty"`
	IsActive       bool         `firestore:"isActive"`
}

// GazetteerEntry is a known place name with its administrative hierarchy,
// used to resolve a county when no county literal appears in the text.
type GazetteerEntry struct {
	ID             string   `firestore:"-"`
	Name           string   `firestore:"name"`
	AlternateNames []string `firestore:"alternateNames,omitempty"`
	LocationType   string   `firestore:"locationType"` // town | estate | road | landmark | ...
	County         string   `firestore:"county"`
	Constituency   string   `firestore:"constituency,omitempty"`
	Ward           string   `firestore:"ward,omitempty"`
	Lat            float64  `firestore:"lat"`
	Long           float64  `firestore:"long"`
	Importance     int      `firestore:"importance"` // 1-10, for disambiguation
	IsActive       bool     `firestore:"isActive"`
}
