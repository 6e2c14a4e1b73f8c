package db

import "go-mulika/types"

// DefaultKeywords is the starter keyword table, English and Swahili terms for
// each incident type. Admins extend it through Firestore directly.
func DefaultKeywords() []types.IncidentKeyword {
	return []types.IncidentKeyword{
		{Keyword: "accident", Language: "en", IncidentType: types.Accident, SeverityWeight: 3, IsActive: true},
		{Keyword: "ajali", Language: "sw", IncidentType: types.Accident, SeverityWeight: 3, IsActive: true},
		{Keyword: "crash", Language: "en", IncidentType: types.Accident, SeverityWeight: 3, IsActive: true},
		{Keyword: "collision", Language: "en", IncidentType: types.Accident, SeverityWeight: 3, IsActive: true},
		{Keyword: "robbery", Language: "en", IncidentType: types.Crime, SeverityWeight: 4, IsActive: true},
		{Keyword: "wizi", Language: "sw", IncidentType: types.Crime, SeverityWeight: 4, IsActive: true},
		{Keyword: "theft", Language: "en", IncidentType: types.Crime, SeverityWeight: 3, IsActive: true},
		{Keyword: "mugging", Language: "en", IncidentType: types.Crime, SeverityWeight: 4, IsActive: true},
		{Keyword: "shooting", Language: "en", IncidentType: types.Crime, SeverityWeight: 5, IsActive: true},
		{Keyword: "risasi", Language: "sw", IncidentType: types.Crime, SeverityWeight: 5, IsActive: true},
		{Keyword: "gunshots", Language: "en", IncidentType: types.Crime, SeverityWeight: 5, IsRegex: true, RegexPattern: `gun\s*shots?`, IsActive: true},
		{Keyword: "fire", Language: "en", IncidentType: types.Hazard, SeverityWeight: 4, IsActive: true},
		{Keyword: "moto", Language: "sw", IncidentType: types.Hazard, SeverityWeight: 4, IsActive: true},
		{Keyword: "flood", Language: "en", IncidentType: types.Hazard, SeverityWeight: 4, IsActive: true},
		{Keyword: "mafuriko", Language: "sw", IncidentType: types.Hazard, SeverityWeight: 4, IsActive: true},
		{Keyword: "police", Language: "en", IncidentType: types.PoliceInteraction, SeverityWeight: 2, IsActive: true},
		{Keyword: "polisi", Language: "sw", IncidentType: types.PoliceInteraction, SeverityWeight: 2, IsActive: true},
		{Keyword: "checkpoint", Language: "en", IncidentType: types.Checkpoint, SeverityWeight: 1, IsActive: true},
		{Keyword: "roadblock", Language: "en", IncidentType: types.Checkpoint, SeverityWeight: 1, IsActive: true},
		{Keyword: "kizuizi", Language: "sw", IncidentType: types.Checkpoint, SeverityWeight: 1, IsActive: true},
		{Keyword: "sos", Language: "both", IncidentType: types.SOS, SeverityWeight: 5, IsActive: true},
		{Keyword: "emergency", Language: "en", IncidentType: types.SOS, SeverityWeight: 5, IsActive: true},
		{Keyword: "dharura", Language: "sw", IncidentType: types.SOS, SeverityWeight: 5, IsActive: true},
	}
}

// DefaultGazetteer seeds well-known Nairobi-area places that reports mention
// without naming a county.
func DefaultGazetteer() []types.GazetteerEntry {
	return []types.GazetteerEntry{
		{Name: "Westlands", LocationType: "estate", County: "Nairobi", Constituency: "Westlands", Lat: -1.2672, Long: 36.8110, Importance: 8, IsActive: true},
		{Name: "Kasarani", LocationType: "estate", County: "Nairobi", Constituency: "Kasarani", Lat: -1.2300, Long: 36.8990, Importance: 7, IsActive: true},
		{Name: "Gikomba", LocationType: "landmark", County: "Nairobi", Constituency: "Kamukunji", Lat: -1.2850, Long: 36.8380, Importance: 7, IsActive: true},
		{Name: "Thika Road", AlternateNames: []string{"thika superhighway"}, LocationType: "road", County: "Nairobi", Lat: -1.2200, Long: 36.8900, Importance: 8, IsActive: true},
		{Name: "Waiyaki Way", LocationType: "road", County: "Nairobi", Constituency: "Westlands", Lat: -1.2650, Long: 36.7800, Importance: 7, IsActive: true},
		{Name: "Nyali", LocationType: "estate", County: "Mombasa", Constituency: "Nyali", Lat: -4.0210, Long: 39.7050, Importance: 7, IsActive: true},
		{Name: "Kondele", LocationType: "estate", County: "Kisumu", Constituency: "Kisumu Central", Lat: -0.0800, Long: 34.7700, Importance: 6, IsActive: true},
	}
}

// DefaultSources seeds one adapter of each platform kind, inactive until an
// admin fills in real feed URIs and enables them.
func DefaultSources() []types.DataSource {
	return []types.DataSource{
		{
			Name:             "Bluesky incident feed",
			Platform:         "bluesky",
			SourceType:       types.SocialMedia,
			CredibilityScore: 0.4,
			FetchInterval:    15,
			RateLimit:        25,
		},
		{
			Name:             "The Standard",
			Platform:         "rss",
			SourceType:       types.News,
			FeedURI:          "https://www.standardmedia.co.ke/rss/headlines.php",
			CredibilityScore: 0.8,
			FetchInterval:    30,
		},
		{
			Name:             "NTSA alerts",
			Platform:         "official",
			SourceType:       types.Official,
			CredibilityScore: 0.95,
			FetchInterval:    15,
		},
	}
}
