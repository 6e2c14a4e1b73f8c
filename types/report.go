package types

import "time"

type SourceType string

const (
	SocialMedia  SourceType = "social_media"
	News         SourceType = "news"
	Official     SourceType = "official"
	Crowdsourced SourceType = "crowdsourced"
	Scanner      SourceType = "scanner"
)

type ReportStatus string

const (
	StatusRaw           ReportStatus = "raw"
	StatusProcessed     ReportStatus = "processed"
	StatusGeocoded      ReportStatus = "geocoded"
	StatusScored        ReportStatus = "scored"
	StatusPendingReview ReportStatus = "pending_review"
	StatusApproved      ReportStatus = "approved"
	StatusRejected      ReportStatus = "rejected"
	StatusMerged        ReportStatus = "merged"
)

type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceVerified ConfidenceLevel = "verified"
)

type LocationAccuracy string

const (
	AccuracyExact       LocationAccuracy = "exact"
	AccuracyApproximate LocationAccuracy = "approximate"
	AccuracyCounty      LocationAccuracy = "county"
	AccuracyUnresolved  LocationAccuracy = "unresolved"
)

// DataSource is a configured origin of raw reports. Created by configuration;
// the pipeline only ever touches lastFetched.
type DataSource struct {
	ID               string     `firestore:"-"`
	Name             string     `firestore:"name"`
	Platform         string     `firestore:"platform"`
	SourceType       SourceType `firestore:"sourceType"`
	FeedURI          string     `firestore:"feedUri"` // at-uri, RSS url or API endpoint depending on platform
	CredibilityScore float64    `firestore:"credibilityScore"`
	IsActive         bool       `firestore:"isActive"`
	LastFetched      time.Time  `firestore:"lastFetched"`
	FetchInterval    int        `firestore:"fetchInterval"` // minutes
	RateLimit        int        `firestore:"rateLimit"`     // requests per hour
}

// Due reports whether the source should be fetched again at time now.
func (s DataSource) Due(now time.Time) bool {
	if s.LastFetched.IsZero() {
		return true
	}
	interval := s.FetchInterval
	if interval <= 0 {
		interval = 15
	}
	return now.Sub(s.LastFetched) >= time.Duration(interval)*time.Minute
}

// RawReport is what a fetch adapter hands back for one upstream item.
type RawReport struct {
	SourceIdentifier string
	RawContent       string
	ReportedAt       time.Time
	Metadata         map[string]interface{}
}

// AutomatedReport is the unit of work moving through the pipeline.
type AutomatedReport struct {
	ID               string                 `firestore:"-"`
	SourceID         string                 `firestore:"sourceId"`
	SourceName       string                 `firestore:"sourceName"`
	SourceType       SourceType             `firestore:"sourceType"`
	SourceIdentifier string                 `firestore:"sourceIdentifier"`
	SourceMetadata   map[string]interface{} `firestore:"sourceMetadata,omitempty"`

	RawContent           string `firestore:"rawContent"`
	ProcessedContent     string `firestore:"processedContent,omitempty"`
	ExtractedTitle       string `firestore:"extractedTitle,omitempty"`
	ExtractedDescription string `firestore:"extractedDescription,omitempty"`

	LocationText string `firestore:"locationText,omitempty"`
	County       string `firestore:"county,omitempty"`
	Constituency string `firestore:"constituency,omitempty"`
	Ward         string `firestore:"ward,omitempty"`
	Road         string `firestore:"road,omitempty"`
	Landmark     string `firestore:"landmark,omitempty"`

	HasLocation      bool             `firestore:"hasLocation"`
	Lat              float64          `firestore:"lat"`
	Long             float64          `firestore:"long"`
	Address          string           `firestore:"address,omitempty"`
	LocationAccuracy LocationAccuracy `firestore:"locationAccuracy"`

	IncidentType     IncidentType `firestore:"incidentType,omitempty"`
	Category         string       `firestore:"category,omitempty"`
	Severity         Severity     `firestore:"severity"`
	DetectedKeywords []string     `firestore:"detectedKeywords,omitempty"`

	ConfidenceScore     float64         `firestore:"confidenceScore"`
	ConfidenceLevel     ConfidenceLevel `firestore:"confidenceLevel"`
	CrossSourceMentions int             `firestore:"crossSourceMentions"`
	SourceReliability   float64         `firestore:"sourceReliability"`
	TemporalRecency     float64         `firestore:"temporalRecency"`
	LanguageCertainty   float64         `firestore:"languageCertainty"`

	Status      ReportStatus `firestore:"status"`
	ReviewedBy  string       `firestore:"reviewedBy,omitempty"`
	ReviewedAt  time.Time    `firestore:"reviewedAt,omitempty"`
	ReviewNotes string       `firestore:"reviewNotes,omitempty"`

	IncidentID string `firestore:"incidentId,omitempty"`

	ReportedAt  time.Time `firestore:"reportedAt"`
	FetchedAt   time.Time `firestore:"fetchedAt"`
	ProcessedAt time.Time `firestore:"processedAt,omitempty"`
}

// ProcessingLog is one append-only row per (report, pipeline stage).
type ProcessingLog struct {
	Stage          string    `firestore:"stage"`
	Success        bool      `firestore:"success"`
	ErrorMessage   string    `firestore:"errorMessage,omitempty"`
	ProcessingTime float64   `firestore:"processingTime"` // seconds
	CreatedAt      time.Time `firestore:"createdAt"`
}

// CrossSourceMatch is a cluster of reports believed to describe one real
// event. Keyed by its own ID, never by a (possibly absent) incident.
type CrossSourceMatch struct {
	ID               string    `firestore:"-"`
	IncidentID       string    `firestore:"incidentId,omitempty"`
	ReportIDs        []string  `firestore:"reportIds"`
	MatchScore       float64   `firestore:"matchScore"`
	IsConfirmedMatch bool      `firestore:"isConfirmedMatch"`
	ConfirmedBy      string    `firestore:"confirmedBy,omitempty"`
	ConfirmedAt      time.Time `firestore:"confirmedAt,omitempty"`
	MergedInto       string    `firestore:"mergedInto,omitempty"` // superseding match, kept for history
	CreatedAt        time.Time `firestore:"createdAt"`
}
