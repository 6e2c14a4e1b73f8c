package types

import "time"

type IncidentType string

const (
	Crime             IncidentType = "crime"
	Accident          IncidentType = "accident"
	Hazard            IncidentType = "hazard"
	Checkpoint        IncidentType = "checkpoint"
	SOS               IncidentType = "sos"
	PoliceInteraction IncidentType = "police_interaction"
	OtherIncident     IncidentType = "other"
)

// Display returns the human-readable name for an incident type.
func (t IncidentType) Display() string {
	switch t {
	case Crime:
		return "Crime"
	case Accident:
		return "Accident"
	case Hazard:
		return "Hazard"
	case Checkpoint:
		return "Checkpoint"
	case SOS:
		return "SOS"
	case PoliceInteraction:
		return "Police Interaction"
	default:
		return "Incident"
	}
}

type Severity string

const (
	Low      Severity = "low"
	Medium   Severity = "medium"
	High     Severity = "high"
	Critical Severity = "critical"
)

// Incident is the authoritative, map-facing record created when a report is
// promoted. The pipeline never sets Verified; that stays a human action.
type Incident struct {
	ID           string       `firestore:"-"`
	Title        string       `firestore:"title"`
	Description  string       `firestore:"description"`
	Category     string       `firestore:"category,omitempty"`
	IncidentType IncidentType `firestore:"incidentType"`
	Severity     Severity     `firestore:"severity"`
	Lat          float64      `firestore:"lat"`
	Long         float64      `firestore:"long"`
	Address      string       `firestore:"address,omitempty"`
	County       string       `firestore:"county,omitempty"`
	Constituency string       `firestore:"constituency,omitempty"`
	Ward         string       `firestore:"ward,omitempty"`
	Anonymous    bool         `firestore:"anonymous"`
	Verified     bool         `firestore:"verified"`
	Status       string       `firestore:"status"`
	ExpiresAt    time.Time    `firestore:"expiresAt"`
	CreatedAt    time.Time    `firestore:"createdAt"`
}
