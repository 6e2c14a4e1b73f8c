package pipeline

import (
	"context"
	"time"

	"go-mulika/types"
)

// Store is the persistence the orchestrator runs against. The Firestore
// implementation lives in the db package; tests use an in-memory one.
type Store interface {
	ActiveSources(ctx context.Context) ([]types.DataSource, error)
	UpdateSourceFetched(ctx context.Context, sourceID string, fetchedAt time.Time) error

	// CreateReport persists a new report atomically keyed by
	// (source, source_identifier). created is false when that pair already
	// exists; the caller must treat that as a duplicate fetch and stop.
	CreateReport(ctx context.Context, report *types.AutomatedReport) (created bool, err error)
	UpdateReport(ctx context.Context, report *types.AutomatedReport) error

	// CommitStage writes the report's current fields and appends one
	// ProcessingLog entry in a single atomic commit.
	CommitStage(ctx context.Context, report *types.AutomatedReport, entry types.ProcessingLog) error

	// StalledReports returns reports that never reached pending_review, so a
	// failed stage is retried on the next run.
	StalledReports(ctx context.Context) ([]types.AutomatedReport, error)

	// ScoredSince returns reports scored within the window (status scored or
	// later, excluding rejected/merged).
	ScoredSince(ctx context.Context, since time.Time) ([]types.AutomatedReport, error)

	// PendingHighConfidence returns pending_review reports at tier high or
	// verified that carry a resolved location.
	PendingHighConfidence(ctx context.Context) ([]types.AutomatedReport, error)

	// MatchesContaining returns live (unmerged) matches holding any of the
	// given report IDs.
	MatchesContaining(ctx context.Context, reportIDs []string) ([]types.CrossSourceMatch, error)
	SaveMatch(ctx context.Context, match *types.CrossSourceMatch) error

	CreateIncident(ctx context.Context, incident *types.Incident) (string, error)

	ActiveKeywords(ctx context.Context) ([]types.IncidentKeyword, error)
	ActiveGazetteer(ctx context.Context) ([]types.GazetteerEntry, error)
}
