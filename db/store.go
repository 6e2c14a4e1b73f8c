package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-mulika/types"
)

// array-contains-any takes at most this many values per query.
const containsAnyLimit = 10

// FirestoreStore backs the ingestion pipeline with Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// ActiveSources returns every source that is enabled for fetching.
func (s *FirestoreStore) ActiveSources(ctx context.Context) ([]types.DataSource, error) {
	docs, err := s.client.Collection(sourcesCollection).
		Where("isActive", "==", true).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}

	var sources []types.DataSource
	for _, doc := range docs {
		var src types.DataSource
		if err := doc.DataTo(&src); err != nil {
			return nil, fmt.Errorf("failed to decode source %s: %w", doc.Ref.ID, err)
		}
		src.ID = doc.Ref.ID
		sources = append(sources, src)
	}
	return sources, nil
}

func (s *FirestoreStore) UpdateSourceFetched(ctx context.Context, sourceID string, fetchedAt time.Time) error {
	_, err := s.client.Collection(sourcesCollection).Doc(sourceID).Update(ctx, []firestore.Update{
		{Path: "lastFetched", Value: fetchedAt},
	})
	if err != nil {
		return fmt.Errorf("failed to update lastFetched for %s: %w", sourceID, err)
	}
	return nil
}

// CreateReport persists a new report keyed by (source, source identifier).
// The create runs in a transaction: if the document already exists the fetch
// saw an item we already hold, and created comes back false.
func (s *FirestoreStore) CreateReport(ctx context.Context, report *types.AutomatedReport) (bool, error) {
	docID := ReportDocID(report.SourceID, report.SourceIdentifier)
	docRef := s.client.Collection(reportsCollection).Doc(docID)

	created := false
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(docRef)
		if err == nil {
			return nil // already ingested
		}
		if status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to check report %s: %w", docID, err)
		}
		created = true
		return tx.Set(docRef, report)
	})
	if err != nil {
		return false, err
	}

	report.ID = docID
	return created, nil
}

func (s *FirestoreStore) UpdateReport(ctx context.Context, report *types.AutomatedReport) error {
	_, err := s.client.Collection(reportsCollection).Doc(report.ID).Set(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to update report %s: %w", report.ID, err)
	}
	return nil
}

// CommitStage writes the report's current fields and appends one processing
// log entry in a single batch, so a crash never leaves the report fields and
// its log out of step.
func (s *FirestoreStore) CommitStage(ctx context.Context, report *types.AutomatedReport, entry types.ProcessingLog) error {
	reportRef := s.client.Collection(reportsCollection).Doc(report.ID)
	logRef := reportRef.Collection(logsSubcollection).NewDoc()

	batch := s.client.Batch()
	batch.Set(reportRef, report)
	batch.Set(logRef, entry)

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit stage %s for report %s: %w", entry.Stage, report.ID, err)
	}
	return nil
}

// StalledReports returns reports that never reached review, so an earlier
// failed run can resume them from their current stage.
func (s *FirestoreStore) StalledReports(ctx context.Context) ([]types.AutomatedReport, error) {
	docs, err := s.client.Collection(reportsCollection).
		Where("status", "in", []string{
			string(types.StatusRaw),
			string(types.StatusProcessed),
			string(types.StatusGeocoded),
			string(types.StatusScored),
		}).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query stalled reports: %w", err)
	}
	return decodeReports(docs)
}

// ScoredSince returns reports scored inside the matching window. Rejected and
// merged reports are out; everything from scored onward is in.
func (s *FirestoreStore) ScoredSince(ctx context.Context, since time.Time) ([]types.AutomatedReport, error) {
	docs, err := s.client.Collection(reportsCollection).
		Where("status", "in", []string{
			string(types.StatusScored),
			string(types.StatusPendingReview),
			string(types.StatusApproved),
		}).
		Where("processedAt", ">=", since).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query scored reports: %w", err)
	}
	return decodeReports(docs)
}

// PendingHighConfidence returns pending_review reports at tier high or
// verified that carry a resolved location.
func (s *FirestoreStore) PendingHighConfidence(ctx context.Context) ([]types.AutomatedReport, error) {
	docs, err := s.client.Collection(reportsCollection).
		Where("status", "==", string(types.StatusPendingReview)).
		Where("confidenceLevel", "in", []string{
			string(types.ConfidenceHigh),
			string(types.ConfidenceVerified),
		}).
		Where("hasLocation", "==", true).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query promotable reports: %w", err)
	}
	return decodeReports(docs)
}

// MatchesContaining returns live (unmerged) matches holding any of the given
// report IDs. Firestore caps array-contains-any, so the IDs go out in chunks
// and results are de-duplicated by document ID.
func (s *FirestoreStore) MatchesContaining(ctx context.Context, reportIDs []string) ([]types.CrossSourceMatch, error) {
	seen := map[string]bool{}
	var matches []types.CrossSourceMatch

	for start := 0; start < len(reportIDs); start += containsAnyLimit {
		end := start + containsAnyLimit
		if end > len(reportIDs) {
			end = len(reportIDs)
		}

		docs, err := s.client.Collection(matchesCollection).
			Where("reportIds", "array-contains-any", reportIDs[start:end]).
			Documents(ctx).
			GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to query matches: %w", err)
		}

		for _, doc := range docs {
			if seen[doc.Ref.ID] {
				continue
			}
			seen[doc.Ref.ID] = true

			var m types.CrossSourceMatch
			if err := doc.DataTo(&m); err != nil {
				return nil, fmt.Errorf("failed to decode match %s: %w", doc.Ref.ID, err)
			}
			if m.MergedInto != "" {
				continue // superseded, kept only for history
			}
			m.ID = doc.Ref.ID
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (s *FirestoreStore) SaveMatch(ctx context.Context, match *types.CrossSourceMatch) error {
	var docRef *firestore.DocumentRef
	if match.ID == "" {
		docRef = s.client.Collection(matchesCollection).NewDoc()
		match.ID = docRef.ID
	} else {
		docRef = s.client.Collection(matchesCollection).Doc(match.ID)
	}

	if _, err := docRef.Set(ctx, match); err != nil {
		return fmt.Errorf("failed to save match %s: %w", match.ID, err)
	}
	return nil
}

func (s *FirestoreStore) CreateIncident(ctx context.Context, incident *types.Incident) (string, error) {
	docRef := s.client.Collection(incidentsCollection).NewDoc()
	incident.ID = docRef.ID

	if _, err := docRef.Set(ctx, incident); err != nil {
		return "", fmt.Errorf("failed to create incident: %w", err)
	}
	return docRef.ID, nil
}

func (s *FirestoreStore) ActiveKeywords(ctx context.Context) ([]types.IncidentKeyword, error) {
	docs, err := s.client.Collection(keywordsCollection).
		Where("isActive", "==", true).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}

	var keywords []types.IncidentKeyword
	for _, doc := range docs {
		var kw types.IncidentKeyword
		if err := doc.DataTo(&kw); err != nil {
			return nil, fmt.Errorf("failed to decode keyword %s: %w", doc.Ref.ID, err)
		}
		kw.ID = doc.Ref.ID
		keywords = append(keywords, kw)
	}
	return keywords, nil
}

func (s *FirestoreStore) ActiveGazetteer(ctx context.Context) ([]types.GazetteerEntry, error) {
	docs, err := s.client.Collection(gazetteerCollection).
		Where("isActive", "==", true).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query gazetteer: %w", err)
	}

	var entries []types.GazetteerEntry
	for _, doc := range docs {
		var entry types.GazetteerEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode gazetteer entry %s: %w", doc.Ref.ID, err)
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeReports(docs []*firestore.DocumentSnapshot) ([]types.AutomatedReport, error) {
	var reports []types.AutomatedReport
	for _, doc := range docs {
		var r types.AutomatedReport
		if err := doc.DataTo(&r); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", doc.Ref.ID, err)
		}
		r.ID = doc.Ref.ID
		reports = append(reports, r)
	}
	return reports, nil
}
