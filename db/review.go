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

const defaultReportLimit = 50

// ReportsByStatus lists reports in a given status, newest first. An empty
// status lists everything.
func (s *FirestoreStore) ReportsByStatus(ctx context.Context, reportStatus types.ReportStatus, limit int) ([]types.AutomatedReport, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}

	query := s.client.Collection(reportsCollection).Query
	if reportStatus != "" {
		query = query.Where("status", "==", string(reportStatus))
	}

	docs, err := query.
		OrderBy("fetchedAt", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return decodeReports(docs)
}

// GetReport fetches a single report by document ID.
func (s *FirestoreStore) GetReport(ctx context.Context, reportID string) (*types.AutomatedReport, error) {
	doc, err := s.client.Collection(reportsCollection).Doc(reportID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report %s: %w", reportID, err)
	}

	var report types.AutomatedReport
	if err := doc.DataTo(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", reportID, err)
	}
	report.ID = doc.Ref.ID
	return &report, nil
}

// ReportLogs returns the per-stage processing history of a report in the
// order the stages ran.
func (s *FirestoreStore) ReportLogs(ctx context.Context, reportID string) ([]types.ProcessingLog, error) {
	docs, err := s.client.Collection(reportsCollection).Doc(reportID).
		Collection(logsSubcollection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list logs for report %s: %w", reportID, err)
	}

	var logs []types.ProcessingLog
	for _, doc := range docs {
		var entry types.ProcessingLog
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode log entry %s: %w", doc.Ref.ID, err)
		}
		logs = append(logs, entry)
	}
	return logs, nil
}

// ReviewReport records a human decision on a pending report. Only
// pending_review reports can be decided, and only into approved or rejected.
func (s *FirestoreStore) ReviewReport(ctx context.Context, reportID string, decision types.ReportStatus, reviewer, notes string) (*types.AutomatedReport, error) {
	if decision != types.StatusApproved && decision != types.StatusRejected {
		return nil, fmt.Errorf("invalid review decision %q", decision)
	}

	report, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, fmt.Errorf("report %s not found", reportID)
	}
	if report.Status != types.StatusPendingReview {
		return nil, fmt.Errorf("report %s is %s, not pending review", reportID, report.Status)
	}

	report.Status = decision
	report.ReviewedBy = reviewer
	report.ReviewedAt = time.Now()
	report.ReviewNotes = notes

	if err := s.UpdateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
