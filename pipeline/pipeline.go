package pipeline

import (
	"context"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"go-mulika/classify"
	"go-mulika/geocode"
	"go-mulika/location"
	"go-mulika/matcher"
	"go-mulika/nlp"
	"go-mulika/scoring"
	"go-mulika/sources"
	"go-mulika/types"
)

const (
	matchingWindow = 6 * time.Hour
	incidentTTL    = 30 * 24 * time.Hour
)

// GeocodeFunc resolves a location description, fail-soft.
type GeocodeFunc func(ctx context.Context, locationText string) (geocode.Result, bool)

// SummarizeFunc turns a scored report into an incident title + description.
type SummarizeFunc func(ctx context.Context, report *types.AutomatedReport) (title, description string)

// Pipeline sequences fetch, per-report processing, cross-source matching and
// auto-promotion. It is the only component aware of the full sequence.
type Pipeline struct {
	store      Store
	fetcherFor func(platform string) (sources.Fetcher, bool)
	geocode    GeocodeFunc
	summarize  SummarizeFunc
	now        func() time.Time

	running atomic.Bool
}

// reference-table snapshot loaded once per run
type snapshot struct {
	keywords  []types.IncidentKeyword
	gazetteer []types.GazetteerEntry
}

type fetchedItem struct {
	source types.DataSource
	raw    types.RawReport
}

func New(store Store, summarize SummarizeFunc) *Pipeline {
	return &Pipeline{
		store:      store,
		fetcherFor: sources.ForPlatform,
		geocode:    geocode.Resolve,
		summarize:  summarize,
		now:        time.Now,
	}
}

// Run executes one full batch. Overlapping invocations are no-ops: the
// pipeline is a non-reentrant job.
func (p *Pipeline) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		log.Println("Pipeline run already in progress, skipping")
		return nil
	}
	defer p.running.Store(false)

	log.Println("Starting automated incident ingestion pipeline")

	keywords, err := p.store.ActiveKeywords(ctx)
	if err != nil {
		return err
	}
	gazetteer, err := p.store.ActiveGazetteer(ctx)
	if err != nil {
		return err
	}
	snap := snapshot{keywords: keywords, gazetteer: gazetteer}

	// 1. fetch from every active, due source
	items := p.fetchPhase(ctx)
	log.Printf("Fetched %d raw items", len(items))

	// 2. retry reports stalled by an earlier stage failure
	stalled, err := p.store.StalledReports(ctx)
	if err != nil {
		log.Printf("Failed to load stalled reports: %v", err)
	}
	for i := range stalled {
		p.processStages(ctx, &stalled[i], snap)
	}

	// 2'. process new items; idempotency on (source, source_identifier) is
	// enforced by the store's atomic create, so concurrent items are safe
	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		it := item
		go func() {
			defer wg.Done()
			p.processNew(ctx, it, snap)
		}()
	}
	wg.Wait()

	// 3. batch steps run only after all per-report processing is done
	p.runMatching(ctx)

	// 4. auto-promote
	p.autoPromote(ctx)

	log.Println("Pipeline completed")
	return nil
}

func (p *Pipeline) fetchPhase(ctx context.Context) []fetchedItem {
	activeSources, err := p.store.ActiveSources(ctx)
	if err != nil {
		log.Printf("Failed to load sources: %v", err)
		return nil
	}

	now := p.now()
	var (
		mu    sync.Mutex
		items []fetchedItem
		wg    sync.WaitGroup
	)

	for _, source := range activeSources {
		if !source.Due(now) {
			continue
		}
		fetcher, ok := p.fetcherFor(source.Platform)
		if !ok {
			log.Printf("Warning: no fetch adapter for platform %q, skipping %s", source.Platform, source.Name)
			continue
		}

		wg.Add(1)
		src := source
		go func() {
			defer wg.Done()
			raws, err := fetcher.Fetch(ctx, src)
			if err != nil {
				log.Printf("Failed to fetch from %s: %v", src.Name, err)
				return
			}
			if err := p.store.UpdateSourceFetched(ctx, src.ID, p.now()); err != nil {
				log.Printf("Failed to update lastFetched for %s: %v", src.Name, err)
			}
			mu.Lock()
			for _, raw := range raws {
				items = append(items, fetchedItem{source: src, raw: raw})
			}
			mu.Unlock()
		}()
	}

	wg.Wait()
	return items
}

func (p *Pipeline) processNew(ctx context.Context, item fetchedItem, snap snapshot) {
	report := &types.AutomatedReport{
		SourceID:            item.source.ID,
		SourceName:          item.source.Name,
		SourceType:          item.source.SourceType,
		SourceIdentifier:    item.raw.SourceIdentifier,
		SourceMetadata:      item.raw.Metadata,
		RawContent:          item.raw.RawContent,
		ReportedAt:          item.raw.ReportedAt,
		FetchedAt:           p.now(),
		Status:              types.StatusRaw,
		Severity:            types.Medium,
		LocationAccuracy:    types.AccuracyUnresolved,
		SourceReliability:   item.source.CredibilityScore,
		CrossSourceMentions: 1,
	}

	created, err := p.store.CreateReport(ctx, report)
	if err != nil {
		log.Printf("Failed to create report for %s/%s: %v", item.source.Name, item.raw.SourceIdentifier, err)
		return
	}
	if !created {
		// same upstream item seen before; not an error
		return
	}

	p.processStages(ctx, report, snap)
}

// processStages advances a report through the stage sequence from wherever
// it currently stands. A stage failure is logged and leaves the status put;
// the report is picked up again next run.
func (p *Pipeline) processStages(ctx context.Context, report *types.AutomatedReport, snap snapshot) {
	if report.Status == types.StatusRaw {
		if err := p.runStage(ctx, report, "text_cleaning", func() error {
			report.ProcessedContent = nlp.Normalize(report.RawContent)
			return nil
		}); err != nil {
			return
		}
		if err := p.runStage(ctx, report, "keyword_detection", func() error {
			report.DetectedKeywords = nlp.DetectKeywords(report.ProcessedContent, snap.keywords)
			return nil
		}); err != nil {
			return
		}
		if err := p.runStage(ctx, report, "classification", func() error {
			report.IncidentType = classify.Classify(report.DetectedKeywords)
			report.Category = classify.LookupCategory(report.IncidentType)
			report.Severity = classify.SeverityFor(report.DetectedKeywords, snap.keywords)
			report.Status = types.StatusProcessed
			return nil
		}); err != nil {
			return
		}
	}

	if report.Status == types.StatusProcessed {
		if err := p.runStage(ctx, report, "location_extraction", func() error {
			loc := location.Extract(report.RawContent, report.ProcessedContent, snap.gazetteer)
			report.LocationText = loc.Text
			report.County = loc.County
			report.Constituency = loc.Constituency
			report.Ward = loc.Ward
			report.Road = loc.Road
			report.Landmark = loc.Landmark
			return nil
		}); err != nil {
			return
		}
		if err := p.runStage(ctx, report, "geocoding", func() error {
			report.LocationAccuracy = types.AccuracyUnresolved
			if report.LocationText != "" {
				if result, ok := p.geocode(ctx, report.LocationText); ok {
					report.HasLocation = true
					report.Lat = result.Lat
					report.Long = result.Long
					report.Address = result.Address
					report.LocationAccuracy = result.Accuracy
				}
			}
			report.Status = types.StatusGeocoded
			return nil
		}); err != nil {
			return
		}
	}

	if report.Status == types.StatusGeocoded {
		if err := p.runStage(ctx, report, "confidence_scoring", func() error {
			report.TemporalRecency = scoring.RecencyScore(report.ReportedAt, p.now())
			report.LanguageCertainty = nlp.CalculateCertainty(report.ProcessedContent)
			if report.CrossSourceMentions < 1 {
				report.CrossSourceMentions = 1
			}
			p.rescore(report)
			report.Status = types.StatusScored
			return nil
		}); err != nil {
			return
		}
	}

	if report.Status == types.StatusScored {
		_ = p.runStage(ctx, report, "review_queue", func() error {
			report.Status = types.StatusPendingReview
			report.ProcessedAt = p.now()
			return nil
		})
	}
}

// runStage times one stage, commits the report state plus its log entry, and
// reports the stage's own error back.
func (p *Pipeline) runStage(ctx context.Context, report *types.AutomatedReport, stage string, fn func() error) error {
	start := time.Now()
	stageErr := fn()

	entry := types.ProcessingLog{
		Stage:          stage,
		Success:        stageErr == nil,
		ProcessingTime: time.Since(start).Seconds(),
		CreatedAt:      p.now(),
	}
	if stageErr != nil {
		entry.ErrorMessage = stageErr.Error()
		log.Printf("Stage %s failed for report %s: %v", stage, report.ID, stageErr)
	}

	if err := p.store.CommitStage(ctx, report, entry); err != nil {
		log.Printf("Failed to commit stage %s for report %s: %v", stage, report.ID, err)
		return err
	}
	return stageErr
}

// runMatching clusters reports in the recent scoring window that plausibly
// describe the same real-world event.
func (p *Pipeline) runMatching(ctx context.Context) {
	recent, err := p.store.ScoredSince(ctx, p.now().Add(-matchingWindow))
	if err != nil {
		log.Printf("Failed to load reports for matching: %v", err)
		return
	}

	for i := range recent {
		report := recent[i]
		similar := matcher.SimilarSet(report, recent)
		if len(similar) == 0 {
			continue
		}

		cluster := append([]types.AutomatedReport{report}, similar...)
		ids := make([]string, 0, len(cluster))
		for _, member := range cluster {
			ids = append(ids, member.ID)
		}

		match, err := p.clusterFor(ctx, ids)
		if err != nil {
			log.Printf("Failed to resolve cluster for report %s: %v", report.ID, err)
			continue
		}

		match.ReportIDs = unionIDs(match.ReportIDs, ids)
		match.MatchScore = matcher.Score(len(match.ReportIDs))
		if err := p.store.SaveMatch(ctx, match); err != nil {
			log.Printf("Failed to save match %s: %v", match.ID, err)
			continue
		}

		// corroboration changes the confidence of every member
		for j := range cluster {
			member := &cluster[j]
			if member.CrossSourceMentions == len(match.ReportIDs) {
				continue
			}
			member.CrossSourceMentions = len(match.ReportIDs)
			p.rescore(member)
			if err := p.store.UpdateReport(ctx, member); err != nil {
				log.Printf("Failed to update mentions for report %s: %v", member.ID, err)
			}
		}
	}
}

// clusterFor fetches-or-creates the match record for a similarity set.
// Overlapping existing matches merge into the largest; superseded records are
// kept with a mergedInto pointer, never destroyed.
func (p *Pipeline) clusterFor(ctx context.Context, reportIDs []string) (*types.CrossSourceMatch, error) {
	existing, err := p.store.MatchesContaining(ctx, reportIDs)
	if err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		return &types.CrossSourceMatch{
			ID:        uuid.NewString(),
			CreatedAt: p.now(),
		}, nil
	}

	sort.Slice(existing, func(i, j int) bool {
		return len(existing[i].ReportIDs) > len(existing[j].ReportIDs)
	})

	canonical := existing[0]
	for i := 1; i < len(existing); i++ {
		superseded := existing[i]
		canonical.ReportIDs = unionIDs(canonical.ReportIDs, superseded.ReportIDs)
		superseded.MergedInto = canonical.ID
		if err := p.store.SaveMatch(ctx, &superseded); err != nil {
			log.Printf("Failed to mark match %s merged: %v", superseded.ID, err)
		}
	}

	return &canonical, nil
}

// autoPromote turns high-confidence, located pending reports into incidents.
func (p *Pipeline) autoPromote(ctx context.Context) {
	pending, err := p.store.PendingHighConfidence(ctx)
	if err != nil {
		log.Printf("Failed to load promotable reports: %v", err)
		return
	}

	for i := range pending {
		report := &pending[i]

		title, description := p.summarize(ctx, report)
		incident := &types.Incident{
			Title:        title,
			Description:  description,
			Category:     report.Category,
			IncidentType: report.IncidentType,
			Severity:     report.Severity,
			Lat:          report.Lat,
			Long:         report.Long,
			Address:      pickAddress(report),
			County:       report.County,
			Constituency: report.Constituency,
			Ward:         report.Ward,
			Anonymous:    true,
			Verified:     false, // still needs human verification
			Status:       "reported",
			ExpiresAt:    p.now().Add(incidentTTL),
			CreatedAt:    p.now(),
		}

		incidentID, err := p.store.CreateIncident(ctx, incident)
		if err != nil {
			log.Printf("Failed to create incident for report %s: %v", report.ID, err)
			continue
		}

		report.IncidentID = incidentID
		report.Status = types.StatusApproved
		report.ReviewNotes = "Auto-approved due to high confidence score"
		if err := p.store.UpdateReport(ctx, report); err != nil {
			log.Printf("Failed to mark report %s approved: %v", report.ID, err)
			continue
		}

		// link the cluster, if one exists, to the promoted incident
		matches, err := p.store.MatchesContaining(ctx, []string{report.ID})
		if err == nil {
			for j := range matches {
				if matches[j].IncidentID != "" {
					continue
				}
				matches[j].IncidentID = incidentID
				if err := p.store.SaveMatch(ctx, &matches[j]); err != nil {
					log.Printf("Failed to link match %s to incident %s: %v", matches[j].ID, incidentID, err)
				}
			}
		}

		log.Printf("Auto-approved report %s as incident %s", report.ID, incidentID)
	}
}

func (p *Pipeline) rescore(report *types.AutomatedReport) {
	report.ConfidenceScore = scoring.Confidence(scoring.Signals{
		SourceReliability:   report.SourceReliability,
		CrossSourceMentions: report.CrossSourceMentions,
		TemporalRecency:     report.TemporalRecency,
		LanguageCertainty:   report.LanguageCertainty,
		LocationAccuracy:    report.LocationAccuracy,
	})
	report.ConfidenceLevel = scoring.Level(report.ConfidenceScore, report.SourceType)
}

func pickAddress(report *types.AutomatedReport) string {
	if report.Address != "" {
		return report.Address
	}
	return report.LocationText
}

func unionIDs(a, b []string) []string {
	seen := map[string]bool{}
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		seen[id] = true
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
