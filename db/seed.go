package db

import (
	"context"
	"fmt"
	"log"

	"go-mulika/types"
)

// SeedKeywords upserts the keyword table. Doc IDs derive from keyword and
// language, so reseeding is idempotent.
func (s *FirestoreStore) SeedKeywords(ctx context.Context, keywords []types.IncidentKeyword) error {
	for i := range keywords {
		kw := keywords[i]
		docID := HashString(kw.Keyword + "|" + kw.Language)
		if _, err := s.client.Collection(keywordsCollection).Doc(docID).Set(ctx, kw); err != nil {
			return fmt.Errorf("failed to seed keyword %q: %w", kw.Keyword, err)
		}
	}
	log.Printf("Seeded %d keywords", len(keywords))
	return nil
}

// SeedGazetteer upserts place entries keyed by their name.
func (s *FirestoreStore) SeedGazetteer(ctx context.Context, entries []types.GazetteerEntry) error {
	for i := range entries {
		entry := entries[i]
		docID := HashString(entry.Name)
		if _, err := s.client.Collection(gazetteerCollection).Doc(docID).Set(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed gazetteer entry %q: %w", entry.Name, err)
		}
	}
	log.Printf("Seeded %d gazetteer entries", len(entries))
	return nil
}

// SeedSources upserts data sources keyed by platform and feed.
func (s *FirestoreStore) SeedSources(ctx context.Context, sources []types.DataSource) error {
	for i := range sources {
		src := sources[i]
		docID := HashString(src.Platform + "|" + src.FeedURI)
		if _, err := s.client.Collection(sourcesCollection).Doc(docID).Set(ctx, src); err != nil {
			return fmt.Errorf("failed to seed source %q: %w", src.Name, err)
		}
	}
	log.Printf("Seeded %d sources", len(sources))
	return nil
}
