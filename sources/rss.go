package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"go-mulika/types"
)

// RSSFetcher pulls headlines from the Kenyan newspaper RSS feeds (Standard,
// Nation, The Star). The source's FeedURI is the feed URL.
type RSSFetcher struct{}

func (f *RSSFetcher) Platform() string { return "rss" }

func (f *RSSFetcher) Fetch(ctx context.Context, source types.DataSource) ([]types.RawReport, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(source.FeedURI, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch for %s: %w", source.Name, err)
	}

	var reports []types.RawReport
	for _, item := range feed.Items {
		identifier := item.GUID
		if identifier == "" {
			identifier = item.Link
		}
		if identifier == "" {
			continue
		}

		content := item.Title
		if item.Description != "" {
			content = content + ". " + item.Description
		}

		reportedAt := time.Now()
		if item.PublishedParsed != nil {
			reportedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			reportedAt = *item.UpdatedParsed
		}

		reports = append(reports, types.RawReport{
			SourceIdentifier: identifier,
			RawContent:       content,
			ReportedAt:       reportedAt,
			Metadata: map[string]interface{}{
				"link":  item.Link,
				"title": item.Title,
			},
		})
	}

	return reports, nil
}
