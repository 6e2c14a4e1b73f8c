package sources

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bluesky-social/indigo/xrpc"

	"go-mulika/types"
)

const (
	feedMethod       = "app.bsky.feed.getFeed"
	blueskyHost      = "https://public.api.bsky.app" // public endpoint for unauthenticated requests
	defaultFeedLimit = 25
)

// BlueskyFetcher pulls a hydrated feed from the Bluesky public API. The
// source's FeedURI is an at-uri of a feed generator tuned to incident posts.
type BlueskyFetcher struct{}

func (f *BlueskyFetcher) Platform() string { return "bluesky" }

func (f *BlueskyFetcher) Fetch(ctx context.Context, source types.DataSource) ([]types.RawReport, error) {
	client := &xrpc.Client{
		Client: &http.Client{Timeout: 10 * time.Second},
		Host:   blueskyHost,
	}

	limit := defaultFeedLimit
	if source.RateLimit > 0 && source.RateLimit < limit {
		limit = source.RateLimit
	}

	params := map[string]interface{}{
		"feed":  source.FeedURI,
		"limit": limit,
	}

	var out types.FeedResponse
	if err := client.Do(ctx, xrpc.Query, "json", feedMethod, params, nil, &out); err != nil {
		return nil, fmt.Errorf("bluesky feed fetch for %s: %w", source.Name, err)
	}

	reports := make([]types.RawReport, 0, len(out.Feed))
	for _, entry := range out.Feed {
		post := entry.Post
		if post.URI == "" || post.Record.Text == "" {
			continue
		}

		reportedAt, err := time.Parse(time.RFC3339, post.Record.CreatedAt)
		if err != nil {
			log.Printf("Warning: unparseable post timestamp %q, using indexedAt", post.Record.CreatedAt)
			reportedAt, err = time.Parse(time.RFC3339, post.IndexedAt)
			if err != nil {
				reportedAt = time.Now()
			}
		}

		reports = append(reports, types.RawReport{
			SourceIdentifier: post.URI,
			RawContent:       post.Record.Text,
			ReportedAt:       reportedAt,
			Metadata: map[string]interface{}{
				"handle":      post.Author.Handle,
				"displayName": post.Author.DisplayName,
				"likeCount":   post.LikeCount,
				"repostCount": post.RepostCount,
			},
		})
	}

	return reports, nil
}
