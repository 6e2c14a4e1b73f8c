package sources

import (
	"context"

	"go-mulika/types"
)

// Fetcher pulls raw candidate reports from one kind of upstream platform.
type Fetcher interface {
	Platform() string
	Fetch(ctx context.Context, source types.DataSource) ([]types.RawReport, error)
}

// ForPlatform picks the adapter for a configured source. Unknown platforms
// return false and the source is skipped.
func ForPlatform(platform string) (Fetcher, bool) {
	switch platform {
	case "bluesky":
		return &BlueskyFetcher{}, true
	case "standard", "nation", "star", "rss":
		return &RSSFetcher{}, true
	case "nps", "ntsa", "krcs", "official":
		return &OfficialFetcher{}, true
	default:
		return nil, false
	}
}
