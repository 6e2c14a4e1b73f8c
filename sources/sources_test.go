package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mulika/types"
)

func TestForPlatform(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"bluesky", "bluesky"},
		{"rss", "rss"},
		{"standard", "rss"},
		{"nation", "rss"},
		{"star", "rss"},
		{"official", "official"},
		{"nps", "official"},
		{"ntsa", "official"},
		{"krcs", "official"},
	}

	for _, tc := range tests {
		fetcher, ok := ForPlatform(tc.platform)
		require.True(t, ok, "platform %q", tc.platform)
		assert.Equal(t, tc.want, fetcher.Platform(), "platform %q", tc.platform)
	}

	_, ok := ForPlatform("telegram")
	assert.False(t, ok)
}

func TestOfficialFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "alert-1", "message": "Road closure on Mombasa Road", "issued_at": "2025-06-01T09:30:00Z", "region": "Nairobi"},
			{"id": "alert-2", "message": "Flash flood warning", "issued_at": "not-a-time"},
			{"id": "", "message": "no id, dropped"}
		]`))
	}))
	defer server.Close()

	fetcher := &OfficialFetcher{}
	reports, err := fetcher.Fetch(context.Background(), types.DataSource{
		Name:    "NTSA Alerts",
		FeedURI: server.URL,
	})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "alert-1", reports[0].SourceIdentifier)
	assert.Equal(t, "Road closure on Mombasa Road in Nairobi", reports[0].RawContent)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), reports[0].ReportedAt)
	assert.Equal(t, "Nairobi", reports[0].Metadata["region"])

	// bad timestamp falls back to fetch time instead of dropping the alert
	assert.Equal(t, "alert-2", reports[1].SourceIdentifier)
	assert.WithinDuration(t, time.Now(), reports[1].ReportedAt, time.Minute)
}

func TestOfficialFetcherErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := &OfficialFetcher{}
	_, err := fetcher.Fetch(context.Background(), types.DataSource{FeedURI: server.URL})
	assert.Error(t, err)
}

func TestRSSFetcher(t *testing.T) {
	const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>County News</title>
    <item>
      <title>Matatu crash on Waiyaki Way</title>
      <description>Three injured in morning collision.</description>
      <link>https://example.com/news/1</link>
      <guid>news-1</guid>
      <pubDate>Sun, 01 Jun 2025 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>No identifier here</title>
    </item>
  </channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedXML))
	}))
	defer server.Close()

	fetcher := &RSSFetcher{}
	reports, err := fetcher.Fetch(context.Background(), types.DataSource{
		Name:    "County News",
		FeedURI: server.URL,
	})
	require.NoError(t, err)
	require.Len(t, reports, 1, "items without guid or link are dropped")

	assert.Equal(t, "news-1", reports[0].SourceIdentifier)
	assert.Equal(t, "Matatu crash on Waiyaki Way. Three injured in morning collision.", reports[0].RawContent)
	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), reports[0].ReportedAt.UTC())
	assert.Equal(t, "https://example.com/news/1", reports[0].Metadata["link"])
}
