package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-mulika/types"
)

// OfficialFetcher pulls structured alerts from an official JSON endpoint
// (police service, transport authority, Red Cross). The source's FeedURI is
// the endpoint URL.
type OfficialFetcher struct{}

type officialAlert struct {
	ID       string `json:"id"`
	Message  string `json:"message"`
	IssuedAt string `json:"issued_at"`
	Region   string `json:"region,omitempty"`
}

func (f *OfficialFetcher) Platform() string { return "official" }

func (f *OfficialFetcher) Fetch(ctx context.Context, source types.DataSource) ([]types.RawReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.FeedURI, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("official alerts fetch for %s: %w", source.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("alert endpoint returned status: " + resp.Status)
	}

	var alerts []officialAlert
	if err := json.NewDecoder(resp.Body).Decode(&alerts); err != nil {
		return nil, fmt.Errorf("decoding alerts from %s: %w", source.Name, err)
	}

	var reports []types.RawReport
	for _, alert := range alerts {
		if alert.ID == "" || alert.Message == "" {
			continue
		}

		issuedAt, err := time.Parse(time.RFC3339, alert.IssuedAt)
		if err != nil {
			issuedAt = time.Now()
		}

		content := alert.Message
		if alert.Region != "" {
			content = content + " in " + alert.Region
		}

		reports = append(reports, types.RawReport{
			SourceIdentifier: alert.ID,
			RawContent:       content,
			ReportedAt:       issuedAt,
			Metadata: map[string]interface{}{
				"region": alert.Region,
			},
		})
	}

	return reports, nil
}
