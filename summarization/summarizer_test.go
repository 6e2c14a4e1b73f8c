package summarization

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-mulika/types"
)

func TestFallback(t *testing.T) {
	title, description := Fallback(&types.AutomatedReport{
		IncidentType:     types.Crime,
		ProcessedContent: "robbery reported along thika road",
	})

	assert.Equal(t, "Reported Crime", title)
	assert.Equal(t, "robbery reported along thika road", description)
}

func TestFallbackPrefersExtractedFields(t *testing.T) {
	title, description := Fallback(&types.AutomatedReport{
		IncidentType:         types.Accident,
		ExtractedTitle:       "Matatu crash on Waiyaki Way",
		ExtractedDescription: "Three injured in morning collision.",
		ProcessedContent:     "matatu crash on waiyaki way three injured",
	})

	assert.Equal(t, "Matatu crash on Waiyaki Way", title)
	assert.Equal(t, "Three injured in morning collision.", description)
}

func TestFallbackTruncatesLongDescriptions(t *testing.T) {
	_, description := Fallback(&types.AutomatedReport{
		IncidentType:     types.Hazard,
		ProcessedContent: strings.Repeat("flood warning ", 100),
	})

	assert.Len(t, description, maxDescriptionLength)
}

func TestFallbackUsesRawContentLast(t *testing.T) {
	_, description := Fallback(&types.AutomatedReport{
		IncidentType: types.SOS,
		RawContent:   "SOS!!! need help",
	})
	assert.Equal(t, "SOS!!! need help", description)
}

func TestTitleAndDescriptionWithoutClient(t *testing.T) {
	s := &Summarizer{}

	title, description := s.TitleAndDescription(context.Background(), &types.AutomatedReport{
		IncidentType:     types.Checkpoint,
		ProcessedContent: "police checkpoint along mombasa road",
	})

	assert.Equal(t, "Reported Checkpoint", title)
	assert.Equal(t, "police checkpoint along mombasa road", description)
}
