package summarization

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-mulika/types"
)

const (
	maxDescriptionLength = 500
	maxPromptLength      = 4000 // rough character limit for prompt
)

// Summarizer produces the title and description for a promoted incident.
// When no OpenAI key is configured it degrades to the deterministic
// fallback; promotion never fails because summarization did.
type Summarizer struct {
	client *openai.Client
}

// New builds a Summarizer from the environment. A missing OPENAI_API_KEY is
// fine; the fallback handles everything.
func New() *Summarizer {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, incident summaries use the fallback")
		return &Summarizer{}
	}
	return &Summarizer{client: openai.NewClient(apiKey)}
}

// TitleAndDescription summarizes a report into an incident title and
// description.
func (s *Summarizer) TitleAndDescription(ctx context.Context, report *types.AutomatedReport) (string, string) {
	if s.client == nil {
		return Fallback(report)
	}

	text := report.ProcessedContent
	if text == "" {
		text = report.RawContent
	}
	if len(text) > maxPromptLength {
		text = text[:maxPromptLength]
	}

	prompt := fmt.Sprintf(
		"The following text reports a %s incident in Kenya. Write a short headline (under 10 words) on the first line and a one-sentence description on the second line. Nothing else:\n\n%s",
		report.IncidentType.Display(), text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that writes terse, factual incident headlines for a community safety map.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   100,
			N:           1,
			Temperature: 0.3,
		},
	)
	if err != nil {
		log.Printf("Warning: openai summary failed, using fallback: %v", err)
		return Fallback(report)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Fallback(report)
	}

	lines := strings.SplitN(strings.TrimSpace(resp.Choices[0].Message.Content), "\n", 2)
	title := strings.TrimSpace(lines[0])
	description := ""
	if len(lines) > 1 {
		description = strings.TrimSpace(lines[1])
	}
	if title == "" {
		return Fallback(report)
	}
	if description == "" {
		_, description = Fallback(report)
	}
	return title, description
}

// Fallback is the deterministic title/description used when OpenAI is
// unavailable.
func Fallback(report *types.AutomatedReport) (string, string) {
	title := report.ExtractedTitle
	if title == "" {
		title = "Reported " + report.IncidentType.Display()
	}

	description := report.ExtractedDescription
	if description == "" {
		description = report.ProcessedContent
	}
	if description == "" {
		description = report.RawContent
	}
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}
	return title, description
}
