package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// languageClient is a singleton Cloud Natural Language client. Only the
// diagnostics surface uses it; the pipeline itself stays deterministic.
var (
	languageClient *language.Client
	languageErr    error
	clientOnce     sync.Once
)

// Entity represents a named entity detected in the text.
type Entity struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
	Mentions []EntityMention   `json:"mentions"`
}

// EntityMention holds details about an entity mention.
type EntityMention struct {
	Content     string  `json:"content"`
	BeginOffset int32   `json:"begin_offset"`
	Probability float32 `json:"probability"`
}

// AnalyzeEntities sends text to the Cloud Natural Language API and returns
// the named entities it found.
func AnalyzeEntities(client *language.Client, text string) ([]Entity, error) {
	ctx := context.Background()
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var entities []Entity
	for _, e := range resp.Entities {
		var mentions []EntityMention
		for _, m := range e.Mentions {
			mentions = append(mentions, EntityMention{
				Content:     m.Text.Content,
				BeginOffset: m.Text.BeginOffset,
				Probability: m.Probability,
			})
		}
		md := make(map[string]string)
		for k, v := range e.Metadata {
			md[k] = v
		}
		entities = append(entities, Entity{
			Name:     e.Name,
			Type:     e.Type.String(),
			Metadata: md,
			Mentions: mentions,
		})
	}
	return entities, nil
}

// InitLanguageClient initializes and returns the language client. Credentials
// come base64-encoded from the environment.
func InitLanguageClient() (*language.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		creds, decodeErr := base64.StdEncoding.DecodeString(encodedCreds)
		if decodeErr != nil {
			languageErr = fmt.Errorf("failed to decode Natural Language credentials: %w", decodeErr)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, languageErr = language.NewClient(context.Background(), opt)
		if languageErr != nil {
			log.Printf("Failed to create Natural Language client: %v", languageErr)
		}
	})

	return languageClient, languageErr
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}
