package handlers

import (
	"log"
	"net/http"

	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-mulika/nlp"
)

// TestEntity runs Cloud Natural Language entity analysis over ?text=, for
// eyeballing what the API sees in a report.
func TestEntity(c *gin.Context, nlpClient *language.Client) {
	text := c.Query("text")
	if text == "" {
		text = "Accident at Globe Roundabout, traffic backed up to Ngara"
	}

	entities, err := nlp.AnalyzeEntities(nlpClient, text)
	if err != nil {
		log.Printf("Error analyzing entities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze entities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":     text,
		"entities": entities,
	})
}
