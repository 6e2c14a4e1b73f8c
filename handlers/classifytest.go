package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-mulika/classify"
	"go-mulika/db"
	"go-mulika/location"
	"go-mulika/nlp"
)

// TestClassify runs the text stages (normalize, keywords, classification,
// location extraction, certainty) on ?text= without touching any report.
func TestClassify(c *gin.Context, store *db.FirestoreStore) {
	text := c.Query("text")
	if text == "" {
		text = "Robbery reported along Thika Road near Garden City Mall"
	}

	keywordTable, err := store.ActiveKeywords(c.Request.Context())
	if err != nil {
		log.Printf("Error loading keywords: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load keywords"})
		return
	}
	gazetteer, err := store.ActiveGazetteer(c.Request.Context())
	if err != nil {
		log.Printf("Error loading gazetteer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gazetteer"})
		return
	}

	normalized := nlp.Normalize(text)
	detected := nlp.DetectKeywords(normalized, keywordTable)
	incidentType := classify.Classify(detected)
	extracted := location.Extract(text, normalized, gazetteer)

	c.JSON(http.StatusOK, gin.H{
		"text":         text,
		"normalized":   normalized,
		"keywords":     detected,
		"incidentType": incidentType,
		"category":     classify.LookupCategory(incidentType),
		"severity":     classify.SeverityFor(detected, keywordTable),
		"certainty":    nlp.CalculateCertainty(normalized),
		"location":     extracted,
	})
}
