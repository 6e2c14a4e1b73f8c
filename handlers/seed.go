package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-mulika/db"
)

// SeedDefaults loads the starter keyword table, gazetteer and sources into
// Firestore. Idempotent: doc IDs derive from the natural keys, so repeat
// calls upsert.
func SeedDefaults(c *gin.Context, store *db.FirestoreStore) {
	ctx := c.Request.Context()

	if err := store.SeedKeywords(ctx, db.DefaultKeywords()); err != nil {
		log.Printf("Error seeding keywords: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed keywords"})
		return
	}
	if err := store.SeedGazetteer(ctx, db.DefaultGazetteer()); err != nil {
		log.Printf("Error seeding gazetteer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed gazetteer"})
		return
	}
	if err := store.SeedSources(ctx, db.DefaultSources()); err != nil {
		log.Printf("Error seeding sources: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed sources"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reference data seeded",
	})
}
