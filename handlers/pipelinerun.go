package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-mulika/pipeline"
)

// TriggerPipeline kicks off an ingestion run outside the cron schedule. The
// run happens in the background; the response only confirms it started.
func TriggerPipeline(c *gin.Context, p *pipeline.Pipeline) {
	go func() {
		if err := p.Run(context.Background()); err != nil {
			log.Printf("Manual pipeline run failed: %v", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Pipeline run started",
	})
}
