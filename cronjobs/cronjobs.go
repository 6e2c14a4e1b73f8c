package cronjobs

import (
	"context"
	"log"
	"os"

	"github.com/robfig/cron/v3"

	"go-mulika/pipeline"
)

// Default schedule; override with PIPELINE_CRON.
const defaultSchedule = "*/15 * * * *"

// InitCronJobs schedules the ingestion pipeline. Each tick fetches due
// sources and processes whatever came in; overlapping ticks are skipped by
// the pipeline's own run guard.
func InitCronJobs(p *pipeline.Pipeline) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	schedule := os.Getenv("PIPELINE_CRON")
	if schedule == "" {
		schedule = defaultSchedule
	}

	_, err := c.AddFunc(schedule, func() {
		log.Println("\nCronJob: Ingestion Pipeline Running")
		if err := p.Run(context.Background()); err != nil {
			log.Printf("Pipeline run failed: %v", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling ingestion pipeline:", err)
		return
	}

	c.Start()
}
