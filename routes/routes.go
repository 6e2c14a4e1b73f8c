package routes

import (
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-mulika/db"
	"go-mulika/handlers"
	"go-mulika/pipeline"
)

func SetupRouter(store *db.FirestoreStore, p *pipeline.Pipeline, nlpClient *language.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Mulika!",
		})
	})

	// api routes
	api := r.Group("/api/mulika")
	{
		api.GET("/reports", func(c *gin.Context) {
			handlers.ListReports(c, store)
		})
		api.GET("/reports/:id", func(c *gin.Context) {
			handlers.GetReport(c, store)
		})
		api.POST("/reports/:id/review", func(c *gin.Context) {
			handlers.ReviewReport(c, store)
		})
		api.POST("/pipeline/run", func(c *gin.Context) {
			handlers.TriggerPipeline(c, p)
		})
		api.POST("/admin/seed", func(c *gin.Context) {
			handlers.SeedDefaults(c, store)
		})

		// diagnostics
		api.GET("/classify", func(c *gin.Context) {
			handlers.TestClassify(c, store)
		})
		api.GET("/geocode", handlers.TestGeocode)
		api.GET("/entities", func(c *gin.Context) {
			handlers.TestEntity(c, nlpClient)
		})
	}

	return r
}
