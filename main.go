package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-mulika/cronjobs"
	"go-mulika/db"
	"go-mulika/nlp"
	"go-mulika/pipeline"
	"go-mulika/routes"
	"go-mulika/summarization"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	clientURL := os.Getenv("CLIENT_URL")
	fmt.Println("CLIENT_URL: ", clientURL)

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	store := db.NewFirestoreStore(firestoreClient)
	summarizer := summarization.New()
	p := pipeline.New(store, summarizer.TitleAndDescription)

	// Schedule ingestion runs
	cronjobs.InitCronJobs(p)

	// Natural Language client backs the entity diagnostics endpoint
	langClient, err := nlp.InitLanguageClient()
	if err != nil {
		log.Fatalf("Failed to create Natural Language client: %v", err)
	}
	defer nlp.CloseLanguageClient()

	r := routes.SetupRouter(store, p, langClient)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
