package db

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// Collection names.
const (
	sourcesCollection   = "sources"
	reportsCollection   = "reports"
	logsSubcollection   = "logs"
	matchesCollection   = "matches"
	incidentsCollection = "incidents"
	keywordsCollection  = "keywords"
	gazetteerCollection = "gazetteer"
)

// HashString hashes a given string using SHA-256 and returns its hex
// representation. Report doc IDs are derived from it so refetching the same
// item always lands on the same document.
func HashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// ReportDocID is the deterministic document ID for a report: the hash of its
// source and the identifier the source assigned to the item.
func ReportDocID(sourceID, sourceIdentifier string) string {
	return HashString(sourceID + "|" + sourceIdentifier)
}

var (
	client     *firestore.Client
	clientOnce sync.Once
)

// InitFirestore initializes and returns a Firestore client.
func InitFirestore() (*firestore.Client, error) {
	var err error

	clientOnce.Do(func() {
		// Decode credentials
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Firestore credentials: %v", err)
		}

		// Initialize Firebase App
		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Fatalf("Error initializing Firestore: %v", err)
		}

		// Get Firestore Client
		client, err = app.Firestore(context.Background())
		if err != nil {
			log.Fatalf("Error getting Firestore client: %v", err)
		}
	})

	return client, err
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}
