package geocode

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"googlemaps.github.io/maps"

	"go-mulika/types"
)

// geocoding calls are the only external I/O expected to block; bound them
const geocodeTimeout = 10 * time.Second

// mapsClient is a singleton maps client instance. The init error is kept
// alongside it so every later call sees the same failure instead of a nil
// client.
var (
	mapsClient *maps.Client
	initErr    error
	clientOnce sync.Once
)

// Result is a resolved coordinate with its accuracy tier.
type Result struct {
	Lat      float64
	Long     float64
	Address  string
	Accuracy types.LocationAccuracy
}

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			initErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, initErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, initErr
}

// Resolve geocodes a location description scoped to Kenya. It never returns
// an error: any external failure falls back to the county centroid table, and
// if nothing there matches either, ok is false and the report proceeds
// without coordinates.
func Resolve(ctx context.Context, locationText string) (Result, bool) {
	if locationText == "" {
		return Result{}, false
	}

	client, err := InitMapsClient()
	if err != nil || client == nil {
		log.Printf("Geocoder unavailable: %v", err)
		return fallbackCentroid(locationText)
	}

	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	req := &maps.GeocodingRequest{
		Address: locationText + ", Kenya",
		Region:  "ke",
		Components: map[maps.Component]string{
			maps.ComponentCountry: "KE",
		},
	}

	results, err := client.Geocode(ctx, req)
	if err != nil {
		log.Printf("Geocoding failed for %q: %v", locationText, err)
		return fallbackCentroid(locationText)
	}
	if len(results) == 0 {
		return fallbackCentroid(locationText)
	}

	top := results[0]
	return Result{
		Lat:      top.Geometry.Location.Lat,
		Long:     top.Geometry.Location.Lng,
		Address:  top.FormattedAddress,
		Accuracy: classifyAccuracy(top.Types),
	}, true
}

// classifyAccuracy maps Google result types onto our accuracy tiers:
// road-level hits are exact, city/town-level approximate, anything coarser
// county.
func classifyAccuracy(resultTypes []string) types.LocationAccuracy {
	for _, t := range resultTypes {
		switch t {
		case "route", "street_address", "intersection", "premise":
			return types.AccuracyExact
		}
	}
	for _, t := range resultTypes {
		switch t {
		case "locality", "sublocality", "neighborhood", "postal_town":
			return types.AccuracyApproximate
		}
	}
	return types.AccuracyCounty
}

// known region centroids for the fail-soft path
var countyCentroids = map[string][2]float64{
	"nairobi":  {-1.2921, 36.8219},
	"mombasa":  {-4.0435, 39.6682},
	"kisumu":   {-0.1022, 34.7616},
	"nakuru":   {-0.3031, 36.0737},
	"eldoret":  {0.5143, 35.2698},
	"kiambu":   {-1.1714, 36.8356},
	"machakos": {-1.5177, 37.2634},
	"nyeri":    {-0.4167, 36.9510},
	"thika":    {-1.0333, 37.0693},
	"kakamega": {0.2827, 34.7519},
}

// fallbackCentroid resolves to a fixed region centroid when a recognized
// region name appears in the text.
func fallbackCentroid(locationText string) (Result, bool) {
	lower := strings.ToLower(locationText)
	for name, coords := range countyCentroids {
		if strings.Contains(lower, name) {
			return Result{
				Lat:      coords[0],
				Long:     coords[1],
				Address:  titleWord(name) + " County, Kenya",
				Accuracy: types.AccuracyCounty,
			}, true
		}
	}
	return Result{}, false
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
