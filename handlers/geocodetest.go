package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-mulika/geocode"
)

// TestGeocode resolves ?location= through the geocoder, fallbacks included.
func TestGeocode(c *gin.Context) {
	locationParam := c.Query("location")
	if locationParam == "" {
		locationParam = "Westlands, Nairobi"
	}

	// JSON response struct
	type LocationResponse struct {
		Location  string  `json:"location"`
		Resolved  bool    `json:"resolved"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Address   string  `json:"address,omitempty"`
		Accuracy  string  `json:"accuracy,omitempty"`
	}

	responseData := LocationResponse{
		Location: locationParam,
	}

	result, ok := geocode.Resolve(c.Request.Context(), locationParam)
	if ok {
		responseData.Resolved = true
		responseData.Latitude = result.Lat
		responseData.Longitude = result.Long
		responseData.Address = result.Address
		responseData.Accuracy = string(result.Accuracy)
	}

	c.JSON(http.StatusOK, responseData)
}
