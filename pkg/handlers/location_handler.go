package handlers

import (
	"net/http"

	"vita-path-api/pkg/models"
	"vita-path-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// LocationHandler exposes the location context to the dashboard panels.
type LocationHandler struct {
	locationService *services.LocationService
	weatherProvider services.WeatherProvider
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locationService *services.LocationService, weatherProvider services.WeatherProvider) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		weatherProvider: weatherProvider,
	}
}

// GetLocationService returns the underlying location service.
func (lh *LocationHandler) GetLocationService() *services.LocationService {
	return lh.locationService
}

// GetLocationContext returns the current published snapshot.
func (lh *LocationHandler) GetLocationContext(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    lh.locationService.Context(),
	})
}

// ResolveLocation resolves a device fix posted by the client. The browser
// owns geolocation; the server owns geocoding, locale derivation, and the
// weather reading.
func (lh *LocationHandler) ResolveLocation(c *gin.Context) {
	var req models.ResolveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required: " + err.Error()})
		return
	}

	lat, lng := *req.Latitude, *req.Longitude
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	snapshot := lh.locationService.ResolveCoordinate(c.Request.Context(), models.Coordinate{
		Latitude:  lat,
		Longitude: lng,
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    snapshot,
	})
}

// RefreshLocation re-runs resolution through the configured geolocator.
// Always answers 200: a failed resolution is a renderable Failed snapshot
// with fallback data, not an HTTP error.
func (lh *LocationHandler) RefreshLocation(c *gin.Context) {
	snapshot := lh.locationService.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    snapshot,
	})
}

// GetLocaleSettings returns the locale triple for a country display name.
// Unknown countries get the UTC/USD/en default, so the panels can branch
// unconditionally.
func (lh *LocationHandler) GetLocaleSettings(c *gin.Context) {
	country := c.Param("country")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.DeriveLocale(country),
	})
}

// GetWeather returns a fresh reading for the query coordinate, defaulting
// to the fallback place.
func (lh *LocationHandler) GetWeather(c *gin.Context) {
	coord := services.FallbackPlace().Coordinate
	if lat, ok := queryFloat(c, "lat"); ok {
		coord.Latitude = lat
	}
	if lng, ok := queryFloat(c, "lng"); ok {
		coord.Longitude = lng
	}

	reading, err := lh.weatherProvider.CurrentConditions(c.Request.Context(), coord)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reading,
	})
}
