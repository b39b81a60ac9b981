package main

import (
	"context"
	"fmt"
	"log"

	config "vita-path-api/configs"
	"vita-path-api/pkg/models"
	"vita-path-api/pkg/services"

	"github.com/joho/godotenv"
)

// Manual probe for the resolution pipeline: geocodes a few known fixes and
// prints the derived locale and a weather reading for each.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
	cfg := config.LoadConfig()

	geocoder := services.NewGoogleGeocodeService(cfg.GoogleMapsAPIKey, cfg.GeocodingBaseURL)
	weather := services.NewSimulatedWeatherService()

	fixes := []struct {
		name  string
		coord models.Coordinate
	}{
		{"Mumbai (Bandra West)", models.Coordinate{Latitude: 19.076, Longitude: 72.8777}},
		{"New Delhi", models.Coordinate{Latitude: 28.6139, Longitude: 77.209}},
		{"New York", models.Coordinate{Latitude: 40.7128, Longitude: -74.006}},
	}

	fmt.Println("=== Location resolution probe ===")
	for _, fix := range fixes {
		fmt.Printf("\n--- %s (%.4f, %.4f) ---\n", fix.name, fix.coord.Latitude, fix.coord.Longitude)

		place, err := geocoder.ReverseGeocode(context.Background(), fix.coord)
		if err != nil {
			log.Printf("geocode error: %v", err)
			place = services.FallbackPlace()
			fmt.Println("using fallback place")
		}

		locale := services.DeriveLocale(place.Country)
		reading, _ := weather.CurrentConditions(context.Background(), fix.coord)

		fmt.Printf("place:   %s, %s, %s, %s (%s)\n", place.City, place.Area, place.State, place.Country, place.PostalCode)
		fmt.Printf("locale:  %s / %s / %s\n", locale.Timezone, locale.Currency, locale.Language)
		fmt.Printf("weather: %d°C %s, humidity %d%%, AQ %s, UV %d, wind %d km/h\n",
			reading.TemperatureC, reading.Condition, reading.HumidityPct,
			reading.AirQuality, reading.UVIndex, reading.WindSpeedKmh)
	}
}
