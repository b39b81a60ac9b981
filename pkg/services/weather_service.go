package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"vita-path-api/pkg/models"
)

// Weather conditions and air quality levels reported by providers.
var (
	WeatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Hot", "Pleasant"}
	AirQualityLevels  = []string{"Good", "Moderate", "Poor", "Very Poor"}
)

// WeatherProvider supplies the current environmental reading for a
// coordinate. The simulated implementation never fails; a real one may.
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, coord models.Coordinate) (models.WeatherReading, error)
}

// SimulatedWeatherService fabricates readings within documented ranges:
// temperature 20-40°C, humidity 40-80%, UV index 1-11, wind 5-20 km/h.
// It stands in for a real weather integration behind the same shape.
type SimulatedWeatherService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedWeatherService creates a simulated weather source.
func NewSimulatedWeatherService() *SimulatedWeatherService {
	return &SimulatedWeatherService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CurrentConditions returns a fabricated reading. The coordinate is accepted
// for interface compatibility but does not influence the values.
func (ws *SimulatedWeatherService) CurrentConditions(_ context.Context, _ models.Coordinate) (models.WeatherReading, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	return models.WeatherReading{
		TemperatureC: 20 + ws.rng.Intn(21),
		Condition:    WeatherConditions[ws.rng.Intn(len(WeatherConditions))],
		HumidityPct:  40 + ws.rng.Intn(41),
		AirQuality:   AirQualityLevels[ws.rng.Intn(len(AirQualityLevels))],
		UVIndex:      1 + ws.rng.Intn(11),
		WindSpeedKmh: 5 + ws.rng.Intn(16),
	}, nil
}

// openWeatherMapResponse mirrors the fields we read from the OpenWeatherMap
// current weather endpoint.
type openWeatherMapResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
}

// OpenWeatherMapService is the real-provider implementation of
// WeatherProvider, selected when an API key is configured.
type OpenWeatherMapService struct {
	client    *http.Client
	apiKey    string
	baseURL   string
	simulated *SimulatedWeatherService
}

// NewOpenWeatherMapService creates a weather source backed by the
// OpenWeatherMap current weather API.
func NewOpenWeatherMapService(apiKey, baseURL string) *OpenWeatherMapService {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}
	return &OpenWeatherMapService{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:    apiKey,
		baseURL:   baseURL,
		simulated: NewSimulatedWeatherService(),
	}
}

// CurrentConditions fetches live weather for the coordinate. The current
// weather endpoint carries no air quality or UV data, so those two fields
// are filled from the simulated generator.
func (ws *OpenWeatherMapService) CurrentConditions(ctx context.Context, coord models.Coordinate) (models.WeatherReading, error) {
	url := fmt.Sprintf("%s/weather?lat=%.6f&lon=%.6f&units=metric&appid=%s",
		ws.baseURL, coord.Latitude, coord.Longitude, ws.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := ws.client.Do(req)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to fetch weather data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherReading{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var owm openWeatherMapResponse
	if err := json.Unmarshal(body, &owm); err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	filler, _ := ws.simulated.CurrentConditions(ctx, coord)

	reading := models.WeatherReading{
		TemperatureC: int(owm.Main.Temp + 0.5),
		Condition:    mapOWMCondition(owm, owm.Main.Temp),
		HumidityPct:  owm.Main.Humidity,
		AirQuality:   filler.AirQuality,
		UVIndex:      filler.UVIndex,
		WindSpeedKmh: int(owm.Wind.Speed*3.6 + 0.5),
	}
	return reading, nil
}

// mapOWMCondition folds OpenWeatherMap condition groups onto the dashboard's
// five-value condition enum.
func mapOWMCondition(owm openWeatherMapResponse, tempC float64) string {
	group := ""
	if len(owm.Weather) > 0 {
		group = owm.Weather[0].Main
	}

	switch group {
	case "Clear":
		if tempC >= 35 {
			return "Hot"
		}
		return "Sunny"
	case "Clouds", "Mist", "Haze", "Fog":
		return "Cloudy"
	case "Rain", "Drizzle", "Thunderstorm":
		return "Rainy"
	default:
		if tempC >= 35 {
			return "Hot"
		}
		return "Pleasant"
	}
}
