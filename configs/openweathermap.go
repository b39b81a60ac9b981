package config

// OpenWeatherMapConfig holds the real weather provider settings. When the
// API key is empty the simulated provider is used instead.
type OpenWeatherMapConfig struct {
	APIKey  string
	BaseURL string
}

// GetOpenWeatherMapConfig loads the OpenWeatherMap settings
func GetOpenWeatherMapConfig() *OpenWeatherMapConfig {
	return &OpenWeatherMapConfig{
		APIKey:  getEnv("OPENWEATHERMAP_API_KEY", ""),
		BaseURL: getEnv("OPENWEATHERMAP_BASE_URL", "https://api.openweathermap.org/data/2.5"),
	}
}
