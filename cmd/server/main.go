package main

import (
	"context"
	"log"
	"net/http"

	config "vita-path-api/configs"
	"vita-path-api/pkg/handlers"
	"vita-path-api/pkg/models"
	"vita-path-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()

	r := gin.Default()

	// Services
	monitoringService := services.NewMonitoringService()
	geocoder := services.NewGoogleGeocodeService(cfg.GoogleMapsAPIKey, cfg.GeocodingBaseURL)
	weatherProvider := selectWeatherProvider()
	geolocator := &services.StaticGeolocator{
		Coordinate: models.Coordinate{
			Latitude:  cfg.DefaultLatitude,
			Longitude: cfg.DefaultLongitude,
		},
	}
	locationService := services.NewLocationService(geolocator, geocoder, weatherProvider)
	chatService := services.NewChatService(services.NewIntentClassifier(), cfg.ChatReplyDelay)

	// Handlers
	locationHandler := handlers.NewLocationHandler(locationService, weatherProvider)
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(cfg)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// Middleware
	r.Use(monitoringService.Middleware())
	r.Use(cors.Default())

	authMiddleware := func(apiKey string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if apiKey == "" || apiKey == "default_secret_key" {
				c.Next()
				return
			}
			providedKey := c.GetHeader("X-API-KEY")
			if providedKey != apiKey {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Next()
		}
	}

	r.GET("/health", handlers.HealthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(authMiddleware(cfg.APIKey))
	{
		v1.GET("/hello", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Hello from Vita Path API!",
			})
		})

		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/maintenance/start", adminHandler.StartMaintenance)
			admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
		}

		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/logs", monitoringHandler.GetLogs)
		}

		location := v1.Group("/location")
		{
			location.GET("", locationHandler.GetLocationContext)
			location.POST("/resolve", locationHandler.ResolveLocation)
			location.POST("/refresh", locationHandler.RefreshLocation)
			location.GET("/locale/:country", locationHandler.GetLocaleSettings)
		}

		v1.GET("/weather", locationHandler.GetWeather)

		chat := v1.Group("/chat")
		{
			chat.POST("/message", chatHandler.PostMessage)
			chat.GET("/history/:sessionId", chatHandler.GetHistory)
			chat.GET("/suggestions", chatHandler.GetSuggestions)
			chat.GET("/export/:sessionId", chatHandler.ExportHistory)
		}
	}

	// Resolve the home position once at startup so the dashboard has a
	// context before the first client fix arrives.
	go locationService.Resolve(context.Background())

	log.Printf("Starting Vita Path API server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// selectWeatherProvider returns the OpenWeatherMap provider when an API key
// is configured, otherwise the simulated one.
func selectWeatherProvider() services.WeatherProvider {
	owm := config.GetOpenWeatherMapConfig()
	if owm.APIKey != "" {
		log.Println("Using OpenWeatherMap weather provider")
		return services.NewOpenWeatherMapService(owm.APIKey, owm.BaseURL)
	}
	log.Println("OPENWEATHERMAP_API_KEY not set, using simulated weather provider")
	return services.NewSimulatedWeatherService()
}
