package handler

import (
	"log"
	"net/http"
	"sync"

	config "vita-path-api/configs"
	"vita-path-api/pkg/handlers"
	"vita-path-api/pkg/models"
	"vita-path-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	app  *gin.Engine
	once sync.Once
)

// setupApp initializes the Gin application once. In a serverless runtime the
// environment variables come from the platform, so godotenv is not called
// here.
func setupApp() *gin.Engine {
	once.Do(func() {
		cfg := config.LoadConfig()

		r := gin.Default()

		monitoringService := services.NewMonitoringService()
		geocoder := services.NewGoogleGeocodeService(cfg.GoogleMapsAPIKey, cfg.GeocodingBaseURL)

		var weatherProvider services.WeatherProvider = services.NewSimulatedWeatherService()
		if owm := config.GetOpenWeatherMapConfig(); owm.APIKey != "" {
			weatherProvider = services.NewOpenWeatherMapService(owm.APIKey, owm.BaseURL)
		}

		geolocator := &services.StaticGeolocator{
			Coordinate: models.Coordinate{
				Latitude:  cfg.DefaultLatitude,
				Longitude: cfg.DefaultLongitude,
			},
		}
		locationService := services.NewLocationService(geolocator, geocoder, weatherProvider)
		chatService := services.NewChatService(services.NewIntentClassifier(), cfg.ChatReplyDelay)

		locationHandler := handlers.NewLocationHandler(locationService, weatherProvider)
		chatHandler := handlers.NewChatHandler(chatService)
		adminHandler := handlers.NewAdminHandler(cfg)
		monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

		r.Use(monitoringService.Middleware())
		r.Use(cors.Default())

		authMiddleware := func(apiKey string) gin.HandlerFunc {
			return func(c *gin.Context) {
				if apiKey == "" || apiKey == "default_secret_key" {
					c.Next()
					return
				}
				if c.GetHeader("X-API-KEY") != apiKey {
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

		app = r
	})
	return app
}

// Handler is the entrypoint for all requests in a serverless deployment.
func Handler(w http.ResponseWriter, r *http.Request) {
	log.Printf("[Handler] %s %s", r.Method, r.URL.Path)
	setupApp().ServeHTTP(w, r)
}
