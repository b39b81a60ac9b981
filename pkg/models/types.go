package models

import "time"

// Location context lifecycle states.
const (
	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusReady   = "ready"
	StatusFailed  = "failed"
)

// Coordinate is a single device position fix.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceRecord is a reverse-geocoded location. Fields the geocoder could not
// resolve hold their "Unknown X" sentinel, never an empty string, so
// dashboard panels can render unconditionally.
type PlaceRecord struct {
	Coordinate Coordinate `json:"coordinate"`
	City       string     `json:"city"`
	Area       string     `json:"area"`
	State      string     `json:"state"`
	Country    string     `json:"country"`
	PostalCode string     `json:"postal_code"`
}

// LocaleSettings is derived from the place's country display name.
type LocaleSettings struct {
	Timezone string `json:"timezone"`
	Currency string `json:"currency"`
	Language string `json:"language"`
}

// WeatherReading is the environmental snapshot attached to a location
// context. The simulated provider fills it from documented ranges; a real
// provider only has to honor the shape.
type WeatherReading struct {
	TemperatureC int    `json:"temperature_c"`
	Condition    string `json:"condition"`
	HumidityPct  int    `json:"humidity_pct"`
	AirQuality   string `json:"air_quality"`
	UVIndex      int    `json:"uv_index"`
	WindSpeedKmh int    `json:"wind_speed_kmh"`
}

// LocationContext is the aggregate state published by the location service.
// Consumers receive snapshots and never mutate them.
type LocationContext struct {
	Place        *PlaceRecord    `json:"place"`
	Locale       *LocaleSettings `json:"locale"`
	Weather      *WeatherReading `json:"weather"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Chat message authors.
const (
	AuthorUser = "user"
	AuthorBot  = "bot"
)

// ChatMessage is one entry of a session transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category,omitempty"`
	Language  string    `json:"language,omitempty"`
}

// ChatReply is the classifier output for one utterance.
type ChatReply struct {
	Category         string `json:"category"`
	DetectedLanguage string `json:"detected_language"`
	Body             string `json:"body"`
}

// QuickAction is a suggested prompt shown above the chat input, carried in
// both supported languages.
type QuickAction struct {
	Text     string `json:"text"`
	Hindi    string `json:"hindi"`
	Category string `json:"category"`
}

// ResolveLocationRequest is the body of POST /api/v1/location/resolve.
// Pointers distinguish a missing field from a legitimate zero coordinate.
type ResolveLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// ChatMessageRequest is the body of POST /api/v1/chat/message.
type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}
