package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"vita-path-api/pkg/models"
)

// Acquisition bounds documented for the device location source: a fix must
// arrive within 10 seconds, and a cached fix younger than 5 minutes is
// acceptable instead of a fresh hardware poll.
const (
	GeolocateTimeout   = 10 * time.Second
	PositionMaxAge     = 5 * time.Minute
	subscriberCapacity = 8
)

// GeolocateOptions bound a position request.
type GeolocateOptions struct {
	Timeout    time.Duration
	MaximumAge time.Duration
}

// Geolocator is the device location source. It must either return a
// coordinate or an error describing the refusal (denied, unavailable,
// timeout); the service converts every error into a Failed transition.
type Geolocator interface {
	CurrentPosition(ctx context.Context, opts GeolocateOptions) (models.Coordinate, error)
}

// StaticGeolocator returns a fixed coordinate (or a fixed error). It backs
// server-side refreshes, where the configured home position stands in for a
// device fix; live fixes arrive from the client via the resolve endpoint.
type StaticGeolocator struct {
	Coordinate models.Coordinate
	Err        error
}

// CurrentPosition returns the configured fix.
func (g *StaticGeolocator) CurrentPosition(ctx context.Context, _ GeolocateOptions) (models.Coordinate, error) {
	select {
	case <-ctx.Done():
		return models.Coordinate{}, ctx.Err()
	default:
	}
	if g.Err != nil {
		return models.Coordinate{}, g.Err
	}
	return g.Coordinate, nil
}

// FallbackPlace is substituted whenever live location acquisition fails, so
// no consumer is ever left without a place to render.
func FallbackPlace() models.PlaceRecord {
	return models.PlaceRecord{
		Coordinate: models.Coordinate{Latitude: 19.076, Longitude: 72.8777},
		City:       "Mumbai",
		Area:       "Bandra West",
		State:      "Maharashtra",
		Country:    "India",
		PostalCode: "400050",
	}
}

// LocationService owns the single LocationContext of the application. It is
// constructed once at startup and handed to consumers by reference; only its
// own completion handlers replace the published state. A generation counter
// guarantees that when resolutions overlap, only the most recently issued
// request gets to publish its result.
type LocationService struct {
	geolocator Geolocator
	geocoder   Geocoder
	weather    WeatherProvider
	fallback   *SimulatedWeatherService

	geolocateTimeout time.Duration

	mu          sync.Mutex
	generation  uint64
	current     models.LocationContext
	subscribers []chan models.LocationContext
}

// NewLocationService wires the resolver with its three collaborators.
func NewLocationService(geolocator Geolocator, geocoder Geocoder, weather WeatherProvider) *LocationService {
	return &LocationService{
		geolocator:       geolocator,
		geocoder:         geocoder,
		weather:          weather,
		fallback:         NewSimulatedWeatherService(),
		geolocateTimeout: GeolocateTimeout,
		current:          models.LocationContext{Status: models.StatusIdle},
	}
}

// Context returns the current published snapshot.
func (s *LocationService) Context() models.LocationContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe returns a channel receiving every published snapshot. Slow
// consumers miss updates rather than blocking the resolver.
func (s *LocationService) Subscribe() <-chan models.LocationContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan models.LocationContext, subscriberCapacity)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Resolve acquires a device fix and publishes the resulting context. All
// acquisition and geocoding failures are absorbed here: the method always
// returns a terminal snapshot (Ready or Failed with fallback data), never an
// error.
func (s *LocationService) Resolve(ctx context.Context) models.LocationContext {
	gen := s.beginResolve()

	ctx, cancel := context.WithTimeout(ctx, s.geolocateTimeout)
	defer cancel()

	opts := GeolocateOptions{Timeout: s.geolocateTimeout, MaximumAge: PositionMaxAge}
	coord, err := s.geolocator.CurrentPosition(ctx, opts)
	if err != nil {
		log.Printf("location acquisition failed: %v", err)
		return s.applyFailure(ctx, gen, fmt.Sprintf("Unable to get your location: %v", err))
	}
	return s.resolveCoordinate(ctx, gen, coord)
}

// Refresh re-enters Loading and repeats resolution. Safe to call while a
// prior resolution is in flight; the older result is discarded on arrival.
func (s *LocationService) Refresh(ctx context.Context) models.LocationContext {
	return s.Resolve(ctx)
}

// ResolveCoordinate resolves an explicit device fix supplied by the client,
// bypassing the geolocator. It participates in the same generation
// discipline as Resolve.
func (s *LocationService) ResolveCoordinate(ctx context.Context, coord models.Coordinate) models.LocationContext {
	gen := s.beginResolve()

	ctx, cancel := context.WithTimeout(ctx, s.geolocateTimeout)
	defer cancel()

	return s.resolveCoordinate(ctx, gen, coord)
}

// beginResolve transitions to Loading and issues a new generation. Any
// in-flight resolution from an earlier generation becomes stale.
func (s *LocationService) beginResolve() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.current.Status = models.StatusLoading
	s.current.ErrorMessage = ""
	s.current.UpdatedAt = time.Now().UTC()
	s.notifyLocked()
	return s.generation
}

func (s *LocationService) resolveCoordinate(ctx context.Context, gen uint64, coord models.Coordinate) models.LocationContext {
	place, err := s.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		log.Printf("reverse geocoding failed for (%.4f, %.4f): %v", coord.Latitude, coord.Longitude, err)
		return s.applyFailure(ctx, gen, "Unable to resolve an address for your location")
	}

	locale := DeriveLocale(place.Country)
	reading := s.currentWeather(ctx, coord)
	return s.applyReady(gen, place, locale, reading)
}

// currentWeather queries the configured provider and degrades to the
// simulated generator on failure, so a Ready context always carries a
// reading.
func (s *LocationService) currentWeather(ctx context.Context, coord models.Coordinate) models.WeatherReading {
	reading, err := s.weather.CurrentConditions(ctx, coord)
	if err != nil {
		log.Printf("weather provider failed, using simulated reading: %v", err)
		reading, _ = s.fallback.CurrentConditions(ctx, coord)
	}
	return reading
}

// applyReady publishes a successful resolution unless it is stale.
func (s *LocationService) applyReady(gen uint64, place models.PlaceRecord, locale models.LocaleSettings, reading models.WeatherReading) models.LocationContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer resolution was issued while this one was in flight.
		return s.current
	}
	s.current = models.LocationContext{
		Place:     &place,
		Locale:    &locale,
		Weather:   &reading,
		Status:    models.StatusReady,
		UpdatedAt: time.Now().UTC(),
	}
	s.notifyLocked()
	return s.current
}

// applyFailure publishes the fallback place, its locale, and a simulated
// reading unless the result is stale. The error stays visible as a
// dismissible message, never as a blocking failure.
func (s *LocationService) applyFailure(ctx context.Context, gen uint64, message string) models.LocationContext {
	place := FallbackPlace()
	locale := DeriveLocale(place.Country)
	reading, _ := s.fallback.CurrentConditions(ctx, place.Coordinate)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return s.current
	}
	s.current = models.LocationContext{
		Place:        &place,
		Locale:       &locale,
		Weather:      &reading,
		Status:       models.StatusFailed,
		ErrorMessage: message,
		UpdatedAt:    time.Now().UTC(),
	}
	s.notifyLocked()
	return s.current
}

// notifyLocked fans the current snapshot out to subscribers. Callers hold
// s.mu.
func (s *LocationService) notifyLocked() {
	for _, ch := range s.subscribers {
		select {
		case ch <- s.current:
		default:
		}
	}
}
