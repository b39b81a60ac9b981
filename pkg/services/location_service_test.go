package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"vita-path-api/pkg/models"
)

// queuedFix scripts one geolocator answer. When release is set, the call
// blocks until the channel is closed (or the context expires); taken is
// closed as soon as the call picks the fix up.
type queuedFix struct {
	coord   models.Coordinate
	err     error
	release chan struct{}
	taken   chan struct{}
}

type fakeGeolocator struct {
	mu    sync.Mutex
	fixes []queuedFix
}

func (g *fakeGeolocator) CurrentPosition(ctx context.Context, _ GeolocateOptions) (models.Coordinate, error) {
	g.mu.Lock()
	if len(g.fixes) == 0 {
		g.mu.Unlock()
		return models.Coordinate{}, errors.New("no fix queued")
	}
	fix := g.fixes[0]
	g.fixes = g.fixes[1:]
	g.mu.Unlock()

	if fix.taken != nil {
		close(fix.taken)
	}
	if fix.release != nil {
		select {
		case <-fix.release:
		case <-ctx.Done():
			return models.Coordinate{}, ctx.Err()
		}
	}
	return fix.coord, fix.err
}

// fakeGeocoder labels each place by the latitude of the fix so tests can
// tell which resolution produced the published context.
type fakeGeocoder struct {
	err error
}

func (g *fakeGeocoder) ReverseGeocode(_ context.Context, coord models.Coordinate) (models.PlaceRecord, error) {
	if g.err != nil {
		return models.PlaceRecord{}, g.err
	}
	return models.PlaceRecord{
		Coordinate: coord,
		City:       fmt.Sprintf("City@%.1f", coord.Latitude),
		Area:       "Test Area",
		State:      "Test State",
		Country:    "India",
		PostalCode: "400050",
	}, nil
}

func newTestService(geolocator Geolocator, geocoder Geocoder) *LocationService {
	return NewLocationService(geolocator, geocoder, NewSimulatedWeatherService())
}

func TestResolveSuccess(t *testing.T) {
	geo := &fakeGeolocator{fixes: []queuedFix{{coord: models.Coordinate{Latitude: 19.0, Longitude: 72.8}}}}
	svc := newTestService(geo, &fakeGeocoder{})

	snapshot := svc.Resolve(context.Background())

	if snapshot.Status != models.StatusReady {
		t.Fatalf("Status = %q, expected ready", snapshot.Status)
	}
	if snapshot.Place == nil || snapshot.Place.City != "City@19.0" {
		t.Fatalf("unexpected place: %+v", snapshot.Place)
	}
	if snapshot.Locale == nil || snapshot.Locale.Currency != "INR" {
		t.Fatalf("expected India locale, got %+v", snapshot.Locale)
	}
	if snapshot.Weather == nil {
		t.Fatal("Ready context must carry a weather reading")
	}
	if snapshot.ErrorMessage != "" {
		t.Errorf("unexpected error message %q", snapshot.ErrorMessage)
	}
}

func TestResolveGeolocationFailure(t *testing.T) {
	geo := &fakeGeolocator{fixes: []queuedFix{{err: errors.New("permission denied")}}}
	svc := newTestService(geo, &fakeGeocoder{})

	snapshot := svc.Resolve(context.Background())

	if snapshot.Status != models.StatusFailed {
		t.Fatalf("Status = %q, expected failed", snapshot.Status)
	}
	if snapshot.Place == nil || snapshot.Place.City != "Mumbai" || snapshot.Place.PostalCode != "400050" {
		t.Fatalf("expected Mumbai fallback place, got %+v", snapshot.Place)
	}
	if snapshot.Locale == nil || snapshot.Locale.Timezone != "Asia/Kolkata" {
		t.Fatalf("expected fallback locale Asia/Kolkata, got %+v", snapshot.Locale)
	}
	if snapshot.Weather == nil {
		t.Fatal("Failed context still carries a weather reading")
	}
	if snapshot.ErrorMessage == "" {
		t.Error("expected a human-readable error message")
	}
}

func TestResolveGeocodeFailure(t *testing.T) {
	geo := &fakeGeolocator{fixes: []queuedFix{{coord: models.Coordinate{Latitude: 19.0}}}}
	svc := newTestService(geo, &fakeGeocoder{err: errors.New("provider down")})

	snapshot := svc.Resolve(context.Background())

	if snapshot.Status != models.StatusFailed {
		t.Fatalf("Status = %q, expected failed", snapshot.Status)
	}
	if snapshot.Place == nil || snapshot.Place.City != "Mumbai" {
		t.Fatalf("expected fallback place, got %+v", snapshot.Place)
	}
}

func TestResolveTimesOut(t *testing.T) {
	// A geolocator that never answers: resolution must still terminate,
	// as Failed with fallback data, within the timeout bound.
	geo := &fakeGeolocator{fixes: []queuedFix{{release: make(chan struct{})}}}
	svc := newTestService(geo, &fakeGeocoder{})
	svc.geolocateTimeout = 50 * time.Millisecond

	start := time.Now()
	snapshot := svc.Resolve(context.Background())
	elapsed := time.Since(start)

	if snapshot.Status != models.StatusFailed {
		t.Fatalf("Status = %q, expected failed", snapshot.Status)
	}
	if snapshot.Place == nil {
		t.Fatal("expected fallback place after timeout")
	}
	if elapsed > 2*time.Second {
		t.Fatalf("resolution took %v, expected prompt termination", elapsed)
	}
}

func TestRefreshDiscardsStaleResult(t *testing.T) {
	release := make(chan struct{})
	taken := make(chan struct{})
	geo := &fakeGeolocator{fixes: []queuedFix{
		{coord: models.Coordinate{Latitude: 28.6}, release: release, taken: taken},
		{coord: models.Coordinate{Latitude: 19.0}},
	}}
	svc := newTestService(geo, &fakeGeocoder{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.Resolve(context.Background())
	}()

	// Wait for the first resolution to be in flight, then issue a newer one.
	<-taken
	second := svc.Refresh(context.Background())
	if second.Place == nil || second.Place.City != "City@19.0" {
		t.Fatalf("second resolution published %+v", second.Place)
	}

	// Let the stale resolution complete; its result must be discarded.
	close(release)
	wg.Wait()

	final := svc.Context()
	if final.Place == nil || final.Place.City != "City@19.0" {
		t.Fatalf("stale resolution overwrote the context: %+v", final.Place)
	}
	if final.Status != models.StatusReady {
		t.Fatalf("Status = %q, expected ready", final.Status)
	}
}

func TestGenerationDisciplineDirect(t *testing.T) {
	svc := newTestService(&fakeGeolocator{}, &fakeGeocoder{})

	gen1 := svc.beginResolve()
	gen2 := svc.beginResolve()

	placeB := models.PlaceRecord{City: "B", Country: "India"}
	svc.applyReady(gen2, placeB, DeriveLocale("India"), models.WeatherReading{})

	placeA := models.PlaceRecord{City: "A", Country: "India"}
	svc.applyReady(gen1, placeA, DeriveLocale("India"), models.WeatherReading{})

	if got := svc.Context(); got.Place.City != "B" {
		t.Fatalf("context shows %q, expected the newer generation's result", got.Place.City)
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	geo := &fakeGeolocator{fixes: []queuedFix{{coord: models.Coordinate{Latitude: 19.0}}}}
	svc := newTestService(geo, &fakeGeocoder{})

	updates := svc.Subscribe()
	svc.Resolve(context.Background())

	// First notification is the Loading transition, followed by Ready.
	first := <-updates
	if first.Status != models.StatusLoading {
		t.Fatalf("first notification status = %q, expected loading", first.Status)
	}
	second := <-updates
	if second.Status != models.StatusReady {
		t.Fatalf("second notification status = %q, expected ready", second.Status)
	}
}

func TestFallbackPlaceValues(t *testing.T) {
	place := FallbackPlace()

	if place.City != "Mumbai" || place.Area != "Bandra West" || place.State != "Maharashtra" ||
		place.Country != "India" || place.PostalCode != "400050" {
		t.Fatalf("unexpected fallback place: %+v", place)
	}
	if place.Coordinate.Latitude != 19.076 || place.Coordinate.Longitude != 72.8777 {
		t.Fatalf("unexpected fallback coordinate: %+v", place.Coordinate)
	}
}
