package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vita-path-api/pkg/models"
)

var testCoordinate = models.Coordinate{Latitude: 19.076, Longitude: 72.8777}

func TestParseAddressComponentsFull(t *testing.T) {
	components := []AddressComponent{
		{LongName: "Bandra West", Types: []string{"sublocality", "political"}},
		{LongName: "Mumbai", Types: []string{"locality", "political"}},
		{LongName: "Mumbai Suburban", Types: []string{"administrative_area_level_2", "political"}},
		{LongName: "Maharashtra", Types: []string{"administrative_area_level_1", "political"}},
		{LongName: "India", Types: []string{"country", "political"}},
		{LongName: "400050", Types: []string{"postal_code"}},
	}

	place := ParseAddressComponents(components, testCoordinate)

	if place.City != "Mumbai" {
		t.Errorf("City = %q, expected locality to win over administrative_area_level_2", place.City)
	}
	if place.Area != "Bandra West" {
		t.Errorf("Area = %q, expected %q", place.Area, "Bandra West")
	}
	if place.State != "Maharashtra" {
		t.Errorf("State = %q, expected %q", place.State, "Maharashtra")
	}
	if place.Country != "India" {
		t.Errorf("Country = %q, expected %q", place.Country, "India")
	}
	if place.PostalCode != "400050" {
		t.Errorf("PostalCode = %q, expected %q", place.PostalCode, "400050")
	}
	if place.Coordinate != testCoordinate {
		t.Errorf("Coordinate = %+v, expected %+v", place.Coordinate, testCoordinate)
	}
}

func TestParseAddressComponentsFallbackLevels(t *testing.T) {
	// No locality and no sublocality: the secondary levels supply the values.
	components := []AddressComponent{
		{LongName: "Mumbai Suburban", Types: []string{"administrative_area_level_2"}},
		{LongName: "Khar", Types: []string{"neighborhood"}},
	}

	place := ParseAddressComponents(components, testCoordinate)

	if place.City != "Mumbai Suburban" {
		t.Errorf("City = %q, expected administrative_area_level_2 fallback", place.City)
	}
	if place.Area != "Khar" {
		t.Errorf("Area = %q, expected neighborhood fallback", place.Area)
	}
}

func TestParseAddressComponentsSentinels(t *testing.T) {
	place := ParseAddressComponents(nil, testCoordinate)

	if place.City != UnknownCity {
		t.Errorf("City = %q, expected sentinel %q", place.City, UnknownCity)
	}
	if place.Area != UnknownArea {
		t.Errorf("Area = %q, expected sentinel %q", place.Area, UnknownArea)
	}
	if place.State != UnknownState {
		t.Errorf("State = %q, expected sentinel %q", place.State, UnknownState)
	}
	if place.Country != UnknownCountry {
		t.Errorf("Country = %q, expected sentinel %q", place.Country, UnknownCountry)
	}
	if place.PostalCode != UnknownPostalCode {
		t.Errorf("PostalCode = %q, expected sentinel %q", place.PostalCode, UnknownPostalCode)
	}
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latlng") == "" {
			t.Error("expected latlng query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"address_components": [
					{"long_name": "Mumbai", "types": ["locality", "political"]},
					{"long_name": "Maharashtra", "types": ["administrative_area_level_1", "political"]},
					{"long_name": "India", "types": ["country", "political"]}
				],
				"formatted_address": "Mumbai, Maharashtra, India"
			}]
		}`))
	}))
	defer server.Close()

	geocoder := NewGoogleGeocodeService("test-key", server.URL)
	place, err := geocoder.ReverseGeocode(context.Background(), testCoordinate)
	if err != nil {
		t.Fatalf("ReverseGeocode returned error: %v", err)
	}

	if place.City != "Mumbai" || place.State != "Maharashtra" || place.Country != "India" {
		t.Errorf("unexpected place: %+v", place)
	}
	if place.Area != UnknownArea {
		t.Errorf("Area = %q, expected sentinel for missing sublocality", place.Area)
	}
	if place.PostalCode != UnknownPostalCode {
		t.Errorf("PostalCode = %q, expected sentinel", place.PostalCode)
	}
}

func TestReverseGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	geocoder := NewGoogleGeocodeService("test-key", server.URL)
	if _, err := geocoder.ReverseGeocode(context.Background(), testCoordinate); err == nil {
		t.Fatal("expected error for ZERO_RESULTS response")
	}
}

func TestReverseGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	geocoder := NewGoogleGeocodeService("test-key", server.URL)
	if _, err := geocoder.ReverseGeocode(context.Background(), testCoordinate); err == nil {
		t.Fatal("expected error for HTTP 500 response")
	}
}
