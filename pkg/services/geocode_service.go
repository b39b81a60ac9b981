package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vita-path-api/pkg/models"
)

// Sentinels substituted for address fields the geocoder did not return.
const (
	UnknownCity       = "Unknown City"
	UnknownArea       = "Unknown Area"
	UnknownState      = "Unknown State"
	UnknownCountry    = "Unknown Country"
	UnknownPostalCode = "000000"
)

// Geocoder maps a coordinate to a structured place record.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, coord models.Coordinate) (models.PlaceRecord, error)
}

// AddressComponent is one administrative component of a geocoding result,
// tagged with the levels it belongs to (locality, country, ...).
type AddressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

// googleGeocodeResponse mirrors the Google Geocoding API response envelope.
type googleGeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []AddressComponent `json:"address_components"`
		FormattedAddress  string             `json:"formatted_address"`
	} `json:"results"`
}

// GoogleGeocodeService resolves coordinates through the Google Geocoding
// REST API.
type GoogleGeocodeService struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewGoogleGeocodeService creates a geocoder backed by the Google Geocoding
// API. baseURL is overridable for tests; pass "" for the production host.
func NewGoogleGeocodeService(apiKey, baseURL string) *GoogleGeocodeService {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}
	return &GoogleGeocodeService{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// ReverseGeocode fetches and parses the address for a coordinate. Any
// non-OK provider status is returned as an error; the caller decides on
// fallback substitution.
func (gs *GoogleGeocodeService) ReverseGeocode(ctx context.Context, coord models.Coordinate) (models.PlaceRecord, error) {
	url := fmt.Sprintf("%s/maps/api/geocode/json?latlng=%.6f,%.6f&key=%s",
		gs.baseURL, coord.Latitude, coord.Longitude, gs.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.PlaceRecord{}, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := gs.client.Do(req)
	if err != nil {
		return models.PlaceRecord{}, fmt.Errorf("failed to fetch geocode data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.PlaceRecord{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.PlaceRecord{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var geocodeResp googleGeocodeResponse
	if err := json.Unmarshal(body, &geocodeResp); err != nil {
		return models.PlaceRecord{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if geocodeResp.Status != "OK" || len(geocodeResp.Results) == 0 {
		return models.PlaceRecord{}, fmt.Errorf("geocoder returned no results (status=%s)", geocodeResp.Status)
	}

	return ParseAddressComponents(geocodeResp.Results[0].AddressComponents, coord), nil
}

// ParseAddressComponents builds a PlaceRecord from a tagged component list.
// Field precedence: city prefers locality over administrative_area_level_2,
// area prefers sublocality over neighborhood. Missing fields get their
// sentinel values.
func ParseAddressComponents(components []AddressComponent, coord models.Coordinate) models.PlaceRecord {
	place := models.PlaceRecord{
		Coordinate: coord,
		City:       componentByType(components, "locality", "administrative_area_level_2"),
		Area:       componentByType(components, "sublocality", "neighborhood"),
		State:      componentByType(components, "administrative_area_level_1"),
		Country:    componentByType(components, "country"),
		PostalCode: componentByType(components, "postal_code"),
	}

	if place.City == "" {
		place.City = UnknownCity
	}
	if place.Area == "" {
		place.Area = UnknownArea
	}
	if place.State == "" {
		place.State = UnknownState
	}
	if place.Country == "" {
		place.Country = UnknownCountry
	}
	if place.PostalCode == "" {
		place.PostalCode = UnknownPostalCode
	}
	return place
}

// componentByType returns the long name of the first component matching any
// of the candidate types, checked in candidate order so earlier types win.
func componentByType(components []AddressComponent, candidates ...string) string {
	for _, candidate := range candidates {
		for _, component := range components {
			for _, t := range component.Types {
				if t == candidate {
					return component.LongName
				}
			}
		}
	}
	return ""
}
