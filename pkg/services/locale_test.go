package services

import (
	"testing"

	"vita-path-api/pkg/models"
)

func TestDeriveLocaleKnownCountries(t *testing.T) {
	testCases := []struct {
		country  string
		expected models.LocaleSettings
	}{
		{"India", models.LocaleSettings{Timezone: "Asia/Kolkata", Currency: "INR", Language: "hi"}},
		{"United States", models.LocaleSettings{Timezone: "America/New_York", Currency: "USD", Language: "en"}},
		{"United Kingdom", models.LocaleSettings{Timezone: "Europe/London", Currency: "GBP", Language: "en"}},
		{"Canada", models.LocaleSettings{Timezone: "America/Toronto", Currency: "CAD", Language: "en"}},
		{"Australia", models.LocaleSettings{Timezone: "Australia/Sydney", Currency: "AUD", Language: "en"}},
		{"Germany", models.LocaleSettings{Timezone: "Europe/Berlin", Currency: "EUR", Language: "de"}},
		{"France", models.LocaleSettings{Timezone: "Europe/Paris", Currency: "EUR", Language: "fr"}},
		{"Japan", models.LocaleSettings{Timezone: "Asia/Tokyo", Currency: "JPY", Language: "ja"}},
		{"China", models.LocaleSettings{Timezone: "Asia/Shanghai", Currency: "CNY", Language: "zh"}},
		{"Brazil", models.LocaleSettings{Timezone: "America/Sao_Paulo", Currency: "BRL", Language: "pt"}},
	}

	for _, tc := range testCases {
		if got := DeriveLocale(tc.country); got != tc.expected {
			t.Errorf("DeriveLocale(%q) = %+v, expected %+v", tc.country, got, tc.expected)
		}
	}
}

func TestDeriveLocaleFallback(t *testing.T) {
	expected := models.LocaleSettings{Timezone: "UTC", Currency: "USD", Language: "en"}

	for _, country := range []string{"", "Atlantis", "Unknown Country", "india", "INDIA"} {
		if got := DeriveLocale(country); got != expected {
			t.Errorf("DeriveLocale(%q) = %+v, expected default %+v", country, got, expected)
		}
	}
}
