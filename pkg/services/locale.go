package services

import "vita-path-api/pkg/models"

// countryLocales maps a country's display name, exactly as returned by the
// geocoder, to its locale settings. Lookup is case-sensitive by design: the
// geocoder's naming is the contract, not free text.
var countryLocales = map[string]models.LocaleSettings{
	"India":          {Timezone: "Asia/Kolkata", Currency: "INR", Language: "hi"},
	"United States":  {Timezone: "America/New_York", Currency: "USD", Language: "en"},
	"United Kingdom": {Timezone: "Europe/London", Currency: "GBP", Language: "en"},
	"Canada":         {Timezone: "America/Toronto", Currency: "CAD", Language: "en"},
	"Australia":      {Timezone: "Australia/Sydney", Currency: "AUD", Language: "en"},
	"Germany":        {Timezone: "Europe/Berlin", Currency: "EUR", Language: "de"},
	"France":         {Timezone: "Europe/Paris", Currency: "EUR", Language: "fr"},
	"Japan":          {Timezone: "Asia/Tokyo", Currency: "JPY", Language: "ja"},
	"China":          {Timezone: "Asia/Shanghai", Currency: "CNY", Language: "zh"},
	"Brazil":         {Timezone: "America/Sao_Paulo", Currency: "BRL", Language: "pt"},
}

// defaultLocale is used for any country not present in the table,
// including the "Unknown Country" sentinel.
var defaultLocale = models.LocaleSettings{Timezone: "UTC", Currency: "USD", Language: "en"}

// DeriveLocale returns the locale settings for a country display name.
// Unknown countries (and the empty string) fall back to UTC/USD/en.
func DeriveLocale(country string) models.LocaleSettings {
	if locale, ok := countryLocales[country]; ok {
		return locale
	}
	return defaultLocale
}
