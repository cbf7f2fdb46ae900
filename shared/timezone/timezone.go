package timezone

import (
	"roombook/config"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns midnight of the current day in the application timezone.
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay drops the clock part of t, keeping its calendar day in the
// application timezone.
func StartOfDay(t time.Time) time.Time {
	t = ToAppTime(t)
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, GetLocation())
}

// Combine places the wall clock of clock on the calendar day of date.
func Combine(date, clock time.Time) time.Time {
	year, month, day := date.Date()

	return time.Date(year, month, day, clock.Hour(), clock.Minute(), clock.Second(), 0, GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
