package timezone

import (
	"fmt"
	"lodging/config"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

func init() {
	name := config.Get().App.Timezone

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'Asia/Kolkata' or 'UTC'")

		loc = time.UTC
	}

	location.Store(loc)

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// GetLocation returns the property's timezone.
func GetLocation() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// SetLocation replaces the property's timezone and returns the previous one.
func SetLocation(loc *time.Location) *time.Location {
	if loc == nil {
		loc = time.UTC
	}

	return location.Swap(loc)
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today is midnight of the current local day.
func Today() time.Time {
	return StartOfDay(Now())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// StartOfDay is midnight of the local day t falls on.
func StartOfDay(t time.Time) time.Time {
	t = ToAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth is midnight of the first day of the local month t falls on.
func StartOfMonth(t time.Time) time.Time {
	t = ToAppTime(t)

	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth is midnight of the last day of the local month t falls on.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// Parse reads value in the property's timezone.
func Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, GetLocation())
	if err != nil {
		return t, fmt.Errorf("failed to parse %q with layout %s: %w", value, layout, err)
	}

	return t, nil
}

// ParseDate reads a calendar date such as 2026-10-16.
func ParseDate(value string) (time.Time, error) {
	return Parse(time.DateOnly, value)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
