package suntimes

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// ForDate returns the sunrise and sunset times (in UTC) for the given date
// at the given location. The location is a "lat,lng" string, e.g.
// "51.48,0.0".
func ForDate(geoLocation string, date time.Time) (time.Time, time.Time, error) {
	latLng := strings.Split(geoLocation, ",")
	if len(latLng) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("expected geo location in the format \"lat,lng\", got %q", geoLocation)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latLng[0]), 64)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing latitude from %q: %w", geoLocation, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(latLng[1]), 64)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing longitude from %q: %w", geoLocation, err)
	}

	rise, set := sunrise.SunriseSunset(
		lat, lng,
		date.Year(), date.Month(), date.Day(),
	)
	return rise, set, nil
}
