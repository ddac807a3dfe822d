package profile

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingLocation = errors.New("location is not set")
	ErrInvalidLocation = errors.New("invalid location data")
)

// Location is an optional point in decimal degrees. Lat and Lon are either both set or both nil.
type Location struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`

	// Malformed is set when the source record carried coordinates that could not be read as numbers.
	Malformed bool `json:"malformed,omitempty"`
}

// NewLocation returns a location with both coordinates set.
func NewLocation(lat, lon float64) Location {
	return Location{Lat: &lat, Lon: &lon}
}

// IsSet reports whether both coordinates are present.
func (l Location) IsSet() bool {
	return l.Lat != nil && l.Lon != nil && !l.Malformed
}

// Coordinates returns the latitude and longitude. ErrMissingLocation is returned when either
// coordinate is absent and ErrInvalidLocation when they are not usable for distance calculation.
func (l Location) Coordinates() (float64, float64, error) {
	if l.Malformed {
		return 0, 0, fmt.Errorf("%w: coordinates are not numeric", ErrInvalidLocation)
	}
	if l.Lat == nil || l.Lon == nil {
		return 0, 0, ErrMissingLocation
	}

	lat, lon := *l.Lat, *l.Lon
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return 0, 0, fmt.Errorf("%w: coordinates are not finite", ErrInvalidLocation)
	}
	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("%w: latitude %v is out of range", ErrInvalidLocation, lat)
	}
	if lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("%w: longitude %v is out of range", ErrInvalidLocation, lon)
	}

	return lat, lon, nil
}

// locationFromRaw builds a location from loosely typed record values.
func locationFromRaw(rawLat, rawLon any) Location {
	lat, latSet, latErr := parseCoordinate(rawLat)
	lon, lonSet, lonErr := parseCoordinate(rawLon)
	if latErr != nil || lonErr != nil {
		return Location{Malformed: true}
	}

	var loc Location
	if latSet {
		loc.Lat = &lat
	}
	if lonSet {
		loc.Lon = &lon
	}
	return loc
}

func parseCoordinate(v any) (float64, bool, error) {
	switch val := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return val, true, nil
	case float32:
		return float64(val), true, nil
	case int:
		return float64(val), true, nil
	case int64:
		return float64(val), true, nil
	case uint64:
		return float64(val), true, nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false, fmt.Errorf("parse coordinate %q: %w", trimmed, err)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("unsupported coordinate type %T", v)
	}
}
