package normalize

import "strings"

// LocationParts is the decomposition of a single comma-separated
// location string.
type LocationParts struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// SplitLocation decomposes "city, state, country" text. Three segments map
// to city/state/country, two to city/country, one to country alone. Empty
// input yields the zero value. Extra segments collapse onto the first,
// second, and last positions.
func SplitLocation(raw string) LocationParts {
	segments := make([]string, 0, 3)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	switch len(segments) {
	case 0:
		return LocationParts{}
	case 1:
		return LocationParts{Country: segments[0]}
	case 2:
		return LocationParts{City: segments[0], Country: segments[1]}
	case 3:
		return LocationParts{City: segments[0], State: segments[1], Country: segments[2]}
	default:
		return LocationParts{
			City:    segments[0],
			State:   segments[1],
			Country: segments[len(segments)-1],
		}
	}
}
