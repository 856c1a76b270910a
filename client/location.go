package client

import "strings"

type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

var DefaultLocation = Location{Name: "Delhi, India", Lat: 28.7040592, Lng: 77.1024902}

// CityPresets is the small fixed list the client can resolve against.
var CityPresets = []Location{
	{Name: "Delhi, India", Lat: 28.7040592, Lng: 77.1024902},
	{Name: "Mumbai, Maharashtra", Lat: 19.076, Lng: 72.8777},
	{Name: "Pune, Maharashtra", Lat: 18.5204, Lng: 73.8567},
	{Name: "Bengaluru, Karnataka", Lat: 12.9716, Lng: 77.5946},
	{Name: "Hyderabad, Telangana", Lat: 17.385, Lng: 78.4867},
	{Name: "Kolkata, West Bengal", Lat: 22.5726, Lng: 88.3639},
}

// ResolveName maps free text to a preset: exact match first, then substring.
// Unknown names keep the previous coordinates and only change the label.
func ResolveName(name string, prev Location) Location {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return prev
	}
	lower := strings.ToLower(trimmed)

	for _, c := range CityPresets {
		if strings.ToLower(c.Name) == lower {
			return c
		}
	}
	for _, c := range CityPresets {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			return Location{Name: trimmed, Lat: c.Lat, Lng: c.Lng}
		}
	}
	return Location{Name: trimmed, Lat: prev.Lat, Lng: prev.Lng}
}

// NearestCity picks the preset closest by squared degree distance,
// keeping the real coordinates and borrowing the city's name.
func NearestCity(lat, lng float64) Location {
	best := CityPresets[0]
	bestDist := -1.0

	for _, c := range CityPresets {
		dLat := c.Lat - lat
		dLng := c.Lng - lng
		dist := dLat*dLat + dLng*dLng
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = c
		}
	}
	return Location{Name: best.Name, Lat: lat, Lng: lng}
}
