package config

import "strings"

// City represents a map viewport configuration
type City struct {
	Name      string    `json:"name"`
	Center    []float64 `json:"center"`
	ZoomLevel int       `json:"zoom_level"`
}

// SupportedCities is a list of cities the map view can centre on
var SupportedCities = []City{
	{
		Name:      "bangalore",
		Center:    []float64{12.9716, 77.5946},
		ZoomLevel: 12,
	},
	// Add more cities here as needed
}

// GetCityNames returns a list of supported city names
func GetCityNames() []string {
	names := make([]string, len(SupportedCities))
	for i, city := range SupportedCities {
		names[i] = city.Name
	}
	return names
}

// GetCityByName returns a city configuration by name, ignoring case
func GetCityByName(name string) *City {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, city := range SupportedCities {
		if city.Name == name {
			c := city
			return &c
		}
	}
	return nil
}
