package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCityNames(t *testing.T) {
	names := GetCityNames()
	assert.Equal(t, []string{"bangalore"}, names)
}

func TestGetCityByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Exact match", input: "bangalore", expected: true},
		{name: "Mixed case", input: "Bangalore", expected: true},
		{name: "Surrounding spaces", input: "  bangalore ", expected: true},
		{name: "Unknown city", input: "amsterdam", expected: false},
		{name: "Empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := GetCityByName(tt.input)
			if !tt.expected {
				assert.Nil(t, city)
				return
			}
			require.NotNil(t, city)
			assert.Equal(t, "bangalore", city.Name)
			assert.Len(t, city.Center, 2)
		})
	}
}

func TestGetCityByNameReturnsCopy(t *testing.T) {
	city := GetCityByName("bangalore")
	require.NotNil(t, city)
	city.ZoomLevel = 3

	assert.Equal(t, 12, GetCityByName("bangalore").ZoomLevel)
}
