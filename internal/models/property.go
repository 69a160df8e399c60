package models

import (
	"fmt"
	"time"
)

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Overlaps reports whether the range shares at least one value with [min, max]
func (r PriceRange) Overlaps(min, max int64) bool {
	return r.Min <= max && r.Max >= min
}

// NearbyPlaces groups landmark names around a property by kind
type NearbyPlaces struct {
	Colleges      []string `json:"colleges"`
	Companies     []string `json:"companies"`
	Transport     []string `json:"transport"`
	Entertainment []string `json:"entertainment"`
}

type Property struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"owner_id"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	City           string       `json:"city"`
	State          string       `json:"state"`
	Pincode        string       `json:"pincode"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	Description    string       `json:"description"`
	Amenities      []string     `json:"amenities"`
	Rules          []string     `json:"rules"`
	Images         []string     `json:"images"`
	Rating         float64      `json:"rating"`
	TotalRooms     int          `json:"total_rooms"`
	AvailableRooms int          `json:"available_rooms"`
	PriceRange     PriceRange   `json:"price_range"`
	NearbyPlaces   NearbyPlaces `json:"nearby_places"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Validate checks the room count and price range invariants
func (p Property) Validate() error {
	if p.TotalRooms < 0 || p.AvailableRooms < 0 {
		return fmt.Errorf("property %s: %w", p.ID, ErrNegativeCount)
	}
	if p.AvailableRooms > p.TotalRooms {
		return fmt.Errorf("property %s: %d available of %d: %w", p.ID, p.AvailableRooms, p.TotalRooms, ErrAvailableExceedsTotal)
	}
	if p.PriceRange.Min > p.PriceRange.Max {
		return fmt.Errorf("property %s: %w", p.ID, ErrInvertedPriceRange)
	}
	return nil
}
