package models

import "fmt"

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTriple RoomType = "triple"
	RoomShared RoomType = "shared"
)

var RoomTypes = []RoomType{RoomSingle, RoomDouble, RoomTriple, RoomShared}

func (t RoomType) Valid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomTriple, RoomShared:
		return true
	default:
		return false
	}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderUnisex}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	default:
		return false
	}
}

type Room struct {
	ID          string   `json:"id"`
	PropertyID  string   `json:"property_id"`
	RoomNumber  string   `json:"room_number"`
	Type        RoomType `json:"type"`
	Capacity    int      `json:"capacity"`
	Occupancy   int      `json:"occupancy"`
	Rent        int64    `json:"rent"`
	Deposit     int64    `json:"deposit"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	IsAvailable bool     `json:"is_available"`
	Gender      Gender   `json:"gender"`
}

// HasVacancy reports whether at least one bed is free. It is independent
// of IsAvailable, which is stored as seeded.
func (r Room) HasVacancy() bool {
	return r.Occupancy < r.Capacity
}

// Validate checks occupancy <= capacity
func (r Room) Validate() error {
	if r.Capacity < 0 || r.Occupancy < 0 {
		return fmt.Errorf("room %s: %w", r.ID, ErrNegativeCount)
	}
	if r.Occupancy > r.Capacity {
		return fmt.Errorf("room %s: occupancy %d, capacity %d: %w", r.ID, r.Occupancy, r.Capacity, ErrOccupancyExceeds)
	}
	return nil
}
