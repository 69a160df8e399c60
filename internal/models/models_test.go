package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyValidate(t *testing.T) {
	tests := []struct {
		name     string
		property Property
		wantErr  error
	}{
		{"valid", Property{ID: "1", TotalRooms: 20, AvailableRooms: 5, PriceRange: PriceRange{Min: 15000, Max: 25000}}, nil},
		{"full", Property{ID: "1", TotalRooms: 4, AvailableRooms: 0}, nil},
		{"negative total", Property{ID: "1", TotalRooms: -1}, ErrNegativeCount},
		{"negative available", Property{ID: "1", TotalRooms: 1, AvailableRooms: -1}, ErrNegativeCount},
		{"available exceeds total", Property{ID: "1", TotalRooms: 2, AvailableRooms: 3}, ErrAvailableExceedsTotal},
		{"inverted price range", Property{ID: "1", PriceRange: PriceRange{Min: 2, Max: 1}}, ErrInvertedPriceRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.property.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRoomValidateAndVacancy(t *testing.T) {
	tests := []struct {
		name        string
		room        Room
		wantErr     error
		wantVacancy bool
	}{
		{"empty single", Room{ID: "1", Capacity: 1}, nil, true},
		{"half full double", Room{ID: "2", Capacity: 2, Occupancy: 1}, nil, true},
		{"full", Room{ID: "3", Capacity: 2, Occupancy: 2}, nil, false},
		{"over capacity", Room{ID: "4", Capacity: 1, Occupancy: 2}, ErrOccupancyExceeds, false},
		{"three in a double", Room{ID: "6", Type: RoomDouble, Capacity: 2, Occupancy: 3}, ErrOccupancyExceeds, false},
		{"negative", Room{ID: "5", Capacity: -1}, ErrNegativeCount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.room.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVacancy, tt.room.HasVacancy())
		})
	}
}

func TestPriceRangeOverlaps(t *testing.T) {
	r := PriceRange{Min: 15000, Max: 25000}

	assert.True(t, r.Overlaps(10000, 30000))
	assert.True(t, r.Overlaps(25000, 40000))
	assert.True(t, r.Overlaps(5000, 15000))
	assert.True(t, r.Overlaps(18000, 19000))
	assert.False(t, r.Overlaps(25001, 40000))
	assert.False(t, r.Overlaps(5000, 14999))
}

func TestEnumValid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid(), string(r))
	}
	for _, s := range BookingStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	for _, s := range PaymentStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	for _, c := range ComplaintCategories {
		assert.True(t, c.Valid(), string(c))
	}
	for _, c := range ExpenseCategories {
		assert.True(t, c.Valid(), string(c))
	}

	assert.False(t, Role("admin").Valid())
	assert.False(t, BookingStatus("").Valid())
	assert.False(t, PaymentStatus("refunded").Valid())
	assert.False(t, ComplaintCategory("parking").Valid())
	assert.False(t, ComplaintStatus("reopened").Valid())
	assert.False(t, ExpenseCategory("rent").Valid())
	assert.False(t, Gender("other").Valid())
	assert.False(t, RoomType("suite").Valid())
	assert.False(t, Priority("urgent").Valid())
}

func TestUserRoleJSONKey(t *testing.T) {
	raw, err := json.Marshal(User{ID: "1", Role: RoleOwner})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"owner"`)
}

func TestSnapshotCloneSharesNothing(t *testing.T) {
	resolved := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	orig := Snapshot{
		Properties: []Property{{
			ID:           "1",
			Amenities:    []string{"WiFi"},
			NearbyPlaces: NearbyPlaces{Colleges: []string{"IISC"}},
		}},
		Rooms:      []Room{{ID: "1", Images: []string{"a.jpg"}}},
		Complaints: []Complaint{{ID: "1", Attachments: []string{"x.png"}, ResolvedAt: &resolved}},
	}

	clone := orig.Clone()
	clone.Properties[0].Amenities[0] = "changed"
	clone.Properties[0].NearbyPlaces.Colleges[0] = "changed"
	clone.Rooms[0].Images[0] = "changed"
	clone.Complaints[0].Attachments[0] = "changed"
	*clone.Complaints[0].ResolvedAt = resolved.AddDate(0, 1, 0)

	assert.Equal(t, "WiFi", orig.Properties[0].Amenities[0])
	assert.Equal(t, "IISC", orig.Properties[0].NearbyPlaces.Colleges[0])
	assert.Equal(t, "a.jpg", orig.Rooms[0].Images[0])
	assert.Equal(t, "x.png", orig.Complaints[0].Attachments[0])
	assert.True(t, resolved.Equal(*orig.Complaints[0].ResolvedAt))
	assert.Nil(t, clone.Payments)
}
