package fixtures

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgmanager/server/internal/models"
)

func TestDefaultShape(t *testing.T) {
	data := Default()

	assert.Len(t, data.Users, 2)
	assert.Len(t, data.Properties, 1)
	assert.Len(t, data.Rooms, 2)
	assert.Len(t, data.Bookings, 1)
	assert.Len(t, data.Payments, 1)
	assert.Len(t, data.Complaints, 1)
	assert.Len(t, data.Expenses, 1)

	assert.Equal(t, models.RoleOwner, data.Users[0].Role)
	assert.Equal(t, models.RoleCustomer, data.Users[1].Role)
	assert.Equal(t, "Priya Sharma", data.Users[1].Name)
}

func TestDefaultReferencesResolve(t *testing.T) {
	data := Default()

	ids := func(n int, id func(int) string) map[string]bool {
		out := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			out[id(i)] = true
		}
		return out
	}
	users := ids(len(data.Users), func(i int) string { return data.Users[i].ID })
	props := ids(len(data.Properties), func(i int) string { return data.Properties[i].ID })
	rooms := ids(len(data.Rooms), func(i int) string { return data.Rooms[i].ID })
	bookings := ids(len(data.Bookings), func(i int) string { return data.Bookings[i].ID })

	for _, p := range data.Properties {
		assert.True(t, users[p.OwnerID], "property %s owner", p.ID)
	}
	for _, r := range data.Rooms {
		assert.True(t, props[r.PropertyID], "room %s property", r.ID)
	}
	for _, b := range data.Bookings {
		assert.True(t, users[b.CustomerID])
		assert.True(t, props[b.PropertyID])
		assert.True(t, rooms[b.RoomID])
	}
	for _, p := range data.Payments {
		assert.True(t, bookings[p.BookingID])
	}
	for _, c := range data.Complaints {
		assert.True(t, props[c.PropertyID])
		if c.RoomID != "" {
			assert.True(t, rooms[c.RoomID])
		}
	}
	for _, e := range data.Expenses {
		assert.True(t, props[e.PropertyID])
	}
}

func TestDefaultIsFresh(t *testing.T) {
	a := Default()
	a.Properties[0].Name = "changed"
	a.Rooms = nil

	b := Default()
	assert.Equal(t, "Elite PG for Professionals", b.Properties[0].Name)
	assert.Len(t, b.Rooms, 2)
}

func TestStoreReturnsCopies(t *testing.T) {
	s := NewDefaultStore()
	ctx := context.Background()

	rooms, err := s.Rooms(ctx)
	require.NoError(t, err)
	rooms[0].RoomNumber = "Z999"
	rooms[0].Amenities[0] = "changed"

	again, err := s.Rooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A101", again[0].RoomNumber)
	assert.Equal(t, "AC", again[0].Amenities[0])
	assert.NoError(t, s.Close())
}

func TestStoreNestedFieldsAreCopied(t *testing.T) {
	s := NewDefaultStore()
	ctx := context.Background()

	props, err := s.Properties(ctx)
	require.NoError(t, err)
	props[0].Amenities[0] = "changed"
	props[0].Rules[0] = "changed"
	props[0].Images[0] = "changed"
	props[0].NearbyPlaces.Colleges[0] = "changed"
	props[0].NearbyPlaces.Transport = append(props[0].NearbyPlaces.Transport[:0], "changed")

	payments, err := s.Payments(ctx)
	require.NoError(t, err)
	paid := *payments[0].PaidDate
	*payments[0].PaidDate = paid.AddDate(1, 0, 0)

	complaints, err := s.Complaints(ctx)
	require.NoError(t, err)
	complaints[0].Attachments = append(complaints[0].Attachments, "changed")

	want := Default()

	props, err = s.Properties(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Properties, props)

	payments, err = s.Payments(ctx)
	require.NoError(t, err)
	assert.True(t, paid.Equal(*payments[0].PaidDate))

	complaints, err = s.Complaints(ctx)
	require.NoError(t, err)
	assert.Empty(t, complaints[0].Attachments)
}

func TestNewStoreCopiesInput(t *testing.T) {
	data := Default()
	s := NewStore(data)
	data.Properties[0].Amenities[0] = "changed"

	props, err := s.Properties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WiFi", props[0].Amenities[0])
}

func TestCheck(t *testing.T) {
	assert.Empty(t, Check(Default()))

	data := models.Snapshot{
		Properties: []models.Property{
			{ID: "p1", TotalRooms: 2, AvailableRooms: 3},
			{ID: "p2", TotalRooms: 2, PriceRange: models.PriceRange{Min: 9, Max: 1}},
		},
		Rooms: []models.Room{
			{ID: "r1", Capacity: 1, Occupancy: 2},
			{ID: "r2", Capacity: 2, Occupancy: 2, IsAvailable: true},
			{ID: "r3", Capacity: 2, Occupancy: 1, IsAvailable: true},
		},
	}

	problems := Check(data)
	require.Len(t, problems, 4)
	assert.True(t, errors.Is(problems[0], models.ErrAvailableExceedsTotal))
	assert.True(t, errors.Is(problems[1], models.ErrInvertedPriceRange))
	assert.True(t, errors.Is(problems[2], models.ErrOccupancyExceeds))
	assert.Contains(t, problems[3].Error(), "room r2")
}
