package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgmanager/server/internal/fixtures"
	"pgmanager/server/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared", uuid.NewString())
	s, err := NewStore(dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedAndRead(t *testing.T) {
	s := setupTestStore(t)
	want := fixtures.Default()
	require.NoError(t, s.Seed(want))

	ctx := context.Background()

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Users, users)

	properties, err := s.Properties(ctx)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, want.Properties[0].Name, properties[0].Name)
	assert.Equal(t, want.Properties[0].PriceRange, properties[0].PriceRange)
	assert.Equal(t, want.Properties[0].Amenities, properties[0].Amenities)
	assert.Equal(t, want.Properties[0].NearbyPlaces, properties[0].NearbyPlaces)
	assert.True(t, want.Properties[0].CreatedAt.Equal(properties[0].CreatedAt))

	rooms, err := s.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "A101", rooms[0].RoomNumber)
	assert.Equal(t, "A102", rooms[1].RoomNumber)
	assert.Equal(t, models.GenderMale, rooms[1].Gender)

	bookings, err := s.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.BookingActive, bookings[0].Status)
	assert.True(t, want.Bookings[0].CheckOut.Equal(bookings[0].CheckOut))

	payments, err := s.Payments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.NotNil(t, payments[0].PaidDate)
	assert.True(t, want.Payments[0].PaidDate.Equal(*payments[0].PaidDate))

	complaints, err := s.Complaints(ctx)
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Nil(t, complaints[0].ResolvedAt)
	assert.NotNil(t, complaints[0].Attachments)

	expenses, err := s.Expenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, int64(12000), expenses[0].Amount)
}

func TestSeedKeepsInsertionOrder(t *testing.T) {
	s := setupTestStore(t)
	data := models.Snapshot{
		Expenses: []models.Expense{
			{ID: "z", Category: models.ExpenseOther, Amount: 1},
			{ID: "a", Category: models.ExpenseOther, Amount: 2},
			{ID: "m", Category: models.ExpenseOther, Amount: 3},
		},
	}
	require.NoError(t, s.Seed(data))

	expenses, err := s.Expenses(context.Background())
	require.NoError(t, err)
	ids := []string{}
	for _, e := range expenses {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := setupTestStore(t)
	data := fixtures.Default()

	require.NoError(t, s.Seed(data))
	require.NoError(t, s.Seed(data))

	users, err := s.Users(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, len(data.Users))
}

func TestNewStoreFailsOnReadOnlyDatabase(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	name := "readonly-" + uuid.NewString()
	s, err := NewStore(fmt.Sprintf("file:%s?mode=memory&cache=shared&_query_only=1", name), logger)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "failed to migrate schema")
}
