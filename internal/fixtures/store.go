package fixtures

import (
	"context"

	"pgmanager/server/internal/models"
)

// Store serves a fixed snapshot from memory. It never changes after
// construction, so concurrent readers need no locking.
type Store struct {
	data models.Snapshot
}

// NewStore keeps a deep copy of data. Every accessor returns another
// deep copy, so callers cannot reach the stored records.
func NewStore(data models.Snapshot) *Store {
	return &Store{data: data.Clone()}
}

// NewDefaultStore serves the built-in sample data
func NewDefaultStore() *Store {
	return NewStore(Default())
}

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	return append([]models.User(nil), s.data.Users...), nil
}

func (s *Store) Properties(ctx context.Context) ([]models.Property, error) {
	return models.CloneProperties(s.data.Properties), nil
}

func (s *Store) Rooms(ctx context.Context) ([]models.Room, error) {
	return models.CloneRooms(s.data.Rooms), nil
}

func (s *Store) Bookings(ctx context.Context) ([]models.Booking, error) {
	return append([]models.Booking(nil), s.data.Bookings...), nil
}

func (s *Store) Payments(ctx context.Context) ([]models.Payment, error) {
	return models.ClonePayments(s.data.Payments), nil
}

func (s *Store) Complaints(ctx context.Context) ([]models.Complaint, error) {
	return models.CloneComplaints(s.data.Complaints), nil
}

func (s *Store) Expenses(ctx context.Context) ([]models.Expense, error) {
	return append([]models.Expense(nil), s.data.Expenses...), nil
}

func (s *Store) Close() error {
	return nil
}
