// Package store defines the read path shared by every backend.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"pgmanager/server/internal/database"
	"pgmanager/server/internal/fixtures"
	"pgmanager/server/internal/models"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Reader exposes the seven collections. There is no write path.
type Reader interface {
	Users(ctx context.Context) ([]models.User, error)
	Properties(ctx context.Context) ([]models.Property, error)
	Rooms(ctx context.Context) ([]models.Room, error)
	Bookings(ctx context.Context) ([]models.Booking, error)
	Payments(ctx context.Context) ([]models.Payment, error)
	Complaints(ctx context.Context) ([]models.Complaint, error)
	Expenses(ctx context.Context) ([]models.Expense, error)
	Close() error
}

// Open returns the backend named by backend. The sqlite backend is seeded
// from the same sample data as the memory backend.
func Open(backend, dsn string, logger *logrus.Logger) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendMemory:
		return fixtures.NewDefaultStore(), nil
	case BackendSQLite:
		db, err := database.NewStore(dsn, logger)
		if err != nil {
			return nil, err
		}
		if err := db.Seed(fixtures.Default()); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}

// Load reads every collection into one snapshot
func Load(ctx context.Context, r Reader) (models.Snapshot, error) {
	var (
		snap models.Snapshot
		err  error
	)
	if snap.Users, err = r.Users(ctx); err != nil {
		return snap, fmt.Errorf("failed to load users: %w", err)
	}
	if snap.Properties, err = r.Properties(ctx); err != nil {
		return snap, fmt.Errorf("failed to load properties: %w", err)
	}
	if snap.Rooms, err = r.Rooms(ctx); err != nil {
		return snap, fmt.Errorf("failed to load rooms: %w", err)
	}
	if snap.Bookings, err = r.Bookings(ctx); err != nil {
		return snap, fmt.Errorf("failed to load bookings: %w", err)
	}
	if snap.Payments, err = r.Payments(ctx); err != nil {
		return snap, fmt.Errorf("failed to load payments: %w", err)
	}
	if snap.Complaints, err = r.Complaints(ctx); err != nil {
		return snap, fmt.Errorf("failed to load complaints: %w", err)
	}
	if snap.Expenses, err = r.Expenses(ctx); err != nil {
		return snap, fmt.Errorf("failed to load expenses: %w", err)
	}
	return snap, nil
}
