package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pgmanager/server/internal/models"
)

// DefaultDSN keeps the database in memory, shared by every pooled connection
const DefaultDSN = "file:pgmanager?mode=memory&cache=shared"

// Store reads the seven collections from sqlite through gorm
type Store struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewStore(dsn string, logger *logrus.Logger) (*Store, error) {
	if logger == nil {
		logger = logrus.New()
	}
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// Rows carry no foreign keys: references may dangle and joins report
	// them as absent.
	s := &Store{db: db, logger: logger}
	if err := s.RunMigrations(); err != nil {
		if closeErr := s.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Failed to close sqlite after migration error")
		}
		return nil, err
	}
	return s, nil
}

// GetDB exposes the underlying handle for tests
func (s *Store) GetDB() *gorm.DB {
	return s.db
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Seed inserts the snapshot when the database is empty. A database that
// already has users is left untouched.
func (s *Store) Seed(data models.Snapshot) error {
	var count int64
	if err := s.db.Model(&userRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		s.logger.WithField("users", count).Info("Database already seeded")
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, u := range data.Users {
			row := toUserRow(i, u)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("user %s: %w", u.ID, err)
			}
		}
		for i, p := range data.Properties {
			row := toPropertyRow(i, p)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("property %s: %w", p.ID, err)
			}
		}
		for i, r := range data.Rooms {
			row := toRoomRow(i, r)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("room %s: %w", r.ID, err)
			}
		}
		for i, b := range data.Bookings {
			row := toBookingRow(i, b)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("booking %s: %w", b.ID, err)
			}
		}
		for i, p := range data.Payments {
			row := toPaymentRow(i, p)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("payment %s: %w", p.ID, err)
			}
		}
		for i, c := range data.Complaints {
			row := toComplaintRow(i, c)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("complaint %s: %w", c.ID, err)
			}
		}
		for i, e := range data.Expenses {
			row := toExpenseRow(i, e)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("expense %s: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"users":      len(data.Users),
		"properties": len(data.Properties),
		"rooms":      len(data.Rooms),
		"bookings":   len(data.Bookings),
		"payments":   len(data.Payments),
		"complaints": len(data.Complaints),
		"expenses":   len(data.Expenses),
	}).Info("Seeded database")
	return nil
}

func readAll[R interface{ model() M }, M any](ctx context.Context, db *gorm.DB) ([]M, error) {
	var rows []R
	if err := db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]M, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.model())
	}
	return out, nil
}

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	return readAll[userRow, models.User](ctx, s.db)
}

func (s *Store) Properties(ctx context.Context) ([]models.Property, error) {
	return readAll[propertyRow, models.Property](ctx, s.db)
}

func (s *Store) Rooms(ctx context.Context) ([]models.Room, error) {
	return readAll[roomRow, models.Room](ctx, s.db)
}

func (s *Store) Bookings(ctx context.Context) ([]models.Booking, error) {
	return readAll[bookingRow, models.Booking](ctx, s.db)
}

func (s *Store) Payments(ctx context.Context) ([]models.Payment, error) {
	return readAll[paymentRow, models.Payment](ctx, s.db)
}

func (s *Store) Complaints(ctx context.Context) ([]models.Complaint, error) {
	return readAll[complaintRow, models.Complaint](ctx, s.db)
}

func (s *Store) Expenses(ctx context.Context) ([]models.Expense, error) {
	return readAll[expenseRow, models.Expense](ctx, s.db)
}
