package database

import "fmt"

func (s *Store) RunMigrations() error {
	err := s.db.AutoMigrate(
		&userRow{},
		&propertyRow{},
		&roomRow{},
		&bookingRow{},
		&paymentRow{},
		&complaintRow{},
		&expenseRow{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
