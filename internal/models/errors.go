package models

import "errors"

var (
	ErrNegativeCount         = errors.New("negative count")
	ErrOccupancyExceeds      = errors.New("occupancy exceeds capacity")
	ErrAvailableExceedsTotal = errors.New("available rooms exceed total rooms")
	ErrInvertedPriceRange    = errors.New("price range min is above max")
)
