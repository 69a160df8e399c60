package models

import "time"

type Duration string

const (
	DurationShort  Duration = "short"
	DurationMedium Duration = "medium"
	DurationLong   Duration = "long"
)

var Durations = []Duration{DurationShort, DurationMedium, DurationLong}

func (d Duration) Valid() bool {
	switch d {
	case DurationShort, DurationMedium, DurationLong:
		return true
	default:
		return false
	}
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingActive,
	BookingCompleted,
	BookingCancelled,
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingActive, BookingCompleted, BookingCancelled:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	PropertyID  string        `json:"property_id"`
	RoomID      string        `json:"room_id"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Duration    Duration      `json:"duration"`
	Status      BookingStatus `json:"status"`
	Rent        int64         `json:"rent"`
	Deposit     int64         `json:"deposit"`
	TotalAmount int64         `json:"total_amount"`
	CreatedAt   time.Time     `json:"created_at"`
}
