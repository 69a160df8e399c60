package models

import "time"

type ComplaintCategory string

const (
	ComplaintWifi        ComplaintCategory = "wifi"
	ComplaintLift        ComplaintCategory = "lift"
	ComplaintWater       ComplaintCategory = "water"
	ComplaintFood        ComplaintCategory = "food"
	ComplaintCleanliness ComplaintCategory = "cleanliness"
	ComplaintNoise       ComplaintCategory = "noise"
	ComplaintMaintenance ComplaintCategory = "maintenance"
	ComplaintOther       ComplaintCategory = "other"
)

var ComplaintCategories = []ComplaintCategory{
	ComplaintWifi,
	ComplaintLift,
	ComplaintWater,
	ComplaintFood,
	ComplaintCleanliness,
	ComplaintNoise,
	ComplaintMaintenance,
	ComplaintOther,
}

func (c ComplaintCategory) Valid() bool {
	for _, known := range ComplaintCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

var ComplaintStatuses = []ComplaintStatus{
	ComplaintOpen,
	ComplaintInProgress,
	ComplaintResolved,
	ComplaintClosed,
}

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	default:
		return false
	}
}

type Complaint struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customer_id"`
	PropertyID  string            `json:"property_id"`
	RoomID      string            `json:"room_id,omitempty"`
	Category    ComplaintCategory `json:"category"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    Priority          `json:"priority"`
	Status      ComplaintStatus   `json:"status"`
	Attachments []string          `json:"attachments"`
	CreatedAt   time.Time         `json:"created_at"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
}
