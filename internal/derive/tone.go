package derive

import "pgmanager/server/internal/models"

// Tone is the colour family a front end uses for a badge
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneBlue   Tone = "blue"
	ToneRed    Tone = "red"
	ToneOrange Tone = "orange"
	TonePurple Tone = "purple"
	ToneGray   Tone = "gray"
)

// Icon names a status glyph
type Icon string

const (
	IconCheckCircle   Icon = "check-circle"
	IconClock         Icon = "clock"
	IconXCircle       Icon = "x-circle"
	IconAlertTriangle Icon = "alert-triangle"
)

// Unknown values fall through to gray and the clock icon.

func ToneForBookingStatus(s models.BookingStatus) Tone {
	switch s {
	case models.BookingActive:
		return ToneGreen
	case models.BookingPending:
		return ToneYellow
	case models.BookingConfirmed:
		return ToneBlue
	case models.BookingCancelled:
		return ToneRed
	case models.BookingCompleted:
		return ToneGray
	default:
		return ToneGray
	}
}

func ToneForPaymentStatus(s models.PaymentStatus) Tone {
	switch s {
	case models.PaymentCompleted:
		return ToneGreen
	case models.PaymentPending:
		return ToneYellow
	case models.PaymentFailed:
		return ToneRed
	default:
		return ToneGray
	}
}

func IconForPaymentStatus(s models.PaymentStatus) Icon {
	switch s {
	case models.PaymentCompleted:
		return IconCheckCircle
	case models.PaymentPending:
		return IconClock
	case models.PaymentFailed:
		return IconXCircle
	default:
		return IconClock
	}
}

func ToneForComplaintStatus(s models.ComplaintStatus) Tone {
	switch s {
	case models.ComplaintOpen:
		return ToneOrange
	case models.ComplaintInProgress:
		return ToneYellow
	case models.ComplaintResolved:
		return ToneGreen
	case models.ComplaintClosed:
		return ToneGray
	default:
		return ToneGray
	}
}

func IconForComplaintStatus(s models.ComplaintStatus) Icon {
	switch s {
	case models.ComplaintOpen:
		return IconClock
	case models.ComplaintInProgress:
		return IconAlertTriangle
	case models.ComplaintResolved, models.ComplaintClosed:
		return IconCheckCircle
	default:
		return IconClock
	}
}

func ToneForPriority(p models.Priority) Tone {
	switch p {
	case models.PriorityHigh:
		return ToneRed
	case models.PriorityMedium:
		return ToneYellow
	case models.PriorityLow:
		return ToneGreen
	default:
		return ToneGray
	}
}

func ToneForExpenseCategory(c models.ExpenseCategory) Tone {
	switch c {
	case models.ExpenseMaintenance:
		return ToneBlue
	case models.ExpenseUtilities:
		return ToneYellow
	case models.ExpenseStaff:
		return ToneGreen
	case models.ExpenseSupplies:
		return TonePurple
	default:
		return ToneGray
	}
}

func ExpenseCategoryLabel(c models.ExpenseCategory) string {
	switch c {
	case models.ExpenseMaintenance:
		return "Maintenance"
	case models.ExpenseUtilities:
		return "Utilities"
	case models.ExpenseStaff:
		return "Staff"
	case models.ExpenseSupplies:
		return "Supplies"
	case models.ExpenseOther:
		return "Other"
	default:
		return string(c)
	}
}

// CategoryInfo is the label and emoji shown for a complaint category
type CategoryInfo struct {
	ID    models.ComplaintCategory `json:"id"`
	Label string                   `json:"label"`
	Icon  string                   `json:"icon"`
}

var complaintCategoryInfo = map[models.ComplaintCategory]CategoryInfo{
	models.ComplaintWifi:        {models.ComplaintWifi, "WiFi", "📶"},
	models.ComplaintLift:        {models.ComplaintLift, "Lift", "🛗"},
	models.ComplaintWater:       {models.ComplaintWater, "Water", "💧"},
	models.ComplaintFood:        {models.ComplaintFood, "Food", "🍽️"},
	models.ComplaintCleanliness: {models.ComplaintCleanliness, "Cleanliness", "🧹"},
	models.ComplaintNoise:       {models.ComplaintNoise, "Noise", "🔊"},
	models.ComplaintMaintenance: {models.ComplaintMaintenance, "Maintenance", "🔧"},
	models.ComplaintOther:       {models.ComplaintOther, "Other", "📝"},
}

// ComplaintCategoryInfo falls back to the raw value with no icon
func ComplaintCategoryInfo(c models.ComplaintCategory) CategoryInfo {
	if info, ok := complaintCategoryInfo[c]; ok {
		return info
	}
	return CategoryInfo{ID: c, Label: string(c)}
}

// ComplaintCategoryOptions lists categories in form order
func ComplaintCategoryOptions() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(models.ComplaintCategories))
	for _, c := range models.ComplaintCategories {
		out = append(out, complaintCategoryInfo[c])
	}
	return out
}
