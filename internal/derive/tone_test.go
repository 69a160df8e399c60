package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pgmanager/server/internal/models"
)

func TestBookingStatusTones(t *testing.T) {
	tests := []struct {
		status models.BookingStatus
		tone   Tone
	}{
		{models.BookingActive, ToneGreen},
		{models.BookingPending, ToneYellow},
		{models.BookingConfirmed, ToneBlue},
		{models.BookingCancelled, ToneRed},
		{models.BookingCompleted, ToneGray},
		{"archived", ToneGray},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.tone, ToneForBookingStatus(tt.status))
		})
	}
}

func TestUnknownValuesFallBack(t *testing.T) {
	assert.Equal(t, ToneGray, ToneForPaymentStatus("refunded"))
	assert.Equal(t, IconClock, IconForPaymentStatus("refunded"))
	assert.Equal(t, ToneGray, ToneForComplaintStatus("escalated"))
	assert.Equal(t, IconClock, IconForComplaintStatus("escalated"))
	assert.Equal(t, ToneGray, ToneForPriority("urgent"))
	assert.Equal(t, ToneGray, ToneForExpenseCategory("rent"))
	assert.Equal(t, "rent", ExpenseCategoryLabel("rent"))

	info := ComplaintCategoryInfo("pests")
	assert.Equal(t, "pests", info.Label)
	assert.Empty(t, info.Icon)
}

func TestComplaintTonesAndIcons(t *testing.T) {
	assert.Equal(t, ToneOrange, ToneForComplaintStatus(models.ComplaintOpen))
	assert.Equal(t, IconAlertTriangle, IconForComplaintStatus(models.ComplaintInProgress))
	assert.Equal(t, IconCheckCircle, IconForComplaintStatus(models.ComplaintClosed))
	assert.Equal(t, ToneRed, ToneForPriority(models.PriorityHigh))
	assert.Equal(t, IconXCircle, IconForPaymentStatus(models.PaymentFailed))
}

func TestComplaintCategoryOptions(t *testing.T) {
	opts := ComplaintCategoryOptions()
	assert.Len(t, opts, 8)
	assert.Equal(t, "WiFi", opts[0].Label)
	assert.Equal(t, models.ComplaintOther, opts[7].ID)
}
