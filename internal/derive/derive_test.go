package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgmanager/server/internal/fixtures"
	"pgmanager/server/internal/models"
)

func TestRevenueMatchesCompletedSum(t *testing.T) {
	payments := []models.Payment{
		{ID: "1", Amount: 15000, Status: models.PaymentCompleted},
		{ID: "2", Amount: 5000, Status: models.PaymentPending},
		{ID: "3", Amount: 2500, Status: models.PaymentCompleted},
		{ID: "4", Amount: 900, Status: models.PaymentFailed},
		{ID: "5", Amount: 100, Status: models.PaymentPending},
	}

	var want int64
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			want += p.Amount
		}
	}

	assert.Equal(t, want, Revenue(payments))
	assert.Equal(t, int64(17500), Revenue(payments))
	assert.Equal(t, int64(5100), PendingAmount(payments))
	assert.Equal(t, int64(0), Revenue(nil))
}

func TestFixtureRevenue(t *testing.T) {
	data := fixtures.Default()

	assert.Equal(t, int64(15000), Revenue(data.Payments))
	assert.Equal(t, int64(0), PendingAmount(data.Payments))
	assert.InDelta(t, 4500.0, ThisMonthEstimate(Revenue(data.Payments)), 0.001)
}

func TestResolveBooking(t *testing.T) {
	data := fixtures.Default()

	for _, b := range data.Bookings {
		refs := ResolveBooking(data, b)
		require.NotNil(t, refs.Property)
		require.NotNil(t, refs.Room)
		require.NotNil(t, refs.Customer)
		assert.Equal(t, b.PropertyID, refs.Property.ID)
		assert.Equal(t, b.RoomID, refs.Room.ID)
		assert.Equal(t, b.CustomerID, refs.Customer.ID)
		assert.Equal(t, "A102", refs.Room.RoomNumber)
		assert.Equal(t, "Priya Sharma", refs.Customer.Name)
	}

	dangling := models.Booking{ID: "x", PropertyID: "404", RoomID: "404", CustomerID: "404"}
	refs := ResolveBooking(data, dangling)
	assert.Nil(t, refs.Property)
	assert.Nil(t, refs.Room)
	assert.Nil(t, refs.Customer)
}

func TestFindFirstMatchWins(t *testing.T) {
	users := []models.User{
		{ID: "1", Name: "first"},
		{ID: "1", Name: "second"},
	}
	u, ok := FindUser(users, "1")
	assert.True(t, ok)
	assert.Equal(t, "first", u.Name)

	_, ok = FindUser(users, "2")
	assert.False(t, ok)
}

func TestResolvePayment(t *testing.T) {
	data := fixtures.Default()

	refs := ResolvePayment(data, data.Payments[0])
	require.NotNil(t, refs.Booking)
	require.NotNil(t, refs.Property)
	require.NotNil(t, refs.Room)
	assert.Equal(t, "Elite PG for Professionals", refs.Property.Name)
	assert.Equal(t, "A102", refs.Room.RoomNumber)

	orphan := ResolvePayment(data, models.Payment{ID: "9", BookingID: "missing"})
	assert.Nil(t, orphan.Booking)
	assert.Nil(t, orphan.Property)
	assert.Nil(t, orphan.Room)
}

func TestResolveComplaintWithoutRoom(t *testing.T) {
	data := fixtures.Default()
	c := data.Complaints[0]

	refs := ResolveComplaint(data, c)
	require.NotNil(t, refs.Room)

	c.RoomID = ""
	refs = ResolveComplaint(data, c)
	assert.NotNil(t, refs.Property)
	assert.Nil(t, refs.Room)
}

func TestRoomsForProperty(t *testing.T) {
	data := fixtures.Default()

	rooms := RoomsForProperty(data.Rooms, "1")
	require.Len(t, rooms, 2)
	assert.Equal(t, "A101", rooms[0].RoomNumber)
	assert.Empty(t, RoomsForProperty(data.Rooms, "2"))
}

func TestComplaintCounts(t *testing.T) {
	data := fixtures.Default()

	open := ComplaintFilter{Status: string(models.ComplaintOpen)}.Apply(data.Complaints)
	assert.Empty(t, open)

	counts := CountComplaintsByStatus(data.Complaints)
	assert.Equal(t, 1, counts[models.ComplaintInProgress])
	assert.Equal(t, 0, counts[models.ComplaintOpen])
	assert.Equal(t, 0, counts[models.ComplaintResolved])
	assert.Equal(t, 0, counts[models.ComplaintClosed])
}

func TestExpenseFilterFixture(t *testing.T) {
	data := fixtures.Default()

	tests := []struct {
		name     string
		filter   ExpenseFilter
		expected int64
	}{
		{"January utilities", ExpenseFilter{Category: "utilities", Month: 0}, 12000},
		{"February utilities", ExpenseFilter{Category: "utilities", Month: 1}, 0},
		{"January all categories", ExpenseFilter{Category: All, Month: 0}, 12000},
		{"January staff", ExpenseFilter{Category: "staff", Month: 0}, 0},
		{"every month", ExpenseFilter{Category: All, Month: AllMonths}, 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SumExpenses(tt.filter.Apply(data.Expenses)))
		})
	}
}

func TestExpenseFilterCommutesAndIsIdempotent(t *testing.T) {
	jan := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC)
	janNextYear := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{ID: "1", Category: models.ExpenseUtilities, Amount: 100, Date: jan},
		{ID: "2", Category: models.ExpenseStaff, Amount: 200, Date: jan},
		{ID: "3", Category: models.ExpenseUtilities, Amount: 300, Date: feb},
		{ID: "4", Category: models.ExpenseUtilities, Amount: 400, Date: janNextYear},
	}
	f := ExpenseFilter{Category: "utilities", Month: 0}

	categoryFirst := Filter(Filter(expenses, f.MatchCategory), f.MatchMonth)
	monthFirst := Filter(Filter(expenses, f.MatchMonth), f.MatchCategory)
	assert.Equal(t, categoryFirst, monthFirst)

	once := f.Apply(expenses)
	assert.Equal(t, once, f.Apply(once))

	// year is ignored
	require.Len(t, once, 2)
	assert.Equal(t, "1", once[0].ID)
	assert.Equal(t, "4", once[1].ID)
}

func TestExpenseTotalsByCategory(t *testing.T) {
	totals := ExpenseTotalsByCategory(fixtures.Default().Expenses)
	require.Len(t, totals, len(models.ExpenseCategories))
	assert.Equal(t, models.ExpenseMaintenance, totals[0].Category)
	assert.Equal(t, int64(0), totals[0].Total)
	assert.Equal(t, models.ExpenseUtilities, totals[1].Category)
	assert.Equal(t, int64(12000), totals[1].Total)
	assert.Equal(t, ToneYellow, totals[1].Tone)
}

func TestPaymentFilter(t *testing.T) {
	payments := fixtures.Default().Payments

	assert.Len(t, PaymentFilter{Status: All}.Apply(payments), 1)
	assert.Len(t, PaymentFilter{}.Apply(payments), 1)
	assert.Len(t, PaymentFilter{Status: "completed"}.Apply(payments), 1)
	assert.Empty(t, PaymentFilter{Status: "pending"}.Apply(payments))
}

func TestMonthIndex(t *testing.T) {
	assert.True(t, AllMonths.Valid())
	assert.True(t, MonthIndex(11).Valid())
	assert.False(t, MonthIndex(12).Valid())
	assert.Equal(t, MonthIndex(0), MonthOf(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
}
