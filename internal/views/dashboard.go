package views

import (
	"time"

	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/models"
)

// Dashboard figures are fixed display values. They are not derived from
// the data set.

type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type RecentBooking struct {
	Customer string      `json:"customer"`
	Room     string      `json:"room"`
	Status   string      `json:"status"`
	Tone     derive.Tone `json:"tone"`
}

type FinancialOverview struct {
	Revenue        int64  `json:"revenue"`
	Expenses       int64  `json:"expenses"`
	NetProfit      int64  `json:"net_profit"`
	RevenueLabel   string `json:"revenue_label"`
	ExpensesLabel  string `json:"expenses_label"`
	NetProfitLabel string `json:"net_profit_label"`
}

type OwnerDashboard struct {
	Title          string            `json:"title"`
	LastUpdated    string            `json:"last_updated"`
	Stats          []StatCard        `json:"stats"`
	RecentBookings []RecentBooking   `json:"recent_bookings"`
	Financial      FinancialOverview `json:"financial"`
}

type QuickAction struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	View     string `json:"view"`
}

type BookingCard struct {
	PropertyName string      `json:"property_name"`
	Location     string      `json:"location"`
	Dates        string      `json:"dates"`
	Rent         string      `json:"rent"`
	Status       string      `json:"status"`
	Tone         derive.Tone `json:"tone"`
}

type Recommendation struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rent     string `json:"rent"`
}

type CustomerDashboard struct {
	Title           string           `json:"title"`
	QuickActions    []QuickAction    `json:"quick_actions"`
	CurrentBooking  BookingCard      `json:"current_booking"`
	Recommendations []Recommendation `json:"recommendations"`
}

type DashboardView struct {
	Role     models.Role        `json:"role"`
	Owner    *OwnerDashboard    `json:"owner,omitempty"`
	Customer *CustomerDashboard `json:"customer,omitempty"`
}

func BuildDashboard(role models.Role, now time.Time) DashboardView {
	if role == models.RoleCustomer {
		return DashboardView{Role: role, Customer: customerDashboard()}
	}
	return DashboardView{Role: models.RoleOwner, Owner: ownerDashboard(now)}
}

func ownerDashboard(now time.Time) *OwnerDashboard {
	const (
		revenue  int64 = 450000
		expenses int64 = 120000
	)
	return &OwnerDashboard{
		Title:       "Owner Dashboard",
		LastUpdated: dateLabel(now),
		Stats: []StatCard{
			{Label: "Properties", Value: "3", Icon: "building"},
			{Label: "Active Tenants", Value: "24", Icon: "users"},
			{Label: "Monthly Revenue", Value: Rupees(revenue), Icon: "credit-card"},
			{Label: "Open Complaints", Value: "3", Icon: "alert-circle"},
		},
		RecentBookings: []RecentBooking{
			{Customer: "Priya Sharma", Room: "Room A102 - Elite PG", Status: "Active", Tone: derive.ToneForBookingStatus(models.BookingActive)},
			{Customer: "Amit Kumar", Room: "Room B201 - Elite PG", Status: "Pending", Tone: derive.ToneForBookingStatus(models.BookingPending)},
		},
		Financial: FinancialOverview{
			Revenue:        revenue,
			Expenses:       expenses,
			NetProfit:      revenue - expenses,
			RevenueLabel:   Rupees(revenue),
			ExpensesLabel:  Rupees(expenses),
			NetProfitLabel: Rupees(revenue - expenses),
		},
	}
}

func customerDashboard() *CustomerDashboard {
	return &CustomerDashboard{
		Title: "Welcome Back!",
		QuickActions: []QuickAction{
			{Title: "Find Nearby PGs", Subtitle: "Discover accommodations near you", View: "search"},
			{Title: "Pay Rent", Subtitle: "Quick payment options", View: "payments"},
			{Title: "Report Issue", Subtitle: "Get help with any problems", View: "complaints"},
		},
		CurrentBooking: BookingCard{
			PropertyName: "Elite PG for Professionals",
			Location:     "Room A102 • Koramangala, Bangalore",
			Dates:        "Check-in: Feb 1, 2024 • Check-out: Aug 1, 2024",
			Rent:         Rupees(15000) + "/month",
			Status:       "Active",
			Tone:         derive.ToneForBookingStatus(models.BookingActive),
		},
		Recommendations: []Recommendation{
			{Name: "Premium PG Near IT Hub", Location: "Whitefield, Bangalore", Rent: Rupees(18000) + "/month"},
			{Name: "Student Friendly PG", Location: "BTM Layout, Bangalore", Rent: Rupees(12000) + "/month"},
		},
	}
}
