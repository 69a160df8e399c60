package shell

import "pgmanager/server/internal/models"

type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var ownerNavigation = []NavItem{
	{ID: ViewDashboard, Label: "Dashboard", Icon: "bar-chart"},
	{ID: ViewProperties, Label: "Properties", Icon: "building"},
	{ID: ViewBookings, Label: "Bookings", Icon: "user"},
	{ID: ViewPayments, Label: "Payments", Icon: "credit-card"},
	{ID: ViewComplaints, Label: "Complaints", Icon: "message-square"},
	{ID: ViewExpenses, Label: "Expenses", Icon: "bar-chart"},
}

var customerNavigation = []NavItem{
	{ID: ViewSearch, Label: "Find PG", Icon: "search"},
	{ID: ViewBookings, Label: "My Bookings", Icon: "user"},
	{ID: ViewPayments, Label: "Payments", Icon: "credit-card"},
	{ID: ViewComplaints, Label: "Complaints", Icon: "message-square"},
	{ID: ViewMap, Label: "Map View", Icon: "map-pin"},
}

// Navigation returns the menu for a role
func Navigation(role models.Role) []NavItem {
	if role == models.RoleCustomer {
		return append([]NavItem(nil), customerNavigation...)
	}
	return append([]NavItem(nil), ownerNavigation...)
}

// Title is the header text for a role
func Title(role models.Role) string {
	if role == models.RoleCustomer {
		return "PG Manager Find"
	}
	return "PG Manager Pro"
}

// Theme is the accent colour for a role
func Theme(role models.Role) string {
	if role == models.RoleCustomer {
		return "green"
	}
	return "blue"
}

// CurrentUser picks the first user with the role, else the first user.
// An empty list gives false.
func CurrentUser(users []models.User, role models.Role) (models.User, bool) {
	for _, u := range users {
		if u.Role == role {
			return u, true
		}
	}
	if len(users) > 0 {
		return users[0], true
	}
	return models.User{}, false
}

// Header is everything the layout needs around a view
type Header struct {
	Role       models.Role  `json:"role"`
	View       string       `json:"view"`
	Title      string       `json:"title"`
	Theme      string       `json:"theme"`
	User       *models.User `json:"user,omitempty"`
	Navigation []NavItem    `json:"navigation"`
}

func BuildHeader(users []models.User, role models.Role, view string) Header {
	h := Header{
		Role:       role,
		View:       Resolve(view),
		Title:      Title(role),
		Theme:      Theme(role),
		Navigation: Navigation(role),
	}
	if u, ok := CurrentUser(users, role); ok {
		h.User = &u
	}
	return h
}
