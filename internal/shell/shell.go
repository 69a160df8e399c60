// Package shell tracks which role is active and which view is showing.
package shell

import (
	"sync"

	"pgmanager/server/internal/models"
)

const (
	ViewDashboard  = "dashboard"
	ViewProperties = "properties"
	ViewSearch     = "search"
	ViewBookings   = "bookings"
	ViewPayments   = "payments"
	ViewComplaints = "complaints"
	ViewMap        = "map"
	ViewExpenses   = "expenses"
)

// Views lists every view the shell can render
var Views = []string{
	ViewDashboard,
	ViewProperties,
	ViewSearch,
	ViewBookings,
	ViewPayments,
	ViewComplaints,
	ViewMap,
	ViewExpenses,
}

// Resolve maps a view name to one that can be rendered. Unknown names
// fall back to the dashboard.
func Resolve(view string) string {
	for _, v := range Views {
		if v == view {
			return v
		}
	}
	return ViewDashboard
}

// HomeView is where a role lands after switching to it
func HomeView(role models.Role) string {
	if role == models.RoleCustomer {
		return ViewSearch
	}
	return ViewDashboard
}

// State is the app-level selection shared by every view. It starts as
// owner on the dashboard.
type State struct {
	mu   sync.RWMutex
	role models.Role
	view string
}

func NewState() *State {
	return &State{role: models.RoleOwner, view: ViewDashboard}
}

func (s *State) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// View returns the stored view name, which may be unknown
func (s *State) View() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SwitchRole changes role and jumps to that role's home view
func (s *State) SwitchRole(role models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
	s.view = HomeView(role)
}

// SetView stores any view name; rendering resolves it later
func (s *State) SetView(view string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// Snapshot returns role and view read together
func (s *State) Snapshot() (models.Role, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role, s.view
}
