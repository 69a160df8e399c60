package views

import (
	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/models"
)

type ComplaintsState struct {
	Status              string
	SelectedComplaintID string
}

type ComplaintCounts struct {
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}

type ComplaintRow struct {
	models.Complaint
	Property     *models.Property    `json:"property,omitempty"`
	Room         *models.Room        `json:"room,omitempty"`
	CategoryInfo derive.CategoryInfo `json:"category_info"`
	StatusTone   derive.Tone         `json:"status_tone"`
	StatusIcon   derive.Icon         `json:"status_icon"`
	PriorityTone derive.Tone         `json:"priority_tone"`
	CanResolve   bool                `json:"can_resolve"`
}

type ComplaintsView struct {
	Title      string                `json:"title"`
	CanSubmit  bool                  `json:"can_submit"`
	Counts     ComplaintCounts       `json:"counts"`
	Filter     string                `json:"filter"`
	Categories []derive.CategoryInfo `json:"categories,omitempty"`
	Priorities []models.Priority     `json:"priorities,omitempty"`
	Rows       []ComplaintRow        `json:"rows"`
	Selected   *ComplaintRow         `json:"selected,omitempty"`
}

func newComplaintRow(role models.Role, data models.Snapshot, c models.Complaint) ComplaintRow {
	refs := derive.ResolveComplaint(data, c)
	return ComplaintRow{
		Complaint:    c,
		Property:     refs.Property,
		Room:         refs.Room,
		CategoryInfo: derive.ComplaintCategoryInfo(c.Category),
		StatusTone:   derive.ToneForComplaintStatus(c.Status),
		StatusIcon:   derive.IconForComplaintStatus(c.Status),
		PriorityTone: derive.ToneForPriority(c.Priority),
		CanResolve:   role == models.RoleOwner && c.Status != models.ComplaintResolved,
	}
}

// BuildComplaints counts every complaint by status and lists the ones
// passing the status filter. Customers also get the submission form
// options.
func BuildComplaints(role models.Role, data models.Snapshot, state ComplaintsState) ComplaintsView {
	filter := derive.ComplaintFilter{Status: state.Status, Category: derive.All}
	if filter.Status == "" {
		filter.Status = derive.All
	}

	counts := derive.CountComplaintsByStatus(data.Complaints)
	view := ComplaintsView{
		Title:     "My Complaints",
		CanSubmit: role == models.RoleCustomer,
		Counts: ComplaintCounts{
			Open:       counts[models.ComplaintOpen],
			InProgress: counts[models.ComplaintInProgress],
			Resolved:   counts[models.ComplaintResolved],
		},
		Filter: filter.Status,
		Rows:   []ComplaintRow{},
	}
	if role == models.RoleOwner {
		view.Title = "Complaint Management"
	} else {
		view.Categories = derive.ComplaintCategoryOptions()
		view.Priorities = models.Priorities
	}

	for _, c := range filter.Apply(data.Complaints) {
		view.Rows = append(view.Rows, newComplaintRow(role, data, c))
	}

	if state.SelectedComplaintID != "" {
		if c, ok := derive.FindComplaint(data.Complaints, state.SelectedComplaintID); ok {
			row := newComplaintRow(role, data, c)
			view.Selected = &row
		}
	}
	return view
}
