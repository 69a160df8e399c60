package views

import (
	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/models"
)

type PaymentsState struct {
	Status string
}

type PaymentSummary struct {
	Revenue      int64  `json:"revenue"`
	RevenueLabel string `json:"revenue_label"`
	Pending      int64  `json:"pending"`
	PendingLabel string `json:"pending_label"`
	// ThisMonth is 30% of revenue, not a sum over the current month
	ThisMonth           float64 `json:"this_month"`
	ThisMonthLabel      string  `json:"this_month_label"`
	ThisMonthIsEstimate bool    `json:"this_month_is_estimate"`
	RevenueCaption      string  `json:"revenue_caption"`
	PendingCaption      string  `json:"pending_caption"`
}

type PaymentRow struct {
	models.Payment
	Booking     *models.Booking  `json:"booking,omitempty"`
	Property    *models.Property `json:"property,omitempty"`
	Room        *models.Room     `json:"room,omitempty"`
	AmountLabel string           `json:"amount_label"`
	Tone        derive.Tone      `json:"tone"`
	Icon        derive.Icon      `json:"icon"`
	CanPay      bool             `json:"can_pay"`
}

type PaymentsView struct {
	Title         string                 `json:"title"`
	CanPay        bool                   `json:"can_pay"`
	Summary       PaymentSummary         `json:"summary"`
	Filter        string                 `json:"filter"`
	StatusOptions []models.PaymentStatus `json:"status_options"`
	Methods       []models.PaymentMethod `json:"methods"`
	Rows          []PaymentRow           `json:"rows"`
}

// BuildPayments summarises every payment and lists those passing the
// status filter. The summary ignores the filter.
func BuildPayments(role models.Role, data models.Snapshot, state PaymentsState) PaymentsView {
	filter := derive.PaymentFilter{Status: state.Status}
	if filter.Status == "" {
		filter.Status = derive.All
	}

	revenue := derive.Revenue(data.Payments)
	pending := derive.PendingAmount(data.Payments)
	thisMonth := derive.ThisMonthEstimate(revenue)

	view := PaymentsView{
		Title:  "My Payments",
		CanPay: role == models.RoleCustomer,
		Summary: PaymentSummary{
			Revenue:             revenue,
			RevenueLabel:        Rupees(revenue),
			Pending:             pending,
			PendingLabel:        Rupees(pending),
			ThisMonth:           thisMonth,
			ThisMonthLabel:      RupeesFloat(thisMonth),
			ThisMonthIsEstimate: true,
			RevenueCaption:      "Total Paid",
			PendingCaption:      "Pending Payments",
		},
		Filter:        filter.Status,
		StatusOptions: models.PaymentStatuses,
		Methods:       models.PaymentMethods,
		Rows:          []PaymentRow{},
	}
	if role == models.RoleOwner {
		view.Title = "Payment Management"
		view.Summary.RevenueCaption = "Total Revenue"
		view.Summary.PendingCaption = "Pending Collections"
	}

	for _, p := range filter.Apply(data.Payments) {
		refs := derive.ResolvePayment(data, p)
		view.Rows = append(view.Rows, PaymentRow{
			Payment:     p,
			Booking:     refs.Booking,
			Property:    refs.Property,
			Room:        refs.Room,
			AmountLabel: Rupees(p.Amount),
			Tone:        derive.ToneForPaymentStatus(p.Status),
			Icon:        derive.IconForPaymentStatus(p.Status),
			CanPay:      role == models.RoleCustomer && p.Status == models.PaymentPending,
		})
	}
	return view
}
