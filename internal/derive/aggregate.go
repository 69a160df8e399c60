package derive

import "pgmanager/server/internal/models"

// thisMonthShare is a placeholder: the monthly figure is a fixed share of
// total revenue, not a sum over the current month's payments.
const thisMonthShare = 0.3

func sumPayments(payments []models.Payment, status models.PaymentStatus) int64 {
	var total int64
	for _, p := range payments {
		if p.Status == status {
			total += p.Amount
		}
	}
	return total
}

// Revenue sums completed payments
func Revenue(payments []models.Payment) int64 {
	return sumPayments(payments, models.PaymentCompleted)
}

// PendingAmount sums payments still awaiting collection
func PendingAmount(payments []models.Payment) int64 {
	return sumPayments(payments, models.PaymentPending)
}

// ThisMonthEstimate returns 30% of revenue.
// TODO: replace with a real date-range sum once payments carry a billing period.
func ThisMonthEstimate(revenue int64) float64 {
	return float64(revenue) * thisMonthShare
}

func SumExpenses(expenses []models.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

type CategoryTotal struct {
	Category models.ExpenseCategory `json:"category"`
	Label    string                 `json:"label"`
	Tone     Tone                   `json:"tone"`
	Total    int64                  `json:"total"`
}

// ExpenseTotalsByCategory returns one entry per known category, in
// category order, including zero totals.
func ExpenseTotalsByCategory(expenses []models.Expense) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(models.ExpenseCategories))
	for _, c := range models.ExpenseCategories {
		var sum int64
		for _, e := range expenses {
			if e.Category == c {
				sum += e.Amount
			}
		}
		totals = append(totals, CategoryTotal{
			Category: c,
			Label:    ExpenseCategoryLabel(c),
			Tone:     ToneForExpenseCategory(c),
			Total:    sum,
		})
	}
	return totals
}

// CountComplaintsByStatus counts complaints per status. Every known
// status is present; unknown statuses are counted under their own key.
func CountComplaintsByStatus(complaints []models.Complaint) map[models.ComplaintStatus]int {
	counts := make(map[models.ComplaintStatus]int, len(models.ComplaintStatuses))
	for _, s := range models.ComplaintStatuses {
		counts[s] = 0
	}
	for _, c := range complaints {
		counts[c.Status]++
	}
	return counts
}
