package derive

import (
	"time"

	"pgmanager/server/internal/models"
)

// All is the sentinel filter value that matches everything
const All = "all"

// Filter keeps items for which every predicate holds. With no predicates
// the input is copied unchanged.
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// MonthIndex is a zero-based month of year (0 = January)
type MonthIndex int

// AllMonths disables month filtering
const AllMonths MonthIndex = -1

// MonthOf returns the zero-based month of t in UTC
func MonthOf(t time.Time) MonthIndex {
	return MonthIndex(t.UTC().Month() - 1)
}

func (m MonthIndex) Valid() bool {
	return m == AllMonths || (m >= 0 && m <= 11)
}

// Matches compares month of year only; the year is ignored
func (m MonthIndex) Matches(t time.Time) bool {
	return m == AllMonths || MonthOf(t) == m
}

type ExpenseFilter struct {
	Category string
	Month    MonthIndex
}

func (f ExpenseFilter) MatchCategory(e models.Expense) bool {
	return f.Category == "" || f.Category == All || string(e.Category) == f.Category
}

func (f ExpenseFilter) MatchMonth(e models.Expense) bool {
	return f.Month.Matches(e.Date)
}

func (f ExpenseFilter) Allows(e models.Expense) bool {
	return f.MatchCategory(e) && f.MatchMonth(e)
}

func (f ExpenseFilter) Apply(expenses []models.Expense) []models.Expense {
	return Filter(expenses, f.MatchCategory, f.MatchMonth)
}

type PaymentFilter struct {
	Status string
}

func (f PaymentFilter) Allows(p models.Payment) bool {
	return f.Status == "" || f.Status == All || string(p.Status) == f.Status
}

func (f PaymentFilter) Apply(payments []models.Payment) []models.Payment {
	return Filter(payments, f.Allows)
}

type ComplaintFilter struct {
	Status   string
	Category string
}

func (f ComplaintFilter) Allows(c models.Complaint) bool {
	if f.Status != "" && f.Status != All && string(c.Status) != f.Status {
		return false
	}
	if f.Category != "" && f.Category != All && string(c.Category) != f.Category {
		return false
	}
	return true
}

func (f ComplaintFilter) Apply(complaints []models.Complaint) []models.Complaint {
	return Filter(complaints, f.Allows)
}
