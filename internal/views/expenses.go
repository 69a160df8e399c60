package views

import (
	"time"

	"pgmanager/server/internal/derive"
	"pgmanager/server/internal/models"
)

type ExpensesState struct {
	Category string
	Month    derive.MonthIndex
}

// DefaultExpensesState selects every category in the month of now
func DefaultExpensesState(now time.Time) ExpensesState {
	return ExpensesState{
		Category: derive.All,
		Month:    derive.MonthOf(now),
	}
}

type MonthOption struct {
	Index derive.MonthIndex `json:"index"`
	Label string            `json:"label"`
}

// MonthOptions lists January to December with their zero-based index
func MonthOptions() []MonthOption {
	out := make([]MonthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthOption{Index: derive.MonthIndex(m - 1), Label: m.String()})
	}
	return out
}

type ExpenseRow struct {
	models.Expense
	Property      *models.Property `json:"property,omitempty"`
	AmountLabel   string           `json:"amount_label"`
	CategoryLabel string           `json:"category_label"`
	Tone          derive.Tone      `json:"tone"`
}

type ExpensesView struct {
	Title          string                   `json:"title"`
	Category       string                   `json:"category"`
	Month          derive.MonthIndex        `json:"month"`
	Categories     []models.ExpenseCategory `json:"categories"`
	Months         []MonthOption            `json:"months"`
	Rows           []ExpenseRow             `json:"rows"`
	Total          int64                    `json:"total"`
	TotalLabel     string                   `json:"total_label"`
	CategoryTotals []derive.CategoryTotal   `json:"category_totals"`
}

// BuildExpenses lists expenses matching both the category and the month
// of year. Totals cover the filtered rows only.
func BuildExpenses(data models.Snapshot, state ExpensesState) ExpensesView {
	filter := derive.ExpenseFilter{Category: state.Category, Month: state.Month}
	if filter.Category == "" {
		filter.Category = derive.All
	}

	filtered := filter.Apply(data.Expenses)
	total := derive.SumExpenses(filtered)

	view := ExpensesView{
		Title:          "Expense Management",
		Category:       filter.Category,
		Month:          filter.Month,
		Categories:     models.ExpenseCategories,
		Months:         MonthOptions(),
		Rows:           make([]ExpenseRow, 0, len(filtered)),
		Total:          total,
		TotalLabel:     Rupees(total),
		CategoryTotals: derive.ExpenseTotalsByCategory(filtered),
	}
	for _, e := range filtered {
		view.Rows = append(view.Rows, ExpenseRow{
			Expense:       e,
			Property:      derive.ResolveExpense(data, e),
			AmountLabel:   Rupees(e.Amount),
			CategoryLabel: derive.ExpenseCategoryLabel(e.Category),
			Tone:          derive.ToneForExpenseCategory(e.Category),
		})
	}
	return view
}
