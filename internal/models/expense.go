package models

import "time"

type ExpenseCategory string

const (
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseUtilities   ExpenseCategory = "utilities"
	ExpenseStaff       ExpenseCategory = "staff"
	ExpenseSupplies    ExpenseCategory = "supplies"
	ExpenseOther       ExpenseCategory = "other"
)

var ExpenseCategories = []ExpenseCategory{
	ExpenseMaintenance,
	ExpenseUtilities,
	ExpenseStaff,
	ExpenseSupplies,
	ExpenseOther,
}

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseMaintenance, ExpenseUtilities, ExpenseStaff, ExpenseSupplies, ExpenseOther:
		return true
	default:
		return false
	}
}

type Expense struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"property_id"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
	Date        time.Time       `json:"date"`
	Receipt     string          `json:"receipt,omitempty"`
}
