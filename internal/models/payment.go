package models

import "time"

type PaymentType string

const (
	PaymentRent        PaymentType = "rent"
	PaymentDeposit     PaymentType = "deposit"
	PaymentMaintenance PaymentType = "maintenance"
	PaymentFine        PaymentType = "fine"
)

var PaymentTypes = []PaymentType{PaymentRent, PaymentDeposit, PaymentMaintenance, PaymentFine}

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentRent, PaymentDeposit, PaymentMaintenance, PaymentFine:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodOnline       PaymentMethod = "online"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

var PaymentMethods = []PaymentMethod{MethodCash, MethodOnline, MethodBankTransfer}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodOnline, MethodBankTransfer:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	Amount    int64         `json:"amount"`
	Type      PaymentType   `json:"type"`
	Status    PaymentStatus `json:"status"`
	Method    PaymentMethod `json:"method"`
	DueDate   time.Time     `json:"due_date"`
	PaidDate  *time.Time    `json:"paid_date,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
