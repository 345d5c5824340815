package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleLedger accumulates salary transactions for one employee inside one
// semi-monthly pay cycle. Base salary and the hourly rate are snapshotted
// at creation; the payable total always equals the base snapshot plus the
// signed sum of all transactions.
type CycleLedger struct {
	ID            string
	EmployeeID    string
	CycleKey      string
	CycleStart    time.Time
	CycleEnd      time.Time
	BaseSalary    decimal.Decimal
	SalaryPerHour decimal.Decimal
	PayableSalary decimal.Decimal

	Status PaymentStatus
	PaidAt *time.Time

	AttendanceCount        int
	AttendanceBonusAwarded bool

	Transactions []Transaction

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "unpaid"
	StatusPaid   PaymentStatus = "paid"
)

type TransactionType string

const (
	TxnIncrement           TransactionType = "increment"
	TxnDecrement           TransactionType = "decrement"
	TxnBonusAmount         TransactionType = "bonus_amount"
	TxnBonusPercentage     TransactionType = "bonus_percentage"
	TxnAttendanceBonus     TransactionType = "attendance_bonus"
	TxnAttendanceBonusAuto TransactionType = "attendance_bonus_auto"
	TxnOvertime            TransactionType = "overtime"
	TxnAbsent              TransactionType = "absent"
	TxnEarlyLeave          TransactionType = "early_leave"
)

// Transaction is one signed monetary adjustment, immutable once appended.
// Amount carries its sign (deductions are negative); Meta records the
// inputs the amount was derived from.
type Transaction struct {
	Type       TransactionType        `json:"type"`
	Amount     decimal.Decimal        `json:"amount"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
	Note       string                 `json:"note"`
	ActionDate time.Time              `json:"action_date"`
	CreatedAt  time.Time              `json:"created_at"`
}

// Apply appends txn and moves the payable total by its signed amount.
func (l *CycleLedger) Apply(txn Transaction) {
	l.PayableSalary = l.PayableSalary.Add(txn.Amount)
	l.Transactions = append(l.Transactions, txn)
}
