package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single customer loan record.
type Transaction struct {
	ID           int64
	CustomerName string
	LoanAmount   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateTransactionInput carries the caller-supplied fields for a new
// transaction. ID and timestamps are assigned by the store.
type CreateTransactionInput struct {
	CustomerName string
	LoanAmount   decimal.Decimal
}

// UpdateTransactionInput targets an existing transaction. A nil field means
// "leave the stored value untouched"; updatedAt still moves on every call.
type UpdateTransactionInput struct {
	ID           int64
	CustomerName *string
	LoanAmount   *decimal.Decimal
}

// TransactionSummary aggregates the whole transactions table.
type TransactionSummary struct {
	TotalCustomers    int64
	TotalTransactions int64
	TotalLoanAmount   decimal.Decimal
}

// TransactionChartPoint is one per-customer bar: the sum of that customer's
// loan amounts.
type TransactionChartPoint struct {
	CustomerName string
	LoanAmount   decimal.Decimal
}
