package port

import (
	"context"

	"github.com/opsdash/records/internal/core/domain"
)

type TransactionRepository interface {
	// Insert persists a new transaction, assigning id and timestamps.
	Insert(ctx context.Context, in domain.CreateTransactionInput) (*domain.Transaction, error)

	// List returns all transactions, newest createdAt first.
	List(ctx context.Context) ([]domain.Transaction, error)

	// Update applies the supplied fields and bumps updatedAt, returning the
	// full updated record. Returns domain.ErrNotFound for an unknown id.
	Update(ctx context.Context, in domain.UpdateTransactionInput) (*domain.Transaction, error)

	// Delete removes the record, reporting whether a row was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)

	// Summary aggregates distinct customers, row count and total loan amount.
	Summary(ctx context.Context) (*domain.TransactionSummary, error)

	// ChartData sums loan amounts per customer, ordered by customer name.
	ChartData(ctx context.Context) ([]domain.TransactionChartPoint, error)
}

type InventoryRepository interface {
	// Insert persists a new inventory item, assigning id and timestamps.
	Insert(ctx context.Context, in domain.CreateInventoryItemInput) (*domain.InventoryItem, error)

	// List returns all inventory items.
	List(ctx context.Context) ([]domain.InventoryItem, error)

	// Update applies the supplied fields and bumps updatedAt, returning the
	// full updated record. Returns domain.ErrNotFound for an unknown id.
	Update(ctx context.Context, in domain.UpdateInventoryItemInput) (*domain.InventoryItem, error)

	// Delete removes the record, reporting whether a row was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)

	// Summary counts item rows and sums stock quantity.
	Summary(ctx context.Context) (*domain.InventorySummary, error)

	// ChartData returns one point per item row.
	ChartData(ctx context.Context) ([]domain.InventoryChartPoint, error)
}
