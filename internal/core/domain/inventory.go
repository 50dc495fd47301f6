package domain

import "time"

// InventoryItem is a single stock record.
type InventoryItem struct {
	ID        int64
	ItemName  string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateInventoryItemInput carries the caller-supplied fields for a new item.
type CreateInventoryItemInput struct {
	ItemName string
	Quantity int64
}

// UpdateInventoryItemInput targets an existing item. Nil fields are left
// untouched; an explicit zero quantity is a real value, not an omission.
type UpdateInventoryItemInput struct {
	ID       int64
	ItemName *string
	Quantity *int64
}

// InventorySummary aggregates the whole inventory table. Items with zero
// quantity still count toward TotalItemTypes.
type InventorySummary struct {
	TotalItemTypes     int64
	TotalStockQuantity int64
}

// InventoryChartPoint is one row of the stock chart.
type InventoryChartPoint struct {
	ItemName string
	Quantity int64
}
