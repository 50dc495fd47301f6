package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsdash/records/internal/core/domain"
)

// Money crosses the HTTP boundary as plain float64. Inside the core it stays
// fixed-point decimal; the conversion happens only here.

type createTransactionRequest struct {
	CustomerName string  `json:"customerName"`
	LoanAmount   float64 `json:"loanAmount"`
}

type updateTransactionRequest struct {
	CustomerName *string  `json:"customerName"`
	LoanAmount   *float64 `json:"loanAmount"`
}

type transactionResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	LoanAmount   float64   `json:"loanAmount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type createInventoryItemRequest struct {
	ItemName string `json:"itemName"`
	Quantity int64  `json:"quantity"`
}

type updateInventoryItemRequest struct {
	ItemName *string `json:"itemName"`
	Quantity *int64  `json:"quantity"`
}

type inventoryItemResponse struct {
	ID        int64     `json:"id"`
	ItemName  string    `json:"itemName"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

type transactionSummaryResponse struct {
	TotalCustomers    int64   `json:"totalCustomers"`
	TotalTransactions int64   `json:"totalTransactions"`
	TotalLoanAmount   float64 `json:"totalLoanAmount"`
}

type inventorySummaryResponse struct {
	TotalItemTypes     int64 `json:"totalItemTypes"`
	TotalStockQuantity int64 `json:"totalStockQuantity"`
}

type transactionChartPointResponse struct {
	CustomerName string  `json:"customerName"`
	LoanAmount   float64 `json:"loanAmount"`
}

type inventoryChartPointResponse struct {
	ItemName string `json:"itemName"`
	Quantity int64  `json:"quantity"`
}

func toTransactionResponse(tx *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		CustomerName: tx.CustomerName,
		LoanAmount:   tx.LoanAmount.InexactFloat64(),
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}

func toTransactionResponses(txs []domain.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionResponse(&txs[i]))
	}
	return out
}

func toInventoryItemResponse(item *domain.InventoryItem) inventoryItemResponse {
	return inventoryItemResponse{
		ID:        item.ID,
		ItemName:  item.ItemName,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toInventoryItemResponses(items []domain.InventoryItem) []inventoryItemResponse {
	out := make([]inventoryItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toInventoryItemResponse(&items[i]))
	}
	return out
}

func toTransactionChartResponses(points []domain.TransactionChartPoint) []transactionChartPointResponse {
	out := make([]transactionChartPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, transactionChartPointResponse{
			CustomerName: p.CustomerName,
			LoanAmount:   p.LoanAmount.InexactFloat64(),
		})
	}
	return out
}

func toInventoryChartResponses(points []domain.InventoryChartPoint) []inventoryChartPointResponse {
	out := make([]inventoryChartPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, inventoryChartPointResponse{
			ItemName: p.ItemName,
			Quantity: p.Quantity,
		})
	}
	return out
}

func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
