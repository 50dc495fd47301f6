package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/opsdash/records/internal/core/domain"
	"github.com/opsdash/records/internal/core/service"
)

// HTTPHandler adapts the entity services to the JSON API consumed by the
// dashboard.
type HTTPHandler struct {
	transactions *service.TransactionService
	inventory    *service.InventoryService
	logger       *zap.Logger
}

func NewHTTPHandler(transactions *service.TransactionService, inventory *service.InventoryService, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{transactions: transactions, inventory: inventory, logger: logger}
}

func (h *HTTPHandler) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tx, err := h.transactions.Create(c.Request.Context(), domain.CreateTransactionInput{
		CustomerName: req.CustomerName,
		LoanAmount:   decimal.NewFromFloat(req.LoanAmount),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(tx))
}

func (h *HTTPHandler) ListTransactions(c *gin.Context) {
	txs, err := h.transactions.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponses(txs))
}

func (h *HTTPHandler) UpdateTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tx, err := h.transactions.Update(c.Request.Context(), domain.UpdateTransactionInput{
		ID:           id,
		CustomerName: req.CustomerName,
		LoanAmount:   decimalPtr(req.LoanAmount),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(tx))
}

func (h *HTTPHandler) DeleteTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.transactions.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteResponse{Success: deleted})
}

func (h *HTTPHandler) CreateInventoryItem(c *gin.Context) {
	var req createInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.inventory.Create(c.Request.Context(), domain.CreateInventoryItemInput{
		ItemName: req.ItemName,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toInventoryItemResponse(item))
}

func (h *HTTPHandler) ListInventoryItems(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInventoryItemResponses(items))
}

func (h *HTTPHandler) UpdateInventoryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.inventory.Update(c.Request.Context(), domain.UpdateInventoryItemInput{
		ID:       id,
		ItemName: req.ItemName,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInventoryItemResponse(item))
}

func (h *HTTPHandler) DeleteInventoryItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	deleted, err := h.inventory.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteResponse{Success: deleted})
}

func (h *HTTPHandler) TransactionSummary(c *gin.Context) {
	summary, err := h.transactions.Summary(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactionSummaryResponse{
		TotalCustomers:    summary.TotalCustomers,
		TotalTransactions: summary.TotalTransactions,
		TotalLoanAmount:   summary.TotalLoanAmount.InexactFloat64(),
	})
}

func (h *HTTPHandler) TransactionChart(c *gin.Context) {
	points, err := h.transactions.ChartData(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionChartResponses(points))
}

func (h *HTTPHandler) InventorySummary(c *gin.Context) {
	summary, err := h.inventory.Summary(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, inventorySummaryResponse{
		TotalItemTypes:     summary.TotalItemTypes,
		TotalStockQuantity: summary.TotalStockQuantity,
	})
}

func (h *HTTPHandler) InventoryChart(c *gin.Context) {
	points, err := h.inventory.ChartData(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInventoryChartResponses(points))
}

// writeError maps business errors to statuses. Store failures are logged here
// and surfaced as an opaque 500.
func (h *HTTPHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
