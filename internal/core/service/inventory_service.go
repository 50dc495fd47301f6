package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/opsdash/records/internal/core/domain"
	"github.com/opsdash/records/internal/port"
)

// InventoryService owns validation and orchestration for stock items.
type InventoryService struct {
	repo   port.InventoryRepository
	cache  port.ReportCache
	logger *zap.Logger
}

func NewInventoryService(repo port.InventoryRepository, cache port.ReportCache, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{repo: repo, cache: cache, logger: logger}
}

func (s *InventoryService) Create(ctx context.Context, in domain.CreateInventoryItemInput) (*domain.InventoryItem, error) {
	if err := validateCreateInventoryItem(in); err != nil {
		return nil, err
	}

	item, err := s.repo.Insert(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}

	invalidateReports(ctx, s.cache, s.logger, inventorySummaryKey, inventoryChartKey)
	return item, nil
}

func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	return items, nil
}

func (s *InventoryService) Update(ctx context.Context, in domain.UpdateInventoryItemInput) (*domain.InventoryItem, error) {
	if err := validateUpdateInventoryItem(in); err != nil {
		return nil, err
	}

	item, err := s.repo.Update(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("inventory item with id %d %w", in.ID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update inventory item %d: %w", in.ID, err)
	}

	invalidateReports(ctx, s.cache, s.logger, inventorySummaryKey, inventoryChartKey)
	return item, nil
}

// Delete removes an item. A missing or already-deleted id is not an error:
// the absence folds into success=false.
func (s *InventoryService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory item %d: %w", id, err)
	}

	if deleted {
		invalidateReports(ctx, s.cache, s.logger, inventorySummaryKey, inventoryChartKey)
	}
	return deleted, nil
}

func (s *InventoryService) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	if payload := cachedReport(ctx, s.cache, s.logger, inventorySummaryKey); payload != nil {
		var summary domain.InventorySummary
		if err := json.Unmarshal(payload, &summary); err == nil {
			return &summary, nil
		}
		s.logger.Warn("discarding malformed cached report", zap.String("key", inventorySummaryKey))
	}

	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}

	storeReport(ctx, s.cache, s.logger, inventorySummaryKey, summary)
	return summary, nil
}

func (s *InventoryService) ChartData(ctx context.Context) ([]domain.InventoryChartPoint, error) {
	if payload := cachedReport(ctx, s.cache, s.logger, inventoryChartKey); payload != nil {
		var points []domain.InventoryChartPoint
		if err := json.Unmarshal(payload, &points); err == nil {
			return points, nil
		}
		s.logger.Warn("discarding malformed cached report", zap.String("key", inventoryChartKey))
	}

	points, err := s.repo.ChartData(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory chart data: %w", err)
	}

	storeReport(ctx, s.cache, s.logger, inventoryChartKey, points)
	return points, nil
}

func validateCreateInventoryItem(in domain.CreateInventoryItemInput) error {
	if strings.TrimSpace(in.ItemName) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}

func validateUpdateInventoryItem(in domain.UpdateInventoryItemInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	if in.ItemName != nil && strings.TrimSpace(*in.ItemName) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}
