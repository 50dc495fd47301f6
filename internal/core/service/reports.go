package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/opsdash/records/internal/port"
)

// Cache keys for the four report queries. Mutations on an entity invalidate
// that entity's keys only; the two entity types are independent.
const (
	transactionSummaryKey = "transactions:summary"
	transactionChartKey   = "transactions:chart"
	inventorySummaryKey   = "inventory:summary"
	inventoryChartKey     = "inventory:chart"
)

// cachedReport fetches a report payload, treating every cache problem as a
// miss. Reporting must keep working when the cache is down.
func cachedReport(ctx context.Context, cache port.ReportCache, logger *zap.Logger, key string) []byte {
	if cache == nil {
		return nil
	}
	payload, err := cache.GetReport(ctx, key)
	if err != nil {
		logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return payload
}

// storeReport writes a report payload best-effort.
func storeReport(ctx context.Context, cache port.ReportCache, logger *zap.Logger, key string, report any) {
	if cache == nil {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		logger.Warn("report marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := cache.SetReport(ctx, key, payload); err != nil {
		logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidateReports drops cached reports after a successful mutation.
func invalidateReports(ctx context.Context, cache port.ReportCache, logger *zap.Logger, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateReports(ctx, keys...); err != nil {
		logger.Warn("report cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
