package port

import "context"

type ReportCache interface {
	// GetReport returns the cached payload for key, nil on a miss.
	GetReport(ctx context.Context, key string) ([]byte, error)

	// SetReport stores payload under key for the cache's configured TTL.
	SetReport(ctx context.Context, key string, payload []byte) error

	// InvalidateReports drops the cached payloads for the given keys.
	InvalidateReports(ctx context.Context, keys ...string) error
}
