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

// TransactionService owns validation and orchestration for customer loan
// transactions. The repository is the sole shared mutable resource; report
// reads go through a best-effort cache.
type TransactionService struct {
	repo   port.TransactionRepository
	cache  port.ReportCache
	logger *zap.Logger
}

func NewTransactionService(repo port.TransactionRepository, cache port.ReportCache, logger *zap.Logger) *TransactionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionService{repo: repo, cache: cache, logger: logger}
}

func (s *TransactionService) Create(ctx context.Context, in domain.CreateTransactionInput) (*domain.Transaction, error) {
	if err := validateCreateTransaction(in); err != nil {
		return nil, err
	}

	tx, err := s.repo.Insert(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	invalidateReports(ctx, s.cache, s.logger, transactionSummaryKey, transactionChartKey)
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (s *TransactionService) Update(ctx context.Context, in domain.UpdateTransactionInput) (*domain.Transaction, error) {
	if err := validateUpdateTransaction(in); err != nil {
		return nil, err
	}

	tx, err := s.repo.Update(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("transaction with id %d %w", in.ID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update transaction %d: %w", in.ID, err)
	}

	invalidateReports(ctx, s.cache, s.logger, transactionSummaryKey, transactionChartKey)
	return tx, nil
}

// Delete removes a transaction. A missing or already-deleted id is not an
// error: the absence folds into success=false.
func (s *TransactionService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction %d: %w", id, err)
	}

	if deleted {
		invalidateReports(ctx, s.cache, s.logger, transactionSummaryKey, transactionChartKey)
	}
	return deleted, nil
}

func (s *TransactionService) Summary(ctx context.Context) (*domain.TransactionSummary, error) {
	if payload := cachedReport(ctx, s.cache, s.logger, transactionSummaryKey); payload != nil {
		var summary domain.TransactionSummary
		if err := json.Unmarshal(payload, &summary); err == nil {
			return &summary, nil
		}
		s.logger.Warn("discarding malformed cached report", zap.String("key", transactionSummaryKey))
	}

	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("transaction summary: %w", err)
	}

	storeReport(ctx, s.cache, s.logger, transactionSummaryKey, summary)
	return summary, nil
}

func (s *TransactionService) ChartData(ctx context.Context) ([]domain.TransactionChartPoint, error) {
	if payload := cachedReport(ctx, s.cache, s.logger, transactionChartKey); payload != nil {
		var points []domain.TransactionChartPoint
		if err := json.Unmarshal(payload, &points); err == nil {
			return points, nil
		}
		s.logger.Warn("discarding malformed cached report", zap.String("key", transactionChartKey))
	}

	points, err := s.repo.ChartData(ctx)
	if err != nil {
		return nil, fmt.Errorf("transaction chart data: %w", err)
	}

	storeReport(ctx, s.cache, s.logger, transactionChartKey, points)
	return points, nil
}

func validateCreateTransaction(in domain.CreateTransactionInput) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrInvalidInput)
	}
	if !in.LoanAmount.IsPositive() {
		return fmt.Errorf("%w: loan amount must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func validateUpdateTransaction(in domain.UpdateTransactionInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	if in.CustomerName != nil && strings.TrimSpace(*in.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrInvalidInput)
	}
	if in.LoanAmount != nil && !in.LoanAmount.IsPositive() {
		return fmt.Errorf("%w: loan amount must be positive", domain.ErrInvalidInput)
	}
	return nil
}
