package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/opsdash/records/internal/core/domain"
)

type MySQLTransactionStore struct {
	db *sql.DB
}

func NewMySQLTransactionStore(db *sql.DB) *MySQLTransactionStore {
	return &MySQLTransactionStore{db: db}
}

func (s *MySQLTransactionStore) Insert(ctx context.Context, in domain.CreateTransactionInput) (*domain.Transaction, error) {
	ts := now()
	amount := in.LoanAmount.Round(moneyScale)

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (customer_name, loan_amount, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		in.CustomerName, amount, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert transaction id: %w", err)
	}

	return &domain.Transaction{
		ID:           id,
		CustomerName: in.CustomerName,
		LoanAmount:   amount,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}, nil
}

func (s *MySQLTransactionStore) List(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_name, loan_amount, created_at, updated_at
		FROM transactions
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.CustomerName, &tx.LoanAmount, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}

// Update writes only the supplied fields. updated_at moves on every call,
// even when the input carries nothing but the id.
func (s *MySQLTransactionStore) Update(ctx context.Context, in domain.UpdateTransactionInput) (*domain.Transaction, error) {
	sets := []string{"updated_at = ?"}
	args := []any{now()}

	if in.CustomerName != nil {
		sets = append(sets, "customer_name = ?")
		args = append(args, *in.CustomerName)
	}
	if in.LoanAmount != nil {
		sets = append(sets, "loan_amount = ?")
		args = append(args, in.LoanAmount.Round(moneyScale))
	}
	args = append(args, in.ID)

	_, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	// The read-back doubles as the existence check: an unknown id updates
	// zero rows and then selects zero rows.
	return s.getByID(ctx, in.ID)
}

func (s *MySQLTransactionStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (s *MySQLTransactionStore) Summary(ctx context.Context) (*domain.TransactionSummary, error) {
	var summary domain.TransactionSummary
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT customer_name), COUNT(*), COALESCE(SUM(loan_amount), 0)
		FROM transactions`).
		Scan(&summary.TotalCustomers, &summary.TotalTransactions, &summary.TotalLoanAmount)
	if err != nil {
		return nil, fmt.Errorf("query transaction summary: %w", err)
	}

	return &summary, nil
}

func (s *MySQLTransactionStore) ChartData(ctx context.Context) ([]domain.TransactionChartPoint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT customer_name, SUM(loan_amount)
		FROM transactions
		GROUP BY customer_name
		ORDER BY customer_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query transaction chart data: %w", err)
	}
	defer rows.Close()

	var points []domain.TransactionChartPoint
	for rows.Next() {
		var p domain.TransactionChartPoint
		if err := rows.Scan(&p.CustomerName, &p.LoanAmount); err != nil {
			return nil, fmt.Errorf("scan transaction chart point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction chart data: %w", err)
	}

	return points, nil
}

func (s *MySQLTransactionStore) getByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := s.db.QueryRowContext(ctx, `
		SELECT id, customer_name, loan_amount, created_at, updated_at
		FROM transactions WHERE id = ?`, id).
		Scan(&tx.ID, &tx.CustomerName, &tx.LoanAmount, &tx.CreatedAt, &tx.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query transaction: %w", err)
	}

	return &tx, nil
}
