package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/opsdash/records/internal/core/domain"
)

type MySQLInventoryStore struct {
	db *sql.DB
}

func NewMySQLInventoryStore(db *sql.DB) *MySQLInventoryStore {
	return &MySQLInventoryStore{db: db}
}

func (s *MySQLInventoryStore) Insert(ctx context.Context, in domain.CreateInventoryItemInput) (*domain.InventoryItem, error) {
	ts := now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO inventory_items (item_name, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		in.ItemName, in.Quantity, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert inventory item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert inventory item id: %w", err)
	}

	return &domain.InventoryItem{
		ID:        id,
		ItemName:  in.ItemName,
		Quantity:  in.Quantity,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

func (s *MySQLInventoryStore) List(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, item_name, quantity, created_at, updated_at
		FROM inventory_items`)
	if err != nil {
		return nil, fmt.Errorf("query inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory items: %w", err)
	}

	return items, nil
}

// Update writes only the supplied fields. An explicit zero quantity is a real
// write, distinguished from omission by the nil check upstream.
func (s *MySQLInventoryStore) Update(ctx context.Context, in domain.UpdateInventoryItemInput) (*domain.InventoryItem, error) {
	sets := []string{"updated_at = ?"}
	args := []any{now()}

	if in.ItemName != nil {
		sets = append(sets, "item_name = ?")
		args = append(args, *in.ItemName)
	}
	if in.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *in.Quantity)
	}
	args = append(args, in.ID)

	_, err := s.db.ExecContext(ctx,
		"UPDATE inventory_items SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}

	return s.getByID(ctx, in.ID)
}

func (s *MySQLInventoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory item: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (s *MySQLInventoryStore) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	var summary domain.InventorySummary
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0)
		FROM inventory_items`).
		Scan(&summary.TotalItemTypes, &summary.TotalStockQuantity)
	if err != nil {
		return nil, fmt.Errorf("query inventory summary: %w", err)
	}

	return &summary, nil
}

func (s *MySQLInventoryStore) ChartData(ctx context.Context) ([]domain.InventoryChartPoint, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT item_name, quantity FROM inventory_items`)
	if err != nil {
		return nil, fmt.Errorf("query inventory chart data: %w", err)
	}
	defer rows.Close()

	var points []domain.InventoryChartPoint
	for rows.Next() {
		var p domain.InventoryChartPoint
		if err := rows.Scan(&p.ItemName, &p.Quantity); err != nil {
			return nil, fmt.Errorf("scan inventory chart point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory chart data: %w", err)
	}

	return points, nil
}

func (s *MySQLInventoryStore) getByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := s.db.QueryRowContext(ctx, `
		SELECT id, item_name, quantity, created_at, updated_at
		FROM inventory_items WHERE id = ?`, id).
		Scan(&item.ID, &item.ItemName, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory item: %w", err)
	}

	return &item, nil
}
