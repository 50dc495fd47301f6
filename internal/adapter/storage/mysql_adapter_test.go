package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdash/records/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/records_test?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))

	// Each test starts from empty tables so aggregates are deterministic.
	_, err = db.ExecContext(ctx, `DELETE FROM transactions`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM inventory_items`)
	require.NoError(t, err)

	return db
}

func mustDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTransactionStore_InsertRoundsAmount(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLTransactionStore(db)

	tx, err := store.Insert(ctx, domain.CreateTransactionInput{
		CustomerName: "Alice",
		LoanAmount:   mustDec("1234.567"),
	})
	require.NoError(t, err)

	assert.Greater(t, tx.ID, int64(0))
	assert.True(t, tx.LoanAmount.Equal(mustDec("1234.57")), "got %s", tx.LoanAmount)
	assert.True(t, tx.CreatedAt.Equal(tx.UpdatedAt))

	// The stored row agrees with the returned record.
	txs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].LoanAmount.Equal(mustDec("1234.57")))
	assert.True(t, txs[0].CreatedAt.Equal(tx.CreatedAt))
}

func TestTransactionStore_ListNewestFirst(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLTransactionStore(db)

	first, err := store.Insert(ctx, domain.CreateTransactionInput{CustomerName: "A", LoanAmount: mustDec("1.00")})
	require.NoError(t, err)
	second, err := store.Insert(ctx, domain.CreateTransactionInput{CustomerName: "B", LoanAmount: mustDec("2.00")})
	require.NoError(t, err)

	txs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, second.ID, txs[0].ID)
	assert.Equal(t, first.ID, txs[1].ID)
}

func TestTransactionStore_UpdatePartial(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLTransactionStore(db)

	created, err := store.Insert(ctx, domain.CreateTransactionInput{
		CustomerName: "Alice",
		LoanAmount:   mustDec("100.00"),
	})
	require.NoError(t, err)

	amount := mustDec("250.505")
	updated, err := store.Update(ctx, domain.UpdateTransactionInput{
		ID:         created.ID,
		LoanAmount: &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", updated.CustomerName, "absent field keeps stored value")
	assert.True(t, updated.LoanAmount.Equal(mustDec("250.51")), "got %s", updated.LoanAmount)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// id-only update still bumps updatedAt.
	bumped, err := store.Update(ctx, domain.UpdateTransactionInput{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Alice", bumped.CustomerName)
	assert.True(t, bumped.LoanAmount.Equal(mustDec("250.51")))
	assert.True(t, bumped.UpdatedAt.After(updated.UpdatedAt))
}

func TestTransactionStore_UpdateNotFound(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	store := NewMySQLTransactionStore(db)

	_, err := store.Update(context.Background(), domain.UpdateTransactionInput{ID: 999999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionStore_DeleteTwice(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLTransactionStore(db)

	created, err := store.Insert(ctx, domain.CreateTransactionInput{
		CustomerName: "Alice",
		LoanAmount:   mustDec("10.00"),
	})
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTransactionStore_SummaryAndChart(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLTransactionStore(db)

	for _, in := range []domain.CreateTransactionInput{
		{CustomerName: "A", LoanAmount: mustDec("100.50")},
		{CustomerName: "B", LoanAmount: mustDec("50.25")},
		{CustomerName: "A", LoanAmount: mustDec("10.00")},
	} {
		_, err := store.Insert(ctx, in)
		require.NoError(t, err)
	}

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalCustomers)
	assert.Equal(t, int64(3), summary.TotalTransactions)
	assert.True(t, summary.TotalLoanAmount.Equal(mustDec("160.75")), "got %s", summary.TotalLoanAmount)

	points, err := store.ChartData(ctx)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "A", points[0].CustomerName)
	assert.True(t, points[0].LoanAmount.Equal(mustDec("110.50")))
	assert.Equal(t, "B", points[1].CustomerName)
	assert.True(t, points[1].LoanAmount.Equal(mustDec("50.25")))
}

func TestTransactionStore_SummaryEmpty(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	store := NewMySQLTransactionStore(db)

	summary, err := store.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalCustomers)
	assert.Equal(t, int64(0), summary.TotalTransactions)
	assert.True(t, summary.TotalLoanAmount.IsZero())
}

func TestInventoryStore_CRUD(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLInventoryStore(db)

	created, err := store.Insert(ctx, domain.CreateInventoryItemInput{
		ItemName: "Laptop",
		Quantity: 12,
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	zero := int64(0)
	updated, err := store.Update(ctx, domain.UpdateInventoryItemInput{
		ID:       created.ID,
		Quantity: &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Quantity, "explicit zero must be written")
	assert.Equal(t, "Laptop", updated.ItemName)

	_, err = store.Update(ctx, domain.UpdateInventoryItemInput{ID: 999999})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInventoryStore_SummaryAndChart(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := NewMySQLInventoryStore(db)

	for _, in := range []domain.CreateInventoryItemInput{
		{ItemName: "Laptop", Quantity: 12},
		{ItemName: "Monitor", Quantity: 30},
		{ItemName: "Docking Station", Quantity: 0},
	} {
		_, err := store.Insert(ctx, in)
		require.NoError(t, err)
	}

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalItemTypes, "zero-quantity rows still count")
	assert.Equal(t, int64(42), summary.TotalStockQuantity)

	points, err := store.ChartData(ctx)
	require.NoError(t, err)
	assert.Len(t, points, 3)
}
