// Command seed populates the records database with sample data so the
// dashboard has something to show during development.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	"github.com/opsdash/records/internal/adapter/storage"
	"github.com/opsdash/records/internal/core/domain"
	"github.com/opsdash/records/internal/core/service"
)

func main() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/records?parseTime=true"
	}

	ctx := context.Background()

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("failed to open mysql: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	transactionSvc := service.NewTransactionService(storage.NewMySQLTransactionStore(db), nil, nil)
	inventorySvc := service.NewInventoryService(storage.NewMySQLInventoryStore(db), nil, nil)

	transactions := []domain.CreateTransactionInput{
		{CustomerName: "Alice Johnson", LoanAmount: decimal.RequireFromString("2500.00")},
		{CustomerName: "Bob Smith", LoanAmount: decimal.RequireFromString("1200.50")},
		{CustomerName: "Alice Johnson", LoanAmount: decimal.RequireFromString("800.25")},
		{CustomerName: "Carol White", LoanAmount: decimal.RequireFromString("5000.00")},
		{CustomerName: "Bob Smith", LoanAmount: decimal.RequireFromString("300.75")},
	}

	items := []domain.CreateInventoryItemInput{
		{ItemName: "Laptop", Quantity: 12},
		{ItemName: "Monitor", Quantity: 30},
		{ItemName: "Keyboard", Quantity: 45},
		{ItemName: "Docking Station", Quantity: 0},
	}

	start := time.Now()

	for _, in := range transactions {
		if _, err := transactionSvc.Create(ctx, in); err != nil {
			log.Fatalf("failed to seed transaction for %s: %v", in.CustomerName, err)
		}
	}
	for _, in := range items {
		if _, err := inventorySvc.Create(ctx, in); err != nil {
			log.Fatalf("failed to seed inventory item %s: %v", in.ItemName, err)
		}
	}

	elapsed := time.Since(start)

	txSummary, err := transactionSvc.Summary(ctx)
	if err != nil {
		log.Fatalf("failed to read transaction summary: %v", err)
	}
	invSummary, err := inventorySvc.Summary(ctx)
	if err != nil {
		log.Fatalf("failed to read inventory summary: %v", err)
	}

	fmt.Printf("seeded %d transactions and %d inventory items in %s\n",
		len(transactions), len(items), elapsed)
	fmt.Printf("transactions: %d customers, %d rows, %s total\n",
		txSummary.TotalCustomers, txSummary.TotalTransactions, txSummary.TotalLoanAmount.StringFixed(2))
	fmt.Printf("inventory: %d item types, %d units in stock\n",
		invSummary.TotalItemTypes, invSummary.TotalStockQuantity)
}
