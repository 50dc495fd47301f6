package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/opsdash/records/internal/adapter/handler"
	"github.com/opsdash/records/internal/adapter/storage"
	"github.com/opsdash/records/internal/config"
	"github.com/opsdash/records/internal/core/service"
	"github.com/opsdash/records/internal/port"
	"github.com/opsdash/records/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Entity store
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		baseLogger.Fatal("failed to open mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		baseLogger.Fatal("failed to ping mysql", zap.Error(err))
	}
	if err := storage.Migrate(ctx, db); err != nil {
		baseLogger.Fatal("failed to migrate schema", zap.Error(err))
	}
	baseLogger.Info("connected to mysql")

	// Report cache. Reporting works without it, so an unreachable Redis only
	// degrades reads to direct store queries.
	var reportCache port.ReportCache
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			baseLogger.Warn("redis unavailable, report caching disabled", zap.Error(err))
			rdb.Close()
			rdb = nil
		} else {
			reportCache = storage.NewRedisAdapter(rdb, cfg.Reports.CacheTTL)
			baseLogger.Info("connected to redis")
		}
	}

	transactionStore := storage.NewMySQLTransactionStore(db)
	inventoryStore := storage.NewMySQLInventoryStore(db)

	transactionSvc := service.NewTransactionService(transactionStore, reportCache, logger.Named(baseLogger, "svc.transactions"))
	inventorySvc := service.NewInventoryService(inventoryStore, reportCache, logger.Named(baseLogger, "svc.inventory"))

	httpHandler := handler.NewHTTPHandler(transactionSvc, inventorySvc, logger.Named(baseLogger, "handler.http"))
	engine := handler.NewRouter(httpHandler, logger.Named(baseLogger, "router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("http server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Error("http server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	baseLogger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("http shutdown error", zap.Error(err))
	}

	if rdb != nil {
		rdb.Close()
	}
	db.Close()
	baseLogger.Info("connections closed")
}
