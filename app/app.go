// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-transfer-api/config"
	"bank-transfer-api/db"
	"bank-transfer-api/handler"
	"bank-transfer-api/logger"
	"bank-transfer-api/model"
	"bank-transfer-api/repository"
	"bank-transfer-api/router"
	"bank-transfer-api/service"

	"github.com/shopspring/decimal"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// --- Ledger backend ---
	var ledger repository.ILedger
	switch config.AppConfig.Database.Driver {
	case "postgres":
		if err := db.RunMigrations("file://db/migrations"); err != nil {
			logger.Log.Fatalf("Error running migrations: %v", err)
		}
		database, err := db.Connect()
		if err != nil {
			logger.Log.Fatalf("Error connecting to the database: %v", err)
		}
		defer database.Close()
		ledger = repository.NewPostgresLedger(database)
	default:
		ledger = repository.NewMemoryLedger()
	}

	// --- Optional cache ---
	var cache service.ICacheClient
	if config.AppConfig.Redis.Enabled {
		rdb, err := db.ConnectRedis()
		if err != nil {
			logger.Log.Fatalf("Error connecting to Redis: %v", err)
		}
		defer rdb.Close()
		cache = rdb
	}

	// --- Wiring All Layers Together ---
	accountService := service.NewAccountService(ledger, cache)
	transferService := service.NewTransferService(ledger)
	accountHandler := handler.NewAccountHandler(accountService)
	transferHandler := handler.NewTransferHandler(transferService, accountService)

	if config.AppConfig.Database.Driver != "postgres" {
		if err := accountService.SeedAccounts(context.Background(), seedAccounts()); err != nil {
			logger.Log.Fatalf("Error seeding accounts: %v", err)
		}
	}

	r := router.NewRouter(accountHandler, transferHandler)

	// --- Optional queue listener ---
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	if config.AppConfig.RabbitMQ.Enabled {
		consumer := service.NewConsumerService(config.AppConfig.RabbitMQ.URL, config.AppConfig.RabbitMQ.Queue)
		go func() {
			if err := consumer.Run(consumerCtx); err != nil && consumerCtx.Err() == nil {
				logger.Log.WithError(err).Error("Queue consumer stopped")
			}
		}()
	}

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")
	stopConsumer()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// seedAccounts converts the configured seed accounts. When none are
// configured, the two well-known demo accounts are used.
func seedAccounts() []*model.Account {
	seeds := config.AppConfig.Seed.Accounts
	if len(seeds) == 0 {
		return []*model.Account{
			{AccountNumber: "008596512563", AccountName: "John Doe", Balance: decimal.NewFromInt(52000), Type: model.AccountTypeSavings},
			{AccountNumber: "008596558965", AccountName: "John Doe", Balance: decimal.NewFromInt(7500), Type: model.AccountTypeChecking},
		}
	}

	accounts := make([]*model.Account, 0, len(seeds))
	for _, s := range seeds {
		balance, err := decimal.NewFromString(s.Balance)
		if err != nil {
			logger.Log.WithField("account_number", s.AccountNumber).
				WithError(err).Fatal("Invalid seed balance")
		}
		accounts = append(accounts, &model.Account{
			AccountNumber: s.AccountNumber,
			AccountName:   s.AccountName,
			Balance:       balance,
			Type:          model.AccountType(s.Type),
		})
	}
	return accounts
}
