package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"kwanzabet/config"
	"kwanzabet/events"
	"kwanzabet/httpapi"
	"kwanzabet/repository"
	"kwanzabet/rng"
	"kwanzabet/service"

	logrus "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting kwanzabet server...")

	// Load configuration
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	configureLogging(cfg)

	// Initialize event bus
	log.Println("Initializing event bus...")
	eventBus := events.NewBus()
	subscribeAuditLoggers(eventBus)

	// Initialize stores
	log.Println("Initializing stores...")
	accountStore := repository.NewAccountStore()
	betLog := repository.NewBetLog()
	transactionLog := repository.NewTransactionLog()

	// Initialize services
	log.Println("Initializing services...")
	provider := rng.New()
	accountService := service.NewAccountService(accountStore, transactionLog, eventBus, cfg)
	wagerService := service.NewWagerService(accountStore, betLog, provider, eventBus, cfg)
	walletService := service.NewWalletService(accountStore, transactionLog, eventBus, cfg)
	transferService := service.NewTransferService(accountStore, transactionLog, eventBus)
	statsService := service.NewStatsService(accountStore)
	log.Println("Services initialized successfully")

	// Initialize HTTP server
	server := httpapi.NewServer(cfg, accountService, wagerService, walletService, transferService, statsService)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	log.Printf("Server is running in %s mode...", cfg.Environment)
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}
	log.Println("Shutdown completed")

	return nil
}

func configureLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// subscribeAuditLoggers attaches structured-log consumers to the bus so
// every ledger mutation leaves a trace even with no other subscribers.
func subscribeAuditLoggers(bus *events.Bus) {
	bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.BalanceChangeEvent); ok {
			logrus.WithFields(logrus.Fields{
				"accountID":    e.AccountID,
				"oldBalance":   e.OldBalance,
				"newBalance":   e.NewBalance,
				"changeAmount": e.ChangeAmount,
				"reason":       e.Reason,
			}).Info("Balance changed")
		}
	})
	bus.Subscribe(events.EventTypeBetPlaced, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.BetPlacedEvent); ok {
			logrus.WithFields(logrus.Fields{
				"accountID": e.AccountID,
				"betID":     e.BetID,
				"game":      e.Game,
				"stake":     e.Stake,
				"won":       e.Won,
				"prize":     e.Prize,
			}).Info("Bet placed")
		}
	})
	bus.Subscribe(events.EventTypeAccountCreated, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.AccountCreatedEvent); ok {
			logrus.WithFields(logrus.Fields{
				"accountID":       e.AccountID,
				"startingBalance": e.StartingBalance,
			}).Info("Account created")
		}
	})
}
